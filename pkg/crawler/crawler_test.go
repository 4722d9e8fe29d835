package crawler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-trader/pkg/crawler"
	"github.com/tdex-network/tdex-trader/pkg/explorer"
)

const (
	txid1 = "b9abc5a5f0224d3f56a2a07f89238cff93b99d19c92a98712fa7430635514571"
	txid2 = "97b74fe5aff4edd10b7eb52e3df3c70201b51719af50c1f16dbe2ce9c4c80be6"
)

func TestWatch(t *testing.T) {
	explorerSvc := &mockExplorer{}
	explorerSvc.On("IsTransactionConfirmed", mock.Anything, txid1).
		Return(false, nil).Once()
	explorerSvc.On("IsTransactionConfirmed", mock.Anything, txid1).
		Return(true, nil)
	explorerSvc.On("IsTransactionConfirmed", mock.Anything, txid2).
		Return(true, nil)

	svc := newTestService(t, explorerSvc, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := make(map[string][]crawler.EventType)
	for event := range svc.Watch(ctx, txid1, txid2) {
		events[event.TxID] = append(events[event.TxID], event.EventType)
	}

	require.NoError(t, ctx.Err())
	require.Equal(t, []crawler.EventType{
		crawler.TransactionUnconfirmed, crawler.TransactionConfirmed,
	}, events[txid1])
	require.Equal(t, []crawler.EventType{
		crawler.TransactionConfirmed,
	}, events[txid2])
}

func TestWaitForConfirmation(t *testing.T) {
	t.Run("confirmed after failures", func(t *testing.T) {
		explorerSvc := &mockExplorer{}
		explorerSvc.On("IsTransactionConfirmed", mock.Anything, txid1).
			Return(false, explorer.ErrNotFound).Twice()
		explorerSvc.On("IsTransactionConfirmed", mock.Anything, txid1).
			Return(true, nil)

		handler := &errorCounter{}
		svc := newTestService(t, explorerSvc, handler.handle)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := svc.WaitForConfirmation(ctx, txid1)
		require.NoError(t, err)
		require.Equal(t, 2, handler.count())
	})

	t.Run("context done", func(t *testing.T) {
		explorerSvc := &mockExplorer{}
		explorerSvc.On("IsTransactionConfirmed", mock.Anything, txid1).
			Return(false, nil)

		svc := newTestService(t, explorerSvc, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		err := svc.WaitForConfirmation(ctx, txid1)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNewService(t *testing.T) {
	svc, err := crawler.NewService(crawler.Opts{})
	require.ErrorIs(t, err, crawler.ErrNullExplorer)
	require.Nil(t, svc)
}

func newTestService(
	t *testing.T, explorerSvc explorer.Service, handler func(string, error),
) *crawler.Service {
	svc, err := crawler.NewService(crawler.Opts{
		ExplorerSvc:  explorerSvc,
		Interval:     10 * time.Millisecond,
		ErrorHandler: handler,
	})
	require.NoError(t, err)
	return svc
}

type errorCounter struct {
	lock sync.Mutex
	errs []error
}

func (c *errorCounter) handle(_ string, err error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.errs = append(c.errs, err)
}

func (c *errorCounter) count() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, err := range c.errs {
		if !errors.Is(err, explorer.ErrNotFound) {
			return -1
		}
	}
	return len(c.errs)
}

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) GetUnspents(
	ctx context.Context, addr string, blindKeys [][]byte,
) ([]explorer.Utxo, error) {
	panic("not implemented")
}

func (m *mockExplorer) GetUnspentsForAddresses(
	ctx context.Context, addresses []string, blindKeys [][]byte,
) ([]explorer.Utxo, error) {
	panic("not implemented")
}

func (m *mockExplorer) GetTransactionHex(
	ctx context.Context, txid string,
) (string, error) {
	panic("not implemented")
}

func (m *mockExplorer) IsTransactionConfirmed(
	ctx context.Context, txid string,
) (bool, error) {
	args := m.Called(ctx, txid)
	return args.Bool(0), args.Error(1)
}

func (m *mockExplorer) BroadcastTransaction(
	ctx context.Context, txhex string,
) (string, error) {
	panic("not implemented")
}
