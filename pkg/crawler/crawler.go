// Package crawler periodically polls an explorer for the confirmation of
// transactions.
package crawler

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-trader/pkg/explorer"
	"go.uber.org/ratelimit"
)

const (
	defaultInterval   = 5 * time.Second
	eventQueueMaxSize = 100
	requestsPerSecond = 5
)

var ErrNullExplorer = errors.New("missing explorer")

// Opts defines the parameters needed for creating a crawler with
// NewService.
type Opts struct {
	ExplorerSvc explorer.Service
	Interval    time.Duration
	// ErrorHandler, if defined, receives every failed poll. Errors are
	// logged otherwise. A failed poll is retried at the next interval.
	ErrorHandler func(txid string, err error)
}

type Service struct {
	explorerSvc  explorer.Service
	interval     time.Duration
	errorHandler func(txid string, err error)
	limiter      ratelimit.Limiter
}

func NewService(opts Opts) (*Service, error) {
	if opts.ExplorerSvc == nil {
		return nil, ErrNullExplorer
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	return &Service{
		explorerSvc:  opts.ExplorerSvc,
		interval:     opts.Interval,
		errorHandler: opts.ErrorHandler,
		limiter:      ratelimit.New(requestsPerSecond),
	}, nil
}

// Watch polls the status of the given transactions and sends an event for
// every poll. A transaction stops being watched once it's confirmed. The
// returned channel is closed when all transactions are confirmed or ctx is
// done.
func (s *Service) Watch(ctx context.Context, txids ...string) <-chan TransactionEvent {
	eventChan := make(chan TransactionEvent, eventQueueMaxSize)

	wg := &sync.WaitGroup{}
	for _, txid := range txids {
		wg.Add(1)
		go func(txid string) {
			defer wg.Done()
			s.watch(ctx, txid, eventChan)
		}(txid)
	}

	go func() {
		wg.Wait()
		close(eventChan)
	}()

	return eventChan
}

// WaitForConfirmation blocks until the given transaction is confirmed.
func (s *Service) WaitForConfirmation(ctx context.Context, txid string) error {
	for event := range s.Watch(ctx, txid) {
		if event.EventType == TransactionConfirmed {
			return nil
		}
	}
	return ctx.Err()
}

func (s *Service) watch(
	ctx context.Context, txid string, eventChan chan<- TransactionEvent,
) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if confirmed := s.poll(ctx, txid, eventChan); confirmed {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) poll(
	ctx context.Context, txid string, eventChan chan<- TransactionEvent,
) bool {
	s.limiter.Take()

	confirmed, err := s.explorerSvc.IsTransactionConfirmed(ctx, txid)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		if s.errorHandler != nil {
			s.errorHandler(txid, err)
		} else {
			log.WithError(err).WithField("txid", txid).
				Debug("crawler: failed to get transaction status")
		}
		return false
	}

	eventType := TransactionUnconfirmed
	if confirmed {
		eventType = TransactionConfirmed
	}

	select {
	case eventChan <- TransactionEvent{TxID: txid, EventType: eventType}:
	case <-ctx.Done():
		return false
	}
	return confirmed
}
