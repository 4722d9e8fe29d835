package ports

import (
	"time"

	"github.com/tdex-network/tdex-trader/internal/core/domain"
)

// TradeObserver is notified about the outcome of trades and provider
// calls. Implementations must not block.
type TradeObserver interface {
	TradeCompleted(
		provider domain.TDEXProvider, tradeType domain.TradeType,
		elapsed time.Duration,
	)
	TradeFailed(
		provider domain.TDEXProvider, tradeType domain.TradeType, err error,
	)
	CompleteRetried(provider domain.TDEXProvider)
	ProviderFailed(provider domain.TDEXProvider, call string)
}

// NopTradeObserver discards every event.
type NopTradeObserver struct{}

func (NopTradeObserver) TradeCompleted(domain.TDEXProvider, domain.TradeType, time.Duration) {}
func (NopTradeObserver) TradeFailed(domain.TDEXProvider, domain.TradeType, error) {}
func (NopTradeObserver) CompleteRetried(domain.TDEXProvider) {}
func (NopTradeObserver) ProviderFailed(domain.TDEXProvider, string) {}
