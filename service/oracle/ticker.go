package oracle

import (
	"context"
	"fmt"
	"time"

	"dsc/core"
	"dsc/pkg/id"
	"dsc/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
)

// TickerService pulls price tickers from the price endpoint
type TickerService struct {
	client *resthttp.Client
}

// NewTickerService new ticker service
func NewTickerService(endpoint string) *TickerService {
	return &TickerService{
		client: resthttp.New(endpoint),
	}
}

// PullPriceTicker pull price ticker of symbol at t
func (s *TickerService) PullPriceTicker(ctx context.Context, symbol string, t time.Time) (*core.PriceTicker, error) {
	path := fmt.Sprintf("/api/v2/tickers/%s?ts=%d", symbol, t.UTC().Unix())
	logger.FromContext(ctx).Debugln("pull price:", path)

	requestID := id.TraceIDFrom(fmt.Sprintf("ticker-%s-%d", symbol, t.UTC().Unix()))

	var ticker core.PriceTicker
	if err := s.client.Get(ctx, requestID, path, &ticker); err != nil {
		return nil, err
	}

	if ticker.Symbol == "" {
		ticker.Symbol = symbol
	}

	if ticker.Time.IsZero() {
		ticker.Time = t
	}

	return &ticker, nil
}
