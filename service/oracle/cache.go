package oracle

import (
	"context"
	"fmt"
	"time"

	"dsc/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// CacheTickers caches pulled tickers per symbol for exp, concurrent pulls of
// the same symbol share one request
func CacheTickers(tickers core.ITickerService, exp time.Duration) core.ITickerService {
	return &cacheTickerService{
		ITickerService: tickers,
		cache:          gcache.New(256).LRU().Expiration(exp).Build(),
		sf:             &singleflight.Group{},
	}
}

type cacheTickerService struct {
	core.ITickerService
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheTickerService) PullPriceTicker(ctx context.Context, symbol string, t time.Time) (*core.PriceTicker, error) {
	key := s.tickerKey(symbol)
	if v, err := s.cache.Get(key); err == nil {
		if ticker, ok := v.(*core.PriceTicker); ok {
			return ticker, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		ticker, err := s.ITickerService.PullPriceTicker(ctx, symbol, t)
		if err != nil {
			return nil, err
		}

		_ = s.cache.Set(key, ticker)
		return ticker, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.PriceTicker), nil
}

func (s *cacheTickerService) tickerKey(symbol string) string {
	return fmt.Sprintf("ticker:%s", symbol)
}
