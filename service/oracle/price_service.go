package oracle

import (
	"context"
	"fmt"
	"time"

	"dsc/core"

	"github.com/fox-one/pkg/logger"
	"github.com/holiman/uint256"
)

// DefaultTimeout max age of a feed round
const DefaultTimeout = 3 * time.Hour

// PriceService validates feed rounds before the engine may use them
type PriceService struct {
	Timeout time.Duration
	Now     func() time.Time
}

// New new oracle price service, timeout <= 0 uses DefaultTimeout
func New(timeout time.Duration) *PriceService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &PriceService{
		Timeout: timeout,
		Now:     time.Now,
	}
}

// LatestPrice latest answer of the feed, in feed precision
func (s *PriceService) LatestPrice(ctx context.Context, feed core.PriceFeed) (*uint256.Int, error) {
	log := logger.FromContext(ctx).WithField("feed", feed.Name())

	round, err := feed.LatestRound(ctx)
	if err != nil {
		log.WithError(err).Errorln("feed.LatestRound")
		return nil, fmt.Errorf("%w: %s: %v", core.ErrStalePrice, feed.Name(), err)
	}

	if round.UpdatedAt.IsZero() || round.AnsweredInRound < round.RoundID {
		log.Infoln("incomplete round", round.RoundID)
		return nil, fmt.Errorf("%w: %s round %d incomplete", core.ErrStalePrice, feed.Name(), round.RoundID)
	}

	if age := s.Now().Sub(round.UpdatedAt); age > s.Timeout {
		log.Infoln("stale round", round.RoundID, "age", age)
		return nil, fmt.Errorf("%w: %s updated %s ago", core.ErrStalePrice, feed.Name(), age.Truncate(time.Second))
	}

	if !round.Answer.IsPositive() || !round.Answer.Equal(round.Answer.Truncate(0)) {
		log.Infoln("invalid answer", round.Answer)
		return nil, fmt.Errorf("%w: %s answered %s", core.ErrInvalidPrice, feed.Name(), round.Answer)
	}

	price, overflow := uint256.FromBig(round.Answer.BigInt())
	if overflow {
		return nil, fmt.Errorf("%w: %s answered %s", core.ErrInvalidPrice, feed.Name(), round.Answer)
	}

	return price, nil
}
