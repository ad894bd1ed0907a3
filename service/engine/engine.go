package engine

import (
	"context"
	"fmt"

	"dsc/core"
	"dsc/internal/ledger"
	"dsc/pkg/dsc"
	"dsc/service/oracle"

	"github.com/holiman/uint256"
)

// DefaultAddress token account the engine holds collateral and burns stable tokens on
const DefaultAddress = "dsc-engine"

// Option engine option
type Option func(e *Engine)

// WithParams override the risk parameters
func WithParams(params dsc.Params) Option {
	return func(e *Engine) {
		e.params = params
	}
}

// WithOracle override the price oracle, default oracle.New with the default timeout
func WithOracle(oracles core.IPriceOracleService) Option {
	return func(e *Engine) {
		e.oracles = oracles
	}
}

// WithStore persist ledger changes before an operation commits
func WithStore(positions core.PositionStore) Option {
	return func(e *Engine) {
		e.positions = positions
	}
}

// WithNotifiers receive events of committed operations
func WithNotifiers(notifiers ...core.Notifier) Option {
	return func(e *Engine) {
		e.notifiers = append(e.notifiers, notifiers...)
	}
}

// WithAddress engine token account
func WithAddress(address string) Option {
	return func(e *Engine) {
		e.address = address
	}
}

// Engine collateralized debt engine
type Engine struct {
	address string
	params  dsc.Params

	// registration order
	symbols []string
	tokens  map[string]core.CollateralToken
	feeds   map[string]core.PriceFeed
	stable  core.StableToken

	oracles   core.IPriceOracleService
	positions core.PositionStore
	notifiers []core.Notifier

	ledger *ledger.Ledger
	guard  guard
}

var _ core.IEngine = (*Engine)(nil)

// New engine with collateral tokens and their price feeds paired by position
func New(tokens []core.CollateralToken, feeds []core.PriceFeed, stable core.StableToken, opts ...Option) (*Engine, error) {
	if len(tokens) != len(feeds) {
		return nil, fmt.Errorf("%w: %d tokens, %d price feeds", core.ErrConfigMismatch, len(tokens), len(feeds))
	}

	if stable == nil {
		return nil, fmt.Errorf("%w: stable token missing", core.ErrConfigMismatch)
	}

	e := &Engine{
		address: DefaultAddress,
		params:  dsc.DefaultParams(),
		symbols: make([]string, 0, len(tokens)),
		tokens:  make(map[string]core.CollateralToken, len(tokens)),
		feeds:   make(map[string]core.PriceFeed, len(feeds)),
		stable:  stable,
	}

	for idx, token := range tokens {
		feed := feeds[idx]
		if token == nil || feed == nil {
			return nil, fmt.Errorf("%w: nil token or feed at %d", core.ErrConfigMismatch, idx)
		}

		symbol := token.Symbol()
		if _, ok := e.tokens[symbol]; ok {
			return nil, fmt.Errorf("%w: duplicated collateral %s", core.ErrConfigMismatch, symbol)
		}

		if feed.Decimals() != dsc.FeedDecimals {
			return nil, fmt.Errorf("%w: feed %s has %d decimals", core.ErrConfigMismatch, feed.Name(), feed.Decimals())
		}

		e.symbols = append(e.symbols, symbol)
		e.tokens[symbol] = token
		e.feeds[symbol] = feed
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.params.Validate(); err != nil {
		return nil, err
	}

	if e.address == "" {
		return nil, fmt.Errorf("%w: empty engine address", core.ErrConfigMismatch)
	}

	if e.oracles == nil {
		e.oracles = oracle.New(oracle.DefaultTimeout)
	}

	e.ledger = ledger.New(e.symbols...)
	return e, nil
}

// Address engine token account
func (e *Engine) Address() string {
	return e.address
}

// Restore load persisted positions into the ledger, call before serving
func (e *Engine) Restore(ctx context.Context) error {
	if e.positions == nil {
		return nil
	}

	positions, err := e.positions.All(ctx)
	if err != nil {
		return err
	}

	g := &e.guard
	g.mu.Lock()
	defer g.mu.Unlock()

	return e.ledger.Restore(positions)
}

func (e *Engine) collateral(symbol string) (core.CollateralToken, error) {
	token, ok := e.tokens[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedCollateral, symbol)
	}

	return token, nil
}

func requireAmount(amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return core.ErrInvalidAmount
	}

	return nil
}
