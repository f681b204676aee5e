package spanning

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-edit/connectivity"
	"github.com/katalvlaran/lvlath-edit/search"
)

// Option configures Solve.
type Option func(cfg *config)

type config struct {
	search.Config
	strategy Strategy
	conn     connectivity.Func
	trace    func(parent, child int64)
}

func newConfig(opts ...Option) config {
	cfg := config{strategy: Unweighted(), conn: connectivity.LocalEdge}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrategy selects the objective, bound and edge ordering.
func WithStrategy(s Strategy) Option {
	return func(cfg *config) { cfg.strategy = s }
}

// WithConnectivity selects the local connectivity oracle, e.g.
// connectivity.LocalVertex for vertex connectivity.
func WithConnectivity(fn connectivity.Func) Option {
	return func(cfg *config) { cfg.conn = fn }
}

// WithHook installs a progress hook.
func WithHook(h search.Hook) Option {
	return func(cfg *config) { cfg.Hook = h }
}

// WithBudget bounds the run.
func WithBudget(b search.Budget) Option {
	return func(cfg *config) { cfg.Budget = b }
}

// WithLogger routes solver logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *config) { cfg.Logger = l }
}
