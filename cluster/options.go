package cluster

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-edit/search"
)

// Option configures Solve.
type Option func(cfg *config)

type config struct {
	search.Config
	removalsOnly bool
	greedySeed   bool
	trace        func(parent, child int64)
}

func newConfig(opts ...Option) config {
	cfg := config{greedySeed: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
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

// WithRemovalsOnly restricts edits to edge deletions.
func WithRemovalsOnly() Option {
	return func(cfg *config) { cfg.removalsOnly = true }
}

// WithGreedySeed toggles seeding the record with Greedy.
func WithGreedySeed(on bool) Option {
	return func(cfg *config) { cfg.greedySeed = on }
}

func (cfg config) traceChild(parent, child int64) {
	if cfg.trace != nil {
		cfg.trace(parent, child)
	}
}
