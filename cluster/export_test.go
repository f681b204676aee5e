package cluster

// WithTrace observes every (parent score, child score) pair.
func WithTrace(fn func(parent, child int64)) Option {
	return func(cfg *config) { cfg.trace = fn }
}
