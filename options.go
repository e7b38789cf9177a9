package scribematch

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine dependencies.
type engineOptions struct {
	strategy Strategy
	logger   Logger
	metrics  MetricsCollector
}

// WithStrategy sets a custom search strategy, replacing the default
// randomized backtracking search.
//
// Parameters:
//   - s: Strategy implementation (must not be nil)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	s := strategy.NewBacktracking(strategy.WithSeed(42))
//	engine, err := scribematch.New(nil, scribematch.WithStrategy(s))
func WithStrategy(s Strategy) Option {
	return func(o *engineOptions) {
		o.strategy = s
	}
}

// WithLogger sets a structured logger. The default discards all output.
//
// Example:
//
//	engine, err := scribematch.New(nil, scribematch.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector. The default records nothing.
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}
