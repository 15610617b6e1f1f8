package handlemap

import "log/slog"

type config struct {
	logger           *slog.Logger
	metrics          MetricsCollector
	minItemsPerBlock int
}

func defaultConfig() config {
	return config{
		logger:           slog.New(slog.DiscardHandler),
		metrics:          NoopMetricsCollector{},
		minItemsPerBlock: defaultMinItemsPerBlock(),
	}
}

// Option configures a Map at construction time.
type Option func(*config)

// WithLogger sets the structured logger used for lifecycle events
// (materialization, clear, destroy) at debug level. The default discards
// all output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetricsCollector sets the collector that observes Add, Get and
// Remove operations. The default is NoopMetricsCollector.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// WithMinItemsPerBlock sets how many items each arena block of a growing
// store must at least hold. Larger blocks mean fewer mappings; smaller
// blocks bound eagerly-committed memory on platforms without virtual
// memory. Only growing stores consult it. The default is 1024 items
// (128 without virtual-memory support).
func WithMinItemsPerBlock(n int) Option {
	return func(c *config) {
		c.minItemsPerBlock = n
	}
}
