package cubego

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures cube constructor behavior.
//
// Options are inherited by every cube value derived through Set/SetMany.
type Option func(*options)

// WithLogger configures structured logging for cube operations.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetrics configures a metrics collector for cube operations.
//
// If nil is passed, metrics collection is disabled.
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *options) {
		if metrics == nil {
			metrics = NoopMetricsCollector{}
		}
		o.metrics = metrics
	}
}
