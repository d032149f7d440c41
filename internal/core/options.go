package core

import "time"

// Clock supplies the service's notion of time, overridable in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// ServiceOption customises service construction.
type ServiceOption func(*Service)

// WithLogger wires a logger; nil restores the no-op default.
func WithLogger(logger Logger) ServiceOption {
	return func(s *Service) {
		if logger == nil {
			logger = noopLogger{}
		}
		s.logger = logger
	}
}

// WithClock overrides the time source.
func WithClock(clock Clock) ServiceOption {
	return func(s *Service) {
		if clock == nil {
			clock = systemClock{}
		}
		s.clock = clock
	}
}

// WithMetrics wires a metrics recorder; nil restores the no-op default.
func WithMetrics(rec MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if rec == nil {
			rec = noopMetrics{}
		}
		s.metrics = rec
	}
}

// WithTracer wires a tracer; nil restores the no-op default.
func WithTracer(tracer Tracer) ServiceOption {
	return func(s *Service) {
		if tracer == nil {
			tracer = noopTracer{}
		}
		s.tracer = tracer
	}
}
