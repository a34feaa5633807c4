package observe

// Telemetry bundles the instrumentation hooks consumed by failure handling.
type Telemetry struct {
	Logger  Logger
	Tracer  Tracer
	Metrics Metrics
}

// TelemetryFromObserver builds the standard hook set from an Observer.
func TelemetryFromObserver(obs Observer) (Telemetry, error) {
	if obs == nil {
		return Telemetry{}, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return Telemetry{}, err
	}

	return Telemetry{
		Logger:  obs.Logger(),
		Tracer:  newTracer(obs.Tracer()),
		Metrics: metrics,
	}, nil
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger { return &noopLogger{} }

// NopTracer returns a Tracer whose spans are never recorded.
func NopTracer() Tracer { return newNoopTracer() }

// NopMetrics returns a Metrics that records nothing.
func NopMetrics() Metrics { return &noopMetrics{} }
