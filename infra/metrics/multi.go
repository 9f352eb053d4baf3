package metrics

import coremetrics "github.com/kilianp07/trackside/core/metrics"

// MultiSink fans slip results out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSlipResult forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordSlipResult(res []coremetrics.SlipResult) error {
	var firstErr error
	for _, s := range m.Sinks {
		if err := s.RecordSlipResult(res); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
