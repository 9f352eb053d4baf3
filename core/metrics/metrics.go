package metrics

// SlipResult represents a per-sample computation event to be recorded for
// observability purposes.
type SlipResult struct {
	SessionTime    float64
	Speed          float64
	FrontSlipDeg   float64
	RearSlipDeg    float64
	Balance        float64
	Classification string // understeer, oversteer or neutral
}

// Sink records slip computation results.
type Sink interface {
	RecordSlipResult(results []SlipResult) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSlipResult([]SlipResult) error { return nil }
