package model

// SlipStats is a set of descriptive statistics over one axle's slip angle,
// all in degrees.
type SlipStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // sample standard deviation (n-1)
	MaxAbs float64 `json:"max_abs"`
	P95Abs float64 `json:"p95_abs"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
}

// Balance classification labels.
const (
	LabelUndersteer = "UNDERSTEER"
	LabelOversteer  = "OVERSTEER"
	LabelNeutral    = "NEUTRAL"
)

// BalanceReport aggregates a session filtered to moving samples. When no
// sample exceeds the moving threshold, Insufficient is true and every other
// field is zero; this is a normal result, not an error.
type BalanceReport struct {
	Insufficient  bool `json:"insufficient"`
	TotalSamples  int  `json:"total_samples"`
	MovingSamples int  `json:"moving_samples"`

	Front SlipStats `json:"front"`
	Rear  SlipStats `json:"rear"`

	MeanBalance   float64 `json:"mean_balance"`
	UndersteerPct float64 `json:"understeer_pct"`
	OversteerPct  float64 `json:"oversteer_pct"`
	NeutralPct    float64 `json:"neutral_pct"`

	// Label reflects the sign of MeanBalance.
	Label string `json:"label"`
}
