// Package stats reduces an augmented telemetry session into descriptive
// statistics and a qualitative balance classification.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/trackside/core/model"
)

// movingSpeedThreshold is the ground speed (m/s) above which a sample counts
// towards the statistics. Parked and pit-lane samples carry no balance
// information.
const movingSpeedThreshold = 5.0

// balanceDeadband is the |balance| (degrees) within which a sample is
// classified as neutral.
const balanceDeadband = 0.5

// Classification buckets a single balance value.
func Classification(balance float64) string {
	switch {
	case balance > balanceDeadband:
		return "understeer"
	case balance < -balanceDeadband:
		return "oversteer"
	default:
		return "neutral"
	}
}

// Reduce filters the session to moving samples and computes the balance
// report. An empty filtered set yields a report with Insufficient set, never
// a NaN statistic.
func Reduce(samples []model.AugmentedSample) model.BalanceReport {
	front := make([]float64, 0, len(samples))
	rear := make([]float64, 0, len(samples))
	balance := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Speed > movingSpeedThreshold {
			front = append(front, s.FrontSlipDeg)
			rear = append(rear, s.RearSlipDeg)
			balance = append(balance, s.Balance)
		}
	}

	if len(front) == 0 {
		return model.BalanceReport{Insufficient: true, TotalSamples: len(samples)}
	}

	n := float64(len(balance))
	var understeer, oversteer float64
	for _, b := range balance {
		switch {
		case b > balanceDeadband:
			understeer++
		case b < -balanceDeadband:
			oversteer++
		}
	}
	understeerPct := understeer / n * 100
	oversteerPct := oversteer / n * 100

	meanBalance := stat.Mean(balance, nil)
	label := model.LabelNeutral
	if meanBalance > 0 {
		label = model.LabelUndersteer
	} else if meanBalance < 0 {
		label = model.LabelOversteer
	}

	return model.BalanceReport{
		TotalSamples:  len(samples),
		MovingSamples: len(front),
		Front:         describe(front),
		Rear:          describe(rear),
		MeanBalance:   meanBalance,
		UndersteerPct: understeerPct,
		OversteerPct:  oversteerPct,
		// Derived from the other two buckets so the percentages always sum
		// to exactly 100.
		NeutralPct: 100 - understeerPct - oversteerPct,
		Label:      label,
	}
}

func describe(values []float64) model.SlipStats {
	abs := make([]float64, len(values))
	for i, v := range values {
		abs[i] = math.Abs(v)
	}

	stdDev := 0.0
	if len(values) > 1 {
		stdDev = stat.StdDev(values, nil)
	}

	return model.SlipStats{
		Mean:   stat.Mean(values, nil),
		StdDev: stdDev,
		MaxAbs: floats.Max(abs),
		P95Abs: percentile(abs, 0.95),
		Max:    floats.Max(values),
		Min:    floats.Min(values),
	}
}

// percentile computes the p-quantile with linear interpolation between order
// statistics (rank p*(n-1), the convention of common dataframe libraries).
// gonum's stat.Quantile uses a different cumulant placement, so this stays
// local.
func percentile(values []float64, p float64) float64 {
	s := make([]float64, len(values))
	copy(s, values)
	sort.Float64s(s)

	rank := p * float64(len(s)-1)
	lo := int(math.Floor(rank))
	if lo >= len(s)-1 {
		return s[len(s)-1]
	}
	frac := rank - float64(lo)
	return s[lo] + frac*(s[lo+1]-s[lo])
}
