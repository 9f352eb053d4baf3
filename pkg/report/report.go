// Package report renders balance reports as text. It is a stateless
// formatting layer; all numbers come from the statistics reducer.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/kilianp07/trackside/core/model"
)

const rule = 70

// Render produces the human-readable statistics report for a session.
// targetBalance, when non-NaN, adds a comparison line for setup work; pass
// math.NaN() to omit it.
func Render(r model.BalanceReport, targetBalance float64) string {
	var b strings.Builder

	if r.Insufficient {
		fmt.Fprintf(&b, "No data with speed > 5 m/s (%d samples total)\n", r.TotalSamples)
		return b.String()
	}

	line := strings.Repeat("=", rule)
	thin := strings.Repeat("-", rule)

	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "SLIP ANGLE STATISTICS (Speed > 5 m/s)\n")
	fmt.Fprintf(&b, "%s\n\n", line)

	fmt.Fprintf(&b, "%-35s %15s %15s\n", "Metric", "Front", "Rear")
	fmt.Fprintf(&b, "%s\n", thin)
	rows := []struct {
		name        string
		front, rear float64
	}{
		{"Mean (deg)", r.Front.Mean, r.Rear.Mean},
		{"Std Dev (deg)", r.Front.StdDev, r.Rear.StdDev},
		{"Max Absolute (deg)", r.Front.MaxAbs, r.Rear.MaxAbs},
		{"95th Percentile Abs (deg)", r.Front.P95Abs, r.Rear.P95Abs},
		{"Max Positive (deg)", r.Front.Max, r.Rear.Max},
		{"Max Negative (deg)", r.Front.Min, r.Rear.Min},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-35s %15.2f %15.2f\n", row.name, row.front, row.rear)
	}

	fmt.Fprintf(&b, "\n%s\n", thin)
	fmt.Fprintf(&b, "BALANCE METRICS\n")
	fmt.Fprintf(&b, "%s\n", thin)
	fmt.Fprintf(&b, "Average balance: %+.2f° (%s)\n", r.MeanBalance, r.Label)
	fmt.Fprintf(&b, "Understeer time: %.1f%%\n", r.UndersteerPct)
	fmt.Fprintf(&b, "Oversteer time:  %.1f%%\n", r.OversteerPct)
	fmt.Fprintf(&b, "Neutral time:    %.1f%%\n", r.NeutralPct)
	if !math.IsNaN(targetBalance) {
		fmt.Fprintf(&b, "Target balance:  %+.2f° (delta %+.2f°)\n", targetBalance, r.MeanBalance-targetBalance)
	}

	fmt.Fprintf(&b, "\n%s\n", thin)
	fmt.Fprintf(&b, "INTERPRETATION\n")
	fmt.Fprintf(&b, "%s\n", thin)
	fmt.Fprintf(&b, "Typical slip angle ranges:\n")
	fmt.Fprintf(&b, "  Straight/mild: 0-4°\n")
	fmt.Fprintf(&b, "  Cornering:     4-10°\n")
	fmt.Fprintf(&b, "  At limit:      10-15°\n")
	fmt.Fprintf(&b, "\nMax slip angles: Front=%.1f°, Rear=%.1f°\n", r.Front.MaxAbs, r.Rear.MaxAbs)

	return b.String()
}
