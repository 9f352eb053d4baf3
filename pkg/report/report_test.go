package report

import (
	"math"
	"strings"
	"testing"

	"github.com/kilianp07/trackside/core/model"
)

func TestRender_Insufficient(t *testing.T) {
	out := Render(model.BalanceReport{Insufficient: true, TotalSamples: 42}, math.NaN())
	if !strings.Contains(out, "No data with speed > 5 m/s") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "42 samples") {
		t.Fatalf("total sample count missing: %s", out)
	}
}

func TestRender_FullReport(t *testing.T) {
	r := model.BalanceReport{
		TotalSamples:  100,
		MovingSamples: 80,
		Front:         model.SlipStats{Mean: 1.23, StdDev: 0.5, MaxAbs: 8.1, P95Abs: 6.4, Max: 8.1, Min: -3.2},
		Rear:          model.SlipStats{Mean: 0.4, StdDev: 0.3, MaxAbs: 5.0, P95Abs: 4.2, Max: 5.0, Min: -2.1},
		MeanBalance:   0.83,
		UndersteerPct: 55.5,
		OversteerPct:  10.5,
		NeutralPct:    34.0,
		Label:         model.LabelUndersteer,
	}
	out := Render(r, math.NaN())

	for _, want := range []string{
		"SLIP ANGLE STATISTICS",
		"Mean (deg)",
		"95th Percentile Abs (deg)",
		"Average balance: +0.83° (UNDERSTEER)",
		"Understeer time: 55.5%",
		"Oversteer time:  10.5%",
		"Neutral time:    34.0%",
		"Max slip angles: Front=8.1°, Rear=5.0°",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Target balance") {
		t.Errorf("target line should be omitted without a target:\n%s", out)
	}
}

func TestRender_TargetBalance(t *testing.T) {
	r := model.BalanceReport{MeanBalance: -1.5, Label: model.LabelOversteer, MovingSamples: 10}
	out := Render(r, -2.0)
	if !strings.Contains(out, "Target balance:  -2.00° (delta +0.50°)") {
		t.Fatalf("target line missing or wrong:\n%s", out)
	}
}
