package csvio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kilianp07/trackside/core/model"
)

const sampleCSV = `SessionTime,Speed,VelocityX,VelocityY,YawRate,SteeringWheelAngle,LatAccel
0.016,21.5,"[21.4;21.5]","[0.8;0.9]","[0.05]",12.5,"[2.1]"
0.032,21.6,[21.6],[1.0],[0.06],13.0,
0.048,bad,[21.7],,[garbage],-8.25,
`

func TestLoad(t *testing.T) {
	samples, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("loaded %d samples, want 3", len(samples))
	}

	s := samples[0]
	if s.SessionTime != 0.016 || s.Speed != 21.5 || s.SteeringWheelAngle != 12.5 {
		t.Errorf("scalar columns: %+v", s)
	}
	if s.VelocityX != "[21.4;21.5]" || s.LatAccel != "[2.1]" {
		t.Errorf("array columns kept raw: %+v", s)
	}

	// Malformed plain floats parse best-effort to zero; raw cells pass
	// through untouched for the decoder to reject.
	if samples[2].Speed != 0 {
		t.Errorf("bad speed = %v, want 0", samples[2].Speed)
	}
	if samples[2].YawRate != "[garbage]" {
		t.Errorf("yaw rate = %q", samples[2].YawRate)
	}
	if samples[2].SteeringWheelAngle != -8.25 {
		t.Errorf("steering = %v", samples[2].SteeringWheelAngle)
	}
}

func TestLoad_MissingColumns(t *testing.T) {
	csvData := "SessionTime,Speed,SteeringWheelAngle\n1.0,20,5\n"
	_, err := Load(strings.NewReader(csvData))
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	want := []string{"VelocityX", "VelocityY", "YawRate"}
	if len(missing.Columns) != len(want) {
		t.Fatalf("missing = %v, want %v", missing.Columns, want)
	}
	for i, col := range want {
		if missing.Columns[i] != col {
			t.Fatalf("missing = %v, want %v", missing.Columns, want)
		}
	}
	if !strings.Contains(err.Error(), "VelocityX") {
		t.Fatalf("error should name the columns: %v", err)
	}
}

func TestLoad_EmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError on empty input, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	samples := []model.AugmentedSample{
		{
			TelemetrySample: model.TelemetrySample{
				SessionTime:        1.5,
				Speed:              20,
				SteeringWheelAngle: 24,
				VelocityX:          "[20.0]",
				VelocityY:          "[1.0]",
				YawRate:            "[0.1]",
			},
			SlipAngles: model.SlipAngles{
				VX:           20,
				VY:           1,
				YawRate:      0.1,
				FrontSlipDeg: -1.21,
				RearSlipDeg:  -2.44,
				Balance:      1.23,
			},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, samples); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "SessionTime,Speed,SteeringWheelAngle,VelocityX") {
		t.Errorf("header = %s", lines[0])
	}
	if !strings.Contains(lines[0], "slip_angle_front_deg") || !strings.Contains(lines[0], "balance") {
		t.Errorf("derived columns missing from header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "1.23") {
		t.Errorf("row = %s", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	samples := []model.AugmentedSample{
		{
			TelemetrySample: model.TelemetrySample{SessionTime: 1, YawRate: "[0.1]"},
			SlipAngles:      model.SlipAngles{YawRate: 0.1, Balance: 0.5},
		},
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, samples); err != nil {
		t.Fatalf("write json: %v", err)
	}
	out := buf.String()
	// Raw and decoded yaw rate fields must both survive marshaling.
	if !strings.Contains(out, `"YawRate":"[0.1]"`) || !strings.Contains(out, `"yaw_rate":0.1`) {
		t.Fatalf("unexpected json: %s", out)
	}
}
