package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kilianp07/trackside/core/vehicle"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `vehicle:
  wheelbase: 2.97
  track_width: 1.61
  cg_fraction: 0.48
  steering_ratio: 11.0
  target_balance: -2.0
analysis:
  workers: 4
mqtt:
  broker: "tcp://localhost:1883"
  client_id: "trackside-test"
  sample_topic: "telemetry/gt3/sample"
  output_topic: "telemetry/gt3/slip"
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9102"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"wheelbase", cfg.Vehicle.Wheelbase, 2.97},
		{"track_width", cfg.Vehicle.TrackWidth, 1.61},
		{"cg_fraction", cfg.Vehicle.CGFraction, 0.48},
		{"steering_ratio", cfg.Vehicle.SteeringRatio, 11.0},
		{"workers", cfg.Analysis.Workers, 4},
		{"broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"sample_topic", cfg.MQTT.SampleTopic, "telemetry/gt3/sample"},
		{"output_topic", cfg.MQTT.OutputTopic, "telemetry/gt3/slip"},
		{"prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"prometheus_addr", cfg.Metrics.PrometheusAddr, ":9102"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if cfg.Vehicle.TargetBalance == nil || *cfg.Vehicle.TargetBalance != -2.0 {
		t.Errorf("target_balance = %v, want -2.0", cfg.Vehicle.TargetBalance)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Vehicle.Wheelbase != 2.7 || cfg.Vehicle.TrackWidth != 1.6 {
		t.Errorf("geometry defaults: %+v", cfg.Vehicle)
	}
	if cfg.Vehicle.CGFraction != 0.45 || cfg.Vehicle.SteeringRatio != 12.0 {
		t.Errorf("geometry defaults: %+v", cfg.Vehicle)
	}
	if cfg.Vehicle.TargetBalance != nil {
		t.Errorf("target_balance should default to unset")
	}
	if cfg.Analysis.Workers != 1 {
		t.Errorf("workers = %d, want 1", cfg.Analysis.Workers)
	}
	if cfg.MQTT.SampleTopic != "telemetry/+/sample" {
		t.Errorf("sample_topic = %s", cfg.MQTT.SampleTopic)
	}
	if cfg.Metrics.PrometheusAddr != ":2112" {
		t.Errorf("prometheus_addr = %s", cfg.Metrics.PrometheusAddr)
	}
}

func TestLoad_InvalidGeometry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `vehicle:
  cg_fraction: 1.2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	var cfgErr *vehicle.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected geometry ConfigError, got %v", err)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TRACKSIDE_VEHICLE__WHEELBASE", "3.1")
	t.Setenv("TRACKSIDE_MQTT__BROKER", "tcp://env-broker:1883")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Vehicle.Wheelbase != 3.1 {
		t.Errorf("wheelbase = %v, want 3.1 from env", cfg.Vehicle.Wheelbase)
	}
	if cfg.MQTT.Broker != "tcp://env-broker:1883" {
		t.Errorf("broker = %q, want env value", cfg.MQTT.Broker)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `vehicle:
  steering_ratio: 11.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TRACKSIDE_VEHICLE__STEERING_RATIO", "13.5")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Vehicle.SteeringRatio != 13.5 {
		t.Errorf("steering_ratio = %v, want env to win over file", cfg.Vehicle.SteeringRatio)
	}
}
