package config

import (
	"github.com/kilianp07/trackside/core/vehicle"
)

// VehicleConfig holds the geometry parameters of the analyzed car.
type VehicleConfig struct {
	// Wheelbase in meters. Typical: 2.0-3.5.
	Wheelbase float64 `json:"wheelbase"`
	// TrackWidth in meters. Typical: 1.4-2.0. Informational in the slip
	// formulas.
	TrackWidth float64 `json:"track_width"`
	// CGFraction is the CG position as a fraction of the wheelbase from the
	// front axle, strictly between 0 and 1.
	CGFraction float64 `json:"cg_fraction"`
	// SteeringRatio divides the steering wheel angle into road wheel angle.
	SteeringRatio float64 `json:"steering_ratio"`
	// TargetBalance (degrees) is consumed by downstream setup-quality
	// tooling; the core computation ignores it.
	TargetBalance *float64 `json:"target_balance"`
}

// SetDefaults applies the stock road car parameters.
func (c *VehicleConfig) SetDefaults() {
	if c.Wheelbase == 0 {
		c.Wheelbase = 2.7
	}
	if c.TrackWidth == 0 {
		c.TrackWidth = 1.6
	}
	if c.CGFraction == 0 {
		c.CGFraction = 0.45
	}
	if c.SteeringRatio == 0 {
		c.SteeringRatio = 12.0
	}
}

// Validate constructs a geometry to surface invalid parameters early.
func (c VehicleConfig) Validate() error {
	_, err := vehicle.NewGeometry(c.Wheelbase, c.TrackWidth, c.CGFraction, c.SteeringRatio)
	return err
}

// Geometry builds the immutable geometry from the config.
func (c VehicleConfig) Geometry() (vehicle.Geometry, error) {
	return vehicle.NewGeometry(c.Wheelbase, c.TrackWidth, c.CGFraction, c.SteeringRatio)
}

// AnalysisConfig tunes how a session is processed.
type AnalysisConfig struct {
	// Workers controls the fan-out of the per-sample computation. 1 runs
	// sequentially; results are identical either way.
	Workers int `json:"workers"`
}

// SetDefaults applies sane defaults.
func (c *AnalysisConfig) SetDefaults() {
	if c.Workers == 0 {
		c.Workers = 1
	}
}
