// Package vehicle models the static geometry parameters of the analyzed car.
package vehicle

import "fmt"

// ConfigError reports an invalid geometry parameter. It is returned before
// any sample is processed.
type ConfigError struct {
	Param string
	Value float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid vehicle geometry: %s=%v", e.Param, e.Value)
}

// Geometry describes the bicycle-model parameters of a vehicle. Typical road
// car ranges are wheelbase 2.0-3.5 m, track width 1.4-2.0 m; values outside
// those ranges are accepted, only non-physical ones are rejected. A Geometry
// is immutable after construction.
type Geometry struct {
	wheelbase      float64
	trackWidth     float64
	cgFraction     float64
	steeringRatio  float64
	wheelbaseFront float64
	wheelbaseRear  float64
}

// NewGeometry validates the parameters and derives the front and rear
// half-wheelbase distances. cgFraction is the CG position as a fraction of
// the wheelbase measured from the front axle and must lie strictly in (0,1).
func NewGeometry(wheelbase, trackWidth, cgFraction, steeringRatio float64) (Geometry, error) {
	if wheelbase <= 0 {
		return Geometry{}, &ConfigError{Param: "wheelbase", Value: wheelbase}
	}
	if trackWidth <= 0 {
		return Geometry{}, &ConfigError{Param: "track_width", Value: trackWidth}
	}
	if cgFraction <= 0 || cgFraction >= 1 {
		return Geometry{}, &ConfigError{Param: "cg_fraction", Value: cgFraction}
	}
	if steeringRatio <= 0 {
		return Geometry{}, &ConfigError{Param: "steering_ratio", Value: steeringRatio}
	}
	return Geometry{
		wheelbase:      wheelbase,
		trackWidth:     trackWidth,
		cgFraction:     cgFraction,
		steeringRatio:  steeringRatio,
		wheelbaseFront: wheelbase * cgFraction,
		wheelbaseRear:  wheelbase * (1 - cgFraction),
	}, nil
}

// Wheelbase returns the total wheelbase in meters.
func (g Geometry) Wheelbase() float64 { return g.wheelbase }

// WheelbaseFront returns the CG-to-front-axle distance in meters.
func (g Geometry) WheelbaseFront() float64 { return g.wheelbaseFront }

// WheelbaseRear returns the CG-to-rear-axle distance in meters.
func (g Geometry) WheelbaseRear() float64 { return g.wheelbaseRear }

// TrackWidth returns the track width in meters. It is carried for reporting
// and downstream consumers; the slip formulas do not use it.
func (g Geometry) TrackWidth() float64 { return g.trackWidth }

// SteeringRatio returns the steering-wheel to road-wheel angle ratio.
func (g Geometry) SteeringRatio() float64 { return g.steeringRatio }
