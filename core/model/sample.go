package model

// TelemetrySample is one row of a telemetry session as delivered by a loader.
// Velocity and yaw rate cells arrive either as a plain float or as a bracketed
// burst array ("[v1;v2;...;vn]"); they are kept raw here and decoded by the
// slip calculator. A sample is immutable once loaded.
// Field tags follow the telemetry exporter's column names so JSON payloads
// and CSV headers stay interchangeable.
type TelemetrySample struct {
	SessionTime        float64 `json:"SessionTime"`
	Speed              float64 `json:"Speed"`
	SteeringWheelAngle float64 `json:"SteeringWheelAngle"` // degrees, signed
	VelocityX          string  `json:"VelocityX"`
	VelocityY          string  `json:"VelocityY"`
	YawRate            string  `json:"YawRate"`
	LatAccel           string  `json:"LatAccel,omitempty"`
}

// SlipAngles holds the quantities derived from a single sample. Radian fields
// are in the principal range of atan2; degree fields are the same values
// converted once at output. Tags match the derived column names of the
// augmented export.
type SlipAngles struct {
	VX                float64 `json:"vx"`
	VY                float64 `json:"vy"`
	YawRate           float64 `json:"yaw_rate"`
	RoadWheelAngleDeg float64 `json:"steering_angle"`

	BodySlip  float64 `json:"body_slip_angle"`
	FrontSlip float64 `json:"slip_angle_front"`
	RearSlip  float64 `json:"slip_angle_rear"`

	BodySlipDeg  float64 `json:"body_slip_angle_deg"`
	FrontSlipDeg float64 `json:"slip_angle_front_deg"`
	RearSlipDeg  float64 `json:"slip_angle_rear_deg"`

	// Balance is front minus rear slip angle in degrees. Positive means the
	// front axle slips more than the rear (understeer), negative oversteer.
	Balance float64 `json:"balance"`
}

// AugmentedSample pairs a telemetry sample with its derived slip angles.
type AugmentedSample struct {
	TelemetrySample
	SlipAngles
}
