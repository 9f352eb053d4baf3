package csvio

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/trackside/core/model"
)

// augmentedHeader keeps the column names of the original telemetry export so
// downstream consumers of the augmented file do not need to change.
var augmentedHeader = []string{
	"SessionTime", "Speed", "SteeringWheelAngle",
	"VelocityX", "VelocityY", "YawRate", "LatAccel",
	"vx", "vy", "yaw_rate", "steering_angle",
	"body_slip_angle", "slip_angle_front", "slip_angle_rear",
	"body_slip_angle_deg", "slip_angle_front_deg", "slip_angle_rear_deg",
	"balance",
}

// Write emits the augmented session as CSV.
func Write(w io.Writer, samples []model.AugmentedSample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(augmentedHeader); err != nil {
		return err
	}
	for _, s := range samples {
		rec := []string{
			ftoa(s.SessionTime),
			ftoa(s.Speed),
			ftoa(s.SteeringWheelAngle),
			s.VelocityX,
			s.VelocityY,
			s.TelemetrySample.YawRate,
			s.LatAccel,
			ftoa(s.VX),
			ftoa(s.VY),
			ftoa(s.SlipAngles.YawRate),
			ftoa(s.RoadWheelAngleDeg),
			ftoa(s.BodySlip),
			ftoa(s.FrontSlip),
			ftoa(s.RearSlip),
			ftoa(s.BodySlipDeg),
			ftoa(s.FrontSlipDeg),
			ftoa(s.RearSlipDeg),
			ftoa(s.Balance),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON emits the augmented session as a JSON array.
func WriteJSON(w io.Writer, samples []model.AugmentedSample) error {
	enc := json.NewEncoder(w)
	return enc.Encode(samples)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
