// Package slip implements the bicycle-model slip angle computation. Each
// sample is processed independently from the others, so any batch may be
// split across goroutines without changing the result.
package slip

import (
	"math"
	"sync"

	"github.com/kilianp07/trackside/core/model"
	"github.com/kilianp07/trackside/core/signal"
	"github.com/kilianp07/trackside/core/vehicle"
)

// lowSpeedCutoff is the |vx| (m/s) below which front and rear slip angles are
// defined as exactly zero. Near standstill the formulas divide by vx and the
// quantity is physically meaningless anyway.
const lowSpeedCutoff = 0.5

const degPerRad = 180 / math.Pi

// Calculator derives slip angles from decoded telemetry. It holds only the
// immutable vehicle geometry and is safe for concurrent use.
type Calculator struct {
	geom vehicle.Geometry
}

// New returns a Calculator for the given geometry.
func New(geom vehicle.Geometry) *Calculator {
	return &Calculator{geom: geom}
}

// Compute derives the slip angles for one sample. Burst-array cells are
// decoded to their most recent value; missing readings count as zero.
func (c *Calculator) Compute(s model.TelemetrySample) model.SlipAngles {
	vx := signal.DecodeOrZero(s.VelocityX)
	vy := signal.DecodeOrZero(s.VelocityY)
	yawRate := signal.DecodeOrZero(s.YawRate)
	return c.compute(vx, vy, yawRate, s.SteeringWheelAngle)
}

func (c *Calculator) compute(vx, vy, yawRate, steeringWheelDeg float64) model.SlipAngles {
	roadWheelDeg := steeringWheelDeg / c.geom.SteeringRatio()
	roadWheelRad := roadWheelDeg * math.Pi / 180

	// atan2(0,0) is 0 by definition, so a stationary sample yields a zero
	// body slip angle rather than NaN.
	bodySlip := math.Atan2(vy, vx)

	var frontSlip, rearSlip float64
	if math.Abs(vx) > lowSpeedCutoff {
		frontSlip = roadWheelRad - bodySlip - yawRate*c.geom.WheelbaseFront()/vx
		rearSlip = -math.Atan2(vy-yawRate*c.geom.WheelbaseRear(), vx)
	}

	frontDeg := frontSlip * degPerRad
	rearDeg := rearSlip * degPerRad

	return model.SlipAngles{
		VX:                vx,
		VY:                vy,
		YawRate:           yawRate,
		RoadWheelAngleDeg: roadWheelDeg,
		BodySlip:          bodySlip,
		FrontSlip:         frontSlip,
		RearSlip:          rearSlip,
		BodySlipDeg:       bodySlip * degPerRad,
		FrontSlipDeg:      frontDeg,
		RearSlipDeg:       rearDeg,
		Balance:           frontDeg - rearDeg,
	}
}

// ComputeSeries augments every sample in order. workers <= 1 runs
// sequentially; larger values partition the slice into disjoint sub-ranges
// and fan out. The output is identical either way since samples are
// independent.
func (c *Calculator) ComputeSeries(samples []model.TelemetrySample, workers int) []model.AugmentedSample {
	out := make([]model.AugmentedSample, len(samples))
	if len(samples) == 0 {
		return out
	}
	if workers <= 1 {
		for i, s := range samples {
			out[i] = model.AugmentedSample{TelemetrySample: s, SlipAngles: c.Compute(s)}
		}
		return out
	}

	if workers > len(samples) {
		workers = len(samples)
	}
	chunk := (len(samples) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(samples); start += chunk {
		end := start + chunk
		if end > len(samples) {
			end = len(samples)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = model.AugmentedSample{TelemetrySample: samples[i], SlipAngles: c.Compute(samples[i])}
			}
		}(start, end)
	}
	wg.Wait()
	return out
}
