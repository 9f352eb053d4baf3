// Package csvio loads telemetry CSV exports and writes them back augmented
// with slip angle columns.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/trackside/core/model"
)

// requiredColumns must all be present for the slip computation to proceed.
var requiredColumns = []string{"VelocityX", "VelocityY", "YawRate", "SteeringWheelAngle", "Speed"}

// MissingColumnError reports required telemetry columns absent from the
// input header. It is raised before any sample is processed.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Load reads a header-addressed telemetry CSV into samples. Plain float
// cells parse best-effort (zero on failure); burst-array cells are kept raw
// for the signal decoder. Rows shorter than the header are skipped.
func Load(r io.Reader) ([]model.TelemetrySample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MissingColumnError{Columns: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var samples []model.TelemetrySample
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(samples)+2, err)
		}
		samples = append(samples, model.TelemetrySample{
			SessionTime:        parseFloat(cell(row, "SessionTime")),
			Speed:              parseFloat(cell(row, "Speed")),
			SteeringWheelAngle: parseFloat(cell(row, "SteeringWheelAngle")),
			VelocityX:          cell(row, "VelocityX"),
			VelocityY:          cell(row, "VelocityY"),
			YawRate:            cell(row, "YawRate"),
			LatAccel:           cell(row, "LatAccel"),
		})
	}
	return samples, nil
}

// parseFloat is best-effort: malformed telemetry yields zero, never an error.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
