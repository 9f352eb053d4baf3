package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/trackside/config"
	"github.com/kilianp07/trackside/core/slip"
	"github.com/kilianp07/trackside/core/stats"
	"github.com/kilianp07/trackside/infra/csvio"
	"github.com/kilianp07/trackside/infra/logger"
	"github.com/kilianp07/trackside/pkg/report"
)

var (
	outPath       string
	wheelbase     float64
	trackWidth    float64
	cgFraction    float64
	steeringRatio float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <telemetry.csv>",
	Short: "Compute slip angles for a recorded session",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outPath, "out", "o", "", "augmented CSV output path (default <input>_with_slip_angles.csv)")
	analyzeCmd.Flags().Float64Var(&wheelbase, "wheelbase", 0, "wheelbase in meters (overrides config)")
	analyzeCmd.Flags().Float64Var(&trackWidth, "track-width", 0, "track width in meters (overrides config)")
	analyzeCmd.Flags().Float64Var(&cgFraction, "cg", 0, "CG position fraction from front axle (overrides config)")
	analyzeCmd.Flags().Float64Var(&steeringRatio, "steering-ratio", 0, "steering ratio (overrides config)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logg := logger.New("analyze")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if wheelbase != 0 {
		cfg.Vehicle.Wheelbase = wheelbase
	}
	if trackWidth != 0 {
		cfg.Vehicle.TrackWidth = trackWidth
	}
	if cgFraction != 0 {
		cfg.Vehicle.CGFraction = cgFraction
	}
	if steeringRatio != 0 {
		cfg.Vehicle.SteeringRatio = steeringRatio
	}
	geom, err := cfg.Vehicle.Geometry()
	if err != nil {
		return err
	}
	logg.Infof("vehicle: wheelbase=%.2fm (front %.2fm, rear %.2fm), ratio %.1f:1",
		geom.Wheelbase(), geom.WheelbaseFront(), geom.WheelbaseRear(), geom.SteeringRatio())

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open telemetry: %w", err)
	}
	defer in.Close()
	samples, err := csvio.Load(in)
	if err != nil {
		return err
	}
	logg.Infof("loaded %d samples", len(samples))

	augmented := slip.New(geom).ComputeSeries(samples, cfg.Analysis.Workers)

	dst := outPath
	if dst == "" {
		dst = strings.TrimSuffix(args[0], ".csv") + "_with_slip_angles.csv"
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	if err := csvio.Write(out, augmented); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logg.Infof("exported augmented session to %s", dst)

	target := math.NaN()
	if cfg.Vehicle.TargetBalance != nil {
		target = *cfg.Vehicle.TargetBalance
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Render(stats.Reduce(augmented), target))
	return nil
}
