// Package app wires the configuration into a running live-analysis service.
package app

import (
	"context"
	"fmt"
	"math"

	"github.com/kilianp07/trackside/config"
	coremetrics "github.com/kilianp07/trackside/core/metrics"
	"github.com/kilianp07/trackside/core/slip"
	"github.com/kilianp07/trackside/core/stats"
	"github.com/kilianp07/trackside/infra/logger"
	"github.com/kilianp07/trackside/infra/metrics"
	"github.com/kilianp07/trackside/infra/mqtt"
	"github.com/kilianp07/trackside/pkg/report"
)

// Service orchestrates the live telemetry collector and the metrics sinks.
type Service struct {
	cfg       *config.Config
	collector *mqtt.Collector
	log       logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	geom, err := cfg.Vehicle.Geometry()
	if err != nil {
		return nil, err
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	collector, err := mqtt.NewCollector(cfg.MQTT, slip.New(geom), sink)
	if err != nil {
		return nil, fmt.Errorf("mqtt collector: %w", err)
	}
	return &Service{cfg: cfg, collector: collector, log: logg}, nil
}

// Run blocks until the context is cancelled, then reduces the collected
// session and logs the balance report.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if err := s.collector.Start(ctx); err != nil {
		return err
	}

	session := s.collector.Session()
	s.log.Infof("session closed with %d samples", len(session))
	target := math.NaN()
	if s.cfg.Vehicle.TargetBalance != nil {
		target = *s.cfg.Vehicle.TargetBalance
	}
	fmt.Print(report.Render(stats.Reduce(session), target))
	return nil
}
