package metrics

import (
	coremetrics "github.com/kilianp07/trackside/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records slip computation events in Prometheus metrics.
type PromSink struct {
	samples *prometheus.CounterVec
	balance prometheus.Histogram
	front   prometheus.Gauge
	rear    prometheus.Gauge
}

// NewPromSink registers slip metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusAddr.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// that are already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	samples := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "slip_samples_total",
		Help: "Total number of slip angle samples processed",
	}, []string{"classification"})
	balance := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "slip_balance_degrees",
		Help:    "Distribution of the balance metric (front minus rear slip angle)",
		Buckets: prometheus.LinearBuckets(-5, 1, 11),
	})
	front := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "slip_angle_front_degrees",
		Help: "Most recent front slip angle",
	})
	rear := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "slip_angle_rear_degrees",
		Help: "Most recent rear slip angle",
	})

	if err := reg.Register(samples); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			samples = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(balance); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			balance = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(front); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			front = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(rear); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			rear = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{samples: samples, balance: balance, front: front, rear: rear}, nil
}

// RecordSlipResult updates the counters and gauges for each result.
func (s *PromSink) RecordSlipResult(res []coremetrics.SlipResult) error {
	for _, r := range res {
		s.samples.WithLabelValues(r.Classification).Inc()
		s.balance.Observe(r.Balance)
		s.front.Set(r.FrontSlipDeg)
		s.rear.Set(r.RearSlipDeg)
	}
	return nil
}
