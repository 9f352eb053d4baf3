package mqtt

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	coremetrics "github.com/kilianp07/trackside/core/metrics"
	"github.com/kilianp07/trackside/core/model"
	"github.com/kilianp07/trackside/core/slip"
	"github.com/kilianp07/trackside/core/stats"
	"github.com/kilianp07/trackside/infra/logger"
)

// pahoClient is the subset of the Paho API the collector uses. It exists so
// tests can substitute a fake without a broker.
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Collector subscribes to a live telemetry topic, computes slip angles per
// sample, optionally republishes the augmented sample and records every
// result to the metrics sink. Samples are retained so a session report can be
// produced on shutdown.
type Collector struct {
	cfg  Config
	cli  pahoClient
	calc *slip.Calculator
	sink coremetrics.Sink
	log  logger.Logger

	sampleCh chan []byte

	mu      sync.Mutex
	session []model.AugmentedSample
}

// NewCollector connects to the broker and prepares the collector.
func NewCollector(cfg Config, calc *slip.Calculator, sink coremetrics.Sink) (*Collector, error) {
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	c := &Collector{
		cfg:      cfg,
		calc:     calc,
		sink:     sink,
		log:      logger.New("collector"),
		sampleCh: make(chan []byte, 100),
	}
	cli := newMQTTClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	c.cli = cli
	return c, nil
}

// Start subscribes and processes samples until the context is cancelled.
func (c *Collector) Start(ctx context.Context) error {
	if token := c.cli.Subscribe(c.cfg.SampleTopic, c.cfg.QoS, c.onSample); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	c.log.Infof("collecting telemetry on %s", c.cfg.SampleTopic)
	for {
		select {
		case <-ctx.Done():
			if c.cli.IsConnected() {
				c.cli.Disconnect(250)
			}
			return nil
		case payload := <-c.sampleCh:
			c.process(payload)
		}
	}
}

func (c *Collector) onSample(_ paho.Client, msg paho.Message) {
	select {
	case c.sampleCh <- msg.Payload():
	default:
		c.log.Warnf("sample buffer full, dropping message")
	}
}

func (c *Collector) process(payload []byte) {
	var sample model.TelemetrySample
	if err := json.Unmarshal(payload, &sample); err != nil {
		c.log.Errorf("decode sample: %v", err)
		return
	}

	angles := c.calc.Compute(sample)
	c.log.Debugw("slip computed", map[string]any{
		"session_time": sample.SessionTime,
		"balance":      angles.Balance,
	})
	aug := model.AugmentedSample{TelemetrySample: sample, SlipAngles: angles}

	c.mu.Lock()
	c.session = append(c.session, aug)
	c.mu.Unlock()

	if err := c.sink.RecordSlipResult([]coremetrics.SlipResult{{
		SessionTime:    sample.SessionTime,
		Speed:          sample.Speed,
		FrontSlipDeg:   angles.FrontSlipDeg,
		RearSlipDeg:    angles.RearSlipDeg,
		Balance:        angles.Balance,
		Classification: stats.Classification(angles.Balance),
	}}); err != nil {
		c.log.Errorf("record metrics: %v", err)
	}

	if c.cfg.OutputTopic == "" {
		return
	}
	out, err := json.Marshal(aug)
	if err != nil {
		c.log.Errorf("encode augmented sample: %v", err)
		return
	}
	token := c.cli.Publish(c.cfg.OutputTopic, c.cfg.QoS, false, out)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			c.log.Errorf("publish augmented sample: %v", token.Error())
		}
	}()
}

// Session returns a copy of the samples collected so far.
func (c *Collector) Session() []model.AugmentedSample {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.AugmentedSample, len(c.session))
	copy(out, c.session)
	return out
}
