package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/openmatrix/ledweather/internal/logger"
	"github.com/openmatrix/ledweather/internal/weather"
)

// Publisher pushes each successful reading to an MQTT topic so other home
// automation consumers can react to the same data the panel shows.
type Publisher struct {
	client mqtt.Client
	topic  string
}

// Config holds broker connection settings.
type Config struct {
	Broker   string
	ClientID string
	Topic    string
}

// NewPublisher connects to the broker. The connection auto-reconnects; a
// publish during an outage is dropped with a warning rather than blocking
// the caller.
func NewPublisher(cfg Config) (*Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("mqtt: connection lost: %v", err)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	logger.Info("mqtt: connected to %s", cfg.Broker)

	return &Publisher{client: client, topic: cfg.Topic}, nil
}

// Publish sends the reading as JSON with QoS 1.
func (p *Publisher) Publish(r weather.Reading) {
	payload, err := json.Marshal(r)
	if err != nil {
		logger.Error("mqtt: marshal reading: %v", err)
		return
	}

	token := p.client.Publish(p.topic, 1, false, payload)
	if token.Wait() && token.Error() != nil {
		logger.Warn("mqtt: publish failed: %v", token.Error())
		return
	}
	logger.Debug("mqtt: published reading to %s", p.topic)
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
