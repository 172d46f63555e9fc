package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-redis/redis/v8"
)

// Publisher hands an alert to the external delivery subsystem, which owns
// sms, whatsapp and push routing.
type Publisher interface {
	Publish(ctx context.Context, alert *Alert) error
}

type StreamPublisher struct {
	client *redis.Client
	stream string
}

func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	if stream == "" {
		stream = "foodguard:alerts"
	}
	return &StreamPublisher{client: client, stream: stream}
}

func (p *StreamPublisher) Publish(ctx context.Context, alert *Alert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	_, err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"type":      alert.Type,
			"user_id":   alert.UserID,
			"severity":  alert.SeverityLabel,
			"data":      string(data),
			"timestamp": fmt.Sprintf("%d", alert.CreatedAt.Unix()),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish alert to stream %s: %w", p.stream, err)
	}
	return nil
}

type (
	MQTTConfig struct {
		Broker   string
		ClientID string
		Username string
		Password string
		Topic    string
	}

	// mqttClient is the part of mqtt.Client the publisher needs.
	mqttClient interface {
		Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	}

	MQTTPublisher struct {
		client  mqttClient
		topic   string
		qos     byte
		timeout time.Duration
	}
)

// NewMQTTPublisher connects to the broker and publishes to cfg.Topic/<user id>.
func NewMQTTPublisher(cfg MQTTConfig) (*MQTTPublisher, mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return newMQTTPublisher(client, cfg.Topic), client, nil
}

func newMQTTPublisher(client mqttClient, topic string) *MQTTPublisher {
	if topic == "" {
		topic = "foodguard/alerts"
	}
	return &MQTTPublisher{client: client, topic: topic, qos: 1, timeout: 5 * time.Second}
}

func (p *MQTTPublisher) Publish(_ context.Context, alert *Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("%s/%s", p.topic, alert.UserID)
	token := p.client.Publish(topic, p.qos, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("timed out publishing to topic %s", topic)
	}
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, token.Error())
	}
	return nil
}
