// Package mqtt implements the MQTT transport for usher.
//
// MQTT is well-suited for IoT devices and lightweight pub/sub messaging.
// This transport subscribes to a configurable topic and publishes each
// dispatch result back to the sender's reply topic.
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/usherd/usher/internal/message"
	"github.com/usherd/usher/internal/transport"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	dispatchQoS    = 1
)

// Transport implements transport.Transport over MQTT.
type Transport struct {
	broker string
	topic  string
	client paho.Client
}

// New creates a new MQTT transport. Incoming utterances are expected
// on topic; results go to each message's reply_to topic, falling back
// to "<topic>/result".
func New(broker, topic string) *Transport {
	return &Transport{broker: broker, topic: topic}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "mqtt" }

// Listen connects to the MQTT broker and subscribes to the configured topic.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	opts := paho.NewClientOptions().
		AddBroker(t.broker).
		SetClientID("usher-" + uuid.NewString()[:8]).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(c paho.Client) {
			// (Re)subscribe on every connect so reconnects keep working.
			tok := c.Subscribe(t.topic, dispatchQoS, func(_ paho.Client, m paho.Message) {
				t.onMessage(ctx, m, handler)
			})
			tok.Wait()
			if err := tok.Error(); err != nil {
				slog.Error("mqtt subscribe failed", "topic", t.topic, "error", err)
				return
			}
			slog.Info("mqtt transport listening", "broker", t.broker, "topic", t.topic)
		}).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			slog.Warn("mqtt connection lost", "error", err)
		})

	t.client = paho.NewClient(opts)
	tok := t.client.Connect()
	tok.Wait()
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqtt connect %s: %w", t.broker, err)
	}

	<-ctx.Done()
	t.client.Disconnect(uint(publishTimeout / time.Millisecond))
	return nil
}

// onMessage handles a single utterance publication.
func (t *Transport) onMessage(ctx context.Context, m paho.Message, handler transport.Handler) {
	var msg message.Message
	if err := json.Unmarshal(m.Payload(), &msg); err != nil {
		// Not JSON; take the payload as the bare utterance text.
		msg = message.Message{Text: string(m.Payload())}
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Source == "" {
		msg.Source = "mqtt:" + m.Topic()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	result, err := handler(ctx, &msg)
	if err != nil {
		result = &message.DispatchResult{MessageID: msg.ID, Error: err.Error()}
	}

	replyTopic := msg.ReplyTo
	if replyTopic == "" {
		replyTopic = t.topic + "/result"
	}

	payload, err := json.Marshal(result)
	if err != nil {
		slog.Error("mqtt result marshal failed", "message_id", msg.ID, "error", err)
		return
	}

	tok := t.client.Publish(replyTopic, dispatchQoS, false, payload)
	if !tok.WaitTimeout(publishTimeout) || tok.Error() != nil {
		slog.Error("mqtt result publish failed", "topic", replyTopic, "error", tok.Error())
		return
	}
	slog.Debug("mqtt result published", "topic", replyTopic, "message_id", msg.ID)
}

// Close disconnects from the MQTT broker.
func (t *Transport) Close() error {
	if t.client != nil && t.client.IsConnected() {
		t.client.Disconnect(uint(publishTimeout / time.Millisecond))
	}
	return nil
}
