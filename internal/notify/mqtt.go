package notify

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/plant-maintenance/internal/models"
)

// TaskCreatedTopic is where created maintenance tasks are published for
// building-management integrations.
const TaskCreatedTopic = "maintenance/tasks/created"

// MQTTNotifier publishes task events to an MQTT broker.
type MQTTNotifier struct {
	client mqtt.Client
}

// NewMQTTNotifier connects to the broker named by MQTT_BROKER. Returns
// (nil, nil) when MQTT_BROKER is unset, meaning notifications are disabled.
func NewMQTTNotifier() (*MQTTNotifier, error) {
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		return nil, nil
	}

	clientID := os.Getenv("MQTT_CLIENT_ID")
	if clientID == "" {
		clientID = "plant-maintenance"
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)
	if user := os.Getenv("MQTT_USERNAME"); user != "" {
		opts.SetUsername(user)
		opts.SetPassword(os.Getenv("MQTT_PASSWORD"))
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timeout for %s", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	log.WithField("broker", broker).Info("Connected to MQTT broker")
	return &MQTTNotifier{client: client}, nil
}

// TaskCreated publishes a created task as JSON. Publish failures are logged
// and never propagated; task creation must not depend on the broker.
func (n *MQTTNotifier) TaskCreated(task models.MaintenanceTask) {
	payload, err := json.Marshal(task)
	if err != nil {
		log.WithError(err).Error("Failed to marshal task for MQTT publish")
		return
	}
	token := n.client.Publish(TaskCreatedTopic, 1, false, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			log.WithError(err).WithField("topic", TaskCreatedTopic).Error("MQTT publish failed")
		}
	}()
}

// Close disconnects from the broker.
func (n *MQTTNotifier) Close() {
	n.client.Disconnect(250)
}
