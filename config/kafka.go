package config

import (
	"fmt"
	"net"
	"strconv"

	"kmteams/utils"

	"github.com/segmentio/kafka-go"
)

func CreateTopic(broker string, topic string) error {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 30 days retention
			{
				ConfigName:  "retention.ms",
				ConfigValue: "2592000000",
			},
		},
	}

	return controllerConn.CreateTopics(topicConfig)
}

// GetWriter returns a writer for generation events. The topic is created if
// it does not exist yet.
func GetWriter(cfg *Config) (*kafka.Writer, error) {
	if cfg.KafkaBroker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	if err := CreateTopic(cfg.KafkaBroker, cfg.KafkaTopic); err != nil {
		return nil, err
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBroker),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}, nil
}
