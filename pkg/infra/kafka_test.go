package infra

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNewKafkaWriter(t *testing.T) {
	writer := NewKafkaWriter(KafkaConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "servers.events",
		WriteTimeout: 5 * time.Second,
	})
	defer writer.Close()

	assert.Equal(t, "servers.events", writer.Topic)
	assert.Equal(t, "localhost:9092", writer.Addr.String())
	assert.IsType(t, &kafka.Hash{}, writer.Balancer)
	assert.Equal(t, kafka.RequireOne, writer.RequiredAcks)
	assert.Equal(t, 5*time.Second, writer.WriteTimeout)
}
