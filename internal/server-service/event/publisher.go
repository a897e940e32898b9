package event

import (
	"VCS_Server_Manager/internal/server-service/model"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TypeServerCreated = "server.created"
	TypeServerUpdated = "server.updated"
	TypeServerDeleted = "server.deleted"
	TypeServerPinged  = "server.pinged"
)

type ServerEvent struct {
	Type      string       `json:"type"`
	Server    ServerRecord `json:"server"`
	Timestamp time.Time    `json:"timestamp"`
}

type ServerRecord struct {
	ID         uint   `json:"id"`
	IpAddress  string `json:"ip_address"`
	Name       string `json:"name"`
	MemorySize string `json:"memory_size"`
	OsType     string `json:"os_type"`
	Status     string `json:"status"`
}

func NewServerEvent(eventType string, server model.Server) ServerEvent {
	return ServerEvent{
		Type: eventType,
		Server: ServerRecord{
			ID:         server.ID,
			IpAddress:  server.IpAddress,
			Name:       server.Name,
			MemorySize: server.MemorySize,
			OsType:     server.OsType,
			Status:     server.Status,
		},
		Timestamp: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, events ...ServerEvent) error
}

// MessageWriter is the subset of *kafka.Writer used by the publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaPublisher struct {
	writer MessageWriter
}

func (k *kafkaPublisher) Publish(ctx context.Context, events ...ServerEvent) error {
	if len(events) == 0 {
		return nil
	}
	messages := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("KafkaPublisher.Publish: %w", err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(strconv.FormatUint(uint64(e.Server.ID), 10)),
			Value: b,
			Time:  e.Timestamp,
		})
	}
	if err := k.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("KafkaPublisher.Publish: %w", err)
	}
	return nil
}

func NewKafkaPublisher(writer MessageWriter) Publisher {
	return &kafkaPublisher{
		writer: writer,
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...ServerEvent) error {
	return nil
}

// NewNoopPublisher is used when no brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}
