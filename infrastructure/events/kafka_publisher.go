package events

import (
	"context"
	"fmt"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/config"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher grava os eventos do ciclo de vida dos planos num único
// tópico, particionado pelo ID do plano.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaPublisher(cfg config.Kafka) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
		topic: cfg.Topic,
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.PlanEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal plan event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.PlanID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
		Time: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher só registra o evento em log. Usado quando o Kafka não está configurado.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event domain.PlanEvent) error {
	log.ForContext(ctx).
		WithField("plan_id", event.PlanID).
		Debugf("Evento %s descartado (kafka desabilitado)", event.Type)
	return nil
}

func (NoopPublisher) Close() error { return nil }
