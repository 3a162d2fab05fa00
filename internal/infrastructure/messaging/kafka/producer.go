package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"crm_records/internal/config"
	"crm_records/internal/infrastructure/encoding/avro"
	"crm_records/pkg/logger"
)

// EventProducer publishes record mutation events, Avro-encoded, to the
// configured topic.
type EventProducer struct {
	client *kgo.Client
	codec  *avro.Codec
	topic  string
	log    logger.Logger
}

func NewEventProducer(cfg config.KafkaConfig, log logger.Logger) (*EventProducer, error) {
	codec, err := avro.NewRecordEventCodec()
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.EventTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.EventTopic),
	)

	return &EventProducer{
		client: client,
		codec:  codec,
		topic:  cfg.EventTopic,
		log:    log,
	}, nil
}

// PublishEvent encodes the JSON event payload to Avro and produces it
// synchronously.
func (p *EventProducer) PublishEvent(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}

	binary, err := p.codec.EncodeJSON(payload)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(uuid.NewString()),
		Value:     binary,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *EventProducer) Close(ctx context.Context) error {
	p.log.Info("closing kafka producer", logger.String("topic", p.topic))
	p.client.Close()
	return nil
}
