package kafka

import (
	"context"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"crm_records/internal/config"
	"crm_records/internal/infrastructure/encoding/avro"
	"crm_records/internal/jobs"
	"crm_records/pkg/logger"
)

// AuditConsumer reads record events from the topic and appends one
// human-readable line per event to its sink. It is the durable audit
// trail for mutations.
type AuditConsumer struct {
	reader *kafkago.Reader
	codec  *avro.Codec
	sink   jobs.Sink
	log    logger.Logger
}

func NewAuditConsumer(cfg config.KafkaConfig, sink jobs.Sink, log logger.Logger) (*AuditConsumer, error) {
	codec, err := avro.NewRecordEventCodec()
	if err != nil {
		return nil, err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.EventTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &AuditConsumer{
		reader: reader,
		codec:  codec,
		sink:   sink,
		log:    log,
	}, nil
}

// Start blocks, reading events until ctx is cancelled. A malformed
// message is logged and skipped so one bad event cannot stall the
// audit trail.
func (c *AuditConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := c.codec.Decode(msg.Value)
		if err != nil {
			c.log.Error("skip malformed event", logger.Error(err))
			continue
		}

		line := fmt.Sprintf("%s - %s %s created: %s",
			event["occurred_at"], event["entity"], event["id"], event["summary"])
		if err := c.sink.Append(line); err != nil {
			c.log.Error("append audit line", logger.Error(err))
		}
	}
}

func (c *AuditConsumer) Close() {
	_ = c.reader.Close()
}
