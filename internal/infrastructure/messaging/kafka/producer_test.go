package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm_records/internal/infrastructure/encoding/avro"
	"crm_records/pkg/logger"
)

// These tests cover the producer's validation and encoding path only.
// The network path needs a live broker and belongs to integration
// tests.

func newTestProducer(t *testing.T) *EventProducer {
	t.Helper()
	codec, err := avro.NewRecordEventCodec()
	require.NoError(t, err)
	return &EventProducer{
		codec: codec,
		topic: "test-topic",
		log:   logger.NewNop(),
	}
}

func TestEventProducer_PublishEvent_EmptyPayload(t *testing.T) {
	producer := newTestProducer(t)

	err := producer.PublishEvent(context.Background(), []byte{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payload is empty")
}

func TestEventProducer_PublishEvent_MalformedJSON(t *testing.T) {
	producer := newTestProducer(t)

	err := producer.PublishEvent(context.Background(), []byte(`not json`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "encode event")
}
