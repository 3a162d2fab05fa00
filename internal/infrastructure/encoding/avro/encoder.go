package avro

import (
	"encoding/json"
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// Codec translates record events between JSON and Avro binary.
type Codec struct {
	codec *goavro.Codec
}

// NewRecordEventCodec builds a codec for the RecordEventSchema.
func NewRecordEventCodec() (*Codec, error) {
	codec, err := goavro.NewCodec(RecordEventSchema)
	if err != nil {
		return nil, fmt.Errorf("create avro codec: %w", err)
	}
	return &Codec{codec: codec}, nil
}

// EncodeJSON converts a JSON event object to Avro binary. The input
// must be a flat JSON object; unknown keys are ignored.
func (c *Codec) EncodeJSON(jsonData []byte) ([]byte, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("unmarshal event json: %w", err)
	}

	binary, err := c.codec.BinaryFromNative(nil, toRecordEventNative(data))
	if err != nil {
		return nil, fmt.Errorf("encode avro binary: %w", err)
	}
	return binary, nil
}

// Decode converts Avro binary back into a flat string map, dropping
// null fields.
func (c *Codec) Decode(binary []byte) (map[string]string, error) {
	native, _, err := c.codec.NativeFromBinary(binary)
	if err != nil {
		return nil, fmt.Errorf("decode avro binary: %w", err)
	}

	record, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("avro payload is not a record")
	}

	out := make(map[string]string)
	for key, value := range record {
		if s, ok := unionString(value); ok {
			out[key] = s
		}
	}
	return out, nil
}

// toRecordEventNative wraps each field into the goavro union form,
// map[string]interface{}{"string": value}, with nil for absent fields.
func toRecordEventNative(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, key := range []string{"entity", "id", "summary", "occurred_at"} {
		if v, ok := data[key]; ok && v != nil {
			out[key] = map[string]interface{}{"string": fmt.Sprintf("%v", v)}
		} else {
			out[key] = nil
		}
	}
	return out
}

func unionString(value interface{}) (string, bool) {
	union, ok := value.(map[string]interface{})
	if !ok {
		return "", false
	}
	s, ok := union["string"].(string)
	return s, ok
}
