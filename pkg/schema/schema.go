package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

// Serde encodes and decodes one versioned blob schema.
type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type serde struct {
	avroSchema avro.Schema
}

func (s serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}

func newSerde(schemaText, op string) (Serde, error) {
	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}
	return serde{avroSchema}, nil
}
