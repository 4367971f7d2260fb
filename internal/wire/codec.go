// Package wire registers the JSON gRPC codec used by the practice service.
package wire

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the gRPC content-subtype: application/grpc+json.
const Name = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (Codec) Name() string                       { return Name }
