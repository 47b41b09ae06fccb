package grpcserver

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/mem"
)

// ContentSubtype selects the JSON codec on a call: application/grpc+json.
const ContentSubtype = "json"

// jsonCodec lets the service exchange plain Go structs, so the catalog
// records travel with the same field names as the HTTP API.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) (mem.BufferSlice, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mem.BufferSlice{mem.SliceBuffer(b)}, nil
}

func (jsonCodec) Unmarshal(data mem.BufferSlice, v any) error {
	return json.Unmarshal(data.Materialize(), v)
}

func (jsonCodec) Name() string { return ContentSubtype }

func init() {
	encoding.RegisterCodecV2(jsonCodec{})
}
