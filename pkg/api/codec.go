package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec marshals plain Go structs as JSON. It replaces Connect's protobuf
// JSON codec under the same "json" name.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
