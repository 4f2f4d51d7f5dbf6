// Package codec turns a decoded message stream into protobuf bytes or JSON.
package codec

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"yrp-lite/duel"
)

// Serializer renders a decoded stream. Both implementations satisfy
// replay.Serializer.
type Serializer interface {
	Serialize(r *duel.Replay) ([]byte, error)
}

// Binary writes the Replay message in protobuf wire format.
type Binary struct{}

func (Binary) Serialize(r *duel.Replay) ([]byte, error) {
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(ReplayToProto(r))
	if err != nil {
		return nil, fmt.Errorf("codec: marshal binary: %w", err)
	}
	return b, nil
}

// JSON writes the Replay message with snake_case names and numeric enums.
// Fields cleared by the query cache are omitted; everything else is emitted
// even when zero.
type JSON struct {
	Indent string
}

func (j JSON) Serialize(r *duel.Replay) ([]byte, error) {
	opts := protojson.MarshalOptions{
		EmitUnpopulated: true,
		UseEnumNumbers:  true,
		UseProtoNames:   true,
		Indent:          j.Indent,
	}
	b, err := opts.Marshal(ReplayToProto(r))
	if err != nil {
		return nil, fmt.Errorf("codec: marshal json: %w", err)
	}
	return b, nil
}

const (
	FormatJSON   = "json"
	FormatBinary = "binary"
)

// ForFormat picks the serializer for a --msgs-format value.
func ForFormat(format string) (Serializer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return JSON{}, nil
	case FormatBinary, "pb", "protobuf":
		return Binary{}, nil
	}
	return nil, fmt.Errorf("codec: unknown format %q", format)
}
