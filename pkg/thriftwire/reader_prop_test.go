package thriftwire

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestUvarintRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("uvarint round-trips", prop.ForAll(
		func(v uint64) bool {
			r := NewReader(binary.AppendUvarint(nil, v))
			got, err := r.ReadUvarint()
			return err == nil && got == v && r.Remaining() == 0
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestZigZagRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("zigzag round-trips", prop.ForAll(
		func(v int64) bool {
			r := NewReader(appendZigZag(nil, v))
			got, err := r.ReadZigZag64()
			return err == nil && got == v
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestDoubleRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("double round-trips", prop.ForAll(
		func(v float64) bool {
			buf := binary.LittleEndian.AppendUint64(nil, math.Float64bits(v))
			r := NewReader(buf)
			got, err := r.ReadDouble()
			return err == nil && math.Float64bits(got) == math.Float64bits(v)
		},
		gen.Float64(),
	))

	properties.TestingRun(t)
}

func TestBinaryRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("binary round-trips", prop.ForAll(
		func(data []byte) bool {
			r := NewReader(appendBinary(nil, data))
			got, err := r.ReadBinary()
			return err == nil && bytes.Equal(got, data) && r.Remaining() == 0
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestFieldHeaderRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Explicit-ID encoding covers the whole int16 range regardless of the
	// previous field ID.
	properties.Property("explicit field ID round-trips", prop.ForAll(
		func(id int16, lastID int16) bool {
			buf := appendZigZag([]byte{TypeI64}, int64(id))
			r := NewReader(buf)
			h, err := r.ReadFieldHeader(lastID)
			return err == nil && !h.Stop && h.ID == id && h.Type == TypeI64
		},
		gen.Int16(),
		gen.Int16(),
	))

	properties.TestingRun(t)
}
