package bareunpb

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// wireMessage is implemented by every message in this package. Field numbers
// follow the bareun-apis .proto files.
type wireMessage interface {
	appendWire(b []byte) []byte
	unmarshalWire(b []byte) error
}

// msgPtr lets the helpers below allocate and nil-check concrete messages.
type msgPtr[M any] interface {
	*M
	wireMessage
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// Repeated strings keep empty entries.
func appendStrings(b []byte, num protowire.Number, ss []string) []byte {
	for _, s := range ss {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

// int32 and enum values are sign-extended like protoc does.
func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

// appendMessage writes a length-delimited submessage. A nil message is absent.
func appendMessage[P msgPtr[M], M any](b []byte, num protowire.Number, m P) []byte {
	if m == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}

func appendMessages[P msgPtr[M], M any](b []byte, num protowire.Number, ms []P) []byte {
	for _, m := range ms {
		if m == nil {
			m = P(new(M))
		}
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, m.appendWire(nil))
	}
	return b
}

// appendMap writes one entry message per key, in key order so output is stable.
func appendMap[V any](b []byte, num protowire.Number, m map[string]V, value func([]byte, V) []byte) []byte {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		entry := appendString(nil, 1, k)
		entry = value(entry, m[k])
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

// field is one decoded key/value pair of a message.
type field struct {
	num protowire.Number
	typ protowire.Type
	u   uint64
	raw []byte
}

// Scalar accessors return the zero value when the wire type does not match,
// so a field whose type changed upstream is dropped rather than fatal.

func (f field) asString() string {
	if f.typ != protowire.BytesType {
		return ""
	}
	return string(f.raw)
}

func (f field) asInt32() int32 {
	if f.typ != protowire.VarintType {
		return 0
	}
	return int32(f.u)
}

func (f field) asBool() bool {
	return f.typ == protowire.VarintType && f.u != 0
}

func (f field) asFloat() float32 {
	if f.typ != protowire.Fixed32Type {
		return 0
	}
	return math.Float32frombits(uint32(f.u))
}

// eachField walks the top-level fields of b. Unknown fields are skipped.
func eachField(b []byte, fn func(field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.u, n = protowire.ConsumeVarint(b)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			f.u = uint64(v)
		case protowire.Fixed64Type:
			f.u, n = protowire.ConsumeFixed64(b)
		case protowire.BytesType:
			f.raw, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// consumeMessage decodes a submessage field. A non length-delimited field
// yields nil.
func consumeMessage[P msgPtr[M], M any](f field) (P, error) {
	if f.typ != protowire.BytesType {
		return nil, nil
	}
	m := P(new(M))
	if err := m.unmarshalWire(f.raw); err != nil {
		return nil, fmt.Errorf("field %d: %w", f.num, err)
	}
	return m, nil
}

// appendConsumed decodes a repeated submessage entry onto list.
func appendConsumed[P msgPtr[M], M any](list []P, f field) ([]P, error) {
	m, err := consumeMessage[P, M](f)
	if err != nil || m == nil {
		return list, err
	}
	return append(list, m), nil
}

// consumeEntry splits a map entry into its key and value fields.
func consumeEntry(f field) (key string, value field, err error) {
	if f.typ != protowire.BytesType {
		return "", field{}, fmt.Errorf("field %d: map entry has wire type %d", f.num, f.typ)
	}
	err = eachField(f.raw, func(e field) error {
		switch e.num {
		case 1:
			key = e.asString()
		case 2:
			value = e
		}
		return nil
	})
	return key, value, err
}
