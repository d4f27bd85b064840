package bareunpb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype of the protobuf wire format.
const CodecName = "proto"

// Codec encodes the messages of this package in protobuf binary format.
// Generated protobuf messages such as emptypb.Empty go through proto.
//
// The stubs force it per call, so the process-wide "proto" codec of grpc
// stays untouched.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("bareunpb: cannot marshal %T", v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		if err := m.unmarshalWire(data); err != nil {
			return fmt.Errorf("bareunpb: unmarshal %T: %w", v, err)
		}
		return nil
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("bareunpb: cannot unmarshal into %T", v)
}

func (Codec) Name() string {
	return CodecName
}
