// Package bareunpb holds the message shapes and service plumbing of the Bareun
// language, revision and custom dictionary services.
//
// Messages are plain Go structs with hand-written protobuf binary encoding
// (see wire.go), so the SDK builds without a protoc toolchain while speaking
// the same wire format as the Bareun servers. Field numbers and enum values
// follow the service schema. The JSON tags only shape the JSON printed by
// pkg/bareun.
package bareunpb
