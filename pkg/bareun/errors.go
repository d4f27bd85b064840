package bareun

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NoServerMessage replaces an empty status message from the server.
const NoServerMessage = "서버에서 추가 메시지를 제공하지 않았습니다."

// ErrorKind classifies every failure the SDK reports.
type ErrorKind int

const (
	KindMissingAPIKey ErrorKind = iota + 1
	KindConnectionFailed
	KindPermissionDenied
	KindServerUnavailable
	KindInvalidArgument
	KindGrpcError
	KindSerializationError
	KindTransportError
	KindInvalidMetadataValue
	KindInvalidCustomDictName
)

var kindNames = map[ErrorKind]string{
	KindMissingAPIKey:         "MissingAPIKey",
	KindConnectionFailed:      "ConnectionFailed",
	KindPermissionDenied:      "PermissionDenied",
	KindServerUnavailable:     "ServerUnavailable",
	KindInvalidArgument:       "InvalidArgument",
	KindGrpcError:             "GrpcError",
	KindSerializationError:    "SerializationError",
	KindTransportError:        "TransportError",
	KindInvalidMetadataValue:  "InvalidMetadataValue",
	KindInvalidCustomDictName: "InvalidCustomDictName",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is; an *Error matches the sentinel of its Kind.
var (
	ErrMissingAPIKey         = &Error{Kind: KindMissingAPIKey}
	ErrConnectionFailed      = &Error{Kind: KindConnectionFailed}
	ErrPermissionDenied      = &Error{Kind: KindPermissionDenied}
	ErrServerUnavailable     = &Error{Kind: KindServerUnavailable}
	ErrInvalidArgument       = &Error{Kind: KindInvalidArgument}
	ErrGrpc                  = &Error{Kind: KindGrpcError}
	ErrSerialization         = &Error{Kind: KindSerializationError}
	ErrTransport             = &Error{Kind: KindTransportError}
	ErrInvalidMetadataValue  = &Error{Kind: KindInvalidMetadataValue}
	ErrInvalidCustomDictName = &Error{Kind: KindInvalidCustomDictName}
)

// Error is the single error type returned by the SDK.
type Error struct {
	Kind    ErrorKind
	Host    string
	Port    int
	APIKey  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingAPIKey:
		return "API key must be provided"
	case KindConnectionFailed:
		return fmt.Sprintf("Failed to connect to server at %s:%d: %s", e.Host, e.Port, e.cause())
	case KindPermissionDenied:
		return fmt.Sprintf("Permission denied. Check your API key: %s\nServer message: %s", e.APIKey, e.Message)
	case KindServerUnavailable:
		return fmt.Sprintf("Server unavailable at %s:%d\nServer message: %s", e.Host, e.Port, e.Message)
	case KindInvalidArgument:
		return "Invalid argument: " + e.Message
	case KindGrpcError:
		return "gRPC error: " + e.Message
	case KindSerializationError:
		return "Serialization error: " + e.cause()
	case KindTransportError:
		return "Transport error: " + e.cause()
	case KindInvalidMetadataValue:
		return "Invalid metadata value"
	case KindInvalidCustomDictName:
		return "Invalid custom dictionary name: " + e.Message
	}
	return e.Kind.String() + ": " + e.cause()
}

func (e *Error) cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Code returns the gRPC status code carried by the cause, or codes.Unknown.
func (e *Error) Code() codes.Code {
	if e.Err == nil {
		return codes.Unknown
	}
	if s, ok := status.FromError(e.Err); ok {
		return s.Code()
	}
	return codes.Unknown
}

// statusMapper turns gRPC failures into *Error values for one endpoint.
type statusMapper struct {
	host   string
	port   int
	apiKey string
}

// mapStatus is total: every non-nil err yields an *Error, nil stays nil.
func (m statusMapper) mapStatus(err error) error {
	if err == nil {
		return nil
	}
	var already *Error
	if errors.As(err, &already) {
		return err
	}
	s, ok := status.FromError(err)
	if !ok {
		return &Error{Kind: KindGrpcError, Message: err.Error(), Err: err}
	}
	msg := s.Message()
	if msg == "" {
		msg = NoServerMessage
	}
	switch s.Code() {
	case codes.PermissionDenied:
		return &Error{Kind: KindPermissionDenied, APIKey: m.apiKey, Message: msg, Err: err}
	case codes.Unavailable:
		return &Error{Kind: KindServerUnavailable, Host: m.host, Port: m.port, Message: msg, Err: err}
	case codes.InvalidArgument:
		return &Error{Kind: KindInvalidArgument, Message: msg, Err: err}
	default:
		return &Error{Kind: KindGrpcError, Message: msg, Err: err}
	}
}

func invalidArgument(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}
