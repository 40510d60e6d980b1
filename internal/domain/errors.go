package domain

import "errors"

var (
	// ErrTransport is returned when the websocket or RPC connection fails
	ErrTransport = errors.New("transport error")

	// ErrProtocolParse is returned when a subscription envelope is malformed or misses a required field
	ErrProtocolParse = errors.New("protocol parse error")

	// ErrMissingAttribute is returned when an expected event attribute is absent
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrQuery is returned when a chain or HTTP query fails or returns an unparseable shape
	ErrQuery = errors.New("query error")

	// ErrPersistence is returned when a storage operation fails
	ErrPersistence = errors.New("persistence error")

	// ErrDecode is returned when binary or hash decoding fails
	ErrDecode = errors.New("decode error")

	// ErrUnknownAction is returned when a wire action string is not part of a protocol
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownProtocol is returned when a protocol name is not supported
	ErrUnknownProtocol = errors.New("unknown protocol")
)
