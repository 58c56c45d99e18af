package tagvalue

import "errors"

var (
	// ErrEmptyMessage indicates that no field could be decoded from the input.
	ErrEmptyMessage = errors.New("no fields decoded from message")

	// ErrChecksumMissing indicates that the message carries no CheckSum (tag 10) trailer field.
	ErrChecksumMissing = errors.New("checksum field missing")

	// ErrChecksumMismatch indicates that the CheckSum trailer field does not match
	// the additive checksum computed over the bytes preceding it.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

var (
	// ErrWriterBuilt indicates that a setter or Build was called on a writer that
	// already built its message. Call Reset to start accumulating a new message.
	ErrWriterBuilt = errors.New("writer already built, call Reset before reuse")

	// ErrMsgTypeNotSet indicates that Build was called in strict mode without an
	// explicitly set message type.
	ErrMsgTypeNotSet = errors.New("message type not set")

	// ErrCompIDNotSet indicates that Build was called in strict mode without both
	// sender and target company identifiers set.
	ErrCompIDNotSet = errors.New("sender or target comp id not set")

	// ErrDuplicateTag indicates that Build was called in strict mode with a tag
	// set more than once, or with a body field using a synthesized header or
	// trailer tag.
	ErrDuplicateTag = errors.New("duplicate tag")
)
