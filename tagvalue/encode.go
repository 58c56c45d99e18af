package tagvalue

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arloliu/go-fix/fix"
	"github.com/arloliu/go-fix/internal/util"
	"github.com/arloliu/go-fix/logger"
)

const (
	// DefaultBeginString is the protocol version written when none is configured.
	DefaultBeginString = "FIX.4.4"

	// defaultMsgType is the placeholder message type used when the caller never
	// called SetMsgType. Build in lenient mode happily emits it; strict mode
	// rejects the message instead.
	defaultMsgType = fix.MsgTypeHeartbeat

	// sendingTimeLayout is the UTC timestamp layout of SendingTime (tag 52)
	// and TransactTime (tag 60): YYYYMMDD-HH:MM:SS.mmm.
	sendingTimeLayout = "20060102-15:04:05.000"
)

// Writer assembles flat tag-value FIX messages.
//
// Body fields are accumulated through the chained setters; Build synthesizes
// the standard header fields (MsgType, SenderCompID, TargetCompID, MsgSeqNum,
// SendingTime), computes BodyLength, appends the checksum trailer, and
// returns the canonical byte sequence.
//
// The writer is an explicit two-state machine: accumulating and built. Build
// moves it to the built state; every setter and Build call in that state
// fails with ErrWriterBuilt until Reset is called. Message-level settings
// (begin string, message type, sender, target, sequence number) persist
// across Reset; accumulated body fields do not.
//
// By default the writer performs no validation: a message with no message
// type set (placeholder '0'), duplicate tags, or semantically inconsistent
// fields builds without error, matching how permissive FIX tooling behaves.
// WithStrictBuild opts into validation at Build time.
//
// A Writer is a single-owner object and is not safe for concurrent use.
type Writer struct {
	now         func() time.Time
	log         logger.Logger
	err         error
	beginString string
	sender      string
	target      string
	body        []byte
	bodyTags    []fix.Tag
	bodyBuf     []byte
	msgBuf      []byte
	seqNum      int
	msgType     fix.MsgType
	msgTypeSet  bool
	strict      bool
	built       bool
}

// NewWriter creates a message writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		beginString: DefaultBeginString,
		msgType:     defaultMsgType,
		seqNum:      1,
		now:         time.Now,
		log:         logger.GetLogger(),
	}

	for _, opt := range opts {
		opt.applyWriter(w)
	}

	return w
}

// SetField appends a body field with a raw textual value.
func (w *Writer) SetField(tag fix.Tag, value string) *Writer {
	if !w.accumulating() {
		return w
	}

	w.bodyTags = append(w.bodyTags, tag)
	w.body = appendField(w.body, tag, value)

	return w
}

// SetInt appends a body field with an integer value.
func (w *Writer) SetInt(tag fix.Tag, value int) *Writer {
	if !w.accumulating() {
		return w
	}

	w.bodyTags = append(w.bodyTags, tag)
	w.body = appendFieldInt(w.body, tag, value)

	return w
}

// SetChar appends a body field with a single-character value.
func (w *Writer) SetChar(tag fix.Tag, value byte) *Writer {
	if !w.accumulating() {
		return w
	}

	w.bodyTags = append(w.bodyTags, tag)
	w.body = appendFieldChar(w.body, tag, value)

	return w
}

// SetFloat appends a body field with a floating-point value formatted with a
// fixed number of decimal places.
func (w *Writer) SetFloat(tag fix.Tag, value float64, precision int) *Writer {
	return w.SetField(tag, strconv.FormatFloat(value, 'f', precision, 64))
}

// SetDecimal appends a body field with an arbitrary-precision decimal value,
// formatted with the scale the value holds so trailing zeros survive
// (a value parsed from "425.50" is written back as "425.50"). Price fields
// should prefer this over SetFloat when the caller tracks prices as decimals.
func (w *Writer) SetDecimal(tag fix.Tag, value decimal.Decimal) *Writer {
	if exp := value.Exponent(); exp < 0 {
		return w.SetField(tag, value.StringFixed(-exp))
	}

	return w.SetField(tag, value.String())
}

// SetTimestamp appends a body field holding the current UTC time in the
// YYYYMMDD-HH:MM:SS.mmm layout, read from the writer's clock.
func (w *Writer) SetTimestamp(tag fix.Tag) *Writer {
	return w.SetField(tag, w.now().UTC().Format(sendingTimeLayout))
}

// SetMsgType sets the message type (tag 35) synthesized into the header
// section of the body on Build.
func (w *Writer) SetMsgType(msgType fix.MsgType) *Writer {
	if !w.accumulating() {
		return w
	}

	w.msgType = msgType
	w.msgTypeSet = true

	return w
}

// SetSender sets the sender company identifier (tag 49).
func (w *Writer) SetSender(sender string) *Writer {
	if !w.accumulating() {
		return w
	}

	w.sender = sender

	return w
}

// SetTarget sets the target company identifier (tag 56).
func (w *Writer) SetTarget(target string) *Writer {
	if !w.accumulating() {
		return w
	}

	w.target = target

	return w
}

// SetSeqNum sets the message sequence number (tag 34).
func (w *Writer) SetSeqNum(seqNum int) *Writer {
	if !w.accumulating() {
		return w
	}

	w.seqNum = seqNum

	return w
}

// Err returns the first error recorded by a setter since the last Reset,
// usually ErrWriterBuilt from a setter called in the built state.
func (w *Writer) Err() error {
	return w.err
}

// Build assembles and returns the canonical byte sequence of the message:
//
//  1. The body is composed in fixed order: MsgType, SenderCompID,
//     TargetCompID, MsgSeqNum, SendingTime (current UTC time from the
//     writer's clock), then the accumulated body fields in set order.
//  2. The header is BeginString followed by BodyLength, the exact byte
//     length of the composed body.
//  3. The checksum of the header and body bytes, modulo 256 and zero-padded
//     to 3 digits, is appended as the CheckSum trailer field.
//
// Build transitions the writer to the built state. Call Reset to start
// accumulating the next message.
func (w *Writer) Build() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	if w.built {
		return nil, ErrWriterBuilt
	}

	if w.strict {
		if err := w.validate(); err != nil {
			return nil, err
		}
	}

	body := w.bodyBuf[:0]
	body = appendFieldChar(body, fix.TagMsgType, w.msgType)
	body = appendField(body, fix.TagSenderCompID, w.sender)
	body = appendField(body, fix.TagTargetCompID, w.target)
	body = appendFieldInt(body, fix.TagMsgSeqNum, w.seqNum)
	body = appendField(body, fix.TagSendingTime, w.now().UTC().Format(sendingTimeLayout))
	body = append(body, w.body...)

	msg := w.msgBuf[:0]
	msg = appendField(msg, fix.TagBeginString, w.beginString)
	msg = appendFieldInt(msg, fix.TagBodyLength, len(body))
	msg = append(msg, body...)

	sum := checksum(msg)
	msg = append(msg, checksumKey...)
	msg = appendChecksum(msg, sum)
	msg = append(msg, SOH)

	w.bodyBuf = body
	w.msgBuf = msg
	w.built = true

	w.log.Debug("message built",
		"msgType", fix.MsgTypeName(w.msgType),
		"bodyLength", len(body),
		"checksum", sum,
	)

	return util.CloneSlice(msg, 0), nil
}

// Reset returns the writer to the accumulating state, clearing the body
// fields and any recorded setter error. Message-level settings persist.
func (w *Writer) Reset() *Writer {
	w.body = w.body[:0]
	w.bodyTags = w.bodyTags[:0]
	w.err = nil
	w.built = false

	return w
}

func (w *Writer) accumulating() bool {
	if w.built {
		if w.err == nil {
			w.err = ErrWriterBuilt
		}

		return false
	}

	return true
}

// validate enforces the strict build checks: message type and both comp ids
// must be set, and no tag may occur twice across the synthesized header
// fields and the accumulated body.
func (w *Writer) validate() error {
	if !w.msgTypeSet {
		return ErrMsgTypeNotSet
	}

	if w.sender == "" || w.target == "" {
		return ErrCompIDNotSet
	}

	seen := map[fix.Tag]struct{}{
		fix.TagBeginString:  {},
		fix.TagBodyLength:   {},
		fix.TagCheckSum:     {},
		fix.TagMsgType:      {},
		fix.TagSenderCompID: {},
		fix.TagTargetCompID: {},
		fix.TagMsgSeqNum:    {},
		fix.TagSendingTime:  {},
	}

	for _, tag := range w.bodyTags {
		if _, dup := seen[tag]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateTag, tag)
		}
		seen[tag] = struct{}{}
	}

	return nil
}
