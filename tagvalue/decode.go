package tagvalue

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/arloliu/go-fix/fix"
	"github.com/arloliu/go-fix/internal/util"
	"github.com/arloliu/go-fix/logger"
)

// Diagnostic records a segment that was dropped during a permissive parse.
//
// The reader never aborts on a malformed tag prefix; it drops the segment and
// keeps going. Diagnostics preserve what was dropped so callers can choose
// strict or lenient handling without losing information.
type Diagnostic struct {
	Err     error
	Segment string
	Offset  int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("offset %d: dropped segment %q: %v", d.Offset, d.Segment, d.Err)
}

// Reader decodes flat tag-value FIX messages.
//
// Each call to Parse processes one complete message's bytes and overwrites
// the reader's field list; no state carries over between calls. The zero
// value is not usable, create readers with NewReader.
type Reader struct {
	log    logger.Logger
	raw    []byte
	fields []fix.Field
	diags  []Diagnostic
}

// NewReader creates a message reader.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{
		log: logger.GetLogger(),
	}

	for _, opt := range opts {
		opt.applyReader(r)
	}

	return r
}

// Parse decodes one complete message from data.
//
// The input must contain exactly the bytes of one message, from the "8="
// field through the trailer's delimiter inclusive. Segments are split on the
// SOH delimiter; a segment whose tag prefix is not a valid integer is dropped
// and recorded in Diagnostics, and parsing continues. The whole prefix must
// be numeric: a partially-numeric prefix such as "12abc" is dropped, never
// truncated to its leading digits.
//
// Parse returns ErrEmptyMessage when no field was decoded, and
// ErrChecksumMissing or ErrChecksumMismatch when the trailer is absent or
// does not validate. The decoded fields remain accessible after a checksum
// failure but must be treated as untrusted.
//
// The reader keeps a reference to data until the next Parse call; the caller
// must not mutate the buffer while querying fields.
func (r *Reader) Parse(data []byte) error {
	r.fields = r.fields[:0]
	r.diags = r.diags[:0]
	r.raw = data

	pos := 0
	for pos < len(data) {
		eq := bytes.IndexByte(data[pos:], '=')
		if eq < 0 {
			break
		}
		eq += pos

		end := len(data)
		if soh := bytes.IndexByte(data[eq:], SOH); soh >= 0 {
			end = eq + soh
		}

		tag, err := strconv.Atoi(util.BytesToString(data[pos:eq]))
		if err == nil {
			r.fields = append(r.fields, fix.NewField(tag, util.BytesToString(data[eq+1:end])))
		} else {
			diag := Diagnostic{
				Offset:  pos,
				Segment: string(data[pos:end]),
				Err:     err,
			}
			r.diags = append(r.diags, diag)
			r.log.Debug("dropped malformed segment", "offset", diag.Offset, "segment", diag.Segment)
		}

		pos = end + 1
	}

	if len(r.fields) == 0 {
		return ErrEmptyMessage
	}

	return r.validateChecksum()
}

// validateChecksum checks the CheckSum trailer field against the additive
// checksum of every byte preceding the last occurrence of the "10=" key in
// the raw buffer. A body value containing the text "10=" would shift that
// window; well-formed messages end with the trailer, so the last occurrence
// is the trailer's.
func (r *Reader) validateChecksum() error {
	field, ok := r.Find(fix.TagCheckSum)
	if !ok {
		return ErrChecksumMissing
	}

	pos := bytes.LastIndex(r.raw, util.StringToBytes(checksumKey))
	if pos < 0 {
		return ErrChecksumMissing
	}

	calculated := checksum(r.raw[:pos])
	expected := field.Int()
	if calculated != expected {
		return fmt.Errorf("%w: calculated %03d, message carries %q", ErrChecksumMismatch, calculated, field.Value)
	}

	return nil
}

// Find returns the first field with the given tag.
//
// This is the only lookup that distinguishes a missing field from a present
// field holding a zero or empty value. When a tag occurs more than once, the
// first occurrence wins; the flat field model does not represent repeating
// groups.
func (r *Reader) Find(tag fix.Tag) (fix.Field, bool) {
	for _, field := range r.fields {
		if field.Tag == tag {
			return field, true
		}
	}

	return fix.Field{}, false
}

// Get returns the raw value of the first field with the given tag, or an
// empty string when the tag is absent.
func (r *Reader) Get(tag fix.Tag) string {
	field, _ := r.Find(tag)
	return field.Value
}

// GetInt returns the integer value of the first field with the given tag.
// It returns 0 when the tag is absent or its value is not a valid integer.
func (r *Reader) GetInt(tag fix.Tag) int {
	field, _ := r.Find(tag)
	return field.Int()
}

// GetFloat returns the floating-point value of the first field with the given tag.
// It returns 0.0 when the tag is absent or its value is not a valid number.
func (r *Reader) GetFloat(tag fix.Tag) float64 {
	field, _ := r.Find(tag)
	return field.Float()
}

// GetDecimal returns the arbitrary-precision decimal value of the first field
// with the given tag. It returns decimal zero when the tag is absent or its
// value is not a valid number.
func (r *Reader) GetDecimal(tag fix.Tag) decimal.Decimal {
	field, _ := r.Find(tag)
	return field.Decimal()
}

// GetChar returns the single-character value of the first field with the
// given tag. It returns the NUL byte when the tag is absent or its value is
// empty.
func (r *Reader) GetChar(tag fix.Tag) byte {
	field, _ := r.Find(tag)
	return field.Char()
}

// MsgType returns the message type character (tag 35), or the NUL byte when
// the field is absent.
func (r *Reader) MsgType() fix.MsgType {
	return r.GetChar(fix.TagMsgType)
}

// Fields returns the decoded fields in stream order.
// The returned slice is owned by the reader and is valid until the next Parse call.
func (r *Reader) Fields() []fix.Field {
	return r.fields
}

// Diagnostics returns the segments dropped by the last Parse call, in stream order.
// It returns nil when every segment was well formed.
func (r *Reader) Diagnostics() []Diagnostic {
	if len(r.diags) == 0 {
		return nil
	}

	return r.diags
}

// String renders the decoded fields as "tag=value|" pairs, with the SOH
// delimiter replaced by '|' for display.
func (r *Reader) String() string {
	var sb strings.Builder
	sb.Grow(len(r.raw))

	for _, field := range r.fields {
		sb.WriteString(field.String())
		sb.WriteByte('|')
	}

	return sb.String()
}
