package tagvalue

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-fix/fix"
)

// fixedClock pins SendingTime to 20250120-10:30:00.123 for byte-exact output.
func fixedClock() time.Time {
	return time.Date(2025, 1, 20, 10, 30, 0, 123_000_000, time.UTC)
}

// splitSegments splits a built message into its tag=value segments.
func splitSegments(t *testing.T, msg []byte) []string {
	t.Helper()

	require.NotEmpty(t, msg)
	require.Equal(t, SOH, msg[len(msg)-1], "message must end with the delimiter")

	var segments []string
	for _, seg := range bytes.Split(msg[:len(msg)-1], []byte{SOH}) {
		segments = append(segments, string(seg))
	}

	return segments
}

func TestWriter_Build_Structure(t *testing.T) {
	require := require.New(t)

	writer := NewWriter(WithClock(fixedClock))
	msg, err := writer.
		SetMsgType(fix.MsgTypeNewOrderSingle).
		SetSender("CLIENT1").
		SetTarget("BROKER1").
		SetSeqNum(7).
		SetField(fix.TagClOrdID, "ORD-1").
		SetField(fix.TagSymbol, "AAPL").
		Build()
	require.NoError(err)

	segments := splitSegments(t, msg)
	require.Equal([]string{
		"8=FIX.4.4",
		"9=" + segments[1][2:], // checked against the length law below
		"35=D",
		"49=CLIENT1",
		"56=BROKER1",
		"34=7",
		"52=20250120-10:30:00.123",
		"11=ORD-1",
		"55=AAPL",
		"10=" + segments[len(segments)-1][3:],
	}, segments)
}

// BodyLength must equal the exact byte count between the end of the
// BodyLength field and the start of the checksum trailer.
func TestWriter_Build_LengthLaw(t *testing.T) {
	require := require.New(t)

	msg, err := NewWriter(WithClock(fixedClock)).
		SetMsgType(fix.MsgTypeLogon).
		SetSender("S").
		SetTarget("T").
		SetField(fix.TagText, "hello").
		Build()
	require.NoError(err)

	// Locate the end of the BodyLength field and the start of the trailer.
	lengthStart := bytes.Index(msg, []byte("9="))
	require.Positive(lengthStart)
	bodyStart := lengthStart + bytes.IndexByte(msg[lengthStart:], SOH) + 1
	trailerStart := bytes.LastIndex(msg, []byte(checksumKey))
	require.Positive(trailerStart)

	bodyLength, err := strconv.Atoi(string(msg[lengthStart+2 : bodyStart-1]))
	require.NoError(err)
	require.Equal(trailerStart-bodyStart, bodyLength)
}

// The trailer must carry the sum of all preceding bytes modulo 256, formatted
// as a zero-padded 3-digit decimal.
func TestWriter_Build_ChecksumLaw(t *testing.T) {
	require := require.New(t)

	writer := NewWriter(WithClock(fixedClock)).
		SetMsgType(fix.MsgTypeNewOrderSingle).
		SetSender("CLIENT1").
		SetTarget("BROKER1")

	for seqNum := 1; seqNum <= 32; seqNum++ {
		writer.Reset().SetSeqNum(seqNum).SetInt(fix.TagOrderQty, seqNum*37)
		msg, err := writer.Build()
		require.NoError(err)

		trailerStart := bytes.LastIndex(msg, []byte(checksumKey))
		require.Positive(trailerStart)

		expected := 0
		for _, b := range msg[:trailerStart] {
			expected += int(b)
		}
		expected %= 256

		carried := string(msg[trailerStart+3 : len(msg)-1])
		require.Len(carried, 3)
		require.Equal(expected, mustAtoi(t, carried))
	}
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	v, err := strconv.Atoi(s)
	require.NoError(t, err)
	return v
}

func TestWriter_Build_DefaultMsgType(t *testing.T) {
	require := require.New(t)

	// No MsgType set: the lenient writer falls back to the placeholder '0'.
	msg, err := NewWriter(WithClock(fixedClock)).Build()
	require.NoError(err)
	require.Contains(splitSegments(t, msg), "35=0")
	require.Contains(splitSegments(t, msg), "34=1") // default sequence number
}

func TestWriter_TypedSetters(t *testing.T) {
	require := require.New(t)

	msg, err := NewWriter(WithClock(fixedClock)).
		SetMsgType(fix.MsgTypeExecutionReport).
		SetInt(fix.TagOrderQty, 1000).
		SetChar(fix.TagSide, fix.SideBuy).
		SetFloat(fix.TagPrice, 150.25, 2).
		SetFloat(fix.TagAvgPx, 150.2, 4).
		SetDecimal(fix.TagLastPx, decimal.RequireFromString("425.50")).
		SetTimestamp(fix.TagTransactTime).
		Build()
	require.NoError(err)

	segments := splitSegments(t, msg)
	require.Contains(segments, "38=1000")
	require.Contains(segments, "54=1")
	require.Contains(segments, "44=150.25")
	require.Contains(segments, "6=150.2000")
	// SetDecimal writes the value with its parsed scale, trailing zero included.
	require.Contains(segments, "31=425.50")
	require.Contains(segments, "60=20250120-10:30:00.123")
}

// SetDecimal must preserve the scale of the value as parsed; decimal's own
// String rendering trims trailing zeros and is not used for encoding.
func TestWriter_SetDecimal_ScalePreserved(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc     string
		value    decimal.Decimal
		expected string
	}{
		{
			desc:     "trailing zero kept",
			value:    decimal.RequireFromString("425.50"),
			expected: "44=425.50",
		},
		{
			desc:     "integral value stays integral",
			value:    decimal.RequireFromString("150"),
			expected: "44=150",
		},
		{
			desc:     "sub-cent precision kept",
			value:    decimal.RequireFromString("0.001"),
			expected: "44=0.001",
		},
		{
			desc:     "positive exponent renders expanded",
			value:    decimal.New(5, 1),
			expected: "44=50",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)

		msg, err := NewWriter(WithClock(fixedClock)).
			SetDecimal(fix.TagPrice, test.value).
			Build()
		require.NoError(err)
		require.Contains(splitSegments(t, msg), test.expected)
	}
}

func TestWriter_BuiltState(t *testing.T) {
	require := require.New(t)

	writer := NewWriter(WithClock(fixedClock)).
		SetMsgType(fix.MsgTypeLogon).
		SetSender("CLIENT1").
		SetTarget("BROKER1")

	first, err := writer.Build()
	require.NoError(err)
	require.NotEmpty(first)

	// Built state: Build and every setter fail until Reset.
	_, err = writer.Build()
	require.ErrorIs(err, ErrWriterBuilt)

	writer.SetField(fix.TagText, "late")
	require.ErrorIs(writer.Err(), ErrWriterBuilt)
	_, err = writer.Build()
	require.ErrorIs(err, ErrWriterBuilt)

	// Reset clears the recorded error and the body; message-level settings persist.
	second, err := writer.Reset().SetSeqNum(2).Build()
	require.NoError(err)
	require.NoError(writer.Err())

	segments := splitSegments(t, second)
	require.Contains(segments, "35=A")
	require.Contains(segments, "49=CLIENT1")
	require.Contains(segments, "56=BROKER1")
	require.Contains(segments, "34=2")
	require.NotContains(segments, "58=late")
}

func TestWriter_Reset_ClearsBodyOnly(t *testing.T) {
	require := require.New(t)

	writer := NewWriter(WithClock(fixedClock)).
		SetMsgType(fix.MsgTypeNewOrderSingle).
		SetSender("CLIENT1").
		SetTarget("BROKER1").
		SetField(fix.TagSymbol, "AAPL")

	first, err := writer.Build()
	require.NoError(err)
	require.Contains(splitSegments(t, first), "55=AAPL")

	second, err := writer.Reset().SetField(fix.TagSymbol, "MSFT").Build()
	require.NoError(err)

	segments := splitSegments(t, second)
	require.Contains(segments, "55=MSFT")
	require.NotContains(segments, "55=AAPL")
}

func TestWriter_StrictBuild(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc        string
		setup       func(w *Writer)
		expectedErr error
	}{
		{
			desc:        "message type not set",
			setup:       func(w *Writer) { w.SetSender("S").SetTarget("T") },
			expectedErr: ErrMsgTypeNotSet,
		},
		{
			desc:        "sender not set",
			setup:       func(w *Writer) { w.SetMsgType(fix.MsgTypeLogon).SetTarget("T") },
			expectedErr: ErrCompIDNotSet,
		},
		{
			desc:        "target not set",
			setup:       func(w *Writer) { w.SetMsgType(fix.MsgTypeLogon).SetSender("S") },
			expectedErr: ErrCompIDNotSet,
		},
		{
			desc: "duplicate body tag",
			setup: func(w *Writer) {
				w.SetMsgType(fix.MsgTypeLogon).SetSender("S").SetTarget("T")
				w.SetField(fix.TagSymbol, "AAPL").SetField(fix.TagSymbol, "MSFT")
			},
			expectedErr: ErrDuplicateTag,
		},
		{
			desc: "body field shadowing a synthesized header tag",
			setup: func(w *Writer) {
				w.SetMsgType(fix.MsgTypeLogon).SetSender("S").SetTarget("T")
				w.SetField(fix.TagSendingTime, "19700101-00:00:00.000")
			},
			expectedErr: ErrDuplicateTag,
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)

		writer := NewWriter(WithClock(fixedClock), WithStrictBuild(true))
		test.setup(writer)

		_, err := writer.Build()
		require.ErrorIs(err, test.expectedErr)
	}

	// The same message builds fine once complete.
	writer := NewWriter(WithClock(fixedClock), WithStrictBuild(true)).
		SetMsgType(fix.MsgTypeLogon).
		SetSender("S").
		SetTarget("T").
		SetField(fix.TagSymbol, "AAPL")
	_, err := writer.Build()
	require.NoError(err)
}

// The lenient default happily builds messages strict mode rejects.
func TestWriter_LenientBuild_DuplicateTags(t *testing.T) {
	require := require.New(t)

	msg, err := NewWriter(WithClock(fixedClock)).
		SetField(fix.TagSymbol, "AAPL").
		SetField(fix.TagSymbol, "MSFT").
		Build()
	require.NoError(err)

	segments := splitSegments(t, msg)
	require.Contains(segments, "55=AAPL")
	require.Contains(segments, "55=MSFT")
}

func TestWriter_WithBeginString(t *testing.T) {
	require := require.New(t)

	msg, err := NewWriter(WithClock(fixedClock), WithBeginString("FIX.4.2")).Build()
	require.NoError(err)
	require.Equal("8=FIX.4.2", splitSegments(t, msg)[0])
}
