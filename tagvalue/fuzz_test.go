package tagvalue

import (
	"bytes"
	"testing"
)

// FuzzReaderParse fuzzes the tag-value decoder with arbitrary payloads.
//
// This exercises the full parsing path: segment splitting, tag prefix
// parsing, permissive segment dropping, and checksum validation. The
// invariants are: Parse must never panic, and a nil error implies a
// non-empty field list whose trailer validates against the raw bytes.
func FuzzReaderParse(f *testing.F) {
	// Seed: a well-formed message with a valid trailer.
	valid := []byte("8=FIX.4.4\x019=5\x0135=0\x01")
	sum := checksum(valid)
	valid = append(valid, checksumKey...)
	valid = appendChecksum(valid, sum)
	valid = append(valid, SOH)
	f.Add(valid)

	// Seed: empty input.
	f.Add([]byte{})

	// Seed: fields without a trailer.
	f.Add([]byte("8=FIX.4.4\x0135=D\x01"))

	// Seed: malformed tag prefixes.
	f.Add([]byte("abc=1\x01=\x01x\x01"))

	// Seed: trailer with a non-numeric value.
	f.Add([]byte("8=FIX.4.4\x0110=abc\x01"))

	// Seed: trailing field without a final delimiter.
	f.Add([]byte("8=FIX.4.4\x0110=000"))

	// Seed: bare delimiters and equals signs.
	f.Add(bytes.Repeat([]byte{'=', SOH}, 16))

	reader := NewReader()
	f.Fuzz(func(t *testing.T, data []byte) {
		err := reader.Parse(data)
		if err != nil {
			return
		}

		fields := reader.Fields()
		if len(fields) == 0 {
			t.Fatal("Parse reported success with an empty field list")
		}

		pos := bytes.LastIndex(data, []byte(checksumKey))
		if pos < 0 {
			t.Fatal("Parse reported success without a checksum key in the input")
		}
		if checksum(data[:pos]) != reader.GetInt(10) {
			t.Fatalf("Parse reported success with an invalid checksum: %q", data)
		}
	})
}
