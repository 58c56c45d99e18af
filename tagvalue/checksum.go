package tagvalue

import "strconv"

// SOH is the ASCII start-of-header control byte that terminates every
// tag=value pair on the wire.
const SOH byte = 0x01

// checksumKey is the raw prefix of the trailer field. The checksum window on
// decode ends at the last occurrence of this prefix in the raw buffer.
const checksumKey = "10="

// checksum returns the additive checksum of data: the sum of all byte values
// reduced modulo 256.
//
// The scheme can not detect every corruption; two compensating byte changes
// cancel out. That is a property of the wire format, not of this
// implementation.
func checksum(data []byte) int {
	sum := 0
	for _, b := range data {
		sum += int(b)
	}

	return sum % 256
}

// appendChecksum appends the zero-padded 3-digit representation of sum.
func appendChecksum(dst []byte, sum int) []byte {
	dst = append(dst, byte('0'+sum/100))
	dst = append(dst, byte('0'+sum/10%10))
	dst = append(dst, byte('0'+sum%10))

	return dst
}

// appendField appends one "tag=value<SOH>" segment to dst.
func appendField(dst []byte, tag int, value string) []byte {
	dst = strconv.AppendInt(dst, int64(tag), 10)
	dst = append(dst, '=')
	dst = append(dst, value...)
	dst = append(dst, SOH)

	return dst
}

// appendFieldInt appends one "tag=value<SOH>" segment with an integer value.
func appendFieldInt(dst []byte, tag int, value int) []byte {
	dst = strconv.AppendInt(dst, int64(tag), 10)
	dst = append(dst, '=')
	dst = strconv.AppendInt(dst, int64(value), 10)
	dst = append(dst, SOH)

	return dst
}

// appendFieldChar appends one "tag=value<SOH>" segment with a single-character value.
func appendFieldChar(dst []byte, tag int, value byte) []byte {
	dst = strconv.AppendInt(dst, int64(tag), 10)
	dst = append(dst, '=', value, SOH)

	return dst
}
