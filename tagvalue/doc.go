// Package tagvalue implements the flat tag-value wire codec for FIX messages.
//
// A message on the wire is a sequence of tag=value pairs, each terminated by
// the SOH control byte (0x01):
//
//	8=FIX.4.4<SOH>9=<BodyLength><SOH>...body fields...<SOH>10=<CheckSum><SOH>
//
// BodyLength (tag 9) holds the byte count of everything between the end of
// the BodyLength field and the start of the CheckSum field. CheckSum (tag 10)
// holds the sum of all preceding bytes modulo 256, formatted as a zero-padded
// 3-digit decimal, and is always the last field.
//
// The Reader decodes one complete message's bytes into an ordered field list
// and validates the checksum; the Writer accumulates body fields and emits
// the canonical byte sequence with header and trailer synthesized. Neither
// side performs I/O or framing: delimiting one message's bytes in a
// continuous stream is the transport layer's responsibility.
//
// A Reader is effectively stateless between calls; each Parse overwrites its
// field list. A Writer owns a mutable accumulation buffer and is a
// single-owner object: sharing one across goroutines requires external
// synchronization.
package tagvalue
