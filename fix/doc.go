// Package fix provides the field model and static protocol tables for flat
// tag-value FIX (Financial Information eXchange) messages.
//
// A FIX field is a (tag, value) pair where the tag is a positive integer
// identifying the semantic meaning of the textual value. This package defines
// the Field type with its on-demand typed views, the well-known tag numbers,
// and the enumerated values for categorical fields such as message type,
// side, order type, order status and execution type.
//
// The tag and value tables are immutable, process-wide data. Applications
// that use custom tags can attach human-readable names to them at runtime
// through RegisterTagName; the registry is safe for concurrent use.
//
// Encoding and decoding of whole messages lives in the tagvalue package;
// convenience constructors for common FIX 4.4 messages live in the fix44
// package.
package fix
