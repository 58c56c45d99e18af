package tagvalue

import (
	"time"

	"github.com/arloliu/go-fix/logger"
)

// WriterOption configures a Writer created by NewWriter.
type WriterOption interface {
	applyWriter(*Writer)
}

type writerOptFunc func(*Writer)

func (f writerOptFunc) applyWriter(w *Writer) {
	f(w)
}

// ReaderOption configures a Reader created by NewReader.
type ReaderOption interface {
	applyReader(*Reader)
}

type readerOptFunc func(*Reader)

func (f readerOptFunc) applyReader(r *Reader) {
	f(r)
}

// WithBeginString sets the protocol version written into the BeginString
// header field (tag 8). Defaults to DefaultBeginString.
func WithBeginString(beginString string) WriterOption {
	return writerOptFunc(func(w *Writer) {
		w.beginString = beginString
	})
}

// WithClock sets the clock used for SendingTime and SetTimestamp.
// Defaults to time.Now. Tests inject a fixed clock for byte-exact output.
func WithClock(now func() time.Time) WriterOption {
	return writerOptFunc(func(w *Writer) {
		w.now = now
	})
}

// WithStrictBuild enables validation at Build time: the message type and
// both comp ids must be set, and duplicate tags are rejected. Disabled by
// default to match permissive FIX tooling.
func WithStrictBuild(enable bool) WriterOption {
	return writerOptFunc(func(w *Writer) {
		w.strict = enable
	})
}

// WithWriterLogger sets the logger used by a Writer.
// Defaults to the package default logger.
func WithWriterLogger(l logger.Logger) WriterOption {
	return writerOptFunc(func(w *Writer) {
		w.log = l
	})
}

// WithReaderLogger sets the logger used by a Reader, which logs dropped
// segments at debug level. Defaults to the package default logger.
func WithReaderLogger(l logger.Logger) ReaderOption {
	return readerOptFunc(func(r *Reader) {
		r.log = l
	})
}
