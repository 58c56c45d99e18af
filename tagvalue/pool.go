package tagvalue

import (
	"sync"

	"github.com/arloliu/go-fix/fix"
	"github.com/arloliu/go-fix/internal/util"
)

// Reader pool for the package-level Decode entry point.
var readerPool = sync.Pool{New: func() any { return NewReader() }}

var usePool = true

// IsUsePool returns true if reader pooling for Decode is enabled, false otherwise.
func IsUsePool() bool {
	return usePool
}

// UsePool enables or disables reader pooling for the package-level Decode.
// When enabled, Decode reuses Reader objects from a pool to reduce memory
// allocations. Pooling is enabled by default.
func UsePool(val bool) {
	usePool = val
}

// Decode parses one complete message from data with a pooled Reader and
// returns the decoded fields and the diagnostics for any dropped segments.
//
// Unlike Reader.Parse, the returned slices are independent copies and stay
// valid after the pooled reader is reused. The field values still reference
// the bytes of data; the caller must not mutate the buffer while the fields
// are in use. The error semantics match Reader.Parse: the field list is
// returned even when the checksum fails.
func Decode(data []byte) ([]fix.Field, []Diagnostic, error) {
	reader := getReader()
	err := reader.Parse(data)

	fields := util.CloneSlice(reader.fields, 0)

	var diags []Diagnostic
	if len(reader.diags) > 0 {
		diags = util.CloneSlice(reader.diags, 0)
	}

	putReader(reader)

	return fields, diags, err
}

func getReader() *Reader {
	if usePool {
		reader, _ := readerPool.Get().(*Reader)
		if reader == nil {
			return NewReader()
		}
		return reader
	}

	return NewReader()
}

func putReader(reader *Reader) {
	if usePool {
		reader.raw = nil
		readerPool.Put(reader)
	}
}
