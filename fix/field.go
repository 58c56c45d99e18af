package fix

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Field represents a single tag=value pair within a FIX message.
//
// The value is kept as raw text; typed views are derived on demand and never
// fail loudly. A missing or malformed value yields the zero value of the
// requested type. Callers that need to distinguish "absent" from
// "present and zero" must locate the field first (e.g. tagvalue.Reader.Find)
// instead of relying on the typed views.
type Field struct {
	Value string
	Tag   Tag
}

// NewField creates a new Field with the given tag and raw textual value.
func NewField(tag Tag, value string) Field {
	return Field{Tag: tag, Value: value}
}

// Int returns the integer view of the field value.
// It returns 0 when the value is empty or is not a valid decimal integer.
func (f Field) Int() int {
	v, err := strconv.Atoi(f.Value)
	if err != nil {
		return 0
	}

	return v
}

// Float returns the floating-point view of the field value.
// It returns 0.0 when the value is empty or is not a valid decimal number.
func (f Field) Float() float64 {
	v, err := strconv.ParseFloat(f.Value, 64)
	if err != nil {
		return 0.0
	}

	return v
}

// Decimal returns the arbitrary-precision decimal view of the field value.
// It returns decimal zero when the value is empty or is not a valid decimal
// number. Price and quantity fields should prefer this view over Float when
// exactness matters.
func (f Field) Decimal() decimal.Decimal {
	v, err := decimal.NewFromString(f.Value)
	if err != nil {
		return decimal.Decimal{}
	}

	return v
}

// Char returns the single-character view of the field value.
// It returns the NUL byte when the value is empty.
func (f Field) Char() byte {
	if len(f.Value) == 0 {
		return 0
	}

	return f.Value[0]
}

// IsEmpty reports whether the field holds an empty value.
func (f Field) IsEmpty() bool {
	return len(f.Value) == 0
}

// String returns the "tag=value" text representation of the field.
func (f Field) String() string {
	return strconv.Itoa(f.Tag) + "=" + f.Value
}
