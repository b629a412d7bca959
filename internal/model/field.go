package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// FieldKind tags the variant held by a FieldValue.
type FieldKind uint8

const (
	KindNull FieldKind = iota
	KindString
	KindNumber
	KindBoolean
)

// FieldValue is the value of a custom university field: a string, a number, a boolean or null.
// The zero value is null. It encodes to and from the bare JSON scalar.
type FieldValue struct {
	kind FieldKind
	str  string
	num  float64
	b    bool
}

// NullValue returns the null FieldValue.
func NullValue() FieldValue { return FieldValue{} }

// StringValue wraps s.
func StringValue(s string) FieldValue { return FieldValue{kind: KindString, str: s} }

// NumberValue wraps n. NaN and infinities are not representable in JSON and become null.
func NumberValue(n float64) FieldValue {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return FieldValue{}
	}
	return FieldValue{kind: KindNumber, num: n}
}

// BoolValue wraps b.
func BoolValue(b bool) FieldValue { return FieldValue{kind: KindBoolean, b: b} }

func (v FieldValue) Kind() FieldKind { return v.kind }
func (v FieldValue) IsNull() bool    { return v.kind == KindNull }

// AsString returns the string payload and whether v holds a string.
func (v FieldValue) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the numeric payload and whether v holds a number.
func (v FieldValue) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean payload and whether v holds a boolean.
func (v FieldValue) AsBool() (bool, bool) { return v.b, v.kind == KindBoolean }

// String renders the value for table cells: empty for null, Yes/No for booleans.
func (v FieldValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBoolean:
		if v.b {
			return "Yes"
		}
		return "No"
	}
	return ""
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBoolean:
		return json.Marshal(v.b)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts any JSON value. Objects and arrays are not expected in custom fields;
// they are kept as their raw JSON text so that nothing stored by hand is lost.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = FieldValue{}
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case string:
		*v = StringValue(x)
	case float64:
		*v = NumberValue(x)
	case bool:
		*v = BoolValue(x)
	default:
		*v = StringValue(string(data))
	}
	return nil
}
