package listing

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// StringList is an ordered list of strings persisted as a JSON-array string in a
// text column. Older rows may hold a bare scalar or garbage instead of an array;
// Scan never fails on those, it falls back to a one-element list with the raw
// value (empty/NULL decodes to an empty list).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	raw, ok := rawString(value)
	if !ok || raw == "" {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		if out == nil {
			out = []string{}
		}
		*l = out
		return nil
	}
	*l = StringList{raw}
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// FloatList is the numeric counterpart of StringList. A bare scalar falls back
// to a one-element list when it parses as a number, otherwise to an empty list.
type FloatList []float64

func (l FloatList) Value() (driver.Value, error) {
	if l == nil {
		l = FloatList{}
	}
	b, err := json.Marshal([]float64(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FloatList) Scan(value interface{}) error {
	raw, ok := rawString(value)
	if !ok || raw == "" {
		*l = FloatList{}
		return nil
	}
	var out []float64
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		if out == nil {
			out = []float64{}
		}
		*l = out
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		*l = FloatList{f}
		return nil
	}
	*l = FloatList{}
	return nil
}

func (l FloatList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]float64(l))
}

func rawString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
