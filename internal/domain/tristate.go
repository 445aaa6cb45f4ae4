package domain

import (
	"bytes"
	"database/sql/driver"
	"fmt"
)

// TriState is a three-valued flag for the good_with_* fields. The scorer
// branches on all three values, so "not filled in" must stay distinct from
// "no" rather than collapsing into a bool.
type TriState int8

const (
	TriUnknown TriState = iota
	TriYes
	TriNo
)

func TriStateFromBool(b *bool) TriState {
	switch {
	case b == nil:
		return TriUnknown
	case *b:
		return TriYes
	default:
		return TriNo
	}
}

// Scan implements sql.Scanner over a nullable boolean column.
func (t *TriState) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TriUnknown
	case bool:
		if v {
			*t = TriYes
		} else {
			*t = TriNo
		}
	default:
		return fmt.Errorf("cannot scan %T into TriState", src)
	}
	return nil
}

// Value implements driver.Valuer, storing TriUnknown as NULL.
func (t TriState) Value() (driver.Value, error) {
	switch t {
	case TriYes:
		return true, nil
	case TriNo:
		return false, nil
	default:
		return nil, nil
	}
}

// MarshalJSON emits true, false or null.
func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case TriYes:
		return []byte("true"), nil
	case TriNo:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = TriUnknown
	case bytes.Equal(data, []byte("true")):
		*t = TriYes
	case bytes.Equal(data, []byte("false")):
		*t = TriNo
	default:
		return fmt.Errorf("invalid TriState value: %s", data)
	}
	return nil
}
