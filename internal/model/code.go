package model

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Code is an optional numeric classification code. The zero value is absent.
type Code struct {
	Value decimal.Decimal
	Valid bool
}

// NewCode parses s as a code. An empty or blank string yields an absent code.
func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Code{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Code{}, fmt.Errorf("parsing code %q: %w", s, err)
	}
	return Code{Value: d, Valid: true}, nil
}

// MustCode is NewCode for literals; it panics on malformed input.
func MustCode(s string) Code {
	c, err := NewCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the code's decimal form, or "" when absent.
func (c Code) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value.String()
}

// Equal reports whether two codes are both absent or hold the same value.
func (c Code) Equal(other Code) bool {
	if c.Valid != other.Valid {
		return false
	}
	return !c.Valid || c.Value.Equal(other.Value)
}

// MarshalJSON encodes the code as a string, or null when absent.
func (c Code) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + c.Value.String() + `"`), nil
}

// UnmarshalJSON accepts a number, a quoted number, "" or null.
func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = Code{}
		return nil
	}
	parsed, err := NewCode(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
