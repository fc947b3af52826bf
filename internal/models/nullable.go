package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// NullFloat is a parsed decimal that may be absent. An absent value is never
// NaN: callers decide at each use whether absence means "skip" or "zero".
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float wraps a present value.
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// ParseNullFloat parses s; empty, unparseable, NaN and infinite inputs all
// yield an absent value.
func ParseNullFloat(s string) NullFloat {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullFloat{}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return NullFloat{}
	}
	return Float(n)
}

// OrZero returns the value, or 0 when absent.
func (n NullFloat) OrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Float64
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON accepts a number, a string-encoded number or null.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = NullFloat{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Float(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("null float: %w", err)
	}
	*n = ParseNullFloat(s)
	return nil
}

// NullInt is a parsed integer that may be absent.
type NullInt struct {
	Int   int
	Valid bool
}

// Int wraps a present value.
func Int(v int) NullInt {
	return NullInt{Int: v, Valid: true}
}

// ParseNullInt parses s as a base-10 integer.
func ParseNullInt(s string) NullInt {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullInt{}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return NullInt{}
	}
	return Int(n)
}

func (n NullInt) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.Itoa(n.Int)
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Int)
}

// UnmarshalJSON accepts a number, a string-encoded number or null.
func (n *NullInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*n = NullInt{}
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*n = Int(i)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("null int: %w", err)
	}
	*n = ParseNullInt(s)
	return nil
}
