package types

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes JSON numbers as well as the quoted numeric strings that
// HTML form clients submit. Blank input defaults to 0; anything else that
// fails to parse is a decode error surfaced to the caller.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*n = FlexInt(v)
	return nil
}

func (n FlexInt) Int() int {
	return int(n)
}

func (n FlexInt) Int64() int64 {
	return int64(n)
}

// FlexFloat is the decimal counterpart of FlexInt.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}
