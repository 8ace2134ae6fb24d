package payroll

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a lenient decimal used for operator input. It accepts JSON
// numbers or numeric strings; anything else decodes to zero.
type Amount decimal.Decimal

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount(decimal.Zero)
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount(decimal.Zero)
			return nil
		}
		raw = s
	}

	*a = ParseAmount(raw)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(a).MarshalJSON()
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

// ParseAmount coerces free text into a decimal, returning zero for
// anything that is not a number.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount(decimal.Zero)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount(decimal.Zero)
	}
	return Amount(d)
}
