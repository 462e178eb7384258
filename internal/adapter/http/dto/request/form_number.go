package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// FormNumber holds a numeric form field sent either as a JSON number or as
// the raw text typed by the operator. Anything else reads as empty.
type FormNumber string

func (n *FormNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = FormNumber(s)
		return nil
	}
	if len(b) > 0 && (b[0] == '-' || b[0] == '.' || (b[0] >= '0' && b[0] <= '9')) {
		*n = FormNumber(b)
		return nil
	}
	*n = ""
	return nil
}

// Int reads the leading integer of the field ("12 pcs" is 12, "1.9" is 1);
// anything unparsable is 0.
func (n FormNumber) Int() int {
	return ParseLeadingInt(string(n))
}

// Decimal reads the leading decimal of the field ("12.5kg" is 12.5);
// anything unparsable is 0.
func (n FormNumber) Decimal() decimal.Decimal {
	return ParseLeadingDecimal(string(n))
}

func (n FormNumber) IsEmpty() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Bounds for ParseLeadingDecimal. Input outside them reads as 0.
const (
	maxDecimalDigits   = 30
	maxDecimalExponent = 30
)

var maxDecimalMagnitude = decimal.New(1, 15)

func ParseLeadingInt(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := signEnd(s)
	digits := end
	for digits < len(s) && isDigit(s[digits]) {
		digits++
	}
	if digits == end {
		return 0
	}
	v, err := strconv.Atoi(s[:digits])
	if err != nil {
		return 0
	}
	return v
}

func ParseLeadingDecimal(raw string) decimal.Decimal {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	i := signEnd(s)
	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 || mantissa > maxDecimalDigits {
		return decimal.Zero
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := signEnd(s[i+1:]) + i + 1
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			exp, err := strconv.Atoi(s[i+1 : k])
			if err != nil || exp > maxDecimalExponent || exp < -maxDecimalExponent {
				return decimal.Zero
			}
			i = k
		}
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(s[:i], "."))
	if err != nil || d.Abs().GreaterThanOrEqual(maxDecimalMagnitude) {
		return decimal.Zero
	}
	return d
}

func signEnd(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
