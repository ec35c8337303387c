package argtype

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is a physical quantity: an arbitrary-precision magnitude with an
// optional unit symbol. A quantity without a unit is dimensionless.
type Quantity struct {
	Value decimal.Decimal
	Unit  string
}

// ParseQuantity parses the textual form "<number> <unit>". The unit may be
// omitted and the separating space is optional: "3.5 kW", "3.5kW" and "42"
// are all valid.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, fmt.Errorf("empty quantity")
	}

	n := numericPrefixLen(s)
	if n == 0 {
		return Quantity{}, fmt.Errorf("quantity %q has no numeric magnitude", s)
	}

	value, err := decimal.NewFromString(s[:n])
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity %q: %w", s, err)
	}

	return Quantity{Value: value, Unit: strings.TrimSpace(s[n:])}, nil
}

// numericPrefixLen returns the length of the leading numeric literal in s,
// or 0 if s does not start with one. Accepts an optional sign, a decimal
// point and an exponent.
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

// String renders the canonical textual form: the magnitude, then the unit
// separated by a single space when present.
func (q Quantity) String() string {
	if q.Unit == "" {
		return q.Value.String()
	}
	return q.Value.String() + " " + q.Unit
}
