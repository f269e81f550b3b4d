// SPDX-License-Identifier: Apache-2.0

package extension

import (
	"fmt"

	"github.com/policycore/engine/value"
	"github.com/woodsbury/decimal128"
)

// decimalValue wraps a decimal parsed from a literal with at most four
// fractional digits (see checkDecimalLiteral); the value is kept as
// parsed, not padded to a fixed number of digits.
type decimalValue struct {
	d decimal128.Decimal
}

func (v decimalValue) String() string { return v.d.String() }

func (v decimalValue) Equal(other value.ExtensionPayload) bool {
	o, ok := other.(decimalValue)
	if !ok {
		return false
	}
	return v.d.Cmp(o.d).Equal()
}

func asDecimalValue(v value.Value) (decimalValue, bool) {
	ext, ok := v.(value.Extension)
	if !ok || ext.Name != "decimal" {
		return decimalValue{}, false
	}
	d, ok := ext.Payload.(decimalValue)
	return d, ok
}

// DecimalExtension registers Cedar's decimal() constructor and the
// lessThan, lessThanOrEqual, greaterThan, and greaterThanOrEqual
// comparison methods.
func DecimalExtension() Extension {
	cmp := func(want func(c decimal128.CmpResult) bool) Func {
		return func(args []value.Value) (value.Value, error) {
			a, ok := asDecimalValue(args[0])
			if !ok {
				return nil, fmt.Errorf("decimal comparison requires a decimal receiver")
			}
			b, ok := asDecimalValue(args[1])
			if !ok {
				return nil, fmt.Errorf("decimal comparison requires a decimal argument")
			}
			return want(a.d.Cmp(b.d)), nil
		}
	}

	return Extension{
		Name: "decimal",
		Functions: map[string]Signature{
			"decimal": {Arity: 1, Call: func(args []value.Value) (value.Value, error) {
				s, ok := args[0].(string)
				if !ok {
					return nil, fmt.Errorf("decimal() requires a string argument")
				}
				if err := checkDecimalLiteral(s); err != nil {
					return nil, err
				}
				d, err := decimal128.Parse(s)
				if err != nil {
					return nil, fmt.Errorf("invalid decimal %q: %w", s, err)
				}
				return value.Extension{Name: "decimal", Payload: decimalValue{d: d}}, nil
			}},
			"lessThan":           {Arity: 2, Call: cmp(func(c decimal128.CmpResult) bool { return c.Less() })},
			"lessThanOrEqual":    {Arity: 2, Call: cmp(func(c decimal128.CmpResult) bool { return c.Less() || c.Equal() })},
			"greaterThan":        {Arity: 2, Call: cmp(func(c decimal128.CmpResult) bool { return c.Greater() })},
			"greaterThanOrEqual": {Arity: 2, Call: cmp(func(c decimal128.CmpResult) bool { return c.Greater() || c.Equal() })},
		},
	}
}

// checkDecimalLiteral enforces the decimal literal grammar: an optional
// sign, an integer part, a dot, and one to four fractional digits.
// decimal128 itself accepts a much wider surface (exponents, arbitrary
// precision) that decimal() must not.
func checkDecimalLiteral(s string) error {
	rest := s
	if len(rest) > 0 && rest[0] == '-' {
		rest = rest[1:]
	}
	dot := -1
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '.' {
			if dot >= 0 {
				return fmt.Errorf("invalid decimal %q", s)
			}
			dot = i
			continue
		}
		if c < '0' || c > '9' {
			return fmt.Errorf("invalid decimal %q", s)
		}
	}
	if dot <= 0 || dot == len(rest)-1 {
		return fmt.Errorf("invalid decimal %q: expected digits on both sides of the decimal point", s)
	}
	if frac := len(rest) - dot - 1; frac > 4 {
		return fmt.Errorf("invalid decimal %q: at most 4 fractional digits are supported", s)
	}
	return nil
}
