// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Display renders v as policy-language source text. Scalars and entity
// UIDs round-trip: parsing Display(v) back as a literal yields a value
// structurally equal to v.
func Display(v Value) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(t, 10)
	case string:
		return strconv.Quote(t)
	case EntityUID:
		return t.String()
	case *Set:
		parts := make([]string, 0, t.Len())
		for _, e := range t.Elements() {
			parts = append(parts, Display(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Record:
		parts := make([]string, 0, t.Len())
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			parts = append(parts, fmt.Sprintf("%s: %s", strconv.Quote(k), Display(val)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Extension:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
