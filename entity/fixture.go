// SPDX-License-Identifier: Apache-2.0

package entity

import (
	"fmt"

	"github.com/fatih/structs"
	"github.com/policycore/engine/value"
)

// FromStruct builds an Entity's attribute Record from a tagged Go
// struct, for test fixtures and embedders who'd rather define entity
// shapes as Go types than hand-build Records field by field. Fields are
// read with the `structs` tag name where present, the field name
// otherwise; unexported and zero-value-omitted ("omitempty") fields
// follow the same rules as github.com/fatih/structs.Map.
func FromStruct(uid value.EntityUID, v any, ancestors ...value.EntityUID) (Entity, error) {
	if !structs.IsStruct(v) {
		return Entity{}, fmt.Errorf("entity: FromStruct requires a struct, got %T", v)
	}

	m := structs.Map(v)
	keys := make([]string, 0, len(m))
	vals := make([]value.Value, 0, len(m))
	for k, raw := range m {
		cv, err := toValue(raw)
		if err != nil {
			return Entity{}, fmt.Errorf("entity: field %q: %w", k, err)
		}
		keys = append(keys, k)
		vals = append(vals, cv)
	}

	rec, err := value.NewRecord(keys, vals)
	if err != nil {
		return Entity{}, err
	}

	ancestorSet := make(map[value.EntityUID]struct{}, len(ancestors))
	for _, a := range ancestors {
		ancestorSet[a] = struct{}{}
	}
	return Entity{UID: uid, Attrs: rec, Ancestors: ancestorSet}, nil
}

// toValue converts a primitive produced by structs.Map into a
// value.Value. Nested structs/maps/slices are out of scope: entity
// fixtures built this way are flat by convention.
func toValue(raw any) (value.Value, error) {
	switch v := raw.(type) {
	case bool, int64, string:
		return v, nil
	case int:
		return int64(v), nil
	case value.EntityUID:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported fixture field type %T", raw)
	}
}
