// SPDX-License-Identifier: Apache-2.0

package value

import "fmt"

// EntityUID identifies an entity by its declared type name and a
// caller-chosen id. Two EntityUIDs are equal iff both fields match.
type EntityUID struct {
	Type string
	ID   string
}

// Unspecified is the distinguished entity standing in for an absent
// request component (principal/action/resource) in total-evaluation
// mode. Any attribute access against it is an UnspecifiedEntityAccess
// error, regardless of what the entity store contains.
var Unspecified = EntityUID{Type: "__cedar::Unspecified", ID: ""}

// IsUnspecified reports whether u is the Unspecified sentinel.
func (u EntityUID) IsUnspecified() bool { return u == Unspecified }

func (u EntityUID) String() string {
	return fmt.Sprintf("%s::%q", u.Type, u.ID)
}

// Hash implements hashstructure.Hashable so EntityUIDs hash by value
// (type+id) rather than by the struct's in-memory layout.
func (u EntityUID) Hash() (uint64, error) {
	return hashStrings(u.Type, u.ID)
}
