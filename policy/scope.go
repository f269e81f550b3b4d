// SPDX-License-Identifier: Apache-2.0

// Package policy holds the static policy representation (scope
// constraints, condition, effect) and the per-policy evaluator that
// decides whether a linked policy is satisfied by a request.
package policy

import (
	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/value"
)

// ConstraintKind discriminates the five scope-constraint shapes a
// principal/action/resource slot can carry.
type ConstraintKind int

const (
	// Any matches every value for this slot; it contributes `true`.
	Any ConstraintKind = iota
	// Eq requires the slot to equal a specific entity UID.
	Eq
	// In requires the slot to be `in` a specific UID or set of UIDs.
	In
	// Is requires the slot's entity type to match exactly.
	Is
	// IsIn requires both Is and In against the given UID.
	IsIn
)

// Constraint is one principal/action/resource scope constraint.
type Constraint struct {
	Kind ConstraintKind
	// UID is used by Eq and IsIn.
	UID value.EntityUID
	// UIDs is used by In when the scope names a set of ancestors; if
	// len(UIDs) == 1 this behaves exactly like a single-UID In.
	UIDs []value.EntityUID
	// EntityType is used by Is and IsIn.
	EntityType string
	// Slot is non-nil only in a Template's Scope, where Eq/In/IsIn may
	// name `?principal`/`?resource` instead of a literal UID. Link
	// replaces it with a concrete UID and clears this field.
	Slot *ast.SlotID
}

// ConstraintAny is the always-matching constraint, the default for a
// scope slot that names no restriction.
func ConstraintAny() Constraint { return Constraint{Kind: Any} }

// ConstraintEq requires exact equality with uid.
func ConstraintEq(uid value.EntityUID) Constraint { return Constraint{Kind: Eq, UID: uid} }

// ConstraintIn requires membership in uid's hierarchy.
func ConstraintIn(uid value.EntityUID) Constraint { return Constraint{Kind: In, UIDs: []value.EntityUID{uid}} }

// ConstraintInSet requires membership in any of uids' hierarchies.
func ConstraintInSet(uids []value.EntityUID) Constraint { return Constraint{Kind: In, UIDs: uids} }

// ConstraintIs requires the slot's declared entity type to equal typeName.
func ConstraintIs(typeName string) Constraint { return Constraint{Kind: Is, EntityType: typeName} }

// ConstraintIsIn requires both ConstraintIs(typeName) and ConstraintIn(uid).
func ConstraintIsIn(typeName string, uid value.EntityUID) Constraint {
	return Constraint{Kind: IsIn, EntityType: typeName, UID: uid}
}

// ConstraintEqSlot and ConstraintIsInSlot build template-only
// constraints naming a slot instead of a literal UID; Template.Link
// substitutes the slot before the policy is usable.
func ConstraintEqSlot(slot ast.SlotID) Constraint { return Constraint{Kind: Eq, Slot: &slot} }

func ConstraintInSlot(slot ast.SlotID) Constraint { return Constraint{Kind: In, Slot: &slot} }

func ConstraintIsInSlot(typeName string, slot ast.SlotID) Constraint {
	return Constraint{Kind: IsIn, EntityType: typeName, Slot: &slot}
}

// Scope is the three-slot scope clause of a policy: `principal ...,
// action ..., resource ...`.
type Scope struct {
	Principal Constraint
	Action    Constraint
	Resource  Constraint
}
