// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// SlotID names a template slot: ?principal or ?resource.
type SlotID int

const (
	SlotPrincipal SlotID = iota
	SlotResource
)

func (s SlotID) String() string {
	if s == SlotPrincipal {
		return "?principal"
	}
	return "?resource"
}

// Slot is a template placeholder. Linking replaces every Slot with an
// EntityUIDLiteral before evaluation; if the evaluator ever sees one, it
// raises UnlinkedSlot.
type Slot struct {
	baseNode
	ID SlotID
}

func NewSlot(id SlotID, r tokens.Range) *Slot {
	return &Slot{baseNode: baseNode{Range: r}, ID: id}
}

func (s *Slot) String() string { return s.ID.String() }
func (s *Slot) exprNode()      {}
