// SPDX-License-Identifier: Apache-2.0

package ast

import "github.com/policycore/engine/tokens"

// Unknown is an opaque partial-evaluation leaf. In total-mode evaluation
// it always raises NonValue; in partial mode it evaluates to a residual
// carrying the same Name.
type Unknown struct {
	baseNode
	Name string
}

func NewUnknown(name string, r tokens.Range) *Unknown {
	return &Unknown{baseNode: baseNode{Range: r}, Name: name}
}

func (u *Unknown) String() string { return "unknown(\"" + u.Name + "\")" }
func (u *Unknown) exprNode()      {}
