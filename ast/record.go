// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"strconv"
	"strings"

	"github.com/policycore/engine/tokens"
)

// RecordEntry is one `"key": Value` pair of a RecordLiteral.
type RecordEntry struct {
	Key   string
	Value Expr
}

// RecordLiteral is `{"k1": e1, "k2": e2, ...}`. Fields evaluate in
// declaration order; the parser (out of scope here) is responsible for
// rejecting duplicate keys before a RecordLiteral is ever constructed.
type RecordLiteral struct {
	baseNode
	Entries []RecordEntry
}

func NewRecordLiteral(entries []RecordEntry, r tokens.Range) *RecordLiteral {
	return &RecordLiteral{baseNode: baseNode{Range: r}, Entries: entries}
}

func (e *RecordLiteral) String() string {
	parts := make([]string, len(e.Entries))
	for i, kv := range e.Entries {
		parts[i] = strconv.Quote(kv.Key) + ": " + kv.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (e *RecordLiteral) exprNode() {}
