// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"fmt"
	"strconv"

	"github.com/policycore/engine/tokens"
)

// BoolLiteral is a `true`/`false` literal.
type BoolLiteral struct {
	baseNode
	Value bool
}

func NewBoolLiteral(v bool, r tokens.Range) *BoolLiteral {
	return &BoolLiteral{baseNode: baseNode{Range: r}, Value: v}
}

func (l *BoolLiteral) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}
func (l *BoolLiteral) exprNode() {}

// LongLiteral is a signed 64-bit integer literal.
type LongLiteral struct {
	baseNode
	Value int64
}

func NewLongLiteral(v int64, r tokens.Range) *LongLiteral {
	return &LongLiteral{baseNode: baseNode{Range: r}, Value: v}
}

func (l *LongLiteral) String() string { return strconv.FormatInt(l.Value, 10) }
func (l *LongLiteral) exprNode()      {}

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	baseNode
	Value string
}

func NewStringLiteral(v string, r tokens.Range) *StringLiteral {
	return &StringLiteral{baseNode: baseNode{Range: r}, Value: v}
}

func (l *StringLiteral) String() string { return strconv.Quote(l.Value) }
func (l *StringLiteral) exprNode()      {}

// EntityUIDLiteral is a `Type::"id"` literal.
type EntityUIDLiteral struct {
	baseNode
	Type string
	ID   string
}

func NewEntityUIDLiteral(typeName, id string, r tokens.Range) *EntityUIDLiteral {
	return &EntityUIDLiteral{baseNode: baseNode{Range: r}, Type: typeName, ID: id}
}

func (l *EntityUIDLiteral) String() string { return fmt.Sprintf("%s::%q", l.Type, l.ID) }
func (l *EntityUIDLiteral) exprNode()      {}
