// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"strings"

	"github.com/policycore/engine/ast"
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

func (in *Interpreter) requireSet(pv PartialValue) (*value.Set, error) {
	s, ok := pv.Value.(*value.Set)
	if !ok {
		return nil, xerr.TypeErrorSingle(value.SetType, value.TypeOf(pv.Value))
	}
	return s, nil
}

func (in *Interpreter) evalContains(n *ast.ContainsExpr, depth int) (PartialValue, error) {
	set, err := in.eval(n.Set, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	elem, err := in.eval(n.Elem, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if set.IsResidual() || elem.IsResidual() {
		return residual(ast.NewContainsExpr(exprOf(set), exprOf(elem), n.Position())), nil
	}
	s, err := in.requireSet(set)
	if err != nil {
		return PartialValue{}, err
	}
	return concrete(s.Contains(elem.Value)), nil
}

func (in *Interpreter) evalContainsAll(n *ast.ContainsAllExpr, depth int) (PartialValue, error) {
	set, err := in.eval(n.Set, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	other, err := in.eval(n.Other, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if set.IsResidual() || other.IsResidual() {
		return residual(ast.NewContainsAllExpr(exprOf(set), exprOf(other), n.Position())), nil
	}
	s, err := in.requireSet(set)
	if err != nil {
		return PartialValue{}, err
	}
	o, err := in.requireSet(other)
	if err != nil {
		return PartialValue{}, err
	}
	return concrete(s.ContainsAll(o)), nil
}

func (in *Interpreter) evalContainsAny(n *ast.ContainsAnyExpr, depth int) (PartialValue, error) {
	set, err := in.eval(n.Set, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	other, err := in.eval(n.Other, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if set.IsResidual() || other.IsResidual() {
		return residual(ast.NewContainsAnyExpr(exprOf(set), exprOf(other), n.Position())), nil
	}
	s, err := in.requireSet(set)
	if err != nil {
		return PartialValue{}, err
	}
	o, err := in.requireSet(other)
	if err != nil {
		return PartialValue{}, err
	}
	return concrete(s.ContainsAny(o)), nil
}

func (in *Interpreter) evalLike(n *ast.LikeExpr, depth int) (PartialValue, error) {
	operand, err := in.eval(n.Operand, depth+1)
	if err != nil {
		return PartialValue{}, err
	}
	if operand.IsResidual() {
		return residual(ast.NewLikeExpr(operand.Residual, n.Pattern, n.Position())), nil
	}
	s, ok := operand.Value.(string)
	if !ok {
		return PartialValue{}, xerr.TypeErrorSingle(value.StringType, value.TypeOf(operand.Value))
	}
	return concrete(matchLike(s, n.Pattern)), nil
}

// matchLike implements the restricted glob of `like`: `*` matches zero
// or more characters, `\*` matches a literal `*`, every other character
// (including `\` not followed by `*`) matches itself by code point.
func matchLike(s, pattern string) bool {
	segments, leadingStar, trailingStar := splitLikePattern(pattern)
	return matchSegments(s, segments, leadingStar, trailingStar)
}

// splitLikePattern splits pattern on unescaped `*` into non-empty
// literal segments, unescaping `\*` to `*` within each. leadingStar and
// trailingStar record whether an unescaped `*` opened or closed the
// pattern; runs of consecutive stars collapse to one.
func splitLikePattern(pattern string) (segments []string, leadingStar, trailingStar bool) {
	var cur strings.Builder
	runes := []rune(pattern)
	seenAny := false
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == '*' {
			cur.WriteRune('*')
			i++
			seenAny = true
			trailingStar = false
			continue
		}
		if runes[i] == '*' {
			if !seenAny {
				leadingStar = true
			}
			seenAny = true
			trailingStar = true
			if cur.Len() > 0 {
				segments = append(segments, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(runes[i])
		seenAny = true
		trailingStar = false
	}
	if cur.Len() > 0 {
		segments = append(segments, cur.String())
	}
	return segments, leadingStar, trailingStar
}

func matchSegments(s string, segments []string, leadingStar, trailingStar bool) bool {
	if len(segments) == 0 {
		// a star-only pattern matches anything; the empty pattern
		// matches only the empty string
		return leadingStar || s == ""
	}
	if !leadingStar {
		if !strings.HasPrefix(s, segments[0]) {
			return false
		}
		s = s[len(segments[0]):]
		segments = segments[1:]
		if len(segments) == 0 {
			return trailingStar || s == ""
		}
	}
	if !trailingStar {
		last := segments[len(segments)-1]
		if !strings.HasSuffix(s, last) {
			return false
		}
		s = s[:len(s)-len(last)]
		segments = segments[:len(segments)-1]
	}
	for _, seg := range segments {
		idx := strings.Index(s, seg)
		if idx < 0 {
			return false
		}
		s = s[idx+len(seg):]
	}
	return true
}

func (in *Interpreter) evalSetLiteral(n *ast.SetLiteral, depth int) (PartialValue, error) {
	elems := make([]PartialValue, 0, len(n.Elements))
	anyResidual := false
	for _, e := range n.Elements {
		v, err := in.eval(e, depth+1)
		if err != nil {
			return PartialValue{}, err
		}
		elems = append(elems, v)
		anyResidual = anyResidual || v.IsResidual()
	}
	if anyResidual {
		exprs := make([]ast.Expr, 0, len(elems))
		for _, e := range elems {
			exprs = append(exprs, exprOf(e))
		}
		return residual(ast.NewSetLiteral(exprs, n.Position())), nil
	}
	vals := make([]value.Value, 0, len(elems))
	for _, e := range elems {
		vals = append(vals, e.Value)
	}
	return concrete(value.NewSet(vals...)), nil
}

func (in *Interpreter) evalRecordLiteral(n *ast.RecordLiteral, depth int) (PartialValue, error) {
	fields := make([]PartialValue, 0, len(n.Entries))
	anyResidual := false
	for _, entry := range n.Entries {
		v, err := in.eval(entry.Value, depth+1)
		if err != nil {
			return PartialValue{}, err
		}
		fields = append(fields, v)
		anyResidual = anyResidual || v.IsResidual()
	}
	if anyResidual {
		entries := make([]ast.RecordEntry, 0, len(fields))
		for i, f := range fields {
			entries = append(entries, ast.RecordEntry{Key: n.Entries[i].Key, Value: exprOf(f)})
		}
		return residual(ast.NewRecordLiteral(entries, n.Position())), nil
	}
	keys := make([]string, 0, len(fields))
	vals := make([]value.Value, 0, len(fields))
	for i, f := range fields {
		keys = append(keys, n.Entries[i].Key)
		vals = append(vals, f.Value)
	}
	rec, err := value.NewRecord(keys, vals)
	if err != nil {
		return PartialValue{}, xerr.InvalidRestrictedExpression(err.Error())
	}
	return concrete(rec), nil
}
