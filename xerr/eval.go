// SPDX-License-Identifier: Apache-2.0

// Package xerr defines the evaluator's structured error taxonomy and
// the separate, disjoint taxonomy of construction-time structural
// errors. Evaluation errors are attached to per-policy diagnostics and
// never propagate as control-flow failures out of the authorizer;
// structural errors are hard failures raised while building a
// PolicySet or Entities.
package xerr

import (
	"fmt"
	"strings"

	"github.com/policycore/engine/tokens"
	"github.com/policycore/engine/value"
)

// Kind is one evaluation-error variant. Each carries its own
// machine-readable Code and builds its own human-readable message via
// Error().
type Kind interface {
	error
	Code() string
}

// EvaluationError pairs an error Kind with optional advice, mirroring
// the upstream evaluator's practice of attaching a short "how to fix
// this" hint distinct from the error message itself. Position is
// optional source-span decoration, filled in by the evaluator as the
// error unwinds back through the node that raised it.
type EvaluationError struct {
	Kind     Kind
	Advice   string
	Position tokens.Range
}

func (e *EvaluationError) Error() string {
	msg := e.Kind.Error()
	if e.Advice != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Advice)
	}
	if !e.Position.IsZero() {
		msg = fmt.Sprintf("%s: %s", e.Position, msg)
	}
	return msg
}

func (e *EvaluationError) Code() string { return e.Kind.Code() }

func (e *EvaluationError) Unwrap() error { return e.Kind }

// At records pos as the error's source position, unless one is already
// set — the innermost node on the unwind path wins, since that is where
// the error actually originated.
func (e *EvaluationError) At(pos tokens.Range) *EvaluationError {
	if e.Position.IsZero() {
		e.Position = pos
	}
	return e
}

func wrap(k Kind) *EvaluationError { return &EvaluationError{Kind: k} }

// --- EntityDoesNotExist ---

type entityDoesNotExist struct{ UID value.EntityUID }

func (k entityDoesNotExist) Error() string { return fmt.Sprintf("entity `%s` does not exist", k.UID) }
func (k entityDoesNotExist) Code() string  { return "entityDoesNotExist" }

func EntityDoesNotExist(uid value.EntityUID) *EvaluationError {
	return wrap(entityDoesNotExist{UID: uid})
}

// --- EntityAttrDoesNotExist ---

type entityAttrDoesNotExist struct {
	Entity value.EntityUID
	Attr   string
}

func (k entityAttrDoesNotExist) Error() string {
	return fmt.Sprintf("`%s` does not have the attribute `%s`", k.Entity, k.Attr)
}
func (k entityAttrDoesNotExist) Code() string { return "entityAttrDoesNotExist" }

func EntityAttrDoesNotExist(entity value.EntityUID, attr string) *EvaluationError {
	return wrap(entityAttrDoesNotExist{Entity: entity, Attr: attr})
}

// --- UnspecifiedEntityAccess ---

type unspecifiedEntityAccess struct{ Attr string }

func (k unspecifiedEntityAccess) Error() string {
	return fmt.Sprintf("cannot access attribute `%s` of unspecified entity", k.Attr)
}
func (k unspecifiedEntityAccess) Code() string { return "unspecifiedEntityAccess" }

func UnspecifiedEntityAccess(attr string) *EvaluationError {
	return wrap(unspecifiedEntityAccess{Attr: attr})
}

// --- RecordAttrDoesNotExist ---

type recordAttrDoesNotExist struct {
	Attr         string
	Alternatives []string
}

func (k recordAttrDoesNotExist) Error() string {
	return fmt.Sprintf("record does not have the attribute `%s`", k.Attr)
}
func (k recordAttrDoesNotExist) Code() string { return "recordAttrDoesNotExist" }

func RecordAttrDoesNotExist(attr string, alternatives []string) *EvaluationError {
	e := wrap(recordAttrDoesNotExist{Attr: attr, Alternatives: alternatives})
	e.Advice = fmt.Sprintf("available attributes: [%s]", strings.Join(alternatives, ", "))
	return e
}

// --- TypeError ---

type typeError struct {
	Expected []value.Type
	Actual   value.Type
}

func (k typeError) Error() string {
	if len(k.Expected) == 1 {
		return fmt.Sprintf("type error: expected %s, got %s", k.Expected[0], k.Actual)
	}
	parts := make([]string, len(k.Expected))
	for i, t := range k.Expected {
		parts[i] = t.String()
	}
	return fmt.Sprintf("type error: expected one of [%s], got %s", strings.Join(parts, ", "), k.Actual)
}
func (k typeError) Code() string { return "typeError" }

// TypeError reports that actual did not match any of expected. expected
// must be non-empty.
func TypeError(expected []value.Type, actual value.Type) *EvaluationError {
	return wrap(typeError{Expected: expected, Actual: actual})
}

// TypeErrorSingle is TypeError for the common single-expected-type case.
func TypeErrorSingle(expected value.Type, actual value.Type) *EvaluationError {
	return TypeError([]value.Type{expected}, actual)
}

// --- WrongNumArguments ---

type wrongNumArguments struct {
	Fn       string
	Expected int
	Actual   int
}

func (k wrongNumArguments) Error() string {
	return fmt.Sprintf("wrong number of arguments provided to extension function `%s`: expected %d, got %d", k.Fn, k.Expected, k.Actual)
}
func (k wrongNumArguments) Code() string { return "wrongNumArguments" }

func WrongNumArguments(fn string, expected, actual int) *EvaluationError {
	return wrap(wrongNumArguments{Fn: fn, Expected: expected, Actual: actual})
}

// --- IntegerOverflow ---

type overflowBinaryOp struct {
	Op         string
	Arg1, Arg2 value.Value
}

func (k overflowBinaryOp) Error() string {
	return fmt.Sprintf("integer overflow while attempting to %s the values `%s` and `%s`", k.Op, value.Display(k.Arg1), value.Display(k.Arg2))
}
func (k overflowBinaryOp) Code() string { return "integerOverflow.binaryOp" }

// OverflowBinaryOp reports overflow in +, - or * (op is "add",
// "subtract", or "multiply"; the last only when neither operand is a
// literal, see OverflowMultiplication).
func OverflowBinaryOp(op string, arg1, arg2 value.Value) *EvaluationError {
	return wrap(overflowBinaryOp{Op: op, Arg1: arg1, Arg2: arg2})
}

type overflowMultiplication struct {
	Arg      value.Value
	Constant int64
}

func (k overflowMultiplication) Error() string {
	return fmt.Sprintf("integer overflow while attempting to multiply `%s` by `%d`", value.Display(k.Arg), k.Constant)
}
func (k overflowMultiplication) Code() string { return "integerOverflow.multiplication" }

// OverflowMultiplication reports overflow in *, where constant is the
// literal operand (distinguished from OverflowBinaryOp for diagnostics).
func OverflowMultiplication(arg value.Value, constant int64) *EvaluationError {
	return wrap(overflowMultiplication{Arg: arg, Constant: constant})
}

type overflowUnaryOp struct {
	Op  string
	Arg value.Value
}

func (k overflowUnaryOp) Error() string {
	return fmt.Sprintf("integer overflow while attempting to %s the value `%s`", k.Op, value.Display(k.Arg))
}
func (k overflowUnaryOp) Code() string { return "integerOverflow.unaryOp" }

// OverflowUnaryOp reports overflow in unary negation (op is "negate").
func OverflowUnaryOp(op string, arg value.Value) *EvaluationError {
	return wrap(overflowUnaryOp{Op: op, Arg: arg})
}

// --- FailedExtensionFunctionLookup ---

type failedExtensionFunctionLookup struct{ Name string }

func (k failedExtensionFunctionLookup) Error() string {
	return fmt.Sprintf("failed to resolve extension function `%s`", k.Name)
}
func (k failedExtensionFunctionLookup) Code() string { return "failedExtensionFunctionLookup" }

func FailedExtensionFunctionLookup(name string) *EvaluationError {
	return wrap(failedExtensionFunctionLookup{Name: name})
}

// --- FailedExtensionFunctionApplication ---

type failedExtensionFunctionApplication struct {
	Name string
	Msg  string
}

func (k failedExtensionFunctionApplication) Error() string {
	return fmt.Sprintf("error while evaluating `%s` extension function: %s", k.Name, k.Msg)
}
func (k failedExtensionFunctionApplication) Code() string {
	return "failedExtensionFunctionApplication"
}

func FailedExtensionFunctionApplication(name, msg string) *EvaluationError {
	return wrap(failedExtensionFunctionApplication{Name: name, Msg: msg})
}

// --- InvalidRestrictedExpression ---

type invalidRestrictedExpression struct{ Reason string }

func (k invalidRestrictedExpression) Error() string {
	return fmt.Sprintf("invalid restricted expression: %s", k.Reason)
}
func (k invalidRestrictedExpression) Code() string { return "invalidRestrictedExpression" }

func InvalidRestrictedExpression(reason string) *EvaluationError {
	return wrap(invalidRestrictedExpression{Reason: reason})
}

// --- UnlinkedSlot ---

type unlinkedSlot struct{ ID string }

func (k unlinkedSlot) Error() string { return fmt.Sprintf("template slot `%s` was not linked", k.ID) }
func (k unlinkedSlot) Code() string  { return "unlinkedSlot" }

func UnlinkedSlot(id string) *EvaluationError {
	return wrap(unlinkedSlot{ID: id})
}

// --- NonValue ---

type nonValue struct{ Expr string }

func (k nonValue) Error() string {
	return fmt.Sprintf("the expression contains unknown(s): `%s`", k.Expr)
}
func (k nonValue) Code() string { return "nonValue" }

// NonValue reports that total-mode evaluation hit an Unknown leaf.
// exprText is the offending (sub-)expression's display text.
func NonValue(exprText string) *EvaluationError {
	e := wrap(nonValue{Expr: exprText})
	e.Advice = "consider using the partial evaluation APIs"
	return e
}

// --- RecursionLimit ---

type recursionLimit struct{}

func (k recursionLimit) Error() string { return "recursion limit reached" }
func (k recursionLimit) Code() string  { return "recursionLimit" }

func RecursionLimit() *EvaluationError {
	return wrap(recursionLimit{})
}
