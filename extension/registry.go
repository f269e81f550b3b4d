// SPDX-License-Identifier: Apache-2.0

// Package extension implements Cedar's extension-function surface: typed
// values (ip, decimal) constructed and compared by functions registered
// under a name, dispatched the same way the evaluator dispatches any
// other extension-function call.
package extension

import (
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

// Func is one extension function. args are already-evaluated values; a
// Func never sees an unevaluated ast.Expr.
type Func func(args []value.Value) (value.Value, error)

// Signature pairs a Func with its fixed arity, so the registry can raise
// WrongNumArguments itself instead of every Func repeating the check.
type Signature struct {
	Arity int
	Call  Func
}

// Extension is a named bundle of functions sharing one extension type
// (e.g. "ip" contributes the ip(string) constructor plus isInRange,
// isLoopback, isMulticast, isIpv4, isIpv6).
type Extension struct {
	Name      string
	Functions map[string]Signature
}

// Registry dispatches extension-function calls by bare function name.
// Function names are not namespaced by extension, so no two registered
// extensions may expose the same function name, which NewRegistry
// enforces.
type Registry struct {
	funcs map[string]Signature
}

// NewRegistry builds a registry from a fixed extension list, as loaded
// from config.Config. Duplicate extension names are rejected; duplicate
// function names across extensions are rejected too, since dispatch is
// by bare function name.
func NewRegistry(extensions ...Extension) (*Registry, error) {
	r := &Registry{funcs: make(map[string]Signature)}
	seenExt := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		if _, ok := seenExt[ext.Name]; ok {
			return nil, xerr.ErrDuplicateExtension(ext.Name)
		}
		seenExt[ext.Name] = struct{}{}
		for name, sig := range ext.Functions {
			if _, ok := r.funcs[name]; ok {
				return nil, xerr.ErrDuplicateExtension(name)
			}
			r.funcs[name] = sig
		}
	}
	return r, nil
}

// Call dispatches name with already-evaluated args, checking arity
// before invoking the underlying Func.
func (r *Registry) Call(name string, args []value.Value) (value.Value, error) {
	sig, ok := r.funcs[name]
	if !ok {
		return nil, xerr.FailedExtensionFunctionLookup(name)
	}
	if sig.Arity != len(args) {
		return nil, xerr.WrongNumArguments(name, sig.Arity, len(args))
	}
	v, err := sig.Call(args)
	if err != nil {
		return nil, xerr.FailedExtensionFunctionApplication(name, err.Error())
	}
	return v, nil
}

// Lookup reports whether name is registered, without calling it.
// Validation layers check policies against the registry snapshot with
// this before any request is evaluated.
func (r *Registry) Lookup(name string) (Signature, bool) {
	sig, ok := r.funcs[name]
	return sig, ok
}

// Default returns a Registry carrying the built-in ip and decimal
// extensions. Callers needing a narrower or wider surface build their
// own Registry via NewRegistry.
func Default() *Registry {
	r, err := NewRegistry(IPExtension(), DecimalExtension())
	if err != nil {
		// the built-in extensions never collide; a panic here would be a
		// programming error in this package, not a caller mistake.
		panic(err)
	}
	return r
}
