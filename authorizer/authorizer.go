// SPDX-License-Identifier: Apache-2.0

// Package authorizer combines a PolicySet's per-policy outcomes into a
// single allow/deny decision: forbid overrides permit, every policy is
// evaluated regardless of an earlier verdict, and evaluation errors are
// reported but never contribute to the decision itself.
package authorizer

import (
	"log/slog"

	"github.com/policycore/engine/config"
	"github.com/policycore/engine/entity"
	"github.com/policycore/engine/eval"
	"github.com/policycore/engine/extension"
	"github.com/policycore/engine/internal/log"
	"github.com/policycore/engine/policy"
)

// Decision is the final allow/deny verdict.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "Allow"
	}
	return "Deny"
}

// PolicyError pairs a policy id with the error its condition raised
// during evaluation.
type PolicyError struct {
	PolicyID string
	Err      error
}

func (e PolicyError) Error() string { return e.PolicyID + ": " + e.Err.Error() }

// Response is the result of IsAuthorized: the decision plus the
// policies that determined it and any errors encountered along the
// way. Errors is always populated regardless of Decision — an erroring
// policy never silently disappears just because some other policy
// produced a clean verdict.
type Response struct {
	Decision Decision
	Reason   []string
	Errors   []PolicyError
}

// Authorizer evaluates a PolicySet against a request and entity store.
// It is stateless and safe for concurrent use; all per-call state lives
// in the arguments and return value.
type Authorizer struct {
	registry       *extension.Registry
	logger         *slog.Logger
	recursionLimit int
}

// Option configures an Authorizer.
type Option func(*Authorizer)

// WithRegistry overrides the extension function registry used to
// evaluate policy conditions. Default is extension.Default().
func WithRegistry(reg *extension.Registry) Option {
	return func(a *Authorizer) { a.registry = reg }
}

// WithLogger overrides the logger used for per-request diagnostics.
// Default is log.New().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Authorizer) { a.logger = logger }
}

// WithConfig applies a loaded config.Config wholesale: its registry and
// recursion limit replace the defaults. This is the only way to set the
// Authorizer's recursion limit; the registry alone can also be set with
// WithRegistry.
func WithConfig(cfg *config.Config) Option {
	return func(a *Authorizer) {
		a.registry = cfg.Registry
		a.recursionLimit = cfg.RecursionLimit
	}
}

// New builds an Authorizer.
func New(opts ...Option) *Authorizer {
	a := &Authorizer{
		registry:       extension.Default(),
		logger:         log.New(),
		recursionLimit: eval.DefaultRecursionLimit(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IsAuthorized evaluates every policy in ps against req and entities,
// then combines the per-policy outcomes:
//
//  1. Partition satisfied policies into permits and forbids.
//  2. Any satisfied forbid -> Deny, reason is every satisfied forbid's id.
//  3. No satisfied forbid, at least one satisfied permit -> Allow, reason
//     is every satisfied permit's id.
//  4. Otherwise -> Deny, reason is empty (the default-deny case: no
//     policy applied).
//
// Every policy is evaluated regardless of any other policy's outcome;
// an evaluation error never affects the decision but is always
// reported in Errors.
func (a *Authorizer) IsAuthorized(req eval.Request, ps *policy.PolicySet, entities *entity.Entities) Response {
	var satisfiedPermits, satisfiedForbids []string
	var errs []PolicyError

	for _, p := range ps.Policies() {
		res := policy.Evaluate(p, req, entities, a.registry, eval.WithRecursionLimit(a.recursionLimit))
		switch res.Outcome {
		case policy.Satisfied:
			if p.Effect == policy.Forbid {
				satisfiedForbids = append(satisfiedForbids, p.ID)
			} else {
				satisfiedPermits = append(satisfiedPermits, p.ID)
			}
		case policy.Errored:
			errs = append(errs, PolicyError{PolicyID: p.ID, Err: res.Err})
			a.logger.Warn("policy evaluation errored", "policy_id", p.ID, "error", res.Err)
		case policy.NotSatisfied:
			// contributes nothing
		}
	}

	var resp Response
	switch {
	case len(satisfiedForbids) > 0:
		resp = Response{Decision: Deny, Reason: satisfiedForbids, Errors: errs}
	case len(satisfiedPermits) > 0:
		resp = Response{Decision: Allow, Reason: satisfiedPermits, Errors: errs}
	default:
		resp = Response{Decision: Deny, Reason: nil, Errors: errs}
	}

	a.logger.Debug("authorization decision",
		"decision", resp.Decision.String(), "reason", resp.Reason, "error_count", len(resp.Errors))
	return resp
}
