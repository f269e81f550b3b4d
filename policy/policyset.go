// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

// PolicySet is a collection of linked policies, keyed by id, with
// deterministic iteration order (first-added first). It grows only
// through Add and AddLinked; policies are never removed or replaced.
type PolicySet struct {
	byID  map[string]Policy
	order []string
}

// NewPolicySet builds a PolicySet from already-linked policies. A
// duplicate id among policies is a construction-time error, not an
// evaluation-time one.
func NewPolicySet(policies ...Policy) (*PolicySet, error) {
	ps := &PolicySet{byID: make(map[string]Policy, len(policies)), order: make([]string, 0, len(policies))}
	for _, p := range policies {
		if err := ps.add(p); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func (ps *PolicySet) add(p Policy) error {
	if _, exists := ps.byID[p.ID]; exists {
		return xerr.ErrDuplicatePolicyID(p.ID)
	}
	ps.byID[p.ID] = p
	ps.order = append(ps.order, p.ID)
	return nil
}

// AddLinked links t against principal/resource under newID and adds the
// result to ps, rejecting an id collision with any policy already in
// the set via ErrTemplateLinkCollision (distinct from the plain
// ErrDuplicatePolicyID raised by NewPolicySet/Add, since a collision
// against a template-linked id is specifically a re-linking mistake).
func (ps *PolicySet) AddLinked(t Template, newID string, principal, resource *value.EntityUID) error {
	if _, exists := ps.byID[newID]; exists {
		return xerr.ErrTemplateLinkCollision(newID)
	}
	p, err := t.Link(newID, principal, resource)
	if err != nil {
		return err
	}
	ps.byID[newID] = p
	ps.order = append(ps.order, newID)
	return nil
}

// Add inserts an already-linked policy, rejecting a duplicate id.
func (ps *PolicySet) Add(p Policy) error {
	return ps.add(p)
}

// Policies returns the set's policies in insertion order.
func (ps *PolicySet) Policies() []Policy {
	out := make([]Policy, 0, len(ps.order))
	for _, id := range ps.order {
		out = append(out, ps.byID[id])
	}
	return out
}

// Get looks up a policy by id.
func (ps *PolicySet) Get(id string) (Policy, bool) {
	p, ok := ps.byID[id]
	return p, ok
}

// Len reports the number of policies in the set.
func (ps *PolicySet) Len() int { return len(ps.order) }
