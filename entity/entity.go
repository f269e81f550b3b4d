// SPDX-License-Identifier: Apache-2.0

// Package entity holds the entity store the evaluator consults for
// attribute access and hierarchy ("in") checks: a closed map from
// EntityUID to its attributes and transitively-closed ancestor set.
package entity

import (
	"github.com/policycore/engine/value"
	"github.com/policycore/engine/xerr"
)

// Entity is one node of the store: its attribute record and its full
// set of ancestors (parents, grandparents, and so on). Callers are
// responsible for passing in the transitive closure; this package never
// walks parent edges on its own, since the store has no notion of a
// "direct parent" distinct from "ancestor".
type Entity struct {
	UID       value.EntityUID
	Attrs     *value.Record
	Ancestors map[value.EntityUID]struct{}
}

// IsAncestorOf reports whether candidate is in e's ancestor set.
func (e Entity) IsAncestorOf(candidate value.EntityUID) bool {
	_, ok := e.Ancestors[candidate]
	return ok
}

// Entities is the full store passed into every authorization request.
type Entities struct {
	byUID    map[value.EntityUID]Entity
	residual map[value.EntityUID]struct{}
}

// New builds a store from a list of entities, rejecting duplicate UIDs.
func New(entities ...Entity) (*Entities, error) {
	es := &Entities{byUID: make(map[value.EntityUID]Entity, len(entities))}
	for _, e := range entities {
		if _, ok := es.byUID[e.UID]; ok {
			return nil, xerr.ErrDuplicateEntityUID(e.UID)
		}
		es.byUID[e.UID] = e
	}
	return es, nil
}

// NewWithResidual is New plus a set of UIDs the partial evaluator should
// treat as present-but-unknown: attribute reads and `has` checks against
// them yield a residual instead of a concrete value or error, even
// though the store has no attrs/ancestors recorded for them. It has no
// effect on total-mode evaluation, which never consults residual marks.
func NewWithResidual(entities []Entity, residualUIDs []value.EntityUID) (*Entities, error) {
	es, err := New(entities...)
	if err != nil {
		return nil, err
	}
	es.residual = make(map[value.EntityUID]struct{}, len(residualUIDs))
	for _, uid := range residualUIDs {
		es.residual[uid] = struct{}{}
	}
	return es, nil
}

// IsResidual reports whether uid was marked residual via
// NewWithResidual. Only meaningful in partial-mode evaluation.
func (es *Entities) IsResidual(uid value.EntityUID) bool {
	_, ok := es.residual[uid]
	return ok
}

// Empty returns a store with no entities, valid for requests that only
// reference the Unspecified principal/resource or entities entirely
// described by the request's own literals.
func Empty() *Entities {
	return &Entities{byUID: map[value.EntityUID]Entity{}}
}

// Get looks up uid, reporting whether it exists. A request referencing
// an entity uid that is not in the store is not itself an error — it is
// up to callers (attribute access, `in`) to decide what a missing
// entity means for their own operation.
func (es *Entities) Get(uid value.EntityUID) (Entity, bool) {
	e, ok := es.byUID[uid]
	return e, ok
}

// Attr fetches an attribute of uid. A missing entity raises
// EntityDoesNotExist; a present entity missing the named attribute
// raises EntityAttrDoesNotExist.
func (es *Entities) Attr(uid value.EntityUID, attr string) (value.Value, error) {
	e, ok := es.Get(uid)
	if !ok {
		return nil, xerr.EntityDoesNotExist(uid)
	}
	v, ok := e.Attrs.Get(attr)
	if !ok {
		return nil, xerr.EntityAttrDoesNotExist(uid, attr)
	}
	return v, nil
}

// HasAttr reports whether uid exists and carries attr. A missing entity
// or a missing attribute both report false — `has` never errors.
func (es *Entities) HasAttr(uid value.EntityUID, attr string) bool {
	e, ok := es.Get(uid)
	if !ok {
		return false
	}
	return e.Attrs.Has(attr)
}

// In reports whether ancestor is in descendant's ancestor set. A
// descendant absent from the store is treated as having no ancestors:
// `in` evaluates to false rather than erroring, matching Cedar's own
// "referencing an entity that doesn't exist in the store is not itself
// an error" behavior.
func (es *Entities) In(descendant, ancestor value.EntityUID) bool {
	if descendant == ancestor {
		return true
	}
	e, ok := es.Get(descendant)
	if !ok {
		return false
	}
	return e.IsAncestorOf(ancestor)
}
