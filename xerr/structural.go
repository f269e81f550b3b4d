// SPDX-License-Identifier: Apache-2.0

package xerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Structural errors are raised while constructing a PolicySet or
// Entities, never during evaluation — they are hard failures the
// caller must handle before authorization can run at all.

type structuralKind struct{ what string }

func (e structuralKind) Error() string { return e.what }

func ErrDuplicatePolicyID(id string) error {
	return errors.Wrapf(structuralKind{"duplicate policy id"}, "%q", id)
}

func ErrDuplicateEntityUID(uid fmt.Stringer) error {
	return errors.Wrapf(structuralKind{"duplicate entity uid"}, "%s", uid)
}

func ErrDuplicateRecordKey(key string) error {
	return errors.Wrapf(structuralKind{"duplicate record/context key"}, "%q", key)
}

func ErrUnlinkedSlotAtConstruction(policyID, slot string) error {
	return errors.Wrapf(structuralKind{"template has unlinked slot"}, "policy %q, slot %q", policyID, slot)
}

func ErrTemplateLinkCollision(id string) error {
	return errors.Wrapf(structuralKind{"linked policy id collides with an existing policy"}, "%q", id)
}

func ErrDuplicateExtension(name string) error {
	return errors.Wrapf(structuralKind{"duplicate extension function name"}, "%q", name)
}
