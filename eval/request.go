// SPDX-License-Identifier: Apache-2.0

package eval

import "github.com/policycore/engine/value"

// Request is one authorization request: the four slots an evaluated
// policy condition ever reads directly. Principal/Action/Resource are
// optional — a nil field resolves to the Unspecified entity in total
// mode, or to an Unknown residual in partial mode. Context is never
// optional; construct it with value.EmptyRecord() if the caller has
// nothing to pass.
type Request struct {
	Principal *value.EntityUID
	Action    *value.EntityUID
	Resource  *value.EntityUID
	Context   *value.Record
}
