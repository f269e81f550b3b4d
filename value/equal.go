// SPDX-License-Identifier: Apache-2.0

package value

// Equal is total across variants: cross-type comparisons are always
// false rather than a type error, so `==` is defined for every pair of
// values.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case EntityUID:
		bv, ok := b.(EntityUID)
		return ok && av == bv
	case *Set:
		bv, ok := b.(*Set)
		return ok && av.equal(bv)
	case *Record:
		bv, ok := b.(*Record)
		return ok && av.equal(bv)
	case Extension:
		bv, ok := b.(Extension)
		return ok && av.Name == bv.Name && av.Payload.Equal(bv.Payload)
	default:
		return false
	}
}

// hashOf computes a content hash for any runtime Value, used by Set
// de-duplication and as a fast pre-check ahead of exact Equal.
func hashOf(v Value) (uint64, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return hashStrings("bool", "true")
		}
		return hashStrings("bool", "false")
	case int64:
		return hashstructureInt64(t)
	case string:
		return hashStrings("string", t)
	case EntityUID:
		return t.Hash()
	case *Set:
		return t.Hash()
	case *Record:
		return t.Hash()
	case Extension:
		return hashStrings("extension", t.Name, t.Payload.String())
	default:
		return 0, errUnhashable(v)
	}
}
