// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// hashStrings hashes a tuple of strings deterministically. Used by the
// Hashable implementations below so EntityUID/Set/Record/Extension all
// hash by logical content, not by Go's in-memory representation.
func hashStrings(parts ...string) (uint64, error) {
	return hashstructure.Hash(parts, hashstructure.FormatV2, nil)
}

// combineHashes folds a sequence of child hashes into one, order-sensitive
// so callers that need order-independent combination (Set) sort first.
func combineHashes(hs ...uint64) (uint64, error) {
	return hashstructure.Hash(hs, hashstructure.FormatV2, nil)
}

func hashstructureInt64(i int64) (uint64, error) {
	return hashstructure.Hash(i, hashstructure.FormatV2, nil)
}

func errUnhashable(v Value) error {
	return fmt.Errorf("value: cannot hash value of type %T", v)
}
