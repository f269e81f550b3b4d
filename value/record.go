// SPDX-License-Identifier: Apache-2.0

package value

import "fmt"

// Record is an insertion-ordered mapping from attribute name to Value.
// Keys are unique: building a Record with a duplicate key is a
// construction-time error, never silently resolved by last-write-wins.
type Record struct {
	keys []string
	vals map[string]Value
}

// NewRecord builds a Record from keys/vals in declaration order. It
// returns an error if keys contains a duplicate.
func NewRecord(keys []string, vals []Value) (*Record, error) {
	if len(keys) != len(vals) {
		return nil, fmt.Errorf("value: record keys/values length mismatch (%d keys, %d values)", len(keys), len(vals))
	}
	r := &Record{keys: make([]string, 0, len(keys)), vals: make(map[string]Value, len(keys))}
	for i, k := range keys {
		if _, dup := r.vals[k]; dup {
			return nil, fmt.Errorf("value: duplicate record key %q", k)
		}
		r.keys = append(r.keys, k)
		r.vals[k] = vals[i]
	}
	return r, nil
}

// MustNewRecord panics on a duplicate key; for use with literal,
// known-good key sets (e.g. building the request context in tests).
func MustNewRecord(keys []string, vals []Value) *Record {
	r, err := NewRecord(keys, vals)
	if err != nil {
		panic(err)
	}
	return r
}

// EmptyRecord is the record with no attributes.
func EmptyRecord() *Record { return &Record{vals: map[string]Value{}} }

// Has reports whether attr is present.
func (r *Record) Has(attr string) bool {
	_, ok := r.vals[attr]
	return ok
}

// Get returns the value of attr and whether it was present.
func (r *Record) Get(attr string) (Value, bool) {
	v, ok := r.vals[attr]
	return v, ok
}

// Keys returns attribute names in declaration order. Callers must not
// mutate the returned slice.
func (r *Record) Keys() []string { return r.keys }

// Len returns the number of attributes.
func (r *Record) Len() int { return len(r.keys) }

func (r *Record) equal(o *Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for k, v := range r.vals {
		ov, ok := o.vals[k]
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}

// Hash implements hashstructure.Hashable. Order-independent over keys,
// matching the "iteration order unspecified but deterministic" record
// equality contract.
func (r *Record) Hash() (uint64, error) {
	hashes := make([]uint64, 0, len(r.keys))
	for _, k := range r.keys {
		vh, err := hashOf(r.vals[k])
		if err != nil {
			return 0, err
		}
		kh, err := hashStrings(k)
		if err != nil {
			return 0, err
		}
		combined, err := combineHashes(kh, vh)
		if err != nil {
			return 0, err
		}
		hashes = append(hashes, combined)
	}
	insertionSort(hashes)
	return combineHashes(hashes...)
}
