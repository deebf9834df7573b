// Package hashadapter declares the boundary between this library and the
// two circuit-friendly hash families it depends on, MiMC7 and Poseidon.
// Their internals are out of scope for this library (spec.md, "Out of
// scope"); they are treated here as opaque collaborators behind a small
// interface, backed by the reference implementations in
// github.com/iden3/go-iden3-crypto.
package hashadapter

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/mimc7"
	"github.com/iden3/go-iden3-crypto/poseidon"
)

// Hasher hashes an ordered list of field elements down to one field
// element.
type Hasher interface {
	Hash(elems []*big.Int) (*big.Int, error)
}

// ByteHasher hashes an arbitrary byte string down to one field element.
// Only Poseidon is used this way by this library (see spec.md §4.5's
// hash_sig/hash_agg).
type ByteHasher interface {
	HashBytes(data []byte) (*big.Int, error)
}

var mimcKey = big.NewInt(0)

// MiMC7 wraps the iden3 MiMC7 implementation.
type MiMC7 struct{}

// Hash implements Hasher.
func (MiMC7) Hash(elems []*big.Int) (*big.Int, error) {
	return mimc7.Hash(elems, mimcKey)
}

// Poseidon wraps the iden3 Poseidon implementation, exposing both the
// field-element and byte-string hashing entry points spec.md §4.3 requires.
type Poseidon struct{}

// Hash implements Hasher.
func (Poseidon) Hash(elems []*big.Int) (*big.Int, error) {
	return poseidon.Hash(elems)
}

// HashBytes implements ByteHasher.
func (Poseidon) HashBytes(data []byte) (*big.Int, error) {
	return poseidon.HashBytes(data)
}
