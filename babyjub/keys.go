// Package babyjub implements key generation, EdDSA signing/verification
// (MiMC7 and Poseidon variants), and single/aggregated Schnorr signing over
// the Baby Jubjub curve. It is adapted from the teacher's native EdDSA
// implementation (crypto/signature/eddsa/bn256/eddsa.go), generalized from
// a single gurvy-backed curve to the Baby Jubjub curve/field packages and
// from a single signing scheme to the three schemes spec.md §4.4 requires.
package babyjub

import (
	"crypto/rand"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/Fluidex/babyjubjub-go/curve"
)

// oneThousandTwentyFourBits bounds the 1024-bit seeds used for key and
// nonce generation (spec.md §4.4, §4.5).
var oneThousandTwentyFourBits = new(big.Int).Lsh(big.NewInt(1), 1024)

// PrivateKey is a scalar derived from a random seed by Blake2b-512 and
// RFC 8032-style bit clamping (spec.md §4.4). It is never serialized by
// this package.
type PrivateKey struct {
	key *big.Int
}

// PublicKey is a point on the curve equal to PrivateKey.key * B8.
type PublicKey struct {
	curve.Point
}

// NewKey samples a fresh random private key.
func NewKey() (PrivateKey, error) {
	seed, err := rand.Int(rand.Reader, oneThousandTwentyFourBits)
	if err != nil {
		return PrivateKey{}, err
	}
	return privateKeyFromSeed(seed)
}

func privateKeyFromSeed(seed *big.Int) (PrivateKey, error) {
	h := blake2b.Sum512(seed.Bytes())

	h[0] &= 0xF8
	h[31] &= 0x7F
	h[31] |= 0x40

	k := new(big.Int).SetBytes(reverseBytes(h[:]))
	return PrivateKey{key: k}, nil
}

// Public computes and returns the public key associated with sk.
func (sk PrivateKey) Public() (PublicKey, error) {
	p, err := curve.B8.ScalarMul(sk.key)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{Point: p}, nil
}

// randomNonce samples a fresh 1024-bit scalar for use as a Schnorr nonce
// (SignSchnorr, CalcRi). EdDSA signing does not use it; its nonce is
// derived deterministically from the private key.
func randomNonce() (*big.Int, error) {
	return rand.Int(rand.Reader, oneThousandTwentyFourBits)
}

// blake2bSum512 returns the Blake2b-512 digest of data as a slice, for
// callers that need to slice into it (SignMimc/SignPoseidon use the upper
// half as a blinding factor).
func blake2bSum512(data []byte) []byte {
	h := blake2b.Sum512(data)
	return h[:]
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// MarshalCBOR encodes pk's compressed form for embedding in a larger
// CBOR-encoded protocol envelope.
func (pk PublicKey) MarshalCBOR() ([]byte, error) {
	c := pk.Compress()
	return cbor.Marshal(c)
}

// UnmarshalCBOR decodes a public key previously produced by MarshalCBOR.
func (pk *PublicKey) UnmarshalCBOR(data []byte) error {
	var c [32]byte
	if err := cbor.Unmarshal(data, &c); err != nil {
		return err
	}
	p, err := curve.Decompress(c)
	if err != nil {
		return err
	}
	pk.Point = p
	return nil
}
