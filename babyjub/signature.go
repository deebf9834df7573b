package babyjub

import (
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/Fluidex/babyjubjub-go/curve"
)

// Signature is an EdDSA-style (R, s) pair: R is a point on the curve and s
// a scalar (spec.md §3).
type Signature struct {
	R8 curve.Point
	S  *big.Int
}

// Compress encodes sig as 64 bytes: the 32-byte compressed R8, followed by
// the low 32 little-endian bytes of s, zero padded. s itself is not
// reduced mod any order (see DESIGN.md's Open Question notes on
// SignSchnorr), so it may be wider than 32 bytes here; only the low 32
// bytes are kept, matching the reference implementation's min-length copy.
func (sig Signature) Compress() [64]byte {
	var out [64]byte
	r := sig.R8.Compress()
	copy(out[:32], r[:])

	sBytes := sig.S.Bytes() // big-endian
	if len(sBytes) > 32 {
		sBytes = sBytes[len(sBytes)-32:]
	}
	for i, v := range sBytes {
		out[32+len(sBytes)-1-i] = v
	}
	return out
}

// DecompressSignature parses a 64-byte compressed signature.
func DecompressSignature(b [64]byte) (Signature, error) {
	var r [32]byte
	copy(r[:], b[:32])

	r8, err := curve.Decompress(r)
	if err != nil {
		return Signature{}, err
	}

	var sBytes [32]byte
	copy(sBytes[:], b[32:])
	s := new(big.Int).SetBytes(reverseBytes(sBytes[:]))

	return Signature{R8: r8, S: s}, nil
}

// cborSignature is the wire-shape used for CBOR encoding, since big.Int and
// curve.Point do not implement cbor.Marshaler themselves.
type cborSignature struct {
	R8 [32]byte
	S  []byte
}

// MarshalCBOR encodes sig for embedding in a larger CBOR-encoded protocol
// envelope, as an alternative to the raw 64-byte compression format.
func (sig Signature) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cborSignature{
		R8: sig.R8.Compress(),
		S:  sig.S.Bytes(),
	})
}

// UnmarshalCBOR decodes a signature previously produced by MarshalCBOR.
func (sig *Signature) UnmarshalCBOR(data []byte) error {
	var wire cborSignature
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return err
	}
	r8, err := curve.Decompress(wire.R8)
	if err != nil {
		return err
	}
	sig.R8 = r8
	sig.S = new(big.Int).SetBytes(wire.S)
	return nil
}
