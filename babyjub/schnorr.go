package babyjub

import (
	"math/big"

	"github.com/Fluidex/babyjubjub-go/curve"
	"github.com/Fluidex/babyjubjub-go/elog"
)

// SignSchnorr produces a single-signer Schnorr signature over the byte
// string m (spec.md §4.4). Unlike the EdDSA variants, s is NOT reduced
// modulo any order here (see SPEC_FULL.md §9, Open Question (i)); scalar
// multiplication in VerifySchnorr is well defined for any non-negative
// integer s.
func (sk PrivateKey) SignSchnorr(m []byte) (Signature, error) {
	kNonce, err := randomNonce()
	if err != nil {
		return Signature{}, err
	}

	r, err := curve.B8.ScalarMul(kNonce)
	if err != nil {
		return Signature{}, err
	}

	pub, err := sk.Public()
	if err != nil {
		return Signature{}, err
	}

	c, err := hashSig(pub.Point, m, r)
	if err != nil {
		return Signature{}, err
	}

	s := new(big.Int).Mul(sk.key, c)
	s.Add(s, kNonce)

	return Signature{R8: r, S: s}, nil
}

// VerifySchnorr verifies a single-signer Schnorr signature (spec.md §4.5).
func VerifySchnorr(pk PublicKey, m []byte, r curve.Point, s *big.Int) bool {
	log := elog.Logger()

	lhs, err := curve.B8.ScalarMul(s)
	if err != nil {
		log.Debug().Err(err).Msg("schnorr verify: lhs scalar mul failed")
		return false
	}

	c, err := hashSig(pk.Point, m, r)
	if err != nil {
		log.Debug().Err(err).Msg("schnorr verify: hash_sig failed")
		return false
	}

	pkC, err := pk.ScalarMul(c)
	if err != nil {
		log.Debug().Err(err).Msg("schnorr verify: pk*c failed")
		return false
	}
	rhs, err := r.Add(pkC)
	if err != nil {
		log.Debug().Err(err).Msg("schnorr verify: r+pk*c failed")
		return false
	}

	ok := lhs.Equal(rhs)
	if !ok {
		log.Debug().Msg("schnorr verify: signature mismatch")
	}
	return ok
}

// CalcRi samples a fresh nonce scalar and its associated curve point, the
// first round of the two-round aggregated Schnorr protocol (spec.md §4.5).
func CalcRi() (*big.Int, curve.Point, error) {
	k, err := randomNonce()
	if err != nil {
		return nil, curve.Point{}, err
	}
	r, err := curve.B8.ScalarMul(k)
	if err != nil {
		return nil, curve.Point{}, err
	}
	return k, r, nil
}
