// This file implements the multi-party public-key/nonce aggregation and
// aggregated-Schnorr verification from spec.md §4.5, following the
// two-round interactive scheme of Maxwell, Poelstra, Seurin & Wuille,
// "Simple Schnorr Multi-Signatures with Applications to Bitcoin".
package babyjub

import (
	"math/big"

	"github.com/Fluidex/babyjubjub-go/curve"
	"github.com/Fluidex/babyjubjub-go/elog"
	"github.com/Fluidex/babyjubjub-go/hashadapter"
)

// hashSig computes H(compress(P) || compress(R) || m) with Poseidon, the
// c value shared by both single and aggregated Schnorr verification.
func hashSig(p curve.Point, m []byte, r curve.Point) (*big.Int, error) {
	pc := p.Compress()
	rc := r.Compress()
	buf := make([]byte, 0, 64+len(m))
	buf = append(buf, pc[:]...)
	buf = append(buf, rc[:]...)
	buf = append(buf, m...)

	var poseidon hashadapter.Poseidon
	return poseidon.HashBytes(buf)
}

// hashAgg computes H(L || compress(X_i)) with Poseidon, the per-signer
// weight used when aggregating public keys.
func hashAgg(l []byte, xi curve.Point) (*big.Int, error) {
	xic := xi.Compress()
	buf := make([]byte, 0, len(l)+32)
	buf = append(buf, l...)
	buf = append(buf, xic[:]...)

	var poseidon hashadapter.Poseidon
	return poseidon.HashBytes(buf)
}

// HashSig exposes hash_sig from spec.md §4.5 as public API so verifiers and
// signers built outside this package can reproduce the challenge.
func HashSig(p curve.Point, m []byte, r curve.Point) (*big.Int, error) {
	return hashSig(p, m, r)
}

// HashAgg exposes hash_agg from spec.md §4.5.
func HashAgg(l []byte, xi curve.Point) (*big.Int, error) {
	return hashAgg(l, xi)
}

// SignAggr produces this signer's partial signature s_i over the
// aggregated public key x, aggregated nonce r, this signer's secret nonce
// scalar ki, the concatenated-public-keys list l, and message m
// (spec.md §4.4's "Partial sign for aggregation").
func (sk PrivateKey) SignAggr(x curve.Point, r curve.Point, ki *big.Int, l []byte, m []byte) (*big.Int, error) {
	pub, err := sk.Public()
	if err != nil {
		return nil, err
	}

	ai, err := hashAgg(l, pub.Point)
	if err != nil {
		return nil, err
	}

	c, err := hashSig(x, m, r)
	if err != nil {
		return nil, err
	}

	si := new(big.Int).Mul(c, ai)
	si.Mul(si, sk.key)
	si.Add(si, ki)
	si.Mod(si, curve.Q)

	return si, nil
}

// AggrPks aggregates n signers' public keys and pre-generated nonce points
// into a single public key X, a single nonce point R, and the concatenated
// public-key list L (spec.md §4.5, "Public-key and nonce aggregation").
// pks and ris must have the same, non-zero length.
func AggrPks(pks []PublicKey, ris []curve.Point) (x curve.Point, r curve.Point, l []byte, err error) {
	l = make([]byte, 0, 32*len(pks))
	for _, pk := range pks {
		c := pk.Compress()
		l = append(l, c[:]...)
	}

	a0, err := hashAgg(l, pks[0].Point)
	if err != nil {
		return curve.Point{}, curve.Point{}, nil, err
	}
	x, err = pks[0].ScalarMul(a0)
	if err != nil {
		return curve.Point{}, curve.Point{}, nil, err
	}
	for i := 1; i < len(pks); i++ {
		ai, err := hashAgg(l, pks[i].Point)
		if err != nil {
			return curve.Point{}, curve.Point{}, nil, err
		}
		term, err := pks[i].ScalarMul(ai)
		if err != nil {
			return curve.Point{}, curve.Point{}, nil, err
		}
		x, err = x.Add(term)
		if err != nil {
			return curve.Point{}, curve.Point{}, nil, err
		}
	}

	r = ris[0]
	for i := 1; i < len(ris); i++ {
		r, err = r.Add(ris[i])
		if err != nil {
			return curve.Point{}, curve.Point{}, nil, err
		}
	}

	return x, r, l, nil
}

// AggrSignatures sums n signers' partial signatures mod Q.
func AggrSignatures(sigs []*big.Int) *big.Int {
	s := big.NewInt(0)
	for _, si := range sigs {
		s.Add(s, si)
	}
	return new(big.Int).Mod(s, curve.Q)
}

// VerifySchnorrAggregated verifies an aggregated Schnorr signature against
// the aggregated public key x, aggregated nonce r, summed scalar s, and
// message m (spec.md §4.5).
func VerifySchnorrAggregated(x curve.Point, r curve.Point, s *big.Int, m []byte) bool {
	log := elog.Logger()

	lhs, err := curve.B8.ScalarMul(s)
	if err != nil {
		log.Debug().Err(err).Msg("aggregated schnorr verify: lhs scalar mul failed")
		return false
	}

	c, err := hashSig(x, m, r)
	if err != nil {
		log.Debug().Err(err).Msg("aggregated schnorr verify: hash_sig failed")
		return false
	}

	xC, err := x.ScalarMul(c)
	if err != nil {
		log.Debug().Err(err).Msg("aggregated schnorr verify: x*c failed")
		return false
	}
	rhs, err := r.Add(xC)
	if err != nil {
		log.Debug().Err(err).Msg("aggregated schnorr verify: r+x*c failed")
		return false
	}

	ok := lhs.Equal(rhs)
	if !ok {
		log.Debug().Msg("aggregated schnorr verify: signature mismatch")
	}
	return ok
}
