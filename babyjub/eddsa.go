package babyjub

import (
	"math/big"

	"github.com/Fluidex/babyjubjub-go/curve"
	"github.com/Fluidex/babyjubjub-go/elog"
	"github.com/Fluidex/babyjubjub-go/hashadapter"
)

var (
	cofactorShift = uint(3) // multiplying by 8 clears the curve's cofactor.
	eightBig      = big.NewInt(8)
)

// SignMimc signs the field element m using EdDSA with the MiMC7 hash
// (spec.md §4.4).
func (sk PrivateKey) SignMimc(m *big.Int) (Signature, error) {
	return sk.signEddsa(m, hashadapter.MiMC7{})
}

// SignPoseidon signs the field element m using EdDSA with the Poseidon
// hash (spec.md §4.4).
func (sk PrivateKey) SignPoseidon(m *big.Int) (Signature, error) {
	return sk.signEddsa(m, hashadapter.Poseidon{})
}

func (sk PrivateKey) signEddsa(m *big.Int, h hashadapter.Hasher) (Signature, error) {
	pub, err := sk.Public()
	if err != nil {
		return Signature{}, err
	}

	// h = Blake2b(k); s_half = h[32:64]; r = BE(s_half || m) mod SUBORDER.
	hBlake := blake2bSum512(sk.key.Bytes())
	sHalf := hBlake[32:64]
	rBytes := append(append([]byte{}, sHalf...), m.Bytes()...)
	r := new(big.Int).Mod(new(big.Int).SetBytes(rBytes), curve.SUBORDER)

	r8, err := curve.B8.ScalarMul(r)
	if err != nil {
		return Signature{}, err
	}

	hm, err := h.Hash([]*big.Int{r8.X, r8.Y, pub.X, pub.Y, m})
	if err != nil {
		return Signature{}, err
	}

	kShifted := new(big.Int).Lsh(sk.key, cofactorShift)
	s := new(big.Int).Mul(hm, kShifted)
	s.Add(s, r)
	s.Mod(s, curve.SUBORDER)

	return Signature{R8: r8, S: s}, nil
}

// VerifyMimc verifies an EdDSA-MiMC7 signature. Any internal arithmetic
// failure is treated as rejection (spec.md §7).
func VerifyMimc(pk PublicKey, sig Signature, m *big.Int) bool {
	return verifyEddsa(pk, sig, m, hashadapter.MiMC7{})
}

// VerifyPoseidon verifies an EdDSA-Poseidon signature. Any internal
// arithmetic failure is treated as rejection (spec.md §7).
func VerifyPoseidon(pk PublicKey, sig Signature, m *big.Int) bool {
	return verifyEddsa(pk, sig, m, hashadapter.Poseidon{})
}

func verifyEddsa(pk PublicKey, sig Signature, m *big.Int, h hashadapter.Hasher) bool {
	log := elog.Logger()

	hm, err := h.Hash([]*big.Int{sig.R8.X, sig.R8.Y, pk.X, pk.Y, m})
	if err != nil {
		log.Debug().Err(err).Msg("eddsa verify: hash failed")
		return false
	}

	lhs, err := curve.B8.ScalarMul(sig.S)
	if err != nil {
		log.Debug().Err(err).Msg("eddsa verify: lhs scalar mul failed")
		return false
	}

	hm8 := new(big.Int).Mul(eightBig, hm)
	rhsTerm, err := pk.ScalarMul(hm8)
	if err != nil {
		log.Debug().Err(err).Msg("eddsa verify: rhs scalar mul failed")
		return false
	}
	rhs, err := sig.R8.Add(rhsTerm)
	if err != nil {
		log.Debug().Err(err).Msg("eddsa verify: rhs add failed")
		return false
	}

	ok := lhs.Equal(rhs)
	if !ok {
		log.Debug().Msg("eddsa verify: signature mismatch")
	}
	return ok
}
