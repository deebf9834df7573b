// Package field implements the modular arithmetic primitives shared by the
// Baby Jubjub curve and scalar operations: canonical reduction, modular
// inverse via the extended Euclidean algorithm, and modular square root via
// Tonelli-Shanks. Big-integer arithmetic itself (Add/Mul/Mod/...) is taken
// as a given collaborator from math/big; this package only implements the
// number-theoretic algorithms built on top of it.
package field

import "math/big"

// Modulus returns the canonical non-negative residue of a mod m, i.e. a
// value in [0, m). The result is in [0, m) for negative a as well.
func Modulus(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// ModInverse returns the multiplicative inverse of a modulo m using the
// extended Euclidean algorithm. It returns ErrNotInvertible if gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	aa := Modulus(a, m)

	// Extended Euclidean algorithm: track (old_r, r) and (old_s, s) such
	// that old_r = old_s*a (mod m) at every step.
	oldR, r := new(big.Int).Set(aa), new(big.Int).Set(m)
	oldS, s := big.NewInt(1), big.NewInt(0)

	quotient := new(big.Int)
	tmp := new(big.Int)

	for r.Sign() != 0 {
		quotient.Div(oldR, r)

		oldR, r = r, tmp.Sub(oldR, tmp.Mul(quotient, r))
		tmp = new(big.Int)

		newS := new(big.Int).Sub(oldS, new(big.Int).Mul(quotient, s))
		oldS, s = s, newS
	}

	// oldR now holds gcd(a, m); invertible iff it is 1 (or -1).
	gcd := new(big.Int).Abs(oldR)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotInvertible
	}

	return Modulus(oldS, m), nil
}

// ModSqrt returns a square root of a modulo p using Tonelli-Shanks. It
// returns ErrNotAQuadraticResidue if a has no square root mod p. p is
// expected to be an odd prime; Baby Jubjub's Q satisfies p = 1 (mod 4),
// which this implementation handles without a specialized fast path.
//
// When two roots exist (x and p-x), the root returned is whichever
// Tonelli-Shanks happens to produce first; callers that need a canonical
// root (e.g. curve point decompression) select between x and p-x using an
// external sign convention.
func ModSqrt(a, p *big.Int) (*big.Int, error) {
	aa := Modulus(a, p)

	zero := big.NewInt(0)
	one := big.NewInt(1)
	two := big.NewInt(2)

	if aa.Cmp(zero) == 0 {
		return big.NewInt(0), nil
	}

	if !isQuadraticResidue(aa, p) {
		return nil, ErrNotAQuadraticResidue
	}

	// Factor p-1 = q * 2^s with q odd.
	pMinus1 := new(big.Int).Sub(p, one)
	q := new(big.Int).Set(pMinus1)
	s := 0
	for new(big.Int).Mod(q, two).Sign() == 0 {
		q.Div(q, two)
		s++
	}

	if s == 1 {
		// p = 3 (mod 4): x = a^((p+1)/4) mod p.
		exp := new(big.Int).Add(p, one)
		exp.Div(exp, big.NewInt(4))
		return new(big.Int).Exp(aa, exp, p), nil
	}

	// Find a quadratic non-residue z.
	z := big.NewInt(2)
	for isQuadraticResidue(z, p) {
		z.Add(z, one)
	}

	m := big.NewInt(int64(s))
	c := new(big.Int).Exp(z, q, p)
	qPlus1Over2 := new(big.Int).Add(q, one)
	qPlus1Over2.Div(qPlus1Over2, two)
	t := new(big.Int).Exp(aa, q, p)
	r := new(big.Int).Exp(aa, qPlus1Over2, p)

	for t.Cmp(one) != 0 {
		// Find the least i, 0 < i < m, such that t^(2^i) = 1.
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 {
			tt.Mul(tt, tt)
			tt.Mod(tt, p)
			i++
			if int64(i) == m.Int64() {
				return nil, ErrNotAQuadraticResidue
			}
		}

		// b = c^(2^(m-i-1))
		exp := new(big.Int).Lsh(one, uint(m.Int64()-int64(i)-1))
		b := new(big.Int).Exp(c, exp, p)

		m = big.NewInt(int64(i))
		c = new(big.Int).Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}

	return r, nil
}

func isQuadraticResidue(a, p *big.Int) bool {
	if a.Sign() == 0 {
		return true
	}
	exp := new(big.Int).Sub(p, big.NewInt(1))
	exp.Div(exp, big.NewInt(2))
	res := new(big.Int).Exp(a, exp, p)
	return res.Cmp(big.NewInt(1)) == 0
}

// Concat returns a fresh byte buffer containing a followed by b.
func Concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
