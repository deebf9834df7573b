// Package curve implements point arithmetic on the Baby Jubjub twisted
// Edwards curve: A*x^2 + y^2 = 1 + D*x^2*y^2 (mod Q). It depends on the
// field package for modular reduction, inversion and square roots.
package curve

import (
	"math/big"

	"github.com/Fluidex/babyjubjub-go/field"
)

// Curve parameters and base point, reproduced verbatim from the
// specification's constants table.
var (
	// Q is the Baby Jubjub scalar field prime.
	Q, _ = new(big.Int).SetString(
		"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

	// A and D are the twisted Edwards curve coefficients.
	A = big.NewInt(168700)
	D = big.NewInt(168696)

	// ORDER is the full curve group order (cofactor 8 times SUBORDER). Kept
	// for API parity with the reference implementation; SUBORDER is the
	// canonical prime-order subgroup order used throughout this library.
	ORDER, _ = new(big.Int).SetString(
		"21888242871839275222246405745257275088614511777268538073601725287587578984328", 10)

	// SUBORDER is ORDER >> 3, the order of the prime-order subgroup
	// generated by B8.
	SUBORDER = new(big.Int).Rsh(ORDER, 3)

	// B8 is the base point of the prime-order subgroup.
	B8 = Point{
		X: bigFromDecimal("5299619240641551281634865583518297030282874472190772894086521144482721001553"),
		Y: bigFromDecimal("16950150798460657717958625567821834550301663161624707787222815936182638968203"),
	}

	qHalf = new(big.Int).Rsh(Q, 1)
)

func bigFromDecimal(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curve: invalid decimal literal: " + s)
	}
	return n
}

// Point is an affine point (x, y) on the Baby Jubjub curve.
type Point struct {
	X *big.Int
	Y *big.Int
}

// Zero returns (0, 0). Per the reference implementation this is NOT the
// Edwards identity element (which is (0, 1)); it is kept only as a
// zero-value constructor. ScalarMul initializes its accumulator to the
// identity directly and never calls Zero.
func Zero() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(0)}
}

// identity returns the twisted Edwards identity element (0, 1).
func identity() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(1)}
}

// Equal reports whether p and o are the same point, comparing canonicalized
// coordinates.
func (p Point) Equal(o Point) bool {
	return field.Modulus(p.X, Q).Cmp(field.Modulus(o.X, Q)) == 0 &&
		field.Modulus(p.Y, Q).Cmp(field.Modulus(o.Y, Q)) == 0
}

// Add computes the unified twisted Edwards addition of p and o. The same
// formula handles point doubling (o == p).
//
//	x3 = (x1*y2 + y1*x2) / (1 + D*x1*x2*y1*y2)
//	y3 = (y1*y2 - A*x1*x2) / (1 - D*x1*x2*y1*y2)
func (p Point) Add(o Point) (Point, error) {
	one := big.NewInt(1)

	x1y2 := new(big.Int).Mul(p.X, o.Y)
	y1x2 := new(big.Int).Mul(p.Y, o.X)
	xNum := new(big.Int).Add(x1y2, y1x2)

	x1x2y1y2 := new(big.Int).Mul(p.X, o.X)
	x1x2y1y2.Mul(x1x2y1y2, p.Y)
	x1x2y1y2.Mul(x1x2y1y2, o.Y)
	dTerm := new(big.Int).Mul(D, x1x2y1y2)

	xDen := field.Modulus(new(big.Int).Add(one, dTerm), Q)
	xDenInv, err := field.ModInverse(xDen, Q)
	if err != nil {
		return Point{}, err
	}
	x := field.Modulus(new(big.Int).Mul(xNum, xDenInv), Q)

	y1y2 := new(big.Int).Mul(p.Y, o.Y)
	ax1x2 := new(big.Int).Mul(A, p.X)
	ax1x2.Mul(ax1x2, o.X)
	yNum := new(big.Int).Sub(y1y2, ax1x2)

	yDen := field.Modulus(new(big.Int).Sub(one, dTerm), Q)
	yDenInv, err := field.ModInverse(yDen, Q)
	if err != nil {
		return Point{}, err
	}
	y := field.Modulus(new(big.Int).Mul(yNum, yDenInv), Q)

	return Point{X: x, Y: y}, nil
}

// ScalarMul computes n*p using double-and-add over the binary expansion of
// n from LSB to MSB. The accumulator starts at the curve identity (0, 1).
func (p Point) ScalarMul(n *big.Int) (Point, error) {
	r := identity()
	exp := Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
	rem := new(big.Int).Set(n)

	zero := big.NewInt(0)
	one := big.NewInt(1)

	for rem.Cmp(zero) != 0 {
		bit := new(big.Int).And(rem, one)
		if bit.Cmp(one) == 0 {
			var err error
			r, err = r.Add(exp)
			if err != nil {
				return Point{}, err
			}
		}
		var err error
		exp, err = exp.Add(exp)
		if err != nil {
			return Point{}, err
		}
		rem.Rsh(rem, 1)
	}

	r.X = field.Modulus(r.X, Q)
	r.Y = field.Modulus(r.Y, Q)
	return r, nil
}

// Compress encodes p as 32 little-endian bytes of y, with the top bit of
// the final byte set iff x > Q/2.
func (p Point) Compress() [32]byte {
	var out [32]byte
	yBytes := field.Modulus(p.Y, Q).Bytes() // big-endian
	reverseInto(out[:], yBytes)

	if p.X.Cmp(qHalf) > 0 {
		out[31] |= 0x80
	}
	return out
}

// Decompress parses a 32-byte compressed point, solving for x via the curve
// equation and selecting the root whose sign matches the encoded bit.
func Decompress(b [32]byte) (Point, error) {
	sign := b[31]&0x80 != 0
	buf := b
	buf[31] &= 0x7F

	y := new(big.Int).SetBytes(reverse(buf[:]))
	if y.Cmp(Q) >= 0 {
		return Point{}, ErrYOutOfField
	}

	one := big.NewInt(1)
	y2 := field.Modulus(new(big.Int).Mul(y, y), Q)

	den := field.Modulus(new(big.Int).Sub(A, new(big.Int).Mul(D, y2)), Q)
	denInv, err := field.ModInverse(den, Q)
	if err != nil {
		return Point{}, ErrNotOnCurve
	}

	xSquared := field.Modulus(new(big.Int).Mul(new(big.Int).Sub(one, y2), denInv), Q)

	x, err := field.ModSqrt(xSquared, Q)
	if err != nil {
		return Point{}, ErrNotOnCurve
	}

	if (x.Cmp(qHalf) > 0) != sign {
		x = field.Modulus(new(big.Int).Neg(x), Q)
	}

	return Point{X: x, Y: y}, nil
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// reverseInto copies src (big-endian) into dst (little-endian, zero padded)
// without overflowing dst.
func reverseInto(dst, src []byte) {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = src[n-1-i]
	}
}
