package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var q, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

func TestModulusNegative(t *testing.T) {
	got := Modulus(big.NewInt(-5), big.NewInt(7))
	assert.Equal(t, big.NewInt(2), got)
}

func TestModulusPositive(t *testing.T) {
	got := Modulus(big.NewInt(17), big.NewInt(7))
	assert.Equal(t, big.NewInt(3), got)
}

func TestModInverse(t *testing.T) {
	a := big.NewInt(3)
	inv, err := ModInverse(a, q)
	require.NoError(t, err)

	check := new(big.Int).Mul(a, inv)
	check.Mod(check, q)
	assert.Equal(t, big.NewInt(1), check)
}

func TestModInverseNotInvertible(t *testing.T) {
	m := big.NewInt(10)
	_, err := ModInverse(big.NewInt(4), m)
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestModSqrtRoundTrip(t *testing.T) {
	x := big.NewInt(12345)
	xSquared := new(big.Int).Mul(x, x)
	xSquared.Mod(xSquared, q)

	root, err := ModSqrt(xSquared, q)
	require.NoError(t, err)

	rootSquared := new(big.Int).Mul(root, root)
	rootSquared.Mod(rootSquared, q)

	assert.Equal(t, xSquared, rootSquared)
}

func TestModSqrtNonResidue(t *testing.T) {
	// A small prime p = 7 (p = 3 mod 4); 3 is a non-residue mod 7.
	p := big.NewInt(7)
	_, err := ModSqrt(big.NewInt(3), p)
	require.ErrorIs(t, err, ErrNotAQuadraticResidue)
}

func TestModSqrtSmallPrimeOneModFour(t *testing.T) {
	// p = 13, p = 1 mod 4; 4 is a QR (2^2 = 4).
	p := big.NewInt(13)
	root, err := ModSqrt(big.NewInt(4), p)
	require.NoError(t, err)

	got := new(big.Int).Mul(root, root)
	got.Mod(got, p)
	assert.Equal(t, big.NewInt(4), got)
}

func TestConcat(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{4, 5}
	got := Concat(a, b)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)

	// Concat must not alias its inputs.
	got[0] = 0xFF
	assert.Equal(t, byte(1), a[0])
}
