package field

import "errors"

// ErrNotInvertible is returned by ModInverse when gcd(a, m) != 1.
var ErrNotInvertible = errors.New("field: value has no modular inverse")

// ErrNotAQuadraticResidue is returned by ModSqrt when a has no square root
// modulo p.
var ErrNotAQuadraticResidue = errors.New("field: value is not a quadratic residue")
