package curve

import "errors"

// ErrYOutOfField is returned by Decompress when the encoded y coordinate is
// not a canonical residue mod Q.
var ErrYOutOfField = errors.New("curve: y coordinate out of field")

// ErrNotOnCurve is returned by Decompress when no x satisfies the curve
// equation for the decoded y.
var ErrNotOnCurve = errors.New("curve: point is not on the curve")

// ErrMalformedInput denotes a compressed encoding of the wrong byte length.
// No function in this module returns it: Decompress and DecompressSignature
// take fixed-size arrays, so a wrong length cannot reach them.
var ErrMalformedInput = errors.New("curve: malformed compressed encoding")
