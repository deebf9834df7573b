// Package circuit bridges this module's native big.Int keys and signatures
// into the frontend.Variable witnesses consumed by gnark's in-circuit
// std/signature/eddsa verifier, so a proof system can assert a Baby Jubjub
// signature was produced correctly without re-deriving the curve arithmetic
// inside the circuit itself.
package circuit

import (
	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"
	stdeddsa "github.com/consensys/gnark/std/signature/eddsa"

	"github.com/Fluidex/babyjubjub-go/babyjub"
	"github.com/Fluidex/babyjubjub-go/curve"
)

// CurveID is the gnark-crypto twisted Edwards curve identifier whose scalar
// field matches Baby Jubjub's base field Q, the identifier every circuit
// built against this package's keys must be compiled with.
func CurveID() tedwards.ID {
	return tedwards.BN254
}

// AssignPublicKey converts a native public key into the witness shape
// expected by std/signature/eddsa.Verify.
func AssignPublicKey(pk babyjub.PublicKey) stdeddsa.PublicKey {
	return stdeddsa.PublicKey{
		A: twistededwards.Point{
			X: pk.X,
			Y: pk.Y,
		},
	}
}

// AssignSignature converts a native signature into the witness shape
// expected by std/signature/eddsa.Verify. The scalar s is passed through as
// a frontend.Variable; gnark accepts a *big.Int directly for that role.
func AssignSignature(sig babyjub.Signature) stdeddsa.Signature {
	return stdeddsa.Signature{
		R: twistededwards.Point{
			X: sig.R8.X,
			Y: sig.R8.Y,
		},
		S: sig.S,
	}
}

// AssignPoint converts a native curve point into a gnark twisted Edwards
// witness point, for circuits that consume aggregated keys or nonces
// directly rather than through a babyjub.PublicKey.
func AssignPoint(p curve.Point) twistededwards.Point {
	return twistededwards.Point{X: p.X, Y: p.Y}
}
