package circuit

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/stretchr/testify/require"

	"github.com/Fluidex/babyjubjub-go/babyjub"
	"github.com/Fluidex/babyjubjub-go/curve"
)

func TestCurveIDIsBN254(t *testing.T) {
	require.Equal(t, twistededwards.BN254, CurveID())
}

func TestAssignPublicKeyPreservesCoordinates(t *testing.T) {
	sk, err := babyjub.NewKey()
	require.NoError(t, err)
	pk, err := sk.Public()
	require.NoError(t, err)

	witness := AssignPublicKey(pk)

	require.Equal(t, 0, pk.X.Cmp(witness.A.X.(*big.Int)))
	require.Equal(t, 0, pk.Y.Cmp(witness.A.Y.(*big.Int)))
}

func TestAssignSignaturePreservesCoordinates(t *testing.T) {
	sk, err := babyjub.NewKey()
	require.NoError(t, err)

	sig, err := sk.SignMimc(big.NewInt(42))
	require.NoError(t, err)

	witness := AssignSignature(sig)

	require.Equal(t, 0, sig.R8.X.Cmp(witness.R.X.(*big.Int)))
	require.Equal(t, 0, sig.R8.Y.Cmp(witness.R.Y.(*big.Int)))
	require.Equal(t, 0, sig.S.Cmp(witness.S.(*big.Int)))
}

func TestAssignPointPreservesCoordinates(t *testing.T) {
	p, err := curve.B8.ScalarMul(big.NewInt(3))
	require.NoError(t, err)

	witness := AssignPoint(p)

	require.Equal(t, 0, p.X.Cmp(witness.X.(*big.Int)))
	require.Equal(t, 0, p.Y.Cmp(witness.Y.(*big.Int)))
}
