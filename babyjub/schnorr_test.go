package babyjub

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Fluidex/babyjubjub-go/curve"
)

func TestSignVerifySchnorr(t *testing.T) {
	sk, pk := newTestKey(t)
	msg := []byte("1234561")

	sig, err := sk.SignSchnorr(msg)
	require.NoError(t, err)

	require.True(t, VerifySchnorr(pk, msg, sig.R8, sig.S))
}

func TestVerifySchnorrRejectsTamperedMessage(t *testing.T) {
	sk, pk := newTestKey(t)
	msg := []byte("hello")

	sig, err := sk.SignSchnorr(msg)
	require.NoError(t, err)

	require.False(t, VerifySchnorr(pk, []byte("goodbye"), sig.R8, sig.S))
}

func TestCalcRiProducesConsistentPair(t *testing.T) {
	k, r, err := CalcRi()
	require.NoError(t, err)

	expected, err := curve.B8.ScalarMul(k)
	require.NoError(t, err)

	require.True(t, r.Equal(expected))
}
