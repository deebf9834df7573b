package curve

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func bigFromDec(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return n
}

func fixtureP(t *testing.T) Point {
	return Point{
		X: bigFromDec(t, "17777552123799933955779906779655732241715742912184938656739573121738514868268"),
		Y: bigFromDec(t, "2626589144620713026669568689430873010625803728049924121243784502389097019475"),
	}
}

func fixtureQ(t *testing.T) Point {
	return Point{
		X: bigFromDec(t, "16540640123574156134436876038791482806971768689494387082833631921987005038935"),
		Y: bigFromDec(t, "20819045374670962167435360035096875258406992893633759881276124905556507972311"),
	}
}

func TestAddIdenticalPoints(t *testing.T) {
	p := fixtureP(t)
	got, err := p.Add(p)
	require.NoError(t, err)
	assert.Equal(t, bigFromDec(t, "6890855772600357754907169075114257697580319025794532037257385534741338397365"), got.X)
	assert.Equal(t, bigFromDec(t, "4338620300185947561074059802482547481416142213883829469920100239455078257889"), got.Y)
}

func TestAddDistinctPoints(t *testing.T) {
	p := fixtureP(t)
	q := fixtureQ(t)
	got, err := p.Add(q)
	require.NoError(t, err)
	assert.Equal(t, bigFromDec(t, "7916061937171219682591368294088513039687205273691143098332585753343424131937"), got.X)
	assert.Equal(t, bigFromDec(t, "14035240266687799601661095864649209771790948434046947201833777492504781204499"), got.Y)
}

func TestScalarMulConsistency(t *testing.T) {
	p := fixtureP(t)

	mulResult, err := p.ScalarMul(big.NewInt(3))
	require.NoError(t, err)

	pp, err := p.Add(p)
	require.NoError(t, err)
	addResult, err := pp.Add(p)
	require.NoError(t, err)

	assert.Equal(t, addResult.X, mulResult.X)
	assert.Equal(t, bigFromDec(t, "19372461775513343691590086534037741906533799473648040012278229434133483800898"), mulResult.X)
}

func TestCompressFixture(t *testing.T) {
	p := fixtureP(t)
	c := p.Compress()
	assert.Equal(t, "53b81ed5bffe9545b54016234682e7b2f699bd42a5e9eae27ff4051bc698ce85", hex.EncodeToString(c[:]))

	want, err := hex.DecodeString("53b81ed5bffe9545b54016234682e7b2f699bd42a5e9eae27ff4051bc698ce85")
	require.NoError(t, err)
	require.True(t, slices.Equal(want, c[:]))
}

func TestDecompressFixture(t *testing.T) {
	raw, err := hex.DecodeString("b5328f8791d48f20bec6e481d91c7ada235f1facf22547901c18656b6c3e042f")
	require.NoError(t, err)
	var b [32]byte
	copy(b[:], raw)

	p, err := Decompress(b)
	require.NoError(t, err)

	wantXBytes, err := hex.DecodeString("b86cc8d9c97daef0afe1a4753c54fb2d8a530dc74c7eee4e72b3fdf2496d2113")
	require.NoError(t, err)
	var wantXBE [32]byte
	for i, v := range wantXBytes {
		wantXBE[31-i] = v
	}
	wantX := new(big.Int).SetBytes(wantXBE[:])
	assert.Equal(t, wantX, p.X)
}

func TestCompressDecompressRoundTripFixture(t *testing.T) {
	p := fixtureP(t)
	c := p.Compress()
	got, err := Decompress(c)
	require.NoError(t, err)
	assert.True(t, p.Equal(got))
}

// genScalarPoint yields a pseudo-random multiple of B8, guaranteeing a
// valid on-curve point without needing a standalone point generator.
func genScalarPoint() gopter.Gen {
	return gen.UInt64Range(1, 1<<20).Map(func(n uint64) Point {
		p, err := B8.ScalarMul(new(big.Int).SetUint64(n))
		if err != nil {
			panic(err)
		}
		return p
	})
}

func TestPointProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("decompress(compress(P)) == P", prop.ForAll(
		func(p Point) bool {
			c := p.Compress()
			got, err := Decompress(c)
			if err != nil {
				return false
			}
			return p.Equal(got)
		},
		genScalarPoint(),
	))

	properties.Property("addition is associative on-curve", prop.ForAll(
		func(p, q, r Point) bool {
			pq, err := p.Add(q)
			if err != nil {
				return false
			}
			left, err := pq.Add(r)
			if err != nil {
				return false
			}
			qr, err := q.Add(r)
			if err != nil {
				return false
			}
			right, err := p.Add(qr)
			if err != nil {
				return false
			}
			return left.Equal(right)
		},
		genScalarPoint(), genScalarPoint(), genScalarPoint(),
	))

	properties.Property("n*P + P == (n+1)*P", prop.ForAll(
		func(p Point, n uint64) bool {
			nBig := new(big.Int).SetUint64(n)
			nP, err := p.ScalarMul(nBig)
			if err != nil {
				return false
			}
			nPPlusP, err := nP.Add(p)
			if err != nil {
				return false
			}
			nPlus1 := new(big.Int).Add(nBig, big.NewInt(1))
			nPlus1P, err := p.ScalarMul(nPlus1)
			if err != nil {
				return false
			}
			return nPPlusP.Equal(nPlus1P)
		},
		genScalarPoint(), gen.UInt64Range(1, 1<<20),
	))

	properties.TestingRun(t)
}

func TestZeroIsNotIdentity(t *testing.T) {
	z := Zero()
	id := identity()
	assert.False(t, z.Equal(id))
}
