package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuerName(t *testing.T) {
	assert.Equal(t, "Visa", Visa.Name())
	assert.Equal(t, "American Express", AmericanExpress.Name())
	assert.Equal(t, "Maestro UK", MaestroUK.Name())
	assert.Equal(t, "MIR", Mir.Name())
	assert.Equal(t, "Unknown", IssuerUnknown.Name())
	assert.Equal(t, "Unknown", Issuer(200).Name())
}

func TestIssuerLengths(t *testing.T) {
	assert.Equal(t, []int{15}, AmericanExpress.Lengths())
	assert.Equal(t, []int{13, 16, 19}, Visa.Lengths())
	assert.Equal(t, []int{16, 17, 18, 19}, UnionPay.Lengths())
	assert.Equal(t, []int{16, 18, 19}, Verve.Lengths())
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17, 18, 19}, Maestro.Lengths())
	assert.Empty(t, IssuerUnknown.Lengths())
}

func TestIssuers(t *testing.T) {
	issuers := Issuers()
	require.Len(t, issuers, 23)
	assert.Equal(t, AmericanExpress, issuers[0])
	assert.Equal(t, GPN, issuers[len(issuers)-1])
	assert.NotContains(t, issuers, IssuerUnknown)
}

func TestIssuerIINRanges(t *testing.T) {
	t.Run("visa claims a single 1-digit range", func(t *testing.T) {
		ranges := Visa.IINRanges()
		require.Len(t, ranges, 1)
		assert.Equal(t, IINRange{Low: 4, High: 4, Width: 1, issuer: Visa}, ranges[0])
	})

	t.Run("ukrcard claims a single 8-digit window", func(t *testing.T) {
		ranges := UkrCard.IINRanges()
		require.Len(t, ranges, 1)
		assert.Equal(t, uint32(60400100), ranges[0].Low)
		assert.Equal(t, uint32(60420099), ranges[0].High)
		assert.Equal(t, 8, ranges[0].Width)
	})

	t.Run("ranges come widest first", func(t *testing.T) {
		ranges := Discover.IINRanges()
		require.Len(t, ranges, 3)
		assert.Equal(t, 6, ranges[0].Width) // 622126..622925
		assert.Equal(t, 4, ranges[1].Width) // 6011
		assert.Equal(t, 3, ranges[2].Width) // 644..649
	})

	t.Run("every issuer claims at least one range", func(t *testing.T) {
		for _, issuer := range Issuers() {
			assert.NotEmpty(t, issuer.IINRanges(), "issuer %s", issuer)
		}
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		iin    uint32
		issuer Issuer
	}{
		{41111111, Visa},
		{19999999, UATP},
		{19460000, GPN}, // 4-digit 1946 beats the 1-digit UATP range
		{51000000, Mastercard},
		{55999999, Mastercard},
		{22210000, Mastercard},
		{22049999, Mir},
		{22050000, Borica},
		{60400100, UkrCard},
		{60420099, UkrCard},
		{60420100, RuPay}, // just past the UkrCard window
		{60110000, Discover},
		{62212600, Discover},
		{62292599, Discover},
		{62292600, UnionPay},
		{65000199, Discover},
		{65000200, Verve},
		{65002799, Verve},
		{65002800, Discover},
		{67677000, MaestroUK},
		{67677100, IssuerUnknown}, // 676771 is outside both Maestro UK windows and no broader range claims 67
		{67677400, MaestroUK},
		{35711100, LankaPay},
		{35281111, JCB},
		{97920000, Troy},
		{99999999, IssuerUnknown},
		{20000000, IssuerUnknown},
		{77777777, IssuerUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.issuer, classify(tc.iin), "iin %08d", tc.iin)
	}
}
