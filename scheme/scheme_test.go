package scheme_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randa-mu/drand-verify/scheme"
)

func TestByNameAcceptsAllFourTags(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		tag     string
		want    scheme.SchemeID
		keyLen  int
		sigLen  int
		sigOnG1 bool
		chained bool
	}{
		{scheme.ChainedTag, scheme.Chained, 48, 96, false, true},
		{scheme.UnchainedTag, scheme.Unchained, 48, 96, false, false},
		{scheme.SwappedLegacyID, scheme.SwappedLegacy, 96, 48, true, false},
		{scheme.SwappedRFCID, scheme.SwappedRFC, 96, 48, true, false},
	} {
		id, err := scheme.ByName(tc.tag)
		require.NoError(t, err)
		require.Equal(t, tc.want, id)
		require.Equal(t, tc.keyLen, id.KeyLen())
		require.Equal(t, tc.sigLen, id.SigLen())
		require.Equal(t, tc.sigOnG1, id.SigOnG1())
		require.Equal(t, tc.chained, id.Chained())
		require.Equal(t, tc.tag, id.Name())
	}
}

func TestByNameRejectsUnknownTag(t *testing.T) {
	t.Parallel()

	_, err := scheme.ByName("not-a-real-scheme")
	require.Error(t, err)
	require.Contains(t, err.Error(), scheme.ChainedTag)
	require.Contains(t, err.Error(), scheme.UnchainedTag)
	require.Contains(t, err.Error(), scheme.SwappedLegacyID)
	require.Contains(t, err.Error(), scheme.SwappedRFCID)
}

func TestNames(t *testing.T) {
	t.Parallel()

	require.ElementsMatch(t, []string{
		scheme.ChainedTag, scheme.UnchainedTag, scheme.SwappedLegacyID, scheme.SwappedRFCID,
	}, scheme.Names())
}

func TestSwappedLegacyUsesG2DST(t *testing.T) {
	t.Parallel()

	// The DST anomaly is load-bearing: SwappedLegacy hashes onto G1 using the
	// G2 domain-separation tag, while SwappedRFC (same groups) correctly uses
	// the G1 tag. Removing this anomaly breaks existing beacons.
	require.NotEqual(t, string(scheme.SwappedLegacy.DST()), string(scheme.SwappedRFC.DST()))
	require.Equal(t, string(scheme.Chained.DST()), string(scheme.SwappedLegacy.DST()))
}
