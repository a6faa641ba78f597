package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randa-mu/drand-verify/cache"
	"github.com/randa-mu/drand-verify/scheme"
)

func TestVerifyBeaconCachesVerdictAcrossCalls(t *testing.T) {
	t.Parallel()

	c, err := cache.New(8)
	require.NoError(t, err)

	pk := []byte("32-byte-ish placeholder key.....")
	b := scheme.Beacon{RoundNumber: 1, Randomness: []byte("wrong"), Signature: []byte("sig")}

	err1 := c.VerifyBeacon(scheme.Unchained, pk, b)
	require.Error(t, err1)
	require.Equal(t, 1, c.Len())

	err2 := c.VerifyBeacon(scheme.Unchained, pk, b)
	require.Equal(t, err1, err2)
	require.Equal(t, 1, c.Len())
}

func TestVerifyBeaconDistinguishesRoundsAndSchemes(t *testing.T) {
	t.Parallel()

	c, err := cache.New(8)
	require.NoError(t, err)

	pk := []byte("some-key")
	b1 := scheme.Beacon{RoundNumber: 1, Randomness: []byte("a"), Signature: []byte("sig")}
	b2 := scheme.Beacon{RoundNumber: 2, Randomness: []byte("a"), Signature: []byte("sig")}

	_ = c.VerifyBeacon(scheme.Unchained, pk, b1)
	_ = c.VerifyBeacon(scheme.Unchained, pk, b2)
	_ = c.VerifyBeacon(scheme.Chained, pk, b1)

	require.Equal(t, 3, c.Len())
}

func TestZeroSizeCacheDisablesCaching(t *testing.T) {
	t.Parallel()

	c, err := cache.New(0)
	require.NoError(t, err)

	pk := []byte("some-key")
	b := scheme.Beacon{RoundNumber: 1, Randomness: []byte("a"), Signature: []byte("sig")}

	_ = c.VerifyBeacon(scheme.Unchained, pk, b)
	_ = c.VerifyBeacon(scheme.Unchained, pk, b)
	require.Equal(t, 0, c.Len())
}
