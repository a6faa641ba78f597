// Package cache wraps verify.VerifyBeacon with an LRU of already-checked
// rounds, so a caller re-verifying the same beacon (the common case for a
// relay re-broadcasting recent rounds) does not pay for a second pairing
// check. Grounded on drand's client.Cache / client.NewCachingClient, which
// wraps Client.Get the same way this wraps VerifyBeacon.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/randa-mu/drand-verify/scheme"
	"github.com/randa-mu/drand-verify/verify"
)

// VerifiedCache remembers the outcome of VerifyBeacon for rounds it has
// already checked against a given scheme and public key. It adds no new
// trust: a cached failure is still a failure, and eviction never changes a
// verdict, only how much work computing it takes.
type VerifiedCache struct {
	results *lru.ARCCache
}

type cacheKey struct {
	scheme            string
	publicKey         string
	round             uint64
	randomness        string
	signature         string
	previousSignature string
}

// New builds a VerifiedCache holding at most size outcomes. A size of zero
// disables caching: every call falls through to verify.VerifyBeacon.
func New(size int) (*VerifiedCache, error) {
	if size == 0 {
		return &VerifiedCache{}, nil
	}
	c, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("building verification cache: %w", err)
	}
	return &VerifiedCache{results: c}, nil
}

// VerifyBeacon behaves exactly like verify.VerifyBeacon, except that a beacon
// identical (same scheme, public key, round number, randomness, signature and
// previous signature) to one already checked returns its previous verdict
// without re-running the pairing check.
func (c *VerifiedCache) VerifyBeacon(id scheme.SchemeID, publicKey []byte, b scheme.Beacon) error {
	if c.results == nil {
		return verify.VerifyBeacon(id, publicKey, b)
	}

	key := cacheKey{
		scheme:            id.Name(),
		publicKey:         string(publicKey),
		round:             b.RoundNumber,
		randomness:        string(b.Randomness),
		signature:         string(b.Signature),
		previousSignature: string(b.PreviousSignature),
	}
	if cached, ok := c.results.Get(key); ok {
		return cached.(outcome).err
	}

	err := verify.VerifyBeacon(id, publicKey, b)
	c.results.Add(key, outcome{err: err})
	return err
}

// outcome boxes a verification error so a successful (nil) verdict can still
// be stored and retrieved through the cache's interface{} values.
type outcome struct {
	err error
}

// Len reports how many outcomes are currently cached.
func (c *VerifiedCache) Len() int {
	if c.results == nil {
		return 0
	}
	return c.results.Len()
}
