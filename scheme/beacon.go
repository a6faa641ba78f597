package scheme

import (
	"crypto/sha256"
	"encoding/binary"
)

// Beacon is a single round's published randomness: the round number, the
// randomness digest, the BLS signature over the round's message, and
// (scheme-dependent) the previous round's signature. A Beacon is an inert
// value; nothing in this module mutates one after construction.
type Beacon struct {
	RoundNumber       uint64
	Randomness        []byte
	Signature         []byte
	PreviousSignature []byte
}

// roundBytes returns the 8-byte big-endian encoding of round. Wire-exact: any
// endianness change breaks interoperability with the randomness network.
func roundBytes(round uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], round)
	return buf[:]
}

// DigestMessage computes the 32-byte message a scheme's signers commit to for
// a beacon, following the chained or unchained rule for id. For the chained
// scheme, b.PreviousSignature must be non-empty. For every unchained scheme,
// b.PreviousSignature is not consulted at all, matching deployments that
// carry a stray previous-signature field on unchained networks.
func DigestMessage(id SchemeID, b Beacon) ([]byte, error) {
	if id.Chained() {
		if len(b.PreviousSignature) == 0 {
			return nil, errChainedNeedsPreviousSignature()
		}
		h := sha256.New()
		h.Write(b.PreviousSignature)
		h.Write(roundBytes(b.RoundNumber))
		return h.Sum(nil), nil
	}

	h := sha256.New()
	h.Write(roundBytes(b.RoundNumber))
	return h.Sum(nil), nil
}
