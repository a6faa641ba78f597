package verify

import (
	"bytes"
	"crypto/sha256"

	"github.com/randa-mu/drand-verify/scheme"
)

// VerifyBeacon returns nil if b was produced by the legitimate threshold
// signers of the given scheme for its round, and its published randomness is
// consistent with its signature. It is pure, synchronous and re-entrant:
// calling it twice with the same inputs yields the same result.
func VerifyBeacon(id scheme.SchemeID, publicKey []byte, b scheme.Beacon) error {
	sum := sha256.Sum256(b.Signature)
	if !bytes.Equal(sum[:], b.Randomness) {
		return scheme.NewError(scheme.InvalidRandomness)
	}

	msg, err := scheme.DigestMessage(id, b)
	if err != nil {
		return err
	}

	if id.SigOnG1() {
		return VerifyOnG1(publicKey, msg, b.Signature, id.DST())
	}
	return VerifyOnG2(publicKey, msg, b.Signature, id.DST())
}
