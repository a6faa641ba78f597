// Package chaininfo represents the small public document a client needs
// before it can call verify.VerifyBeacon against a given drand-style network:
// the scheme in use, the group public key, and the round timing parameters.
// Grounded on drand's chain.Info / chain.NewChainInfo.
package chaininfo

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	json "github.com/nikkolasg/hexjson"

	"github.com/randa-mu/drand-verify/scheme"
)

// Info is the public network-info document: the scheme this network's
// beacons are produced under, its group public key, and round timing. It
// carries no secret material and has no lifecycle beyond a single process.
type Info struct {
	SchemeID    string        `json:"scheme_id"`
	PublicKey   []byte        `json:"public_key"`
	Period      time.Duration `json:"period"`
	GenesisTime int64         `json:"genesis_time"`
}

// Scheme resolves the network's scheme tag to a scheme.SchemeID.
func (i Info) Scheme() (scheme.SchemeID, error) {
	return scheme.ByName(i.SchemeID)
}

// Hash returns a canonical fingerprint of the network's identity: the period,
// genesis time and public key, all folded through SHA-256. Two Info values
// describing the same network hash identically regardless of how they were
// sourced.
func (i Info) Hash() []byte {
	h := sha256.New()
	_ = binary.Write(h, binary.BigEndian, uint32(i.Period.Seconds()))
	_ = binary.Write(h, binary.BigEndian, i.GenesisTime)
	h.Write(i.PublicKey)
	return h.Sum(nil)
}

// HashString returns Hash hex-encoded.
func (i Info) HashString() string {
	return hex.EncodeToString(i.Hash())
}

// Equal reports whether two Info values describe the same network.
func (i Info) Equal(other Info) bool {
	return i.GenesisTime == other.GenesisTime &&
		i.Period == other.Period &&
		i.SchemeID == other.SchemeID &&
		string(i.PublicKey) == string(other.PublicKey)
}

// Decode parses a JSON network-info document.
func Decode(raw []byte) (Info, error) {
	var info Info
	err := json.Unmarshal(raw, &info)
	return info, err
}

// Encode serializes an Info as a JSON network-info document.
func Encode(i Info) ([]byte, error) {
	return json.Marshal(i)
}
