// Package beacon decodes and encodes the wire-level JSON form of a beacon
// document into the core scheme.Beacon value. This is the "external
// collaborator" the verification core deliberately stays ignorant of: it
// knows about hex encoding and field-name aliasing so the core never has to.
package beacon

import (
	json "github.com/nikkolasg/hexjson"

	"github.com/randa-mu/drand-verify/scheme"
)

// Document is the wire-level JSON shape of a beacon, as published by a drand
// network: round_number (aliased on input to round), randomness, signature
// and an optional previous_signature, all hex-encoded byte strings.
type Document struct {
	RoundNumber       uint64 `json:"round_number"`
	Randomness        []byte `json:"randomness"`
	Signature         []byte `json:"signature"`
	PreviousSignature []byte `json:"previous_signature,omitempty"`
}

// wireAlias mirrors Document field-for-field but under the historical field
// name "round", so documents produced by older drand nodes still decode.
type wireAlias struct {
	Round             uint64 `json:"round"`
	Randomness        []byte `json:"randomness"`
	Signature         []byte `json:"signature"`
	PreviousSignature []byte `json:"previous_signature,omitempty"`
}

// UnmarshalJSON accepts either "round_number" or the legacy "round" field
// name; the former wins if both are present.
func (d *Document) UnmarshalJSON(raw []byte) error {
	var alias wireAlias
	if err := json.Unmarshal(raw, &alias); err != nil {
		return err
	}

	type plain Document
	var p plain
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}

	*d = Document(p)
	if d.RoundNumber == 0 {
		d.RoundNumber = alias.Round
	}
	return nil
}

// Beacon converts a decoded Document to the core scheme.Beacon value.
func (d Document) Beacon() scheme.Beacon {
	return scheme.Beacon{
		RoundNumber:       d.RoundNumber,
		Randomness:        d.Randomness,
		Signature:         d.Signature,
		PreviousSignature: d.PreviousSignature,
	}
}

// FromBeacon builds the wire Document for a core scheme.Beacon value.
func FromBeacon(b scheme.Beacon) Document {
	return Document{
		RoundNumber:       b.RoundNumber,
		Randomness:        b.Randomness,
		Signature:         b.Signature,
		PreviousSignature: b.PreviousSignature,
	}
}

// Decode parses a JSON beacon document into a scheme.Beacon.
func Decode(raw []byte) (scheme.Beacon, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return scheme.Beacon{}, err
	}
	return doc.Beacon(), nil
}

// Encode serializes a scheme.Beacon as a JSON beacon document.
func Encode(b scheme.Beacon) ([]byte, error) {
	return json.Marshal(FromBeacon(b))
}
