// Package verify implements the hash-to-curve and bilinear pairing checks
// that bind a BLS12-381 public key, message and signature together. It is
// pure, synchronous and stateless: any number of calls may proceed
// concurrently, and identical inputs always yield identical results.
package verify

import (
	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"

	"github.com/randa-mu/drand-verify/scheme"
)

// hashablePoint is the subset of kyber-bls12381's point implementation that
// performs RFC 9380 hash-to-curve (expand_message_xmd/SHA-256, SSWU, cofactor
// clearing) using the DST the enclosing suite was constructed with.
type hashablePoint interface {
	Hash(msg []byte) kyber.Point
}

// pairingSuite is the subset of kyber-bls12381's suite we need: the two
// source groups, the target group, and the pairing operation itself.
type pairingSuite interface {
	G1() kyber.Group
	G2() kyber.Group
	GT() kyber.Group
	Pair(p1, p2 kyber.Point) kyber.Point
}

// decompress turns compressed point bytes into a kyber.Point. Per the
// decompression-to-identity funnel: any error unmarshaling the bytes (point
// not on the curve, point not in the correct subgroup, malformed encoding) is
// swallowed and the group's identity element is returned instead. For a public
// key, the caller's non-identity check then rejects it; for a signature, the
// identity fails the pairing check.
func decompress(group kyber.Group, raw []byte) kyber.Point {
	p := group.Point()
	if err := p.UnmarshalBinary(raw); err != nil {
		return group.Point().Null()
	}
	return p
}

// pair computes e(a, b) in the target group of suite.
func pair(suite pairingSuite, a, b kyber.Point) kyber.Point {
	return suite.Pair(a, b)
}

// VerifyOnG2 checks a BLS signature where the public key lives on G1 (48
// bytes) and the signature lives on G2 (96 bytes):
//
//	e(-pk, M) . e(g1Base, sig) == 1
//
// where M is msg hashed onto G2 using dst. Callers who have already derived a
// custom message may use this directly; VerifyBeacon is the higher-level
// entry point for drand beacons.
func VerifyOnG2(publicKey, msg, signature, dst []byte) error {
	if len(publicKey) != 48 {
		return scheme.NewError(scheme.InvalidPublicKey)
	}
	if len(signature) != 96 {
		return scheme.NewError(scheme.InvalidSignatureLength)
	}

	suite := bls.NewBLS12381SuiteWithDST(dst, dst)

	pk := decompress(suite.G1(), publicKey)
	if pk.Equal(suite.G1().Point().Null()) {
		return scheme.NewError(scheme.InvalidPublicKey)
	}
	if len(msg) == 0 {
		return scheme.NewError(scheme.EmptyMessage)
	}

	sig := decompress(suite.G2(), signature)

	hashable, ok := suite.G2().Point().(hashablePoint)
	if !ok {
		return scheme.NewError(scheme.SignatureFailedVerification)
	}
	m := hashable.Hash(msg)

	left := pair(suite, pk.Clone().Neg(pk), m)
	right := pair(suite, suite.G1().Point().Base(), sig)
	left.Add(left, right)

	if !left.Equal(suite.GT().Point().Null()) {
		return scheme.NewError(scheme.SignatureFailedVerification)
	}
	return nil
}

// VerifyOnG1 checks a BLS signature where the public key lives on G2 (96
// bytes) and the signature lives on G1 (48 bytes):
//
//	e(M, -pk) . e(sig, g2Base) == 1
//
// where M is msg hashed onto G1 using dst.
func VerifyOnG1(publicKey, msg, signature, dst []byte) error {
	if len(publicKey) != 96 {
		return scheme.NewError(scheme.InvalidPublicKey)
	}
	if len(signature) != 48 {
		return scheme.NewError(scheme.InvalidSignatureLength)
	}

	suite := bls.NewBLS12381SuiteWithDST(dst, dst)

	pk := decompress(suite.G2(), publicKey)
	if pk.Equal(suite.G2().Point().Null()) {
		return scheme.NewError(scheme.InvalidPublicKey)
	}
	if len(msg) == 0 {
		return scheme.NewError(scheme.EmptyMessage)
	}

	sig := decompress(suite.G1(), signature)

	hashable, ok := suite.G1().Point().(hashablePoint)
	if !ok {
		return scheme.NewError(scheme.SignatureFailedVerification)
	}
	m := hashable.Hash(msg)

	left := pair(suite, m, pk.Clone().Neg(pk))
	right := pair(suite, sig, suite.G2().Point().Base())
	left.Add(left, right)

	if !left.Equal(suite.GT().Point().Null()) {
		return scheme.NewError(scheme.SignatureFailedVerification)
	}
	return nil
}
