package scheme

// Kind is a closed taxonomy of reasons a beacon can fail verification. Every
// failure of VerifyBeacon maps to exactly one Kind.
type Kind int

const (
	// ChainedBeaconNeedsPreviousSignature: a chained scheme was given a beacon
	// with an empty PreviousSignature.
	ChainedBeaconNeedsPreviousSignature Kind = iota
	// InvalidSignatureLength: the signature's byte length doesn't match the
	// scheme's required length (48 or 96).
	InvalidSignatureLength
	// InvalidPublicKey: the public key's length is wrong, it does not decode
	// to a point on the curve, or it decodes to the identity.
	InvalidPublicKey
	// EmptyMessage: the derived message was zero-length. Defense-in-depth;
	// unreachable in the normal flow since SHA-256 always yields 32 bytes.
	EmptyMessage
	// SignatureFailedVerification: every structural check passed but the
	// pairing equation did not hold.
	SignatureFailedVerification
	// InvalidRandomness: SHA-256(signature) did not match the beacon's
	// randomness field.
	InvalidRandomness
)

var kindText = map[Kind]string{
	ChainedBeaconNeedsPreviousSignature: "chained beacon needs a previous signature",
	InvalidSignatureLength:              "invalid signature length",
	InvalidPublicKey:                    "invalid public key",
	EmptyMessage:                        "derived message is empty",
	SignatureFailedVerification:         "signature failed verification",
	InvalidRandomness:                   "randomness does not match sha256(signature)",
}

func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "unknown verification error"
}

// VerificationError is the error type VerifyBeacon, VerifyOnG1 and VerifyOnG2
// return. It carries exactly one Kind from the closed taxonomy above and is
// pure data: the scheme and verify packages never log it or recover from it.
type VerificationError struct {
	Kind Kind
}

func (e *VerificationError) Error() string { return e.Kind.String() }

// Is reports whether target is a VerificationError of the same Kind, so
// callers can use errors.Is(err, scheme.NewError(scheme.InvalidRandomness)).
func (e *VerificationError) Is(target error) bool {
	other, ok := target.(*VerificationError)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// NewError builds a VerificationError of the given kind.
func NewError(k Kind) *VerificationError {
	return &VerificationError{Kind: k}
}

func errChainedNeedsPreviousSignature() error {
	return NewError(ChainedBeaconNeedsPreviousSignature)
}
