package rarreg

import (
	"crypto/sha1"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Signature is an ECDSA signature split into its two scalars.
type Signature struct {
	R *big.Int // r component of the signature
	S *big.Int // s component of the signature
}

// Hex renders r and s as lowercase hex, each left-padded with '0' to width.
func (sig *Signature) Hex(width int) (r, s string, err error) {
	if r, err = padLeft("signature r", sig.R.Text(16), width); err != nil {
		return "", "", err
	}
	if s, err = padLeft("signature s", sig.S.Text(16), width); err != nil {
		return "", "", err
	}
	return r, s, nil
}

// Signer signs record fields.
type Signer interface {
	// Sign returns a signature over message. The signer does its own hashing.
	Sign(message []byte) (*Signature, error)
}

// ECDSASigner signs the message digest (see Digest) with a secp256k1 key.
// Nonces are derived per RFC 6979 and s is always in the lower half of the
// curve order.
type ECDSASigner struct {
	key *secp256k1.PrivateKey
}

// NewECDSASigner creates a signer for key.
func NewECDSASigner(key *secp256k1.PrivateKey) *ECDSASigner {
	return &ECDSASigner{key: key}
}

// Sign implements Signer.
func (s *ECDSASigner) Sign(message []byte) (*Signature, error) {
	if s.key == nil {
		return nil, fmt.Errorf("signer has no private key")
	}

	sig := ecdsa.Sign(s.key, Digest(message))

	r, sc := sig.R(), sig.S()
	rBytes, sBytes := r.Bytes(), sc.Bytes()

	return &Signature{
		R: new(big.Int).SetBytes(rBytes[:]),
		S: new(big.Int).SetBytes(sBytes[:]),
	}, nil
}

// VerifySignature checks sig over the digest of message.
func VerifySignature(pub *secp256k1.PublicKey, message []byte, sig *Signature) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	if sig.R.Sign() <= 0 || sig.S.Sign() <= 0 || sig.R.BitLen() > 256 || sig.S.BitLen() > 256 {
		return false
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig.R.Bytes()); overflow {
		return false
	}
	if overflow := s.SetByteSlice(sig.S.Bytes()); overflow {
		return false
	}

	return ecdsa.NewSignature(&r, &s).Verify(Digest(message), pub)
}

// Digest returns SHA-1(SHA-1(message)), the value the key file verifier
// expects each signature to cover.
func Digest(message []byte) []byte {
	first := sha1.Sum(message)
	second := sha1.Sum(first[:])
	return second[:]
}
