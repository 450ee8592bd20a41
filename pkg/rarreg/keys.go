package rarreg

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Role names the purpose of a key pair within one key file.
type Role string

const (
	RoleIdentity Role = "uid"   // signs both records, published on the UID line
	RoleAux      Role = "data3" // public half only, embedded in the record
)

// rawPublicKeyLen is the length of an uncompressed point without its SEC1 prefix.
const rawPublicKeyLen = 64

// KeyPair is an ephemeral secp256k1 key pair. It is never persisted.
type KeyPair struct {
	Role       Role
	PrivateKey *secp256k1.PrivateKey
	PublicKey  *secp256k1.PublicKey
}

// GenerateKeyPair creates a key pair with a private scalar uniformly drawn
// from [1, n-1]. A nil rand uses the operating system CSPRNG.
func GenerateKeyPair(role Role, rand io.Reader) (*KeyPair, error) {
	var (
		priv *secp256k1.PrivateKey
		err  error
	)
	if rand == nil {
		priv, err = secp256k1.GeneratePrivateKey()
	} else {
		priv, err = secp256k1.GeneratePrivateKeyFromRand(rand)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s key: %w", role, err)
	}

	return &KeyPair{
		Role:       role,
		PrivateKey: priv,
		PublicKey:  priv.PubKey(),
	}, nil
}

// EncodePublicKey renders the raw X‖Y encoding of pub as lowercase hex,
// left-padded with '0' to width.
func EncodePublicKey(pub *secp256k1.PublicKey, width int) (string, error) {
	raw := pub.SerializeUncompressed()[1:]
	return padLeft("public key", hex.EncodeToString(raw), width)
}

// DecodePublicKey parses the output of EncodePublicKey.
func DecodePublicKey(s string) (*secp256k1.PublicKey, error) {
	digits := 2 * rawPublicKeyLen
	if len(s) > digits {
		if strings.TrimLeft(s[:len(s)-digits], "0") != "" {
			return nil, fmt.Errorf("public key is longer than %d hex digits", digits)
		}
		s = s[len(s)-digits:]
	}
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	pub, err := secp256k1.ParsePubKey(append([]byte{0x04}, raw...))
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return pub, nil
}
