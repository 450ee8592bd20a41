package rarreg

import (
	"errors"
	"io"
	"math/big"
	mathrand "math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// seededRand returns a deterministic reader for reproducible key material.
func seededRand(seed int64) io.Reader {
	return mathrand.New(mathrand.NewSource(seed))
}

// stubSigner returns fixed signatures in order and records what it signed.
type stubSigner struct {
	sigs     []*Signature
	messages []string
	err      error
}

func (s *stubSigner) Sign(message []byte) (*Signature, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.messages = append(s.messages, string(message))
	return s.sigs[(len(s.messages)-1)%len(s.sigs)], nil
}

func (s *stubSigner) factory() SignerFactory {
	return func(*secp256k1.PrivateKey) Signer { return s }
}

func newStubSigner(values ...int64) *stubSigner {
	s := &stubSigner{}
	for i := 0; i+1 < len(values); i += 2 {
		s.sigs = append(s.sigs, &Signature{R: big.NewInt(values[i]), S: big.NewInt(values[i+1])})
	}
	return s
}

var errStubSigner = errors.New("stub signer failure")

// narrowLayout keeps the natural record shorter than RecordLength, so the
// padding and the 54/44 line split are exercised.
func narrowLayout() Layout {
	return Layout{
		PublicKeyWidth: 128,
		SignatureWidth: 8,
		ChecksumWidth:  10,
		RecordLength:   368,
		LineWidth:      54,
	}
}

// chdirTemp switches into a fresh temp directory for the rest of the test and
// returns its resolved path.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}
