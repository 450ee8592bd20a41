package rarreg

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// DefaultUsername is written when no username is configured.
	DefaultUsername = "User"

	// DefaultLicenseType is written when no license type is configured.
	DefaultLicenseType = "Single PC usage license"
)

// License holds the values printed in the key file header.
type License struct {
	Username    string
	LicenseType string
}

// Validate rejects values that would break the line-oriented format.
func (l License) Validate() error {
	if l.Username == "" {
		return fmt.Errorf("%w: username is empty", ErrInvalidLicense)
	}
	if strings.ContainsAny(l.Username, "\r\n") {
		return fmt.Errorf("%w: username contains a line break", ErrInvalidLicense)
	}
	if strings.ContainsAny(l.LicenseType, "\r\n") {
		return fmt.Errorf("%w: license type contains a line break", ErrInvalidLicense)
	}
	return nil
}

// SignerFactory creates the Signer used for a private key.
type SignerFactory func(key *secp256k1.PrivateKey) Signer

// Result is the output of one Generate call.
type Result struct {
	Document *Document
	Fields   Fields
	Identity *KeyPair
	Aux      *KeyPair
}

// Generator builds key files.
type Generator struct {
	layout    Layout
	rand      io.Reader
	logger    *slog.Logger
	newSigner SignerFactory
}

// NewGenerator creates a generator with the default layout, the OS CSPRNG
// and ECDSA signing.
func NewGenerator() *Generator {
	return &Generator{
		layout: DefaultLayout(),
		logger: slog.Default(),
		newSigner: func(key *secp256k1.PrivateKey) Signer {
			return NewECDSASigner(key)
		},
	}
}

// WithLayout sets the field layout.
func (g *Generator) WithLayout(layout Layout) *Generator {
	g.layout = layout
	return g
}

// WithRand sets the randomness source for key generation.
func (g *Generator) WithRand(rand io.Reader) *Generator {
	g.rand = rand
	return g
}

// WithLogger sets the logger.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.logger = logger
	return g
}

// WithSignerFactory replaces ECDSA signing.
func (g *Generator) WithSignerFactory(factory SignerFactory) *Generator {
	g.newSigner = factory
	return g
}

// Layout returns the layout in use.
func (g *Generator) Layout() Layout {
	return g.layout
}

// Generate runs the whole pipeline for lic: two key pairs, the UID
// signature, the data signature, the checksum and the document.
//
// Both signatures are made with the identity key.
func (g *Generator) Generate(ctx context.Context, lic License) (*Result, error) {
	if err := g.layout.Validate(); err != nil {
		return nil, err
	}
	if err := lic.Validate(); err != nil {
		return nil, err
	}

	identity, err := GenerateKeyPair(RoleIdentity, g.rand)
	if err != nil {
		return nil, err
	}
	aux, err := GenerateKeyPair(RoleAux, g.rand)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("generated key pairs")

	var fields Fields
	if fields.IdentityKey, err = EncodePublicKey(identity.PublicKey, g.layout.PublicKeyWidth); err != nil {
		return nil, fmt.Errorf("failed to encode %s key: %w", identity.Role, err)
	}
	if fields.AuxKey, err = EncodePublicKey(aux.PublicKey, g.layout.PublicKeyWidth); err != nil {
		return nil, fmt.Errorf("failed to encode %s key: %w", aux.Role, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	signer := g.newSigner(identity.PrivateKey)

	if fields.UIDR, fields.UIDS, err = g.sign(signer, fields.IdentityKey+fields.AuxKey); err != nil {
		return nil, fmt.Errorf("failed to sign UID: %w", err)
	}
	g.logger.Debug("signed UID", "uid", fields.IdentityKey)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if fields.DataR, fields.DataS, err = g.sign(signer, fields.Data1()); err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}
	g.logger.Debug("signed data")

	fields.Checksum, err = padLeft("checksum", Checksum([]byte(fields.Data1()+fields.Data2())), g.layout.ChecksumWidth)
	if err != nil {
		return nil, err
	}

	doc := NewDocument(lic, fields, g.layout)
	g.logger.Debug("assembled record",
		"checksum", fields.Checksum,
		"natural_length", len(fields.Data1()+fields.Data2()+fields.Checksum),
		"record_length", len(doc.Body))

	return &Result{
		Document: doc,
		Fields:   fields,
		Identity: identity,
		Aux:      aux,
	}, nil
}

func (g *Generator) sign(signer Signer, message string) (string, string, error) {
	sig, err := signer.Sign([]byte(message))
	if err != nil {
		return "", "", err
	}
	return sig.Hex(g.layout.SignatureWidth)
}
