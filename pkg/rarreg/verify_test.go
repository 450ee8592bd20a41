package rarreg

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateDocument(t *testing.T) (*Result, Layout) {
	t.Helper()

	gen := NewGenerator()
	result, err := gen.Generate(context.Background(), License{
		Username:    DefaultUsername,
		LicenseType: DefaultLicenseType,
	})
	require.NoError(t, err)
	return result, gen.Layout()
}

func TestVerify_GeneratedDocument(t *testing.T) {
	result, layout := generateDocument(t)

	parser := &KeyFileParser{Layout: layout}
	doc, err := parser.Parse(strings.NewReader(result.Document.Render(layout.LineWidth)))
	require.NoError(t, err)

	assert.NoError(t, Verify(doc, layout))
}

func TestVerify_ChecksumMismatch(t *testing.T) {
	result, layout := generateDocument(t)
	doc := *result.Document

	// Last checksum digit.
	i := layout.NaturalLength() - 1
	digit := byte('0')
	if doc.Body[i] == '0' {
		digit = '1'
	}
	doc.Body = doc.Body[:i] + string(digit) + doc.Body[i+1:]

	assert.ErrorIs(t, Verify(&doc, layout), ErrChecksumMismatch)
}

func TestVerify_BadSignature(t *testing.T) {
	result, layout := generateDocument(t)

	fields := result.Fields
	last := fields.DataS[len(fields.DataS)-1]
	repl := "1"
	if last == '1' {
		repl = "2"
	}
	fields.DataS = fields.DataS[:len(fields.DataS)-1] + repl
	fields.Checksum = Checksum([]byte(fields.Data1() + fields.Data2()))

	doc := NewDocument(License{Username: DefaultUsername}, fields, layout)
	assert.ErrorIs(t, Verify(doc, layout), ErrBadSignature)
}

func TestVerify_UIDMismatch(t *testing.T) {
	result, layout := generateDocument(t)
	doc := *result.Document
	doc.UID = result.Fields.AuxKey

	assert.ErrorIs(t, Verify(&doc, layout), ErrMalformedDocument)
}

func TestVerify_WrongSigningKey(t *testing.T) {
	result, layout := generateDocument(t)

	// Re-sign with the aux key: the record must be signed by the UID key.
	signer := NewECDSASigner(result.Aux.PrivateKey)
	fields := result.Fields

	sig, err := signer.Sign([]byte(fields.IdentityKey + fields.AuxKey))
	require.NoError(t, err)
	fields.UIDR, fields.UIDS, err = sig.Hex(layout.SignatureWidth)
	require.NoError(t, err)

	sig, err = signer.Sign([]byte(fields.Data1()))
	require.NoError(t, err)
	fields.DataR, fields.DataS, err = sig.Hex(layout.SignatureWidth)
	require.NoError(t, err)
	fields.Checksum = Checksum([]byte(fields.Data1() + fields.Data2()))

	doc := NewDocument(License{Username: DefaultUsername}, fields, layout)
	assert.ErrorIs(t, Verify(doc, layout), ErrBadSignature)
}

func TestVerify_InvalidLayout(t *testing.T) {
	doc := &Document{Username: "User", Body: strings.Repeat("0", 368)}
	bad := Layout{PublicKeyWidth: 128, SignatureWidth: -100, ChecksumWidth: 10, RecordLength: 368, LineWidth: 54}

	assert.ErrorIs(t, Verify(doc, bad), ErrInvalidLayout)

	_, err := doc.Fields(bad)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}
