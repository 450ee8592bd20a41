package rarreg

import (
	"fmt"
	"math/big"
)

// Verify checks a parsed key file against layout: the UID line must match the
// identity key in the record, the checksum must recompute, and both
// signatures must verify against the identity key.
func Verify(doc *Document, layout Layout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	fields, err := doc.Fields(layout)
	if err != nil {
		return err
	}
	if doc.UID != fields.IdentityKey {
		return fmt.Errorf("%w: UID line does not match the record", ErrMalformedDocument)
	}

	identity, err := DecodePublicKey(fields.IdentityKey)
	if err != nil {
		return fmt.Errorf("%w: identity key: %v", ErrMalformedDocument, err)
	}
	if _, err := DecodePublicKey(fields.AuxKey); err != nil {
		return fmt.Errorf("%w: aux key: %v", ErrMalformedDocument, err)
	}

	sum, err := padLeft("checksum", Checksum([]byte(fields.Data1()+fields.Data2())), layout.ChecksumWidth)
	if err != nil {
		return err
	}
	if sum != fields.Checksum {
		return fmt.Errorf("%w: stored %s, computed %s", ErrChecksumMismatch, fields.Checksum, sum)
	}

	uidSig, err := parseSignature(fields.UIDR, fields.UIDS)
	if err != nil {
		return err
	}
	if !VerifySignature(identity, []byte(fields.IdentityKey+fields.AuxKey), uidSig) {
		return fmt.Errorf("%w: UID signature", ErrBadSignature)
	}

	dataSig, err := parseSignature(fields.DataR, fields.DataS)
	if err != nil {
		return err
	}
	if !VerifySignature(identity, []byte(fields.Data1()), dataSig) {
		return fmt.Errorf("%w: data signature", ErrBadSignature)
	}

	return nil
}

func parseSignature(r, s string) (*Signature, error) {
	rInt, ok := new(big.Int).SetString(r, 16)
	if !ok {
		return nil, fmt.Errorf("%w: invalid r hex: %s", ErrMalformedDocument, r)
	}
	sInt, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%w: invalid s hex: %s", ErrMalformedDocument, s)
	}
	return &Signature{R: rInt, S: sInt}, nil
}
