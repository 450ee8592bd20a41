package rarreg

import (
	"fmt"
	"strings"
)

const (
	// Header is the first line of every key file.
	Header = "RAR registration data"

	// UIDPrefix starts the fourth line of the key file.
	UIDPrefix = "UID="

	// DefaultFileName is the name the key file is written under.
	DefaultFileName = "rarreg.key"
)

// Layout describes the fixed-width text format of the record.
type Layout struct {
	// PublicKeyWidth is the width in hex digits of each encoded public key.
	PublicKeyWidth int

	// SignatureWidth is the width in hex digits of each r and s component.
	SignatureWidth int

	// ChecksumWidth is the width in decimal digits of the checksum.
	ChecksumWidth int

	// RecordLength is the minimum record length; shorter records are
	// right-padded with '0'. Longer records are kept whole.
	RecordLength int

	// LineWidth is the number of record characters per body line.
	LineWidth int
}

// DefaultLayout returns the layout used by the CLI.
//
// A raw X‖Y public key is 64 bytes (128 hex digits) and a secp256k1 signature
// component is at most 32 bytes (64 hex digits), so these widths never
// overflow for real keys.
func DefaultLayout() Layout {
	return Layout{
		PublicKeyWidth: 128,
		SignatureWidth: 64,
		ChecksumWidth:  10,
		RecordLength:   368,
		LineWidth:      54,
	}
}

// Validate checks that every width is positive.
func (l Layout) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"public key width", l.PublicKeyWidth},
		{"signature width", l.SignatureWidth},
		{"checksum width", l.ChecksumWidth},
		{"record length", l.RecordLength},
		{"line width", l.LineWidth},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidLayout, f.name, f.value)
		}
	}
	return nil
}

// NaturalLength is the length of the concatenated fields before padding.
func (l Layout) NaturalLength() int {
	return 2*l.PublicKeyWidth + 4*l.SignatureWidth + l.ChecksumWidth
}

// BodyLength is the length of the record as written to the file.
func (l Layout) BodyLength() int {
	return max(l.NaturalLength(), l.RecordLength)
}

// padLeft left-pads value with '0' to exactly width characters.
func padLeft(field, value string, width int) (string, error) {
	if len(value) > width {
		return "", &FieldOverflowError{Field: field, Width: width, Length: len(value)}
	}
	return strings.Repeat("0", width-len(value)) + value, nil
}

// padRight right-pads value with '0' up to length. It never truncates.
func padRight(value string, length int) string {
	if len(value) >= length {
		return value
	}
	return value + strings.Repeat("0", length-len(value))
}
