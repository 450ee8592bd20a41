package rarreg

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldOverflow is returned when a value does not fit its fixed-width field.
	ErrFieldOverflow = errors.New("field overflow")

	// ErrInvalidLayout is returned by Layout.Validate.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidLicense is returned when a username or license type cannot be
	// written into the line-oriented key file.
	ErrInvalidLicense = errors.New("invalid license")

	// ErrMalformedDocument is returned when a key file does not follow the layout.
	ErrMalformedDocument = errors.New("malformed key file")

	// ErrChecksumMismatch is returned when the stored checksum does not match the record.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrBadSignature is returned when a stored signature does not verify.
	ErrBadSignature = errors.New("bad signature")
)

// FieldOverflowError reports which field overflowed and by how much.
type FieldOverflowError struct {
	Field  string
	Width  int
	Length int
}

func (e *FieldOverflowError) Error() string {
	return fmt.Sprintf("field overflow: %s needs %d characters, field is %d wide", e.Field, e.Length, e.Width)
}

// Is makes errors.Is(err, ErrFieldOverflow) hold for any FieldOverflowError.
func (e *FieldOverflowError) Is(target error) bool {
	return target == ErrFieldOverflow
}
