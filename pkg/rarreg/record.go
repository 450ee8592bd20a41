package rarreg

import (
	"fmt"
	"strings"
)

// Fields are the fixed-width values that make up a record, in record order.
type Fields struct {
	IdentityKey string // UID public key, hex
	AuxKey      string // Data3 public key, hex
	UIDR        string // r of the signature over IdentityKey‖AuxKey
	UIDS        string // s of the signature over IdentityKey‖AuxKey
	DataR       string // r of the signature over Data1
	DataS       string // s of the signature over Data1
	Checksum    string // decimal checksum over Data1‖Data2
}

// Data1 is the signed part of the record: both keys and the UID signature.
func (f Fields) Data1() string {
	return f.IdentityKey + f.AuxKey + f.UIDR + f.UIDS
}

// Data2 is the signature over Data1.
func (f Fields) Data2() string {
	return f.DataR + f.DataS
}

// Record concatenates all fields and right-pads the result to
// layout.RecordLength.
func (f Fields) Record(layout Layout) string {
	return padRight(f.Data1()+f.Data2()+f.Checksum, layout.RecordLength)
}

// Document is the content of a key file.
type Document struct {
	Username    string
	LicenseType string
	UID         string
	Body        string
}

// NewDocument assembles the document for a set of fields.
func NewDocument(lic License, fields Fields, layout Layout) *Document {
	return &Document{
		Username:    lic.Username,
		LicenseType: lic.LicenseType,
		UID:         fields.IdentityKey,
		Body:        fields.Record(layout),
	}
}

// Lines splits the body into chunks of lineWidth characters. The last chunk
// is shorter when the body length is not a multiple of lineWidth.
func (d *Document) Lines(lineWidth int) []string {
	if lineWidth <= 0 {
		return []string{d.Body}
	}
	lines := make([]string, 0, (len(d.Body)+lineWidth-1)/lineWidth)
	for i := 0; i < len(d.Body); i += lineWidth {
		lines = append(lines, d.Body[i:min(i+lineWidth, len(d.Body))])
	}
	return lines
}

// Render produces the key file text with the body wrapped at lineWidth.
func (d *Document) Render(lineWidth int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n%s%s\n", Header, d.Username, d.LicenseType, UIDPrefix, d.UID)
	for _, line := range d.Lines(lineWidth) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
