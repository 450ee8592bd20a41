package rarreg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DocumentParser defines the interface for reading key files back.
type DocumentParser interface {
	// Parse reads one key file from r.
	Parse(r io.Reader) (*Document, error)
}

// KeyFileParser parses the text format produced by Document.Render.
type KeyFileParser struct {
	Layout Layout // Zero value means DefaultLayout()
}

func (p *KeyFileParser) layout() Layout {
	if p.Layout == (Layout{}) {
		return DefaultLayout()
	}
	return p.Layout
}

// ParseFile parses the key file at path.
func (p *KeyFileParser) ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse implements DocumentParser.
//
// Expected format:
//
//	RAR registration data
//	<username>
//	<license type>
//	UID=<identity key>
//	<record, wrapped at the layout line width>
func (p *KeyFileParser) Parse(r io.Reader) (*Document, error) {
	lineWidth := p.layout().LineWidth

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	if len(lines) < 5 {
		return nil, fmt.Errorf("%w: expected at least 5 lines, got %d", ErrMalformedDocument, len(lines))
	}
	if lines[0] != Header {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrMalformedDocument, lines[0])
	}
	if !strings.HasPrefix(lines[3], UIDPrefix) {
		return nil, fmt.Errorf("%w: line 4 must start with %q", ErrMalformedDocument, UIDPrefix)
	}

	body := lines[4:]
	for i, line := range body {
		last := i == len(body)-1
		if len(line) > lineWidth || (!last && len(line) != lineWidth) || line == "" {
			return nil, fmt.Errorf("%w: body line %d has %d characters, line width is %d",
				ErrMalformedDocument, i+1, len(line), lineWidth)
		}
	}

	return &Document{
		Username:    lines[1],
		LicenseType: lines[2],
		UID:         strings.TrimPrefix(lines[3], UIDPrefix),
		Body:        strings.Join(body, ""),
	}, nil
}

// Fields slices the body back into its fixed-width fields.
func (d *Document) Fields(layout Layout) (Fields, error) {
	if err := layout.Validate(); err != nil {
		return Fields{}, err
	}
	if len(d.Body) != layout.BodyLength() {
		return Fields{}, fmt.Errorf("%w: record has %d characters, layout expects %d",
			ErrMalformedDocument, len(d.Body), layout.BodyLength())
	}
	if pad := d.Body[layout.NaturalLength():]; strings.Trim(pad, "0") != "" {
		return Fields{}, fmt.Errorf("%w: record padding must be '0'", ErrMalformedDocument)
	}

	pos := 0
	next := func(width int) string {
		v := d.Body[pos : pos+width]
		pos += width
		return v
	}

	return Fields{
		IdentityKey: next(layout.PublicKeyWidth),
		AuxKey:      next(layout.PublicKeyWidth),
		UIDR:        next(layout.SignatureWidth),
		UIDS:        next(layout.SignatureWidth),
		DataR:       next(layout.SignatureWidth),
		DataS:       next(layout.SignatureWidth),
		Checksum:    next(layout.ChecksumWidth),
	}, nil
}
