// Package rarreg builds signed license-registration key files.
//
// A key file carries two secp256k1 public keys, two ECDSA signatures made
// with the first ("identity") key, and an inverted CRC32 checksum, all
// rendered as fixed-width hex and decimal fields and wrapped into lines.
//
// # Quick Start
//
//	gen := rarreg.NewGenerator()
//
//	result, err := gen.Generate(ctx, rarreg.License{
//	    Username:    "User",
//	    LicenseType: "Single PC usage license",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	path, err := rarreg.WriteFile(rarreg.DefaultFileName, result.Document, gen.Layout())
//
// # Layout
//
// Field widths are described by a Layout. Values are left-padded with '0' to
// their width and a value that does not fit is reported as ErrFieldOverflow
// instead of being written out of alignment. The concatenated record is
// right-padded with '0' to Layout.RecordLength and never truncated.
//
// # Reading key files back
//
//	parser := &rarreg.KeyFileParser{}
//	doc, err := parser.ParseFile("rarreg.key")
//	if err == nil {
//	    err = rarreg.Verify(doc, rarreg.DefaultLayout())
//	}
package rarreg
