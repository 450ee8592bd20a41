package rarreg

import (
	"fmt"
	"hash/crc32"
)

// Checksum computes the record checksum of payload: the IEEE CRC32 subtracted
// from 0xFFFFFFFF, as 10 zero-padded decimal digits.
func Checksum(payload []byte) string {
	sum := 0xFFFFFFFF - crc32.ChecksumIEEE(payload)
	return fmt.Sprintf("%010d", sum)
}
