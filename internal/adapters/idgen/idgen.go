package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// Generator creates UUIDv4 request identifiers.
type Generator struct {
	// Rand supplies entropy. Nil means crypto/rand.
	Rand io.Reader
}

// NewID returns a UUIDv4 string, or "" if entropy is unavailable.
func (g Generator) NewID() string {
	src := g.Rand
	if src == nil {
		src = rand.Reader
	}
	var b [16]byte
	if _, err := io.ReadFull(src, b[:]); err != nil {
		return ""
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	var out [36]byte
	hex.Encode(out[0:8], b[0:4])
	out[8] = '-'
	hex.Encode(out[9:13], b[4:6])
	out[13] = '-'
	hex.Encode(out[14:18], b[6:8])
	out[18] = '-'
	hex.Encode(out[19:23], b[8:10])
	out[23] = '-'
	hex.Encode(out[24:36], b[10:16])
	return string(out[:])
}
