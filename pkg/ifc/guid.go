package ifc

import "github.com/google/uuid"

// base64Chars is the IFC GlobalId alphabet. It is not RFC 4648 base64;
// the ordering and the final two characters are fixed by the IFC spec.
const base64Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

// NewGlobalID returns a fresh 22-character IFC GlobalId.
func NewGlobalID() string {
	return EncodeGlobalID(uuid.New())
}

// EncodeGlobalID compresses a UUID into the 22-character IFC form: the
// first character encodes the top 2 bits, the remaining 21 encode 6
// bits each, most significant first.
func EncodeGlobalID(u uuid.UUID) string {
	var buf [22]byte
	// Treat the UUID as a 128-bit big-endian integer split into two
	// 64-bit halves.
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(u[i])
		lo = lo<<8 | uint64(u[i+8])
	}
	for i := 21; i >= 0; i-- {
		buf[i] = base64Chars[lo&0x3f]
		lo = lo>>6 | hi<<58
		hi >>= 6
	}
	return string(buf[:])
}
