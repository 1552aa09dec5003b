package uuidgen

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Encoding selects a textual representation for a UUID.
type Encoding string

const (
	EncodingCanonical Encoding = "canonical" // xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	EncodingHex       Encoding = "hex"       // 32 hex digits, no hyphens
	EncodingURN       Encoding = "urn"       // urn:uuid:xxxxxxxx-...
	EncodingBraced    Encoding = "braced"    // {xxxxxxxx-...}
	EncodingBase64    Encoding = "base64"    // URL-safe, no padding
	EncodingBase64Std Encoding = "base64std" // standard alphabet, padded
)

// Encodings lists every supported encoding.
var Encodings = []Encoding{
	EncodingCanonical,
	EncodingHex,
	EncodingURN,
	EncodingBraced,
	EncodingBase64,
	EncodingBase64Std,
}

// ParseEncoding resolves an encoding name. The empty string means canonical.
func ParseEncoding(s string) (Encoding, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EncodingCanonical, nil
	}
	for _, e := range Encodings {
		if Encoding(s) == e {
			return e, nil
		}
	}
	return "", fmt.Errorf("uuidgen: unknown encoding %q", s)
}

// Encode renders the UUID in the given encoding. When upper is set the hex
// digits are uppercased; separators, the urn prefix and base64 output are
// left untouched.
func (u UUID) Encode(e Encoding, upper bool) string {
	var s string
	switch e {
	case EncodingHex:
		s = u.EncodeToHex()
	case EncodingURN:
		s = u.String()
		if upper {
			s = strings.ToUpper(s)
		}
		return "urn:uuid:" + s
	case EncodingBraced:
		s = "{" + u.String() + "}"
	case EncodingBase64:
		return u.EncodeToBase64()
	case EncodingBase64Std:
		return u.EncodeToBase64Std()
	default:
		s = u.String()
	}
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// FromBytes creates a UUID from a byte slice
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}
