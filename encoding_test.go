package uuidgen

import (
	"strings"
	"testing"
)

var sample = UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

func TestUUID_Encode(t *testing.T) {
	tests := []struct {
		encoding Encoding
		upper    bool
		want     string
	}{
		{EncodingCanonical, false, "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{EncodingCanonical, true, "F47AC10B-58CC-4372-A567-0E02B2C3D479"},
		{EncodingHex, false, "f47ac10b58cc4372a5670e02b2c3d479"},
		{EncodingHex, true, "F47AC10B58CC4372A5670E02B2C3D479"},
		{EncodingURN, false, "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{EncodingURN, true, "urn:uuid:F47AC10B-58CC-4372-A567-0E02B2C3D479"},
		{EncodingBraced, false, "{f47ac10b-58cc-4372-a567-0e02b2c3d479}"},
		{EncodingBraced, true, "{F47AC10B-58CC-4372-A567-0E02B2C3D479}"},
		{EncodingBase64, false, "9HrBC1jMQ3KlZw4CssPUeQ"},
		{EncodingBase64, true, "9HrBC1jMQ3KlZw4CssPUeQ"},
		{EncodingBase64Std, false, "9HrBC1jMQ3KlZw4CssPUeQ=="},
		{"", false, "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
	}

	for _, tt := range tests {
		name := string(tt.encoding)
		if tt.upper {
			name += "/upper"
		}
		t.Run(name, func(t *testing.T) {
			if got := sample.Encode(tt.encoding, tt.upper); got != tt.want {
				t.Errorf("Encode(%q, %v) = %v, want %v", tt.encoding, tt.upper, got, tt.want)
			}
		})
	}
}

func TestUUID_EncodeUppercaseMatchesLowercase(t *testing.T) {
	for i := 0; i < 50; i++ {
		u := Must(NewV4())
		lower := u.Encode(EncodingCanonical, false)
		upper := u.Encode(EncodingCanonical, true)
		if strings.ToUpper(lower) != upper {
			t.Errorf("uppercase %q does not match %q", upper, lower)
		}
		if strings.Count(upper, "-") != 4 {
			t.Errorf("uppercase %q lost its hyphens", upper)
		}
	}
}

func TestParseEncoding(t *testing.T) {
	for _, e := range Encodings {
		got, err := ParseEncoding(strings.ToUpper(string(e)))
		if err != nil {
			t.Fatalf("ParseEncoding(%q) error = %v", e, err)
		}
		if got != e {
			t.Errorf("ParseEncoding(%q) = %q", e, got)
		}
	}

	if got, err := ParseEncoding(""); err != nil || got != EncodingCanonical {
		t.Errorf("ParseEncoding(\"\") = %q, %v", got, err)
	}
	if _, err := ParseEncoding("base32"); err == nil {
		t.Error("ParseEncoding(\"base32\") expected error")
	}
}

func TestFromBytes(t *testing.T) {
	got, err := FromBytes(sample.Bytes())
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if got != sample {
		t.Errorf("FromBytes() = %v, want %v", got, sample)
	}

	for _, in := range [][]byte{nil, {0x01, 0x02, 0x03}, make([]byte, 20)} {
		if _, err := FromBytes(in); err != ErrInvalidLength {
			t.Errorf("FromBytes(%d bytes) error = %v, want %v", len(in), err, ErrInvalidLength)
		}
	}
}
