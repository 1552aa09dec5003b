package uuidgen

import (
	"bytes"
	"testing"
	"time"
)

// fixedClock always reports the same instant
func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// byteReader yields an endless stream of the same byte
type byteReader byte

func (r byteReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

// brokenReader is a reader that always returns an error
type brokenReader struct{}

func (br *brokenReader) Read(p []byte) (n int, err error) {
	return 0, bytes.ErrTooLarge
}

func strPtr(s string) *string {
	return &s
}

// checkMarkers fails unless u carries version v and the RFC 4122 variant
func checkMarkers(t testing.TB, u UUID, v Version) {
	t.Helper()
	if u.Version() != v {
		t.Errorf("%v: version = %v, want %v", u, u.Version(), v)
	}
	if u[8]&0xc0 != 0x80 {
		t.Errorf("%v: variant bits = %02b, want 10", u, u[8]>>6)
	}
}
