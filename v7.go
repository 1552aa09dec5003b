package uuidgen

import (
	"encoding/binary"
	"io"
	"time"
)

// New generates a new UUIDv7 with the generator's current time.
// UUIDs generated within the same millisecond are monotonically ordered.
func (g *Generator) New() (UUID, error) {
	return g.NewWithTime(g.clock.Now())
}

// NewV7 is an alias for New.
func (g *Generator) NewV7() (UUID, error) {
	return g.New()
}

// NewWithTime generates a new UUIDv7 with the specified timestamp.
// This method is thread-safe and ensures monotonic ordering.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	var uuid UUID

	// Get Unix timestamp in milliseconds (48 bits)
	timestamp := uint64(t.UnixMilli())

	g.mu.Lock()
	defer g.mu.Unlock()

	// Same or earlier millisecond: bump the 12-bit counter in rand_a
	if timestamp <= g.lastTimestamp {
		timestamp = g.lastTimestamp
		g.counter++
		if g.counter > 0xFFF {
			g.counter = 0
			timestamp = g.lastTimestamp + 1
			g.lastTimestamp = timestamp
		}
	} else {
		// New millisecond, rand_a starts from fresh random data
		var randBytes [2]byte
		if _, err := io.ReadFull(g.randReader, randBytes[:]); err != nil {
			return uuid, err
		}
		g.counter = binary.BigEndian.Uint16(randBytes[:]) & 0xFFF
		g.lastTimestamp = timestamp
	}

	// Encode timestamp (48 bits) - bytes 0-5
	binary.BigEndian.PutUint64(uuid[0:8], timestamp<<16)

	// Version 7 nibble + rand_a - bytes 6-7
	uuid[6] = byte(0x70 | (g.counter >> 8))
	uuid[7] = byte(g.counter)

	// rand_b - bytes 8-15
	if _, err := io.ReadFull(g.randReader, uuid[8:]); err != nil {
		return uuid, err
	}

	// Set variant to RFC 4122 (10xx xxxx)
	uuid[8] = (uuid[8] & 0x3F) | 0x80

	return uuid, nil
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// Extract 48-bit timestamp from bytes 0-5
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}

// Time returns the embedded timestamp of a v1, v6 or v7 UUID.
// Other versions yield the zero time.
func (u UUID) Time() time.Time {
	switch u.Version() {
	case VersionTimeSorted:
		ms := u.Timestamp()
		return time.Unix(ms/1000, (ms%1000)*1000000)
	case VersionTimeBased, VersionTimeReordered:
		ticks := int64(u.Ticks() - gregorianOffset)
		return time.Unix(ticks/1e7, (ticks%1e7)*100)
	}
	return time.Time{}
}
