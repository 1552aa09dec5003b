package uuidgen

import (
	"encoding/binary"
	"time"
)

const (
	// gregorianOffset is the number of 100ns ticks between the start of the
	// Gregorian calendar (1582-10-15) and the Unix epoch.
	gregorianOffset = 0x01B21DD213814000

	clockSeqMask = 0x3FFF
)

// ticksAt converts t to 100ns ticks since 1582-10-15.
func ticksAt(t time.Time) uint64 {
	return uint64(t.UnixNano()/100 + gregorianOffset)
}

// nextClockSequence returns the current 14-bit sequence and advances it.
// Callers must hold g.mu.
func (g *Generator) nextClockSequence() uint16 {
	seq := g.clockSeq & clockSeqMask
	g.clockSeq = (seq + 1) & clockSeqMask
	return seq
}

// timeFields reads the clock and draws a clock sequence under the lock.
func (g *Generator) timeFields() (uint64, uint16) {
	ticks := ticksAt(g.clock.Now())
	g.mu.Lock()
	seq := g.nextClockSequence()
	g.mu.Unlock()
	return ticks, seq
}

// NewV1 generates a time-based UUID:
// time_low | time_mid | version + time_high | variant + clock_seq | node.
func (g *Generator) NewV1() (UUID, error) {
	ticks, seq := g.timeFields()
	return buildV1(ticks, seq, g.node), nil
}

// NewV6 generates a time-based UUID with the timestamp stored most
// significant bits first so that the text form sorts by creation time.
func (g *Generator) NewV6() (UUID, error) {
	ticks, seq := g.timeFields()
	return buildV6(ticks, seq, g.node), nil
}

func buildV1(ticks uint64, seq uint16, node [6]byte) UUID {
	var uuid UUID
	binary.BigEndian.PutUint32(uuid[0:4], uint32(ticks))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(ticks>>32))
	binary.BigEndian.PutUint16(uuid[6:8], uint16(ticks>>48)&0x0FFF)
	putSequenceAndNode(&uuid, seq, node)
	setVersion(&uuid, VersionTimeBased)
	return uuid
}

func buildV6(ticks uint64, seq uint16, node [6]byte) UUID {
	var uuid UUID
	binary.BigEndian.PutUint32(uuid[0:4], uint32(ticks>>28))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(ticks>>12))
	binary.BigEndian.PutUint16(uuid[6:8], uint16(ticks)&0x0FFF)
	putSequenceAndNode(&uuid, seq, node)
	setVersion(&uuid, VersionTimeReordered)
	return uuid
}

func putSequenceAndNode(uuid *UUID, seq uint16, node [6]byte) {
	binary.BigEndian.PutUint16(uuid[8:10], seq&clockSeqMask)
	copy(uuid[10:], node[:])
}

// Ticks returns the 60-bit Gregorian timestamp of a v1 or v6 UUID, or 0.
func (u UUID) Ticks() uint64 {
	switch u.Version() {
	case VersionTimeBased:
		low := uint64(binary.BigEndian.Uint32(u[0:4]))
		mid := uint64(binary.BigEndian.Uint16(u[4:6]))
		high := uint64(binary.BigEndian.Uint16(u[6:8]) & 0x0FFF)
		return high<<48 | mid<<32 | low
	case VersionTimeReordered:
		high := uint64(binary.BigEndian.Uint32(u[0:4]))
		mid := uint64(binary.BigEndian.Uint16(u[4:6]))
		low := uint64(binary.BigEndian.Uint16(u[6:8]) & 0x0FFF)
		return high<<28 | mid<<12 | low
	}
	return 0
}

// ClockSequence returns the 14-bit clock sequence of a v1 or v6 UUID.
func (u UUID) ClockSequence() uint16 {
	return binary.BigEndian.Uint16(u[8:10]) & clockSeqMask
}

// NodeID returns the last 48 bits of the UUID.
func (u UUID) NodeID() [6]byte {
	var node [6]byte
	copy(node[:], u[10:])
	return node
}
