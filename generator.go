package uuidgen

import (
	"crypto/rand"
	"io"
	"sync"
	"time"
)

// Clock supplies the current time to the time-based layouts.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// DefaultNode is the placeholder node identifier used by v1 and v6 UUIDs.
// It is not a real hardware address.
var DefaultNode = [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}

// DefaultClockSequence seeds the v1/v6 clock sequence.
const DefaultClockSequence uint16 = 42

// Generator builds UUIDs of every supported version. Time and randomness are
// injected so output can be made deterministic where the layout allows.
// A Generator is safe for concurrent use.
type Generator struct {
	clock      Clock
	randReader io.Reader
	node       [6]byte

	mu sync.Mutex
	// v1/v6
	clockSeq uint16
	// v7
	lastTimestamp uint64
	counter       uint16
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		g.clock = c
	}
}

// WithRandom sets the random source. It should be cryptographically secure
// outside of tests.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		g.randReader = r
	}
}

// WithNode sets the 48-bit node identifier of v1/v6 UUIDs.
func WithNode(node [6]byte) Option {
	return func(g *Generator) {
		g.node = node
	}
}

// WithClockSequence seeds the 14-bit v1/v6 clock sequence.
func WithClockSequence(seq uint16) Option {
	return func(g *Generator) {
		g.clockSeq = seq & clockSeqMask
	}
}

// NewGenerator creates a generator backed by the wall clock and crypto/rand.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:      SystemClock,
		randReader: rand.Reader,
		node:       DefaultNode,
		clockSeq:   DefaultClockSequence,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGeneratorWithReader creates a generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGenerator(WithRandom(r))
}

// Node returns the node identifier stamped into v1/v6 UUIDs.
func (g *Generator) Node() [6]byte {
	return g.node
}

// Generate validates req and builds one UUID of the requested version.
// Count and Uppercase are presentation concerns and are ignored here.
func (g *Generator) Generate(req Request) (UUID, error) {
	ns, err := req.resolve()
	if err != nil {
		return Nil, err
	}
	return g.build(req, ns)
}

// GenerateEach validates req once and then hands req.Count UUIDs to fn as
// they are built. It stops at the first error from generation or from fn.
func (g *Generator) GenerateEach(req Request, fn func(UUID) error) error {
	ns, err := req.resolve()
	if err != nil {
		return err
	}
	for i := 0; i < req.Count; i++ {
		u, err := g.build(req, ns)
		if err != nil {
			return err
		}
		if err := fn(u); err != nil {
			return err
		}
	}
	return nil
}

// build produces one UUID from an already validated request. ns is the
// resolved namespace for v3 and v5.
func (g *Generator) build(req Request, ns UUID) (UUID, error) {
	switch req.Version {
	case VersionTimeBased:
		return g.NewV1()
	case VersionNameBasedMD5:
		return NewV3(ns, []byte(*req.Name)), nil
	case VersionRandom:
		return g.NewV4()
	case VersionNameBasedSHA1:
		return NewV5(ns, []byte(*req.Name)), nil
	case VersionTimeReordered:
		return g.NewV6()
	case VersionTimeSorted:
		return g.New()
	case VersionCustom:
		return NewV8([]byte(*req.Data)), nil
	}
	return Nil, ErrInvalidVersion
}

// setVersion stamps the version nibble and the RFC 4122 variant bits.
func setVersion(u *UUID, v Version) {
	u[6] = (u[6] & 0x0f) | byte(v)<<4
	u[8] = (u[8] & 0x3f) | 0x80
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuidgen.Must(generator.NewV4())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// New generates a new UUIDv7 using the default generator.
func New() (UUID, error) {
	return defaultGenerator.New()
}

// NewV1 generates a time-based UUID using the default generator.
func NewV1() (UUID, error) {
	return defaultGenerator.NewV1()
}

// NewV4 generates a random UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}

// NewV6 generates a reordered time-based UUID using the default generator.
func NewV6() (UUID, error) {
	return defaultGenerator.NewV6()
}

// NewV7 is an alias for New() that names the version explicitly
func NewV7() (UUID, error) {
	return defaultGenerator.New()
}

// Generate validates req and builds a UUID with the default generator.
func Generate(req Request) (UUID, error) {
	return defaultGenerator.Generate(req)
}
