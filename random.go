package uuidgen

import "io"

// NewV4 generates a random UUID from the generator's random source.
func (g *Generator) NewV4() (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(g.randReader, uuid[:]); err != nil {
		return Nil, err
	}
	setVersion(&uuid, VersionRandom)
	return uuid, nil
}
