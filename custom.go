package uuidgen

// NewV8 builds a custom UUID from caller supplied bytes. Input shorter than
// 16 bytes is zero padded, longer input is truncated. Only the version nibble
// and the variant bits are overwritten; every other bit is taken as given.
func NewV8(data []byte) UUID {
	var uuid UUID
	copy(uuid[:], data)
	setVersion(&uuid, VersionCustom)
	return uuid
}
