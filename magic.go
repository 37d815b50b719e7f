package arjstream

// Magic and framing constants of the ARJ container.

const (
	arjMagic1 = 0x60
	arjMagic2 = 0xEA

	// Declared basic header lengths above this are treated as corruption
	// and the scan resumes.
	maxBasicHeaderSize = 2600
)

// Matches reports whether the buffer starts with the two-byte ARJ magic,
// i.e. whether it plausibly is the beginning of an ARJ archive.
func Matches(b []byte) bool {
	return len(b) >= 2 && b[0] == arjMagic1 && b[1] == arjMagic2
}
