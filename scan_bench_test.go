package arjstream

import (
	"bytes"
	"testing"
)

// BenchmarkOpenWithJunkPrefix measures header resynchronization over a
// stream that starts with self-extractor-style junk before the archive.
func BenchmarkOpenWithJunkPrefix(b *testing.B) {
	junk := make([]byte, 64*1024)
	for i := range junk {
		// stays clear of both magic bytes so the scan keeps sliding
		junk[i] = byte(i%0x40) + 1
	}
	data := append(junk, buildArchive(
		testMain{name: []byte("BENCH.ARJ")},
		testEntry{name: []byte("F"), method: MethodStored, data: bytes.Repeat([]byte{0x20}, 512)},
	)...)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := New(bytes.NewReader(data))
		if err != nil {
			b.Fatalf("New: %v", err)
		}
		if _, err := r.Next(); err != nil {
			b.Fatalf("Next: %v", err)
		}
	}
}
