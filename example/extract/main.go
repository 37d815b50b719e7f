package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/javi11/arjstream"
)

// This example extracts the stored (uncompressed) entries of an ARJ
// archive into an output directory. Entries using a real compression
// method are skipped, because this package only reads stored payloads.
func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <archive>.arj <output-dir>", os.Args[0])
	}
	first := os.Args[1]
	outDir := os.Args[2]

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	r, err := arjstream.Open(first)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer func() { _ = r.Close() }()

	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("next entry: %v", err)
		}
		outPath := filepath.Join(outDir, filepath.FromSlash(e.Name()))
		if e.IsDirectory() {
			if err := os.MkdirAll(outPath, e.Mode().Perm()); err != nil {
				log.Fatalf("create dir %s: %v", outPath, err)
			}
			continue
		}
		if !r.CanReadEntryData() {
			fmt.Printf("Skipping %s (compressed with method %d)\n", e.Name(), e.Method())
			continue
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
		outF, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, e.Mode().Perm())
		if err != nil {
			log.Fatalf("create %s: %v", outPath, err)
		}
		written, err := io.Copy(outF, r)
		if cerr := outF.Close(); cerr != nil {
			log.Printf("close %s: %v", outPath, cerr)
		}
		if err != nil {
			log.Fatalf("extract %s: %v", e.Name(), err)
		}
		fmt.Printf("Extracted %s (%d bytes, crc32 verified)\n", e.Name(), written)
	}
}
