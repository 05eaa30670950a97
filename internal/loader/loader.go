// Package loader assembles the four-chunk Space Invaders ROM image from
// a directory on disk, grounded on the teacher's file_io.go os.ReadFile
// idiom and plain-error-return style.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
)

// ChunkSize is the expected size in bytes of each ROM chunk file.
const ChunkSize = 2048

// chunkFiles lists the four ROM files in the order they're concatenated
// into the address space, starting at 0x0000.
var chunkFiles = []string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

// LoadROM reads invaders.h/g/f/e from dir, validates each is exactly
// ChunkSize bytes, and returns them concatenated in load order. A
// missing or wrong-sized chunk yields a descriptive error naming the
// file and the expected size; any other read failure is returned
// wrapped, with the file's path.
func LoadROM(dir string) ([]byte, error) {
	image := make([]byte, 0, ChunkSize*len(chunkFiles))

	for _, name := range chunkFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("loader: missing ROM chunk %q (expected %d bytes)", path, ChunkSize)
			}
			return nil, fmt.Errorf("loader: cannot read ROM chunk %q: %w", path, err)
		}
		if len(data) != ChunkSize {
			return nil, fmt.Errorf("loader: ROM chunk %q is %d bytes, want exactly %d", path, len(data), ChunkSize)
		}
		image = append(image, data...)
	}

	return image, nil
}
