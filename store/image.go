package store

import (
	"fmt"
	"os"
)

// LoadImage seeds a buffer from a raw memory image file, marking the
// covered bytes known. This is how recorded snapshots (e.g. .bin dumps of
// RAM or ROM regions) are brought into a space before emulation starts.
// Returns the number of bytes loaded.
func LoadImage(b *Buffer, base uint64, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("load memory image: %w", err)
	}
	b.Write(base, data)
	return len(data), nil
}
