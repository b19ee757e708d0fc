package viewport

import (
	"fmt"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// SaveWebP writes the canvas as a lossless WebP file.
func (c *Canvas) SaveWebP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viewport: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, c.Img, nil); err != nil {
		return fmt.Errorf("viewport: encoding %s: %w", path, err)
	}
	return nil
}
