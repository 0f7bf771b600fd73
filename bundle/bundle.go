// Package bundle packs the generated raster into a multi-resolution
// Windows icon container (.ico).
package bundle

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	ico "github.com/sergeymakinen/go-ico"
)

// File is the fixed output path, relative to the working directory.
const File = "icon.ico"

// Sizes are the frame side lengths, ascending. The 16x16 frame is the
// container's primary image; the rest are appended in order.
var Sizes = []uint{16, 32, 48, 64, 128, 256}

// Frames downsamples src to every target size with Lanczos resampling.
// Nearest-neighbor would visibly degrade the gradient and circle edges
// at the small sizes.
func Frames(src image.Image) []image.Image {
	frames := make([]image.Image, len(Sizes))
	for i, s := range Sizes {
		frames[i] = resize.Resize(s, s, src, resize.Lanczos3)
	}
	return frames
}

// Load reads and decodes the source raster.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Write encodes the frames into one .ico at path, replacing any
// existing file. Each frame gets its own directory entry, in the order
// given.
func Write(path string, frames []image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ico.EncodeAll(f, frames); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Build reads the raster at src and writes the icon container to dst.
func Build(src, dst string) error {
	img, err := Load(src)
	if err != nil {
		return err
	}
	return Write(dst, Frames(img))
}
