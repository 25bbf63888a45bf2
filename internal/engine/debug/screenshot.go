package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes framebuffer captures as numbered PNG files.
type Screenshots struct {
	Dir    string
	Prefix string

	// Now is overridable for deterministic file names.
	Now func() time.Time
	seq int
}

// NewScreenshots creates a capture writer rooted at dir.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{Dir: dir, Prefix: prefix, Now: time.Now}
}

// NextPath returns the file name the next capture will use.
func (s *Screenshots) NextPath() string {
	name := fmt.Sprintf("%s_%s_%03d.png", s.Prefix, s.Now().Format("2006-01-02_15-04-05"), s.seq)
	if s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// SaveRGBA writes bottom-up RGBA pixels, as returned by glReadPixels, to a
// top-down PNG and returns its path.
func (s *Screenshots) SaveRGBA(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: %dx%d with %d bytes", width, height, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}

	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := s.NextPath()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	s.seq++
	return path, nil
}
