package kernels

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, row-major
}

// NewPixmap creates a new zeroed pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromData wraps an existing RGBA buffer in a Pixmap after validating
// the shape invariant len(data) == width*height*4. The pixmap takes
// ownership of data; the caller must not modify it afterwards.
func FromData(data []uint8, width, height int) (*Pixmap, error) {
	if err := validateImage(data, width, height); err != nil {
		return nil, err
	}
	return &Pixmap{width: width, height: height, data: data}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the channel values of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the channel values of a single pixel.
// Out-of-bounds coordinates return a transparent black pixel.
func (p *Pixmap) GetPixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// ToImage converts the pixmap to an image.NRGBA sharing no storage.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	dst := &image.NRGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)

	return pm
}

// Resize returns a new pixmap scaled to the given dimensions using
// Catmull-Rom interpolation.
func (p *Pixmap) Resize(width, height int) *Pixmap {
	out := NewPixmap(width, height)
	if width <= 0 || height <= 0 || p.width <= 0 || p.height <= 0 {
		return out
	}

	src := &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
	dst := &image.NRGBA{
		Pix:    out.data,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)

	return out
}

// LoadPNG reads a PNG file into a pixmap.
func LoadPNG(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("kernels: decoding %s: %w", path, err)
	}
	return FromImage(img), nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// Grayscale returns a grayscale copy of the pixmap.
func (p *Pixmap) Grayscale(opts ...Option) *Pixmap {
	data, _ := Grayscale(p.data, opts...) // shape invariant holds by construction
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// Invert returns a color-inverted copy of the pixmap.
func (p *Pixmap) Invert(opts ...Option) *Pixmap {
	data, _ := Invert(p.data, opts...) // shape invariant holds by construction
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// Blur returns a Gaussian-blurred copy of the pixmap.
// radius must be non-negative; radius 0 returns a plain copy.
func (p *Pixmap) Blur(radius int, opts ...Option) (*Pixmap, error) {
	data, err := Blur(p.data, p.width, p.height, radius, opts...)
	if err != nil {
		return nil, err
	}
	return &Pixmap{width: p.width, height: p.height, data: data}, nil
}

// EdgeDetect returns a Sobel edge-magnitude copy of the pixmap.
func (p *Pixmap) EdgeDetect(opts ...Option) *Pixmap {
	data, _ := EdgeDetect(p.data, p.width, p.height, opts...) // shape invariant holds by construction
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// Sharpen returns an unsharp-masked copy of the pixmap.
// strength must be non-negative and acts as a percentage.
func (p *Pixmap) Sharpen(strength int, opts ...Option) (*Pixmap, error) {
	data, err := Sharpen(p.data, p.width, p.height, strength, opts...)
	if err != nil {
		return nil, err
	}
	return &Pixmap{width: p.width, height: p.height, data: data}, nil
}
