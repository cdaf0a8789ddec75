package filter

import (
	"bytes"
	"testing"
)

func TestBlur_ZeroRadiusIsIdentity(t *testing.T) {
	src := testImage(12, 9)

	got := Blur(src, 12, 9, 0, 1)

	if !bytes.Equal(got, src) {
		t.Error("blur with radius 0 is not the identity")
	}
	if &got[0] == &src[0] {
		t.Error("blur returned the input buffer instead of a copy")
	}
}

func TestBlur_UniformImageUnchanged(t *testing.T) {
	// Blurring a constant image must return the same constant: the
	// normalized weighted average of equal values is that value.
	// Power-of-two channel values keep the float accumulation exact.
	const w, h = 16, 16
	src := make([]uint8, w*h*4)
	for i := 0; i < len(src); i += 4 {
		src[i+0] = 32
		src[i+1] = 64
		src[i+2] = 128
		src[i+3] = 255
	}

	got := Blur(src, w, h, 4, 1)

	if !bytes.Equal(got, src) {
		t.Error("blur changed a uniform image")
	}
}

func TestBlur_AlphaUntouched(t *testing.T) {
	src := testImage(10, 8)

	got := Blur(src, 10, 8, 3, 1)

	for i := 3; i < len(src); i += 4 {
		if got[i] != src[i] {
			t.Fatalf("blur changed alpha at index %d: got %d, want %d", i, got[i], src[i])
		}
	}
}

func TestBlur_OutputLength(t *testing.T) {
	src := testImage(7, 5)

	got := Blur(src, 7, 5, 2, 1)

	if len(got) != len(src) {
		t.Errorf("output length = %d, want %d", len(got), len(src))
	}
}

func TestBlur_SmoothsEdges(t *testing.T) {
	// A hard vertical edge must soften: the pixel just left of the edge
	// picks up some of the bright right half.
	const w, h = 16, 8
	src := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			i := (y*w + x) * 4
			src[i+0] = 255
			src[i+1] = 255
			src[i+2] = 255
			src[i+3] = 255
		}
	}

	got := Blur(src, w, h, 3, 1)

	left := (4*w + w/2 - 1) * 4 // just left of the edge, mid-height
	if got[left] == 0 {
		t.Error("pixel left of a hard edge stayed 0 after blur")
	}
	right := (4*w + w/2) * 4
	if got[right] == 255 {
		t.Error("pixel right of a hard edge stayed 255 after blur")
	}
}

func TestBlur_ParallelMatchesSequential(t *testing.T) {
	src := testImage(33, 21)

	seq := Blur(src, 33, 21, 5, 1)
	par := Blur(src, 33, 21, 5, 4)

	if !bytes.Equal(seq, par) {
		t.Error("parallel blur differs from sequential blur")
	}
}

func TestBlur_DegenerateDimensions(t *testing.T) {
	if got := Blur([]uint8{}, 0, 0, 3, 1); len(got) != 0 {
		t.Errorf("blur of empty image len = %d, want 0", len(got))
	}

	// 1x1 image: every sample clamps to the single pixel.
	src := []uint8{16, 32, 64, 40}
	got := Blur(src, 1, 1, 5, 1)
	if !bytes.Equal(got, src) {
		t.Errorf("blur of 1x1 image = %v, want %v", got, src)
	}
}

func TestGaussianWeights(t *testing.T) {
	weights := gaussianWeights(3)

	if len(weights) != 7 {
		t.Fatalf("len(weights) = %d, want 7", len(weights))
	}
	// Symmetric around the center, peak at dx=0.
	for i := 0; i < 3; i++ {
		if weights[i] != weights[len(weights)-1-i] {
			t.Errorf("weights not symmetric at %d: %g vs %g", i, weights[i], weights[len(weights)-1-i])
		}
	}
	if weights[3] != 1.0 {
		t.Errorf("center weight = %g, want 1.0", weights[3])
	}
	if weights[0] >= weights[3] {
		t.Error("edge weight not smaller than center weight")
	}
}
