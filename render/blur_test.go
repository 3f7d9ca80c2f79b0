// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		radius float64
		size   int
	}{
		{0, 1},
		{-1, 1},
		{1, 7},
		{2.5, 17},
	}
	for _, tt := range tests {
		k := gaussianKernel(tt.radius)
		if len(k) != tt.size {
			t.Errorf("len(gaussianKernel(%v)) = %d, want %d", tt.radius, len(k), tt.size)
			continue
		}
		var sum float64
		for i, v := range k {
			sum += float64(v)
			if v != k[len(k)-1-i] {
				t.Errorf("gaussianKernel(%v) not symmetric at %d", tt.radius, i)
			}
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("gaussianKernel(%v) sums to %v, want 1", tt.radius, sum)
		}
	}
}

func TestCachedKernel(t *testing.T) {
	a, b := cachedKernel(3), cachedKernel(3)
	if &a[0] != &b[0] {
		t.Error("cachedKernel() rebuilt a cached kernel")
	}
}

func TestBlurSpreadsAndConserves(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	i := img.PixOffset(10, 10)
	img.Pix[i+3] = 255

	blur(img, img.Bounds(), 1.5)

	var total int
	for p := 3; p < len(img.Pix); p += 4 {
		total += int(img.Pix[p])
	}
	if got := img.Pix[i+3]; got == 0 || got == 255 {
		t.Errorf("centre alpha = %d, want spread", got)
	}
	if got := img.Pix[img.PixOffset(12, 10)+3]; got == 0 {
		t.Error("neighbour alpha = 0, want spread")
	}
	if total < 230 || total > 280 {
		t.Errorf("total alpha = %d, want about 255", total)
	}
}

func TestBlurNoop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Pix[img.PixOffset(1, 1)+3] = 200
	blur(img, img.Bounds(), 0)
	blur(img, image.Rect(10, 10, 20, 20), 2)
	if got := img.Pix[img.PixOffset(1, 1)+3]; got != 200 {
		t.Errorf("alpha = %d, want untouched", got)
	}
}
