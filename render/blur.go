// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"
	"sync"
)

// gaussianKernel returns a normalized 1D Gaussian kernel using radius as
// sigma. The kernel spans three standard deviations on each side.
func gaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(radius * 3))
	kernel := make([]float32, half*2+1)
	twoSigmaSq := 2 * radius * radius
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernels caches kernels keyed by radius quantized to 0.01.
var kernels sync.Map

func cachedKernel(radius float64) []float32 {
	key := int(radius * 100)
	if k, ok := kernels.Load(key); ok {
		return k.([]float32)
	}
	k, _ := kernels.LoadOrStore(key, gaussianKernel(radius))
	return k.([]float32)
}

// blurSpread returns how far a blur of radius reaches past the source.
func blurSpread(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius * 3))
}

// floatBuffer wraps a slice for sync.Pool.
type floatBuffer struct {
	data []float32
}

var tempPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

// blur applies a separable Gaussian blur to img inside r. Pixels outside
// img are treated as an extension of its edge.
func blur(img *image.RGBA, r image.Rectangle, radius float64) {
	r = r.Intersect(img.Bounds())
	if radius <= 0 || r.Empty() {
		return
	}
	kernel := cachedKernel(radius)
	w, h := r.Dx(), r.Dy()

	buf := tempPool.Get().(*floatBuffer)
	defer tempPool.Put(buf)
	if cap(buf.data) < w*h*4 {
		buf.data = make([]float32, w*h*4)
	}
	temp := buf.data[:w*h*4]

	blurHorizontal(img, temp, r, kernel)
	blurVertical(temp, img, r, kernel)
}

// blurHorizontal convolves the rows of img inside r into temp.
func blurHorizontal(img *image.RGBA, temp []float32, r image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	b := img.Bounds()
	w := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			var cr, cg, cb, ca float32
			for k, weight := range kernel {
				kx := min(max(x+k-half, b.Min.X), b.Max.X-1)
				i := img.PixOffset(kx, y)
				cr += float32(img.Pix[i+0]) * weight
				cg += float32(img.Pix[i+1]) * weight
				cb += float32(img.Pix[i+2]) * weight
				ca += float32(img.Pix[i+3]) * weight
			}
			t := ((y-r.Min.Y)*w + (x - r.Min.X)) * 4
			temp[t+0], temp[t+1], temp[t+2], temp[t+3] = cr, cg, cb, ca
		}
	}
}

// blurVertical convolves the columns of temp back into img inside r.
func blurVertical(temp []float32, img *image.RGBA, r image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	w, h := r.Dx(), r.Dy()
	for y := range h {
		for x := range w {
			var cr, cg, cb, ca float32
			for k, weight := range kernel {
				ky := min(max(y+k-half, 0), h-1)
				t := (ky*w + x) * 4
				cr += temp[t+0] * weight
				cg += temp[t+1] * weight
				cb += temp[t+2] * weight
				ca += temp[t+3] * weight
			}
			i := img.PixOffset(r.Min.X+x, r.Min.Y+y)
			img.Pix[i+0] = clampUint8(cr)
			img.Pix[i+1] = clampUint8(cg)
			img.Pix[i+2] = clampUint8(cb)
			img.Pix[i+3] = clampUint8(ca)
		}
	}
}

func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
