// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gogpu/drafter"
)

func TestRasterUpdateClear(t *testing.T) {
	r := NewRaster(10, 10)
	p := rectPath(0, 0, 5, 5)
	r.Update("a", p, filled(red))
	r.Update("b", p, filled(blue))
	r.Update("a", p, filled(blue))

	if got, want := r.UIDs(), []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("UIDs() = %v, want %v", got, want)
	}
	r.Clear("a")
	r.Clear("missing")
	if got, want := r.UIDs(), []string{"b"}; !slices.Equal(got, want) {
		t.Errorf("UIDs() after Clear = %v, want %v", got, want)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRasterCopiesPath(t *testing.T) {
	r := NewRaster(20, 20)
	p := rectPath(0, 0, 5, 5)
	r.Update("a", p, filled(red))
	p.Clear()

	img, err := r.Image()
	if err != nil {
		t.Fatalf("Image() = %v", err)
	}
	if got := pixel(img, 2, 2); got.R != 0xff {
		t.Errorf("pixel = %v, want red from the stored copy", got)
	}
}

func TestRasterReorder(t *testing.T) {
	r := NewRaster(10, 10)
	for _, uid := range []string{"a", "b", "c"} {
		r.Update(uid, rectPath(0, 0, 1, 1), filled(red))
	}
	tests := []struct {
		name string
		uids []string
		want []string
	}{
		{"full", []string{"c", "a", "b"}, []string{"c", "a", "b"}},
		{"partial", []string{"c"}, []string{"a", "b", "c"}},
		{"unknown and duplicate", []string{"x", "a", "a"}, []string{"b", "c", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.Reorder(tt.uids)
			if got := r.UIDs(); !slices.Equal(got, tt.want) {
				t.Errorf("UIDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRasterStacking(t *testing.T) {
	r := NewRaster(20, 20)
	r.Update("bottom", rectPath(0, 0, 20, 20), filled(red))
	r.Update("top", rectPath(5, 5, 10, 10), filled(blue))

	img, err := r.Image()
	if err != nil {
		t.Fatalf("Image() = %v", err)
	}
	if got := pixel(img, 10, 10); got != (color.RGBA{B: 0xff, A: 0xff}) {
		t.Errorf("overlap pixel = %v, want the top curve", got)
	}

	r.Reorder([]string{"top", "bottom"})
	img, _ = r.Image()
	if got := pixel(img, 10, 10); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("overlap pixel after Reorder = %v, want the raised curve", got)
	}
}

func TestRasterBackground(t *testing.T) {
	r := NewRaster(4, 4)
	r.SetBackground(drafter.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	img, err := r.Image()
	if err != nil {
		t.Fatalf("Image() = %v", err)
	}
	if got := pixel(img, 0, 0); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("pixel = %v, want white", got)
	}
}

func TestRasterShadow(t *testing.T) {
	r := NewRaster(60, 60)
	st := filled(red)
	st.Shadow = [3]float64{0, 20, 20}
	st.Colors.Shadow = black
	r.Update("a", rectPath(10, 10, 20, 20), st)

	img, err := r.Image()
	if err != nil {
		t.Fatalf("Image() = %v", err)
	}
	if got := pixel(img, 45, 45); got.A < 0xf0 || got.R > 0x10 {
		t.Errorf("shadow pixel = %v, want black", got)
	}
	if got := pixel(img, 20, 20); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("curve pixel = %v, want red over the shadow", got)
	}
}

func TestRasterBlur(t *testing.T) {
	r := NewRaster(60, 60)
	st := filled(red)
	st.Blur = 3
	r.Update("a", rectPath(20, 20, 20, 20), st)

	img, err := r.Image()
	if err != nil {
		t.Fatalf("Image() = %v", err)
	}
	if got := pixel(img, 18, 30); got.A == 0 {
		t.Error("pixel just outside the curve = transparent, want blurred")
	}
	if got := pixel(img, 30, 30); got.A < 0xf0 {
		t.Errorf("centre pixel = %v, want nearly opaque", got)
	}
}

func TestRasterPNG(t *testing.T) {
	r := NewRaster(16, 8)
	r.Update("a", rectPath(0, 0, 8, 8), filled(red))

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 16x8", b)
	}

	path := filepath.Join(t.TempDir(), "board.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("saved file: %v", err)
	}
}

func TestRasterInvalidSize(t *testing.T) {
	if _, err := NewRaster(0, 10).Image(); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Image() = %v, want ErrInvalidSize", err)
	}
}
