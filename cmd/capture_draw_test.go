package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/mj1618/axkit/internal/model"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAnnotateCapture_Retina(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	// a 100x50 point region captured at 2x
	img := solid(200, 100, white)
	elements := []model.FlatElement{
		{ID: 3, Role: "btn", Bounds: [4]int{110, 210, 20, 10}},
	}

	out := AnnotateCapture(img, elements, [4]int{100, 200, 100, 50}, LabelIDs)

	// element origin (110,210) maps to pixel (20,20); its 20x10 size to 40x20
	if got := out.RGBAAt(20, 20); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("top-left corner = %v, want red", got)
	}
	if got := out.RGBAAt(59, 39); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom-right corner = %v, want red", got)
	}
	if got := out.RGBAAt(5, 5); got != white {
		t.Errorf("pixel outside the box = %v, want untouched", got)
	}
}

func TestAnnotateCapture_SkipsEmptyAndOffscreen(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	img := solid(50, 50, white)
	elements := []model.FlatElement{
		{ID: 1, Bounds: [4]int{0, 0, 0, 0}},
		{ID: 2, Bounds: [4]int{500, 500, 10, 10}},
	}
	out := AnnotateCapture(img, elements, [4]int{0, 0, 50, 50}, LabelRoles)
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if got := out.RGBAAt(x, y); got != white {
				t.Fatalf("pixel (%d,%d) = %v, want untouched", x, y, got)
			}
		}
	}
}

func TestScaleImage(t *testing.T) {
	img := solid(200, 100, color.Black)

	if got := ScaleImage(img, 0.5).Bounds(); got.Dx() != 100 || got.Dy() != 50 {
		t.Errorf("scaled bounds = %v, want 100x50", got)
	}
	for _, f := range []float64{0, 1, 2, -1} {
		if got := ScaleImage(img, f); got != image.Image(img) {
			t.Errorf("ScaleImage(%v) should return the input", f)
		}
	}
}

func TestParseLabelMode(t *testing.T) {
	if m, err := ParseLabelMode("id"); err != nil || m != LabelIDs {
		t.Errorf("ParseLabelMode(id) = %v, %v", m, err)
	}
	if m, err := ParseLabelMode("role"); err != nil || m != LabelRoles {
		t.Errorf("ParseLabelMode(role) = %v, %v", m, err)
	}
	if _, err := ParseLabelMode("coords"); err == nil {
		t.Error("ParseLabelMode(coords) should fail")
	}
}

func TestEncodeImage(t *testing.T) {
	img := solid(4, 4, color.White)
	var buf bytes.Buffer
	if err := encodeImage(&buf, img, "png", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
	buf.Reset()
	if err := encodeImage(&buf, img, "jpg", 500); err != nil {
		t.Errorf("jpg: %v", err)
	}
	if err := encodeImage(&buf, img, "gif", 0); err == nil {
		t.Error("gif should be rejected")
	}
}
