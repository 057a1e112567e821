package cmd

import (
	"fmt"
	"image"
	"image/color"

	"github.com/mj1618/axkit/internal/model"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelMode controls what text is drawn on each annotated element.
type LabelMode int

const (
	// LabelIDs draws "[id]" element IDs, matching `tree` output.
	LabelIDs LabelMode = iota
	// LabelRoles draws the element's compact role.
	LabelRoles
)

// ParseLabelMode parses a --label value.
func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "id", "ids":
		return LabelIDs, nil
	case "role", "roles":
		return LabelRoles, nil
	}
	return 0, fmt.Errorf("invalid label %q: use id or role", s)
}

// AnnotateCapture draws bounding boxes and labels for elements on img.
// region is [x, y, w, h] of the captured area in screen points. Element
// bounds are screen-absolute points; they are converted to image pixels using
// the ratio of image to region size, which absorbs Retina scaling.
func AnnotateCapture(img image.Image, elements []model.FlatElement, region [4]int, mode LabelMode) *image.RGBA {
	rgba := ImageToRGBA(img)

	imgBounds := img.Bounds()
	scaleX, scaleY := 1.0, 1.0
	if region[2] > 0 {
		scaleX = float64(imgBounds.Dx()) / float64(region[2])
	}
	if region[3] > 0 {
		scaleY = float64(imgBounds.Dy()) / float64(region[3])
	}

	boxColor := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}

	for _, el := range elements {
		b := el.Bounds
		if b[2] <= 0 || b[3] <= 0 {
			continue
		}
		x := imgBounds.Min.X + int(float64(b[0]-region[0])*scaleX)
		y := imgBounds.Min.Y + int(float64(b[1]-region[1])*scaleY)
		w := int(float64(b[2]) * scaleX)
		h := int(float64(b[3]) * scaleY)
		drawRectangle(rgba, x, y, x+w, y+h, boxColor)

		label := fmt.Sprintf("[%d]", el.ID)
		if mode == LabelRoles {
			label = el.Role
		}
		drawTextWithOutline(rgba, label, x+w/2, y+h/2, textColor, outlineColor)
	}
	return rgba
}

// ScaleImage resizes img by factor. Factors outside (0, 1) return img as is.
func ScaleImage(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor >= 1 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 || h < 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// ImageToRGBA converts any image to RGBA.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

// drawRectangle draws a rectangle outline, clipped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	r := image.Rect(x1, y1, x2, y2).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawTextWithOutline draws text centered on (x, y) with a one-pixel outline.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13 glyphs are 7 pixels wide and 13 high
	textWidth := len(text) * 7
	textHeight := 13
	offsetX := x - textWidth/2
	offsetY := y + textHeight/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, offsetX+dx, offsetY+dy, outlineColor)
		}
	}
	drawString(img, text, offsetX, offsetY, textColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
