// file: internals/helpers/avatar/avatar.go
package avatar

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultSize = 128
	MinSize     = 16
	MaxSize     = 512

	canvas = 24 // kanvas kecil, lalu di-scale (pixel-art look)
)

type Format int

const (
	PNG Format = iota
	WebP
)

func (f Format) ContentType() string {
	if f == WebP {
		return "image/webp"
	}
	return "image/png"
}

// palet latar (tone slate/amber/emerald, ikut tema situs)
var palette = []color.NRGBA{
	{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
	{R: 0x33, G: 0x41, B: 0x55, A: 0xff},
	{R: 0xb4, G: 0x53, B: 0x09, A: 0xff},
	{R: 0x04, G: 0x78, B: 0x57, A: 0xff},
	{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff},
	{R: 0x9f, G: 0x12, B: 0x39, A: 0xff},
}

// Normalize: huruf besar A-Z/0-9, maksimal 2 karakter, "?" kalau kosong.
// basicfont hanya punya glyph ASCII.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == 2 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

func ClampSize(n int) int {
	switch {
	case n <= 0:
		return DefaultSize
	case n < MinSize:
		return MinSize
	case n > MaxSize:
		return MaxSize
	}
	return n
}

// Background: warna deterministik per inisial.
func Background(initials string) color.NRGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(initials))
	return palette[int(h.Sum32()%uint32(len(palette)))]
}

/* =======================================================================
   Render
======================================================================= */

func Render(initials string, size int) image.Image {
	initials = Normalize(initials)
	size = ClampSize(size)

	img := image.NewNRGBA(image.Rect(0, 0, canvas, canvas))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background(initials)), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	width := font.MeasureString(face, initials).Ceil()
	m := face.Metrics()
	height := (m.Ascent + m.Descent).Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P((canvas-width)/2, (canvas-height)/2+m.Ascent.Ceil()),
	}
	d.DrawString(initials)

	return imaging.Resize(img, size, size, imaging.NearestNeighbor)
}

/* =======================================================================
   Encode
======================================================================= */

// Negotiate memilih WebP kalau header Accept menyebut image/webp.
func Negotiate(accept string) Format {
	if strings.Contains(strings.ToLower(accept), "image/webp") {
		return WebP
	}
	return PNG
}

func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case WebP:
		if err := webp.Encode(w, img, &webp.Options{Lossless: true}); err != nil {
			return fmt.Errorf("encode webp: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	}
	return nil
}
