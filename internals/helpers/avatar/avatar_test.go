package avatar

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "AB", Normalize("ab"))
	assert.Equal(t, "KP", Normalize("K.P.Z"))
	assert.Equal(t, "?", Normalize(""))
	assert.Equal(t, "?", Normalize("é"))
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, DefaultSize, ClampSize(0))
	assert.Equal(t, MinSize, ClampSize(3))
	assert.Equal(t, MaxSize, ClampSize(4000))
	assert.Equal(t, 64, ClampSize(64))
}

func TestRenderDrawsGlyphsOnBackground(t *testing.T) {
	img := Render("KP", 96)
	require.Equal(t, 96, img.Bounds().Dx())
	require.Equal(t, 96, img.Bounds().Dy())

	bg := Background("KP")
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(bg.R)*0x101, r)
	assert.Equal(t, uint32(bg.G)*0x101, g)
	assert.Equal(t, uint32(bg.B)*0x101, b)

	white := 0
	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r == 0xffff && g == 0xffff && b == 0xffff {
				white++
			}
		}
	}
	assert.Greater(t, white, 0)
}

func TestBackgroundIsDeterministic(t *testing.T) {
	assert.Equal(t, Background("DS"), Background("DS"))
}

func TestEncodeRoundTrip(t *testing.T) {
	img := Render("DS", 32)

	var pngBuf bytes.Buffer
	require.NoError(t, Encode(&pngBuf, img, PNG))
	decoded, err := png.Decode(&pngBuf)
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())

	var webpBuf bytes.Buffer
	require.NoError(t, Encode(&webpBuf, img, WebP))
	decoded, err = webp.Decode(&webpBuf)
	require.NoError(t, err)
	assert.Equal(t, 32, decoded.Bounds().Dx())
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, WebP, Negotiate("image/avif,image/webp,*/*"))
	assert.Equal(t, PNG, Negotiate("*/*"))
	assert.Equal(t, "image/webp", WebP.ContentType())
	assert.Equal(t, "image/png", PNG.ContentType())
}
