package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDownscaleShrinksLargePNG(t *testing.T) {
	data := encodePNG(t, 400, 200)

	out, resized, err := Downscale(data, "image/png", 100)
	require.NoError(t, err)
	assert.True(t, resized)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestDownscaleKeepsSmallImages(t *testing.T) {
	data := encodePNG(t, 40, 20)

	out, resized, err := Downscale(data, "image/png", 100)
	require.NoError(t, err)
	assert.False(t, resized)
	assert.Equal(t, data, out)
}

func TestDownscaleSkipsGIFAndDisabled(t *testing.T) {
	gif := []byte("GIF89a")
	out, resized, err := Downscale(gif, "image/gif", 10)
	require.NoError(t, err)
	assert.False(t, resized)
	assert.Equal(t, gif, out)

	data := encodePNG(t, 400, 200)
	_, resized, err = Downscale(data, "image/png", 0)
	require.NoError(t, err)
	assert.False(t, resized)
}

func TestDownscaleRejectsGarbage(t *testing.T) {
	_, _, err := Downscale([]byte{0xFF, 0xD8, 0xFF, 0x00}, "image/jpeg", 10)
	assert.Error(t, err)
}

func TestFitPortrait(t *testing.T) {
	w, h := fit(300, 900, 300)
	assert.Equal(t, 100, w)
	assert.Equal(t, 300, h)
}
