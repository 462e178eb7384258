package qrcode

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec()

	data, err := c.EncodePNG("JOB-427001", DefaultSize)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())

	text, err := c.Decode(img)
	require.NoError(t, err)
	assert.Equal(t, "JOB-427001", text)
}

func TestCodec_DefaultSize(t *testing.T) {
	data, err := NewCodec().EncodePNG("JOB-1", 0)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestCodec_DecodeBlankFrame(t *testing.T) {
	blank := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range blank.Pix {
		blank.Pix[i] = 0xff
	}
	_, err := NewCodec().Decode(blank)
	assert.ErrorIs(t, err, ErrNoCode)
}
