package qrcode

import (
	"errors"
	"fmt"
	"image"

	"repair_hub/internal/usecase/interfaces"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	goqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length in pixels of printed tag codes.
const DefaultSize = 512

var ErrNoCode = errors.New("no qr code found")

// Codec encodes job identifiers as QR PNGs (error correction level H, quiet
// zone included) and decodes QR codes from camera frames.
type Codec struct{}

var (
	_ interfaces.IQREncoder = Codec{}
	_ interfaces.IQRDecoder = Codec{}
)

func NewCodec() Codec {
	return Codec{}
}

func (Codec) EncodePNG(value string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := goqrcode.Encode(value, goqrcode.Highest, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr %q: %w", value, err)
	}
	return png, nil
}

// Decode returns the raw text of the first QR code in img, or ErrNoCode.
func (Codec) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("read frame: %w", err)
	}
	result, err := zxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCode, err)
	}
	return result.GetText(), nil
}
