package interfaces

import "image"

// IQREncoder renders a job identifier as a QR code PNG.
type IQREncoder interface {
	EncodePNG(value string, size int) ([]byte, error)
}

// IQRDecoder extracts the raw payload of a QR code found in an image.
type IQRDecoder interface {
	Decode(img image.Image) (string, error)
}
