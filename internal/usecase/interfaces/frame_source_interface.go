package interfaces

import (
	"context"
	"image"
)

// IFrameSource is a camera-like stream of frames.
//
// Acquire must be called before NextFrame. NextFrame returns io.EOF when no
// more frames are available. Release stops the stream and must be safe to call
// more than once.
type IFrameSource interface {
	Acquire(ctx context.Context) error
	NextFrame(ctx context.Context) (image.Image, error)
	Release()
}
