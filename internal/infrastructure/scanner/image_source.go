package scanner

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"sync"

	"repair_hub/internal/usecase/interfaces"
)

// MaxFramePixels bounds width*height of a frame; larger frames are skipped
// without being decoded.
const MaxFramePixels = 4096 * 4096

var (
	ErrNoFrames       = errors.New("no frames supplied")
	ErrSourceReleased = errors.New("frame source released")
	ErrNotAcquired    = errors.New("frame source not acquired")
	ErrFrameTooLarge  = errors.New("frame dimensions exceed limit")
)

// ImageFrameSource replays uploaded still images as a camera stream.
//
// Frames that fail to decode or exceed MaxFramePixels are skipped. Release
// may be called any number of times; it drops the buffered images.
type ImageFrameSource struct {
	mu       sync.Mutex
	raw      [][]byte
	next     int
	acquired bool
	released bool
	skipped  int
}

var _ interfaces.IFrameSource = (*ImageFrameSource)(nil)

func NewImageFrameSource(frames [][]byte) *ImageFrameSource {
	return &ImageFrameSource{raw: frames}
}

func (s *ImageFrameSource) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrSourceReleased
	}
	if len(s.raw) == 0 {
		return ErrNoFrames
	}
	s.acquired = true
	return nil
}

func (s *ImageFrameSource) NextFrame(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil, ErrSourceReleased
	}
	if !s.acquired {
		return nil, ErrNotAcquired
	}
	for s.next < len(s.raw) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data := s.raw[s.next]
		s.next++
		img, err := decodeFrame(data)
		if err != nil {
			s.skipped++
			continue
		}
		return img, nil
	}
	return nil, io.EOF
}

func (s *ImageFrameSource) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = true
	s.acquired = false
	s.raw = nil
}

// Released reports whether Release has been called.
func (s *ImageFrameSource) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// Skipped is the number of frames that were not decodable images.
func (s *ImageFrameSource) Skipped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skipped
}

// decodeFrame reads the header first so an oversized canvas is never
// allocated.
func decodeFrame(data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxFramePixels {
		return nil, ErrFrameTooLarge
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}
