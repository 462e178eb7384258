package interfaces

import "context"

// IPhotoStorage uploads device photos and returns their public URL.
type IPhotoStorage interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (publicURL string, err error)
}
