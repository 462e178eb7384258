package storage

import (
	"context"

	"repair_hub/internal/usecase/interfaces"
)

// ObjectUploader is implemented by the Supabase client.
type ObjectUploader interface {
	UploadObject(ctx context.Context, bucket, objectPath, contentType string, data []byte) (string, error)
}

// SupabasePhotoStorage uploads device photos to a public Supabase Storage bucket.
type SupabasePhotoStorage struct {
	uploader ObjectUploader
	bucket   string
}

var _ interfaces.IPhotoStorage = (*SupabasePhotoStorage)(nil)

func NewSupabasePhotoStorage(uploader ObjectUploader, bucket string) *SupabasePhotoStorage {
	return &SupabasePhotoStorage{uploader: uploader, bucket: bucket}
}

func (s *SupabasePhotoStorage) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	return s.uploader.UploadObject(ctx, s.bucket, objectPath, contentType, data)
}
