package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"repair_hub/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3PhotoStorage_Upload(t *testing.T) {
	t.Run("returns public url", func(t *testing.T) {
		fake := &fakeS3{}
		st := NewS3PhotoStorage(fake, config.PhotoStorageConfig{Bucket: "damaged-devices", PublicBaseURL: "https://cdn.example.com/"})

		url, err := st.Upload(context.Background(), "JOB-1/abc.jpg", "image/jpeg", []byte("jpeg"))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/JOB-1/abc.jpg", url)
		assert.Equal(t, "damaged-devices", aws.ToString(fake.input.Bucket))
		assert.Equal(t, "JOB-1/abc.jpg", aws.ToString(fake.input.Key))
		assert.Equal(t, "image/jpeg", aws.ToString(fake.input.ContentType))
		assert.Equal(t, "jpeg", string(fake.body))
	})

	t.Run("wraps error", func(t *testing.T) {
		fake := &fakeS3{err: errors.New("access denied")}
		st := NewS3PhotoStorage(fake, config.PhotoStorageConfig{Bucket: "b"})

		_, err := st.Upload(context.Background(), "k", "", []byte("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
		assert.Nil(t, fake.input.ContentType)
	})
}

func TestNewS3Client_CustomEndpoint(t *testing.T) {
	client := NewS3Client(aws.Config{Region: "us-east-1"}, "http://localhost:9000")
	opts := client.Options()
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
}

type fakeUploader struct {
	bucket, path string
}

func (f *fakeUploader) UploadObject(_ context.Context, bucket, objectPath, _ string, _ []byte) (string, error) {
	f.bucket, f.path = bucket, objectPath
	return "https://x.supabase.co/storage/v1/object/public/" + bucket + "/" + objectPath, nil
}

func TestSupabasePhotoStorage_Upload(t *testing.T) {
	up := &fakeUploader{}
	st := NewSupabasePhotoStorage(up, "damaged-devices")

	url, err := st.Upload(context.Background(), "JOB-1/a.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "damaged-devices", up.bucket)
	assert.Equal(t, "JOB-1/a.png", up.path)
	assert.Equal(t, "https://x.supabase.co/storage/v1/object/public/damaged-devices/JOB-1/a.png", url)
}
