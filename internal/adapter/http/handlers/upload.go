package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"repair_hub/pkg"

	"github.com/gin-gonic/gin"
)

const (
	maxPhotoBytes = 10 << 20

	maxFrameBytes = 4 << 20
	maxScanFrames = 10

	// Room for multipart boundaries, part headers and small form fields.
	multipartOverhead = 1 << 20
)

var errPayloadTooLarge = pkg.NewDomainErrorSimple("PAYLOAD_TOO_LARGE", "Uploaded content exceeds the size limit", http.StatusRequestEntityTooLarge)

var errUploadTooLarge = errors.New("upload exceeds size limit")

// limitBody caps the request body at limit bytes.
func limitBody(c *gin.Context, limit int64) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
}

// readUpload reads an uploaded file, failing when it is larger than limit
// instead of truncating it.
func readUpload(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	if fh.Size > limit {
		return nil, errUploadTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errUploadTooLarge
	}
	return data, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.Is(err, errUploadTooLarge) || errors.As(err, &maxErr)
}
