package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	response "repair_hub/internal/adapter/http/dto/response"
	"repair_hub/internal/usecase"
	"repair_hub/internal/usecase/interfaces"
	"repair_hub/pkg"

	"github.com/gin-gonic/gin"
)

const maxScanMemory = 32 << 20

var (
	errMissingScanInput = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Provide image files in 'frames' or a 'manual_id'", http.StatusBadRequest)
	errTooManyFrames    = pkg.NewDomainErrorSimple("INVALID_REQUEST", fmt.Sprintf("At most %d frames can be scanned at once", maxScanFrames), http.StatusBadRequest)
)

// FrameSourceFactory turns uploaded frames into a camera-like source.
type FrameSourceFactory func(frames [][]byte) interfaces.IFrameSource

type ScanHandler struct {
	usecase   usecase.IScanUseCase
	newSource FrameSourceFactory
}

func NewScanHandler(uc usecase.IScanUseCase, newSource FrameSourceFactory) *ScanHandler {
	return &ScanHandler{usecase: uc, newSource: newSource}
}

// Scan godoc
// @Summary      Open a job from a scanned tag or a typed id
// @Tags         scan
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        frames     formData  file    false  "Camera frames, tried in order"
// @Param        manual_id  formData  string  false  "Job id typed by the operator"
// @Success      200        {object}  response.ScanResponse
// @Failure      413        {object}  pkg.HTTPError
// @Failure      422        {object}  pkg.HTTPError
// @Router       /scan [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	limitBody(c, maxScanFrames*maxFrameBytes+multipartOverhead)
	if err := c.Request.ParseMultipartForm(maxScanMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if isTooLarge(err) {
			writeAppError(c, errPayloadTooLarge)
			return
		}
		writeAppError(c, errInvalidPayload)
		return
	}

	if manualID := strings.TrimSpace(c.PostForm("manual_id")); manualID != "" {
		result, err := h.usecase.Lookup(c.Request.Context(), session, manualID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromScanResult(result))
		return
	}

	var files []*multipart.FileHeader
	if c.Request.MultipartForm != nil {
		files = c.Request.MultipartForm.File["frames"]
	}
	if len(files) == 0 {
		writeAppError(c, errMissingScanInput)
		return
	}
	if len(files) > maxScanFrames {
		writeAppError(c, errTooManyFrames)
		return
	}

	frames, err := readUploadedFrames(files)
	if err != nil {
		if isTooLarge(err) {
			writeAppError(c, errPayloadTooLarge)
			return
		}
		writeAppError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.Scan(c.Request.Context(), session, h.newSource(frames))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromScanResult(result))
}

func readUploadedFrames(files []*multipart.FileHeader) ([][]byte, error) {
	frames := make([][]byte, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh, maxFrameBytes)
		if err != nil {
			return nil, err
		}
		frames = append(frames, data)
	}
	return frames, nil
}
