package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	request "repair_hub/internal/adapter/http/dto/request"
	response "repair_hub/internal/adapter/http/dto/response"
	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	usecase usecase.ITagUseCase
}

func NewTagHandler(uc usecase.ITagUseCase) *TagHandler {
	return &TagHandler{usecase: uc}
}

// GenerateBatch godoc
// @Summary      Generate a batch of blank job tags
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.TagBatchRequest  false  "Prefix and count"
// @Success      201   {object}  response.TagQueueResponse
// @Router       /tags/batches [post]
func (h *TagHandler) GenerateBatch(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.TagBatchRequest
	// An empty body asks for the default sheet.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeAppError(c, errInvalidPayload)
		return
	}

	tags, err := h.usecase.GenerateBatch(c.Request.Context(), session, payload.ResolvePrefix(), payload.ResolveCount())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromJobTags(tags))
}

// Queue godoc
// @Summary      Blank tags waiting to be printed
// @Tags         tags
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.TagQueueResponse
// @Router       /tags [get]
func (h *TagHandler) Queue(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	tags, err := h.usecase.Queue(c.Request.Context(), session)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromJobTags(tags))
}

// Remove godoc
// @Summary      Remove one tag from the queue
// @Tags         tags
// @Security     Bearer
// @Param        tag_id  path  string  true  "Tag id"
// @Success      204
// @Router       /tags/{tag_id} [delete]
func (h *TagHandler) Remove(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	if err := h.usecase.Remove(c.Request.Context(), session, c.Param("tag_id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear godoc
// @Summary      Empty the tag queue
// @Tags         tags
// @Security     Bearer
// @Success      204
// @Router       /tags [delete]
func (h *TagHandler) Clear(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	if err := h.usecase.Clear(c.Request.Context(), session); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportZIP godoc
// @Summary      Download the queue as a ZIP of QR images
// @Tags         tags
// @Produce      application/zip
// @Security     Bearer
// @Success      200
// @Router       /tags/export.zip [get]
func (h *TagHandler) ExportZIP(c *gin.Context) {
	h.export(c, h.usecase.ExportZIP, "application/zip")
}

// ExportPDF godoc
// @Summary      Download the queue as a printable PDF sheet
// @Tags         tags
// @Produce      application/pdf
// @Security     Bearer
// @Success      200
// @Router       /tags/export.pdf [get]
func (h *TagHandler) ExportPDF(c *gin.Context) {
	h.export(c, h.usecase.ExportPDF, "application/pdf")
}

func (h *TagHandler) export(
	c *gin.Context,
	exporter func(ctx context.Context, session entities.Session) (string, []byte, error),
	contentType string,
) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	name, data, err := exporter(c.Request.Context(), session)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentType, data)
}
