package handlers

import (
	"net/http"
	"strings"

	request "repair_hub/internal/adapter/http/dto/request"
	response "repair_hub/internal/adapter/http/dto/response"
	"repair_hub/internal/usecase"
	"repair_hub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPhotoUpload = pkg.NewDomainErrorSimple("INVALID_PHOTO", "A device photo file is required in the 'photo' field", http.StatusBadRequest)

// RepairJobHandler serves the job list, the job form and its side actions.
type RepairJobHandler struct {
	usecase  usecase.IRepairJobUseCase
	consumer usecase.IPartConsumptionUseCase
}

func NewRepairJobHandler(uc usecase.IRepairJobUseCase, consumer usecase.IPartConsumptionUseCase) *RepairJobHandler {
	return &RepairJobHandler{usecase: uc, consumer: consumer}
}

// ListJobs godoc
// @Summary      Filter repair jobs
// @Tags         jobs
// @Produce      json
// @Security     Bearer
// @Param        status  query     string  false  "quoted, approved, working, completed or all"
// @Param        q       query     string  false  "Search over customer, product and id"
// @Success      200     {array}   response.RepairJobResponse
// @Router       /jobs [get]
func (h *RepairJobHandler) ListJobs(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	jobs, err := h.usecase.Filter(c.Request.Context(), session, c.DefaultQuery("status", usecase.FilterAll), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRepairJobs(jobs))
}

// GetJob godoc
// @Summary      Get a repair job
// @Tags         jobs
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.RepairJobResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{id} [get]
func (h *RepairJobHandler) GetJob(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	job, err := h.usecase.FindByID(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRepairJob(job))
}

// OpenJob godoc
// @Summary      Open a job by tag, returning a blank draft for unknown tags
// @Tags         jobs
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.OpenRepairJobResponse
// @Router       /jobs/{id}/open [get]
func (h *RepairJobHandler) OpenJob(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	job, isNew, err := h.usecase.Open(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OpenRepairJobResponse{Job: response.FromRepairJob(job), IsNew: isNew})
}

// SaveJob godoc
// @Summary      Create or update a repair job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                     true  "Job id"
// @Param        body  body      request.RepairJobRequest  true  "Job form"
// @Success      200   {object}  response.SaveRepairJobResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /jobs/{id} [put]
func (h *RepairJobHandler) SaveJob(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.RepairJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.CreateOrUpdate(c.Request.Context(), session, payload.ToInput(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SaveRepairJobResponse{Job: response.FromRepairJob(job), NextView: response.ViewJobs})
}

// SetStatus godoc
// @Summary      Move a job to another status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                 true  "Job id"
// @Param        body  body      request.StatusRequest  true  "New status"
// @Success      200   {object}  response.RepairJobResponse
// @Router       /jobs/{id}/status [patch]
func (h *RepairJobHandler) SetStatus(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.SetStatus(c.Request.Context(), session, c.Param("id"), payload.ResolveStatus())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromRepairJob(job))
}

// ConsumePart godoc
// @Summary      Consume a stock item on a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                      true  "Job id"
// @Param        body  body      request.ConsumePartRequest  true  "Stock item and quantity"
// @Success      200   {object}  response.ConsumePartResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /jobs/{id}/parts [post]
func (h *RepairJobHandler) ConsumePart(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.ConsumePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	job, item, err := h.consumer.Consume(c.Request.Context(), session, c.Param("id"), payload.ResolveStockItemID(), payload.Quantity.Int())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ConsumePartResponse{
		Job:       response.FromRepairJob(job),
		StockItem: response.FromStockItem(item),
	})
}

// UploadPhoto godoc
// @Summary      Upload the damaged device photo
// @Tags         jobs
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        id     path      string  true  "Job id"
// @Param        photo  formData  file    true  "Device photo"
// @Success      201    {object}  response.PhotoResponse
// @Failure      413    {object}  pkg.HTTPError
// @Failure      502    {object}  pkg.HTTPError
// @Router       /jobs/{id}/photo [post]
func (h *RepairJobHandler) UploadPhoto(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	limitBody(c, maxPhotoBytes+multipartOverhead)
	header, err := c.FormFile("photo")
	if err != nil {
		if isTooLarge(err) {
			writeAppError(c, errPayloadTooLarge)
			return
		}
		writeAppError(c, errInvalidPhotoUpload)
		return
	}

	data, err := readUpload(header, maxPhotoBytes)
	if err != nil {
		if isTooLarge(err) {
			writeAppError(c, errPayloadTooLarge)
			return
		}
		writeAppError(c, errInvalidPhotoUpload)
		return
	}

	jobID := strings.TrimSpace(c.Param("id"))
	url, err := h.usecase.AttachDevicePhoto(c.Request.Context(), session, jobID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.PhotoResponse{JobID: jobID, URL: url})
}
