package handlers

import (
	"net/http"

	request "repair_hub/internal/adapter/http/dto/request"
	response "repair_hub/internal/adapter/http/dto/response"
	"repair_hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	usecase usecase.IStockLedgerUseCase
}

func NewStockHandler(uc usecase.IStockLedgerUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

// ListStock godoc
// @Summary      List stock items
// @Tags         stock
// @Produce      json
// @Security     Bearer
// @Param        q    query     string  false  "Search over name and category"
// @Success      200  {array}   response.StockItemResponse
// @Router       /stock [get]
func (h *StockHandler) ListStock(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	items, err := h.usecase.List(c.Request.Context(), session, c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromStockItems(items))
}

// AddItem godoc
// @Summary      Add a stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.StockItemRequest  true  "Stock item"
// @Success      201   {object}  response.StockItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /stock [post]
func (h *StockHandler) AddItem(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.StockItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.AddItem(c.Request.Context(), session, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromStockItem(item))
}

// Deduct godoc
// @Summary      Deduct quantity from a stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                 true  "Stock item id"
// @Param        body  body      request.DeductRequest  true  "Quantity"
// @Success      200   {object}  response.StockItemResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /stock/{id}/deduct [post]
func (h *StockHandler) Deduct(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var payload request.DeductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.Deduct(c.Request.Context(), session, c.Param("id"), payload.Quantity.Int())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromStockItem(item))
}

// TotalValue godoc
// @Summary      Inventory value
// @Tags         stock
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.StockValueResponse
// @Router       /stock/value [get]
func (h *StockHandler) TotalValue(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	total, err := h.usecase.TotalValue(c.Request.Context(), session)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromStockValue(total))
}
