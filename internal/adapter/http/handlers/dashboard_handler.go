package handlers

import (
	"net/http"

	response "repair_hub/internal/adapter/http/dto/response"
	"repair_hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the overview page and the alert side-channel.
type DashboardHandler struct {
	dashboard     usecase.IDashboardUseCase
	notifications usecase.INotificationUseCase
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, notifications usecase.INotificationUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, notifications: notifications}
}

// Stats godoc
// @Summary      Dashboard counters and recent jobs
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	stats, err := h.dashboard.Stats(c.Request.Context(), session)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

// Notifications godoc
// @Summary      Drain pending backend failure notifications
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.NotificationsResponse
// @Router       /notifications [get]
func (h *DashboardHandler) Notifications(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	items, err := h.notifications.Drain(c.Request.Context(), session)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(items))
}
