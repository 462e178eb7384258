package routes

import (
	"repair_hub/internal/adapter/http/handlers"
	"repair_hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler, sessions usecase.ISessionUseCase) {
	group := rg.Group("/sessions")

	group.POST("", h.Login)
	group.DELETE("", handlers.RequireSession(sessions), h.Logout)
	group.GET("/me", handlers.RequireSession(sessions), h.Me)
}

func addJobRoutes(rg *gin.RouterGroup, h *handlers.RepairJobHandler) {
	group := rg.Group("/jobs")

	group.GET("", h.ListJobs)
	group.GET("/:id", h.GetJob)
	group.GET("/:id/open", h.OpenJob)
	group.PUT("/:id", h.SaveJob)
	group.PATCH("/:id/status", h.SetStatus)
	group.POST("/:id/parts", h.ConsumePart)
	group.POST("/:id/photo", h.UploadPhoto)
}

func addStockRoutes(rg *gin.RouterGroup, h *handlers.StockHandler) {
	group := rg.Group("/stock")

	group.GET("", h.ListStock)
	group.POST("", h.AddItem)
	group.GET("/value", h.TotalValue)
	group.POST("/:id/deduct", h.Deduct)
}

func addTagRoutes(rg *gin.RouterGroup, h *handlers.TagHandler) {
	group := rg.Group("/tags")

	group.POST("/batches", h.GenerateBatch)
	group.GET("", h.Queue)
	group.DELETE("", h.Clear)
	group.GET("/export.zip", h.ExportZIP)
	group.GET("/export.pdf", h.ExportPDF)
	group.DELETE("/:tag_id", h.Remove)
}

func addScanRoutes(rg *gin.RouterGroup, h *handlers.ScanHandler) {
	rg.POST("/scan", h.Scan)
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET("/dashboard", h.Stats)
	rg.GET("/notifications", h.Notifications)
}
