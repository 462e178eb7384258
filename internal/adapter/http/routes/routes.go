package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "repair_hub/docs" // generated by swag init
	"repair_hub/internal/adapter/http/handlers"
	"repair_hub/internal/config"
	"repair_hub/internal/infrastructure/qrcode"
	"repair_hub/internal/infrastructure/scanner"
	"repair_hub/internal/infrastructure/security"
	"repair_hub/internal/infrastructure/tagexport"
	"repair_hub/internal/usecase"
	"repair_hub/internal/usecase/interfaces"
	"repair_hub/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server is the wired HTTP application plus the pieces main needs for
// housekeeping and shutdown.
type Server struct {
	Router     *gin.Engine
	Sessions   *usecase.SessionUseCase
	Reconciler *usecase.Reconciler
}

// New builds the backend adapters, use cases and the gin router.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	backend, err := newBackend(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", cfg.Backend, err)
	}

	workspaces := usecase.NewWorkspaceRegistry()
	reconciler := usecase.NewReconciler(workspaces, log)
	codec := qrcode.NewCodec()

	sessionUseCase := usecase.NewSessionUseCase(
		security.NewTokenManager(cfg.Auth.JWTSecret),
		workspaces,
		backend.jobs,
		backend.stock,
		cfg.Auth.SessionTTL,
		log,
	)
	jobUseCase := usecase.NewRepairJobUseCase(workspaces, backend.jobs, backend.photos, reconciler, log)
	stockUseCase := usecase.NewStockLedgerUseCase(workspaces, backend.stock, reconciler, log)
	consumptionUseCase := usecase.NewPartConsumptionUseCase(workspaces, backend.jobs, backend.stock, reconciler, log)
	tagUseCase := usecase.NewTagUseCase(workspaces, tagexport.NewExporter(codec), log, usecase.WithTagUniquenessCheck(cfg.Tags.UniquenessCheck))
	scanUseCase := usecase.NewScanUseCase(codec, jobUseCase, log)

	router := gin.New()
	setMiddlewares(router, cfg, logger.Named(log, "router"))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, handlers.NewSessionHandler(sessionUseCase), sessionUseCase)

	authed := v1.Group("")
	authed.Use(handlers.RequireSession(sessionUseCase))
	addJobRoutes(authed, handlers.NewRepairJobHandler(jobUseCase, consumptionUseCase))
	addStockRoutes(authed, handlers.NewStockHandler(stockUseCase))
	addTagRoutes(authed, handlers.NewTagHandler(tagUseCase))
	addScanRoutes(authed, handlers.NewScanHandler(scanUseCase, newImageFrameSource))
	addDashboardRoutes(authed, handlers.NewDashboardHandler(usecase.NewDashboardUseCase(workspaces), usecase.NewNotificationUseCase(workspaces)))

	return &Server{Router: router, Sessions: sessionUseCase, Reconciler: reconciler}, nil
}

func newImageFrameSource(frames [][]byte) interfaces.IFrameSource {
	return scanner.NewImageFrameSource(frames)
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(zapLoggerMiddleware(log))

	corsCfg := cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		// No origins configured: allow any, without credentials.
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	router.Use(cors.New(corsCfg))
}

func zapLoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
