package handler

import (
	"extrato-gateway/internal/handler/health"
	"extrato-gateway/internal/handler/statement"
	"extrato-gateway/internal/pkg/config"
	"extrato-gateway/internal/pkg/logger"
	"extrato-gateway/internal/pkg/middleware"
	"extrato-gateway/internal/service/parser"
	statementService "extrato-gateway/internal/service/statement"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the middleware chain and every route under /api.
func NewRouter(cfg *config.Config, parserService parser.IService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if gin.Mode() != gin.ReleaseMode {
		r.Use(gin.LoggerWithWriter(logger.HTTP.Writer()))
	}
	r.MaxMultipartMemory = cfg.MaxUploadBytes()

	r.Use(middleware.CorsMiddleware(cfg.CorsOrigins...))
	r.Use(middleware.RequestInit())
	r.Use(middleware.ResponseInit())

	api := r.Group("/api")

	health.NewHandler(parserService).NewRoutes(api)

	statementHandler := statement.NewHandler(statementService.NewService(parserService, cfg.ParserURL))
	statementHandler.NewRoutes(api)

	return r
}
