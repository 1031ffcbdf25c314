package statement

import (
	"extrato-gateway/internal/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	group := e.Group("/statements")

	group.
		POST("/parse", middleware.MultipartFormMiddleware([]middleware.FieldOpts{{Name: FormField}}), h.Parse)
}
