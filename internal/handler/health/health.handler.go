package health

import (
	types "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/helper"
	"extrato-gateway/internal/pkg/middleware"
	"extrato-gateway/internal/service/parser"
	"extrato-gateway/internal/service/parser/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	parser parser.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
	Health(c *gin.Context)
}

type healthResp struct {
	OK      bool                 `json:"ok"`
	Service string               `json:"service"`
	Parser  model.HealthResponse `json:"parser"`
}

func NewHandler(p parser.IService) IHandler {
	return &Handler{parser: p}
}

// Health always answers 200; the parser's state is reported, not enforced.
func (h *Handler) Health(c *gin.Context) {
	send := middleware.Sender(c)
	send(helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: healthResp{
			OK:      true,
			Service: "extrato-gateway",
			Parser:  h.parser.Health(c.Request.Context()),
		},
	}))
}
