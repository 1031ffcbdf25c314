package statement

import (
	"errors"
	types "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/helper"
	"extrato-gateway/internal/pkg/middleware"
	statementService "extrato-gateway/internal/service/statement"
	"extrato-gateway/internal/service/statement/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FormField is the form field the browser sends the statements under.
const FormField = "pdf"

type Handler struct {
	service statementService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
	Parse(c *gin.Context)
}

func NewHandler(service statementService.IService) IHandler {
	return &Handler{service: service}
}

func (h *Handler) Parse(c *gin.Context) {
	send := middleware.Sender(c)
	files := middleware.GetBufferedFiles(c, FormField)

	result := h.service.Process(c.Request.Context(), files)

	code, message := http.StatusOK, ""
	var cause error
	if f, ok := result.(model.Failure); ok {
		code = statusFor(f.Cause)
		message = f.Error
		cause = f.Cause
	}

	send(helper.ParseResponse(&types.Response{
		Code:    code,
		Message: message,
		Data:    result,
		Error:   cause,
	}))
}

func statusFor(err error) int {
	var extErr *statementService.InvalidExtensionError
	var connErr *statementService.BackendConnectError
	switch {
	case errors.Is(err, statementService.ErrNoFiles), errors.As(err, &extErr):
		return http.StatusBadRequest
	case errors.Is(err, statementService.ErrAllFailed):
		return http.StatusUnprocessableEntity
	case errors.As(err, &connErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
