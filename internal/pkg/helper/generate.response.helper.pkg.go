package helper

import (
	_type "extrato-gateway/internal/common/type"
	"net/http"
)

func ParseResponse(r *_type.Response) *_type.Response {
	if r.Code < 200 || r.Code >= 599 {
		r.Code = http.StatusInternalServerError
	}
	if r.Message == "" {
		generateMessage(r)
	}
	return r
}

func generateMessage(r *_type.Response) {
	switch r.Code {
	case http.StatusOK:
		r.Message = "Success"
	case http.StatusBadRequest:
		r.Message = "Bad Request"
	case http.StatusNotFound:
		r.Message = "Not Found"
	case http.StatusMethodNotAllowed:
		r.Message = "Method Not Allowed"
	case http.StatusRequestEntityTooLarge:
		r.Message = "Request Entity Too Large"
	case http.StatusUnprocessableEntity:
		r.Message = "Unprocessable Entity"
	case http.StatusInternalServerError:
		r.Message = "Internal Server Error"
	case http.StatusBadGateway:
		r.Message = "Bad Gateway"
	case http.StatusServiceUnavailable:
		r.Message = "Service Unavailable"
	}
}
