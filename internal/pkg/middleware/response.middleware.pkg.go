package middleware

import (
	_type "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/helper"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SendFunc = func(r *_type.Response)

// ResponseInit installs the "send" closure every handler answers through.
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		shouldDebug := gin.Mode() == gin.DebugMode
		c.Set("send", func(r *_type.Response) {
			if r.Message == "" {
				r.Message = "Success"
			}
			if r.Code == 0 {
				r.Code = http.StatusOK
			}

			response := _type.ResponseAPI{
				Message: r.Message,
				Data:    r.Data,
			}

			if shouldDebug {
				startTime := c.GetTime("start-time")
				if startTime.IsZero() {
					startTime = time.Now()
				}
				endTime := time.Now()

				response.Debug = &_type.ResponseAPIDebug{
					RequestID: c.GetString("requestId"),
					Version:   c.GetString("version"),
					StartTime: startTime,
					EndTime:   endTime,
					RuntimeMs: endTime.Sub(startTime).Milliseconds(),
				}
				if r.Error != nil {
					response.Debug.Error = helper.StringPtr(r.Error.Error())
				}
			}

			c.Abort()
			c.JSON(r.Code, response)
		})

		c.Next()
	}
}

// Sender fetches the closure installed by ResponseInit.
func Sender(c *gin.Context) SendFunc {
	return c.MustGet("send").(func(r *_type.Response))
}
