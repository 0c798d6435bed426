package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader - заголовок, в котором клиент может передать свой идентификатор
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет каждому запросу идентификатор для корреляции логов.
// Переданный клиентом X-Request-ID сохраняется, иначе генерируется новый UUID.
// Идентификатор кладется в контекст Gin и дублируется в заголовок ответа.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
