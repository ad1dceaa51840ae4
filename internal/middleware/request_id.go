package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 请求 ID 头，调用方没带就由服务端生成
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID 请求 ID + 访问日志中间件
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		log.Printf("[HTTP] %s %s %d %v req_id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), id)
	}
}

// GetRequestID 取当前请求的请求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
