package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"retail_hub_v1_202608/internal/model"
	"retail_hub_v1_202608/internal/repository"
)

// Audit 写操作审计中间件
// 每个非只读请求处理完后同步落一条 audit_logs 记录，带请求体原文；
// 落库失败只记日志，不影响业务响应
func Audit(repo repository.AuditLogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		// 先把请求体读出来再塞回去，不影响后续绑定
		var payload []byte
		if c.Request.Body != nil {
			payload, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(payload))
		}

		start := time.Now()
		c.Next()

		entry := &model.AuditLog{
			RequestID: GetRequestID(c),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			ClientIP:  c.ClientIP(),
			LatencyMs: time.Since(start).Milliseconds(),
		}
		if json.Valid(payload) {
			entry.Payload = datatypes.JSON(payload)
		}

		if err := repo.Create(c.Request.Context(), entry); err != nil {
			log.Printf("审计日志写入失败: %v", err)
		}
	}
}
