package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics HTTP 层指标
// 全局注册一次，/metrics 由 promhttp 暴露
type HTTPMetrics struct {
	RequestsTotal   prometheus.CounterVec
	RequestDuration prometheus.HistogramVec
}

// NewHTTPMetrics 创建并注册 HTTP 指标
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		RequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "按方法/路由/状态码统计的请求总数",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "请求处理耗时（秒）",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms, 2ms, 4ms...
			},
			[]string{"method", "path"},
		),
	}
}

// Record 记录一次请求
func (m *HTTPMetrics) Record(method, path string, status int, seconds float64) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// Middleware gin 中间件，路由未命中时用原始路径以免指标丢失
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.Record(c.Request.Method, path, c.Writer.Status(), time.Since(start).Seconds())
	}
}
