package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/weiwangfds/notestore/internal/logger"
)

// responseWriter 自定义响应写入器，用于捕获响应数据
type responseWriter struct {
	gin.ResponseWriter
	body  *bytes.Buffer // 响应体缓冲区（最多 limit 字节）
	size  int           // 响应大小
	limit int
}

// Write 实现io.Writer接口，捕获响应数据
func (w *responseWriter) Write(b []byte) (int, error) {
	if room := w.limit - w.body.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		w.body.Write(b[:room])
	}
	w.size += len(b)
	return w.ResponseWriter.Write(b)
}

// WriteString gin 的 c.String 走这里
func (w *responseWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// RequestLoggerConfig 请求日志中间件配置
type RequestLoggerConfig struct {
	Enabled         bool     `json:"enabled"`          // 是否启用
	SkipPaths       []string `json:"skip_paths"`       // 跳过记录的路径
	MaxBodySize     int      `json:"max_body_size"`    // 记录的请求/响应体最大字节数
	IncludeHeaders  bool     `json:"include_headers"`  // 是否包含请求头
	IncludeBody     bool     `json:"include_body"`     // 是否包含请求体
	IncludeResponse bool     `json:"include_response"` // 是否包含响应体
}

// DefaultRequestLoggerConfig 默认配置，仅开发环境启用
func DefaultRequestLoggerConfig() *RequestLoggerConfig {
	return &RequestLoggerConfig{
		Enabled:         isDevEnvironment(),
		SkipPaths:       []string{"/health", "/favicon.ico"},
		MaxBodySize:     64 * 1024,
		IncludeHeaders:  true,
		IncludeBody:     true,
		IncludeResponse: true,
	}
}

// isDevEnvironment 检查是否为开发环境
func isDevEnvironment() bool {
	env := strings.ToLower(os.Getenv("GO_ENV"))
	if env == "" {
		env = strings.ToLower(os.Getenv("GIN_MODE"))
	}
	return env == "development" || env == "dev" || env == "debug"
}

// RequestLogger 创建请求/响应体日志中间件
// 用于调试，记录在 debug 级别
func RequestLogger(config ...*RequestLoggerConfig) gin.HandlerFunc {
	var cfg *RequestLoggerConfig
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	} else {
		cfg = DefaultRequestLoggerConfig()
	}

	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()

		var requestBody interface{}
		if cfg.IncludeBody && c.Request.Body != nil {
			requestBody = readRequestBody(c, cfg.MaxBodySize)
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			limit:          cfg.MaxBodySize,
		}
		c.Writer = writer

		c.Next()

		fields := logrus.Fields{
			"type":          "request_log",
			"request_id":    c.GetString("request_id"),
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status_code":   c.Writer.Status(),
			"response_size": writer.size,
			"duration_ms":   time.Since(start).Milliseconds(),
		}
		if cfg.IncludeHeaders {
			fields["headers"] = extractHeaders(c.Request.Header)
		}
		if requestBody != nil {
			fields["body"] = requestBody
		}
		if cfg.IncludeResponse && writer.body.Len() > 0 {
			fields["response_body"] = parseBody(writer.body.Bytes())
		}
		if len(c.Errors) > 0 {
			fields["error"] = c.Errors.String()
		}

		logger.WithFields(fields).Debug("[REQUEST_LOG]")
	}
}

// readRequestBody 读取请求体并放回，后续处理器仍可读取完整内容
func readRequestBody(c *gin.Context, maxSize int) interface{} {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return map[string]string{"error": "failed to read request body"}
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if len(body) == 0 {
		return nil
	}
	if len(body) > maxSize {
		body = body[:maxSize]
	}
	return parseBody(body)
}

// extractHeaders 提取请求头
func extractHeaders(headers map[string][]string) map[string]string {
	headerMap := make(map[string]string)
	for key, values := range headers {
		if len(values) > 0 {
			headerMap[key] = values[0] // 只取第一个值
		}
	}
	return headerMap
}

// parseBody 尝试解析JSON，否则按字符串记录
func parseBody(body []byte) interface{} {
	var jsonBody interface{}
	if err := json.Unmarshal(body, &jsonBody); err == nil {
		return jsonBody
	}
	return string(body)
}
