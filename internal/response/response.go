package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/weiwangfds/notestore/internal/errors"
	"github.com/weiwangfds/notestore/internal/i18n"
	"github.com/weiwangfds/notestore/internal/logger"
)

// 成功消息的i18n键
const (
	MsgCreated = "created"
	MsgUpdated = "updated"
	MsgDeleted = "deleted"
)

// Text 纯文本响应
// @Description 笔记内容按原样返回，不做任何编码转换
func Text(c *gin.Context, status int, text string) {
	c.String(status, text)
}

// Message 返回翻译后的纯文本消息
// 参数:
//   - c: gin上下文
//   - status: HTTP状态码
//   - key: i18n键，如 MsgCreated
func Message(c *gin.Context, status int, key string) {
	c.String(status, i18n.GetInstance().Translate(key, Language(c)))
}

// JSON JSON响应
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Fail 错误响应
// AppError 按错误码映射HTTP状态码，其余错误一律视为服务器错误
// 服务器错误带上请求ID记录日志，便于和访问日志对应
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)

	appErr, ok := apperrors.GetAppError(err)
	if !ok {
		appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.WithField("request_id", RequestID(c)).Errorf("请求失败: %v", err)
	}

	c.Header("X-Error-Code", strconv.Itoa(int(appErr.Code)))
	c.String(status, appErr.LocalizedMessage(Language(c)))
}

// Language 根据 Accept-Language 选择响应语言
func Language(c *gin.Context) string {
	return i18n.GetInstance().MatchAcceptLanguage(c.GetHeader("Accept-Language"))
}

// RequestID 获取请求ID
// @Description 从gin上下文中获取请求ID，用于链路追踪
func RequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
