package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/weiwangfds/notestore/internal/i18n"
)

// ErrorCode 错误码类型
type ErrorCode int

// 定义错误码常量
const (
	// 通用错误码 (1000-1999)
	ErrInternalServer ErrorCode = 1000 // 服务器内部错误
	ErrInvalidParams  ErrorCode = 1001 // 参数错误
	ErrMissingFields  ErrorCode = 1002 // 缺少必填字段

	// 笔记相关错误码 (2000-2999)
	ErrNoteNotFound      ErrorCode = 2000 // 笔记不存在
	ErrNoteAlreadyExists ErrorCode = 2001 // 笔记已存在
	ErrInvalidNoteName   ErrorCode = 2002 // 笔记名称无效
	ErrNoteWriteFailed   ErrorCode = 2004 // 笔记写入失败
	ErrNoteListFailed    ErrorCode = 2005 // 笔记目录读取失败
)

// AppError 应用错误结构体
// @Description 应用程序统一错误格式
type AppError struct {
	// 错误码
	Code ErrorCode `json:"code"`
	// 错误消息
	Message string `json:"message"`
	// 详细错误信息
	Details string `json:"details,omitempty"`
	// 原始错误
	OriginalError error `json:"-"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误，便于 errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// HTTPStatus 返回错误码对应的HTTP状态码
// 客户端错误 400，目标不存在 404，其余为 500
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrInvalidParams, ErrMissingFields, ErrInvalidNoteName, ErrNoteAlreadyExists:
		return http.StatusBadRequest
	case ErrNoteNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// LocalizedMessage 返回指定语言的错误消息
func (e *AppError) LocalizedMessage(lang string) string {
	return GetErrorMessageWithLang(e.Code, lang)
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装原始错误
// 参数:
//   - code: 错误码
//   - err: 原始错误
func Wrap(code ErrorCode, err error) *AppError {
	appErr := &AppError{
		Code:          code,
		Message:       GetErrorMessage(code),
		OriginalError: err,
	}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

// GetAppError 获取应用错误
// 支持被 fmt.Errorf("%w") 包装过的 AppError
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode 判断错误是否为指定错误码
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.Code == code
}

// 错误码到i18n键的映射
var errorCodeToKeyMap = map[ErrorCode]string{
	ErrInternalServer: "internal_server_error",
	ErrInvalidParams:  "invalid_params",
	ErrMissingFields:  "missing_fields",

	ErrNoteNotFound:      "note_not_found",
	ErrNoteAlreadyExists: "note_already_exists",
	ErrInvalidNoteName:   "invalid_note_name",
	ErrNoteWriteFailed:   "note_write_failed",
	ErrNoteListFailed:    "note_list_failed",
}

// GetErrorMessage 根据错误码获取错误消息（使用默认语言）
func GetErrorMessage(code ErrorCode) string {
	return GetErrorMessageWithLang(code, i18n.GetInstance().GetDefaultLanguage())
}

// GetErrorMessageWithLang 根据错误码和语言获取错误消息
func GetErrorMessageWithLang(code ErrorCode, lang string) string {
	key, exists := errorCodeToKeyMap[code]
	if !exists {
		key = "unknown_error"
	}
	return i18n.GetInstance().Translate(key, lang)
}
