package response

import (
	"bytes"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	apperrors "github.com/weiwangfds/notestore/internal/errors"
	"github.com/weiwangfds/notestore/internal/logger"
)

func newContext(header http.Header) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		c.Request.Header[k] = v
	}
	return c, w
}

func TestFail(t *testing.T) {
	t.Run("应用错误", func(t *testing.T) {
		c, w := newContext(nil)
		Fail(c, apperrors.New(apperrors.ErrNoteNotFound, ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Not found", w.Body.String())
		assert.Equal(t, "2000", w.Header().Get("X-Error-Code"))
		assert.Len(t, c.Errors, 1)
	})

	t.Run("普通错误记录请求ID", func(t *testing.T) {
		var buf bytes.Buffer
		l := logger.GetLogger()
		out := l.Out
		l.SetOutput(&buf)
		t.Cleanup(func() { l.SetOutput(out) })

		c, w := newContext(nil)
		c.Set("request_id", "req-42")
		Fail(c, stderrors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error", w.Body.String())
		assert.Equal(t, "1000", w.Header().Get("X-Error-Code"))
		assert.Contains(t, buf.String(), "req-42")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("按 Accept-Language 翻译", func(t *testing.T) {
		c, w := newContext(http.Header{"Accept-Language": {"en;q=0.2, zh-CN;q=0.8"}})
		Fail(c, apperrors.New(apperrors.ErrNoteNotFound, ""))

		assert.Equal(t, "未找到", w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	c, _ := newContext(nil)
	assert.Empty(t, RequestID(c))

	c.Set("request_id", "abc")
	assert.Equal(t, "abc", RequestID(c))
}
