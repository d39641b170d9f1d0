package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/UploadForm.html
var uploadForm []byte

// UploadForm 返回创建笔记的静态表单页面
// @Summary 创建笔记的表单页面
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML"
// @Router /UploadForm.html [get]
func UploadForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", uploadForm)
}
