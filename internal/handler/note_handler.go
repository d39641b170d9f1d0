// Package handler 提供笔记管理相关的HTTP处理器
// 每个请求对应一次存储操作，处理器之间不共享任何状态
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/weiwangfds/notestore/internal/errors"
	"github.com/weiwangfds/notestore/internal/response"
	"github.com/weiwangfds/notestore/internal/service/note"
)

// NoteHandler 笔记处理器
type NoteHandler struct {
	noteService note.NoteService
}

// NewNoteHandler 创建笔记处理器实例
// 参数:
//
//	noteService - 笔记服务接口
//
// 返回:
//
//	*NoteHandler - 笔记处理器实例
func NewNoteHandler(noteService note.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// ListNotes 列出全部笔记
// @Summary 列出全部笔记
// @Description 读取根目录下的每个笔记文件，返回名称和全文，不保证顺序
// @Tags notes
// @Produce json
// @Success 200 {array} storage.Note "笔记列表"
// @Failure 500 {string} string "Server error"
// @Router /notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.noteService.ListNotes(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notes)
}

// GetNote 读取笔记
// @Summary 读取笔记全文
// @Tags notes
// @Produce plain
// @Param name path string true "笔记名称"
// @Success 200 {string} string "笔记内容"
// @Failure 400 {string} string "Invalid note name"
// @Failure 404 {string} string "Not found"
// @Router /notes/{name} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	text, err := h.noteService.GetNote(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Text(c, http.StatusOK, text)
}

// UpdateNote 更新笔记
// @Summary 替换笔记内容
// @Description 请求体整体作为新内容写入，笔记必须已存在
// @Tags notes
// @Accept plain
// @Produce plain
// @Param name path string true "笔记名称"
// @Param text body string true "新内容"
// @Success 200 {string} string "Updated"
// @Failure 400 {string} string "Invalid note name"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Server error"
// @Router /notes/{name} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Fail(c, apperrors.Wrap(apperrors.ErrInvalidParams, err))
		return
	}

	if err := h.noteService.UpdateNote(c.Request.Context(), c.Param("name"), string(body)); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, response.MsgUpdated)
}

// DeleteNote 删除笔记
// @Summary 删除笔记
// @Tags notes
// @Produce plain
// @Param name path string true "笔记名称"
// @Success 200 {string} string "Deleted"
// @Failure 400 {string} string "Invalid note name"
// @Failure 404 {string} string "Not found"
// @Router /notes/{name} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.noteService.DeleteNote(c.Request.Context(), c.Param("name")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, response.MsgDeleted)
}

// CreateNote 创建笔记
// @Summary 通过表单创建笔记
// @Description note_name 和 note 都必填；同名笔记已存在时不写入
// @Tags notes
// @Accept x-www-form-urlencoded,mpfd
// @Produce plain
// @Param note_name formData string true "笔记名称"
// @Param note formData string true "笔记内容"
// @Success 201 {string} string "Created"
// @Failure 400 {string} string "Missing note_name or note"
// @Failure 500 {string} string "Server error"
// @Router /write [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	name := c.PostForm("note_name")
	text := c.PostForm("note")

	if err := h.noteService.CreateNote(c.Request.Context(), name, text); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusCreated, response.MsgCreated)
}
