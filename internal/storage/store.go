// Package storage 定义笔记存储接口及其实现
// 默认实现把根目录当作一张表：文件名即主键，文件内容即笔记正文
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound 笔记不存在（或无法读取）
	ErrNotFound = errors.New("note not found")
	// ErrExists 创建时同名笔记已存在
	ErrExists = errors.New("note already exists")
	// ErrInvalidName 名称会逃出根目录或为空
	ErrInvalidName = errors.New("invalid note name")
)

// Note 笔记
type Note struct {
	Name string `json:"name" example:"alpha.txt"`
	Text string `json:"text" example:"hello"`
}

// Store 笔记存储接口
// 每个方法都是一次独立的操作，实现不在请求之间缓存任何状态
type Store interface {
	// List 返回根目录下全部笔记，不保证顺序
	List(ctx context.Context) ([]Note, error)
	// Get 读取笔记全文，不存在时返回 ErrNotFound
	Get(ctx context.Context, name string) (string, error)
	// Create 创建新笔记，同名已存在时返回 ErrExists 且不写入
	Create(ctx context.Context, name, text string) error
	// Update 整体替换已有笔记的内容，不存在时返回 ErrNotFound 且不创建
	Update(ctx context.Context, name, text string) error
	// Delete 删除笔记，不存在时返回 ErrNotFound
	Delete(ctx context.Context, name string) error
}

// ValidateName 检查笔记名称是否只指向根目录下的一个直接条目
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
