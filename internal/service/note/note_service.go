// Package note 提供笔记管理相关的业务逻辑服务
// 负责参数校验，并把存储层错误映射为统一的应用错误
package note

import (
	"context"
	"errors"

	apperrors "github.com/weiwangfds/notestore/internal/errors"
	"github.com/weiwangfds/notestore/internal/logger"
	"github.com/weiwangfds/notestore/internal/storage"
)

// NoteService 笔记服务接口
type NoteService interface {
	// ListNotes 列出全部笔记
	// 返回:
	//   []storage.Note - 笔记列表，顺序不作保证
	//   error - 目录无法读取时返回 ErrNoteListFailed
	ListNotes(ctx context.Context) ([]storage.Note, error)

	// GetNote 读取笔记全文
	// 参数:
	//   name - 笔记名称
	// 返回:
	//   string - 笔记内容
	//   error - 不存在或无法读取时返回 ErrNoteNotFound
	GetNote(ctx context.Context, name string) (string, error)

	// CreateNote 创建新笔记
	// 参数:
	//   name - 笔记名称（表单字段 note_name）
	//   text - 笔记内容（表单字段 note）
	// 返回:
	//   error - 缺少字段 ErrMissingFields，已存在 ErrNoteAlreadyExists，写入失败 ErrNoteWriteFailed
	CreateNote(ctx context.Context, name, text string) error

	// UpdateNote 整体替换已有笔记的内容
	// 参数:
	//   name - 笔记名称
	//   text - 新内容
	// 返回:
	//   error - 不存在时返回 ErrNoteNotFound，不会新建笔记
	UpdateNote(ctx context.Context, name, text string) error

	// DeleteNote 删除笔记
	// 返回:
	//   error - 不存在时返回 ErrNoteNotFound
	DeleteNote(ctx context.Context, name string) error
}

type noteService struct {
	store storage.Store
}

// NewNoteService 创建笔记服务实例
// 参数:
//
//	store - 笔记存储
//
// 返回:
//
//	NoteService - 笔记服务接口
func NewNoteService(store storage.Store) NoteService {
	return &noteService{store: store}
}

func (s *noteService) ListNotes(ctx context.Context) ([]storage.Note, error) {
	notes, err := s.store.List(ctx)
	if err != nil {
		logger.Errorf("读取笔记目录失败: %v", err)
		return nil, apperrors.Wrap(apperrors.ErrNoteListFailed, err)
	}
	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, name string) (string, error) {
	text, err := s.store.Get(ctx, name)
	if err != nil {
		return "", mapStoreError(err, apperrors.ErrNoteNotFound)
	}
	return text, nil
}

func (s *noteService) CreateNote(ctx context.Context, name, text string) error {
	if name == "" || text == "" {
		return apperrors.New(apperrors.ErrMissingFields, apperrors.GetErrorMessage(apperrors.ErrMissingFields))
	}

	if err := s.store.Create(ctx, name, text); err != nil {
		appErr := mapStoreError(err, apperrors.ErrNoteWriteFailed)
		if appErr.Code == apperrors.ErrNoteWriteFailed {
			logger.WithField("note", name).Errorf("创建笔记失败: %v", err)
		}
		return appErr
	}

	logger.WithField("note", name).Debugf("笔记已创建, %d 字节", len(text))
	return nil
}

func (s *noteService) UpdateNote(ctx context.Context, name, text string) error {
	if err := s.store.Update(ctx, name, text); err != nil {
		appErr := mapStoreError(err, apperrors.ErrNoteWriteFailed)
		if appErr.Code == apperrors.ErrNoteWriteFailed {
			logger.WithField("note", name).Errorf("更新笔记失败: %v", err)
		}
		return appErr
	}
	return nil
}

func (s *noteService) DeleteNote(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		return mapStoreError(err, apperrors.ErrNoteNotFound)
	}
	return nil
}

// mapStoreError 把存储层哨兵错误转换为应用错误，其余错误使用 fallback 错误码
func mapStoreError(err error, fallback apperrors.ErrorCode) *apperrors.AppError {
	switch {
	case errors.Is(err, storage.ErrInvalidName):
		return apperrors.Wrap(apperrors.ErrInvalidNoteName, err)
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.Wrap(apperrors.ErrNoteNotFound, err)
	case errors.Is(err, storage.ErrExists):
		return apperrors.Wrap(apperrors.ErrNoteAlreadyExists, err)
	default:
		return apperrors.Wrap(fallback, err)
	}
}
