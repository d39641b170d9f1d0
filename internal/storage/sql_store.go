package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/weiwangfds/notestore/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore 基于 gorm 的笔记存储，语义与 FSStore 相同
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore 创建数据库存储，db 需已迁移 NoteRecord
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) List(ctx context.Context) ([]Note, error) {
	var records []database.NoteRecord
	if err := s.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, Note{Name: r.Name, Text: r.Text})
	}
	return notes, nil
}

func (s *SQLStore) Get(ctx context.Context, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	var record database.NoteRecord
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}
	return record.Text, nil
}

// Create 依赖主键冲突实现"不存在才创建"
func (s *SQLStore) Create(ctx context.Context, name, text string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&database.NoteRecord{Name: name, Text: text})
	if result.Error != nil {
		return fmt.Errorf("create note %s: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	return nil
}

func (s *SQLStore) Update(ctx context.Context, name, text string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&database.NoteRecord{}).
		Where("name = ?", name).
		Update("text", text)
	if result.Error != nil {
		return fmt.Errorf("update note %s: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Where("name = ?", name).Delete(&database.NoteRecord{})
	if result.Error != nil || result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
