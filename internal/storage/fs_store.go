package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/spf13/afero"
)

// FSStore 基于目录的笔记存储
// 所有路径都经过 afero.BasePathFs 限制在根目录之内
type FSStore struct {
	fs afero.Fs
}

// NewFSStore 创建以 root 为根目录的存储，root 不要求已存在
func NewFSStore(root string) *FSStore {
	return NewFSStoreWithFs(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// NewFSStoreWithFs 使用给定的文件系统创建存储，"/" 即笔记根目录
func NewFSStoreWithFs(fsys afero.Fs) *FSStore {
	return &FSStore{fs: fsys}
}

func notePath(name string) string {
	return path.Join("/", name)
}

// checkRegular 不跟随符号链接检查条目，只有普通文件才是笔记
// 根目录可能被外部修改，指向根目录之外的链接不能被读写
func (s *FSStore) checkRegular(p string) error {
	var (
		info os.FileInfo
		err  error
	)
	if lstater, ok := s.fs.(afero.Lstater); ok {
		info, _, err = lstater.LstatIfPossible(p)
	} else {
		info, err = s.fs.Stat(p)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, p, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrNotFound, p)
	}
	return nil
}

// List 列出根目录下的普通文件并读取内容
// 子目录和符号链接不是笔记，直接跳过
func (s *FSStore) List(ctx context.Context) ([]Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(s.fs, "/")
	if err != nil {
		return nil, fmt.Errorf("read notes directory: %w", err)
	}

	notes := make([]Note, 0, len(entries))
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		data, err := afero.ReadFile(s.fs, notePath(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read note %s: %w", entry.Name(), err)
		}
		notes = append(notes, Note{Name: entry.Name(), Text: string(data)})
	}
	return notes, nil
}

// Get 读取笔记全文，任何读取失败都视为不存在
// 符号链接和目录同样视为不存在
func (s *FSStore) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}

	p := notePath(name)
	if err := s.checkRegular(p); err != nil {
		return "", err
	}

	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}
	return string(data), nil
}

// Create 以 O_EXCL 打开文件，存在性检查和创建在一次系统调用里完成
func (s *FSStore) Create(ctx context.Context, name, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	p := notePath(name)
	f, err := s.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		return fmt.Errorf("create note %s: %w", name, err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		// 写入失败时不留下半截笔记
		return errors.Join(fmt.Errorf("write note %s: %w", name, err), s.fs.Remove(p))
	}
	if err := f.Close(); err != nil {
		return errors.Join(fmt.Errorf("close note %s: %w", name, err), s.fs.Remove(p))
	}
	return nil
}

// Update 不带 O_CREATE 打开文件，笔记不存在时打开失败而不是新建
func (s *FSStore) Update(ctx context.Context, name, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	p := notePath(name)
	if err := s.checkRegular(p); err != nil {
		return err
	}

	f, err := s.fs.OpenFile(p, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("write note %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close note %s: %w", name, err)
	}
	return nil
}

// Delete 删除笔记文件
// 不区分"从未存在"和"被并发删除"，都返回 ErrNotFound
func (s *FSStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	p := notePath(name)
	// 目录不是笔记，os.Remove 会删掉空目录
	if err := s.checkRegular(p); err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}
	return nil
}
