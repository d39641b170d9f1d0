// Package watcher 监听笔记根目录的外部变化
// 根目录可能被其他进程直接修改，服务本身不缓存任何内容，这里只记录日志
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/weiwangfds/notestore/internal/logger"
)

// Event 目录变化事件
type Event struct {
	Name string // 笔记名称（相对根目录）
	Op   string // CREATE, WRITE, REMOVE, RENAME, CHMOD
}

// DirWatcher 目录监听服务接口
type DirWatcher interface {
	// Start 开始监听，ctx 取消或调用 Stop 后结束
	Start(ctx context.Context) error
	// Stop 停止监听并等待后台协程退出
	Stop() error
}

// Option 监听选项
type Option func(*dirWatcher)

// WithHandler 为每个事件额外调用 fn
func WithHandler(fn func(Event)) Option {
	return func(w *dirWatcher) {
		w.handler = fn
	}
}

type dirWatcher struct {
	dir     string
	handler func(Event)

	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	wg        sync.WaitGroup
	isRunning bool
}

// NewDirWatcher 创建目录监听服务
func NewDirWatcher(dir string, opts ...Option) DirWatcher {
	w := &dirWatcher{dir: dir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *dirWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return fmt.Errorf("dir watcher is already running")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.watcher = fw
	w.isRunning = true

	w.wg.Add(1)
	go w.loop(ctx, fw)

	logger.Infof("[目录监听] 开始监听 %s", w.dir)
	return nil
}

func (w *dirWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.isRunning {
		return nil
	}

	err := w.watcher.Close()
	w.wg.Wait()
	w.isRunning = false
	w.watcher = nil

	logger.Infof("[目录监听] 已停止")
	return err
}

func (w *dirWatcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			w.dispatch(ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warnf("[目录监听] 错误: %v", err)
		}
	}
}

func (w *dirWatcher) dispatch(ev fsnotify.Event) {
	name, err := filepath.Rel(w.dir, ev.Name)
	if err != nil {
		name = filepath.Base(ev.Name)
	}

	event := Event{Name: name, Op: opName(ev.Op)}
	logger.WithField("note", event.Name).Infof("[目录监听] %s", event.Op)

	if w.handler != nil {
		w.handler(event)
	}
}

// opName 取事件中最重要的一个操作
func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "CREATE"
	case op.Has(fsnotify.Remove):
		return "REMOVE"
	case op.Has(fsnotify.Rename):
		return "RENAME"
	case op.Has(fsnotify.Write):
		return "WRITE"
	default:
		return "CHMOD"
	}
}
