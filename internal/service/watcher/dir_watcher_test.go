package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) add(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) has(name, op string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Name == name && e.Op == op {
			return true
		}
	}
	return false
}

func TestDirWatcher(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}

	w := NewDirWatcher(dir, WithHandler(rec.add))
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { w.Stop() })

	t.Run("重复启动", func(t *testing.T) {
		assert.Error(t, w.Start(context.Background()))
	})

	t.Run("外部创建和删除", func(t *testing.T) {
		p := filepath.Join(dir, "external.txt")
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
		assert.Eventually(t, func() bool { return rec.has("external.txt", "CREATE") }, 5*time.Second, 20*time.Millisecond)

		require.NoError(t, os.Remove(p))
		assert.Eventually(t, func() bool { return rec.has("external.txt", "REMOVE") }, 5*time.Second, 20*time.Millisecond)
	})

	t.Run("停止", func(t *testing.T) {
		assert.NoError(t, w.Stop())
		assert.NoError(t, w.Stop())
	})
}

func TestDirWatcherMissingDir(t *testing.T) {
	w := NewDirWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, w.Start(context.Background()))
}
