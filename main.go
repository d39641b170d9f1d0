// @title Notestore API
// @version 1.0
// @description 纯文本笔记服务，每条笔记对应根目录下的一个文件
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @schemes http https

// @externalDocs.description OpenAPI
// @externalDocs.url https://swagger.io/resources/open-api/
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weiwangfds/notestore/config"
	"github.com/weiwangfds/notestore/internal/database"
	"github.com/weiwangfds/notestore/internal/i18n"
	"github.com/weiwangfds/notestore/internal/logger"
	"github.com/weiwangfds/notestore/internal/router"
	noteservice "github.com/weiwangfds/notestore/internal/service/note"
	watcherservice "github.com/weiwangfds/notestore/internal/service/watcher"
	"github.com/weiwangfds/notestore/internal/storage"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	// 加载配置
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	i18n.GetInstance().SetDefaultLanguage(cfg.I18n.DefaultLang)

	// 初始化存储
	store, err := newStore(cfg.Storage)
	if err != nil {
		logger.Fatalf("Failed to initialize storage: %v", err)
	}

	// 启动目录监听服务
	watcherCtx, cancelWatcher := context.WithCancel(context.Background())
	defer cancelWatcher()

	var dirWatcher watcherservice.DirWatcher
	if cfg.Watcher.Enabled && cfg.Storage.Driver == config.DriverFS {
		dirWatcher = watcherservice.NewDirWatcher(cfg.Storage.CacheDir)
		if err := dirWatcher.Start(watcherCtx); err != nil {
			logger.Warnf("Failed to start dir watcher: %v", err)
			dirWatcher = nil
		}
	}

	// 初始化路由
	r := router.NewRouter(cfg, noteservice.NewNoteService(store))

	srv := newServer(cfg.Server, r.GetEngine())

	go func() {
		logger.Infof("Server running at http://%s/", cfg.Server.Addr())
		logger.Infof("Cache directory: %s", cfg.Storage.CacheDir)

		var err error
		if cfg.Server.TLSEnabled() {
			err = srv.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")

	cancelWatcher()
	if dirWatcher != nil {
		if err := dirWatcher.Stop(); err != nil {
			logger.Warnf("Error stopping dir watcher: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("服务器强制关闭: %v", err)
	}

	logger.Info("服务器已退出")
}

// newStore 按驱动创建笔记存储
func newStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.Init(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewSQLStore(db), nil
	default:
		return storage.NewFSStore(cfg.CacheDir), nil
	}
}

// newServer 创建HTTP服务器
// 配置了证书时走 TLS，启用 HTTP/2 后通过 ALPN 协商；
// 未配置证书但启用 HTTP/2 时使用 h2c
func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	if !cfg.EnableHTTP2 {
		return srv
	}

	if cfg.TLSEnabled() {
		srv.TLSConfig = &tls.Config{
			NextProtos: []string{"h2", "http/1.1"},
		}
		if err := http2.ConfigureServer(srv, &http2.Server{}); err != nil {
			logger.Fatalf("配置HTTP/2失败: %v", err)
		}
		return srv
	}

	srv.Handler = h2c.NewHandler(handler, &http2.Server{})
	return srv
}
