// Package config 负责加载服务启动配置
// 配置来源按优先级依次为：命令行参数、环境变量、配置文件、默认值
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/weiwangfds/notestore/internal/logger"
)

// EnvPrefix 环境变量前缀，例如 NOTESTORE_SERVER_PORT
const EnvPrefix = "NOTESTORE"

// 存储驱动
const (
	DriverFS     = "fs"
	DriverSQLite = "sqlite"
)

// Config 应用配置
// Load 返回之后不再修改，各组件在构造时按值或只读指针接收
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     logger.Config `mapstructure:"log"`
	Docs    DocsConfig    `mapstructure:"docs"`
	Watcher WatcherConfig `mapstructure:"watcher"`
	I18n    I18nConfig    `mapstructure:"i18n"`
}

// ServerConfig HTTP服务配置
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // 秒，0表示不限制
	WriteTimeout int    `mapstructure:"write_timeout"` // 秒，0表示不限制
	TLSCertFile  string `mapstructure:"tls_cert_file"`
	TLSKeyFile   string `mapstructure:"tls_key_file"`
	EnableHTTP2  bool   `mapstructure:"enable_http2"`
}

// Addr 返回监听地址 host:port
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TLSEnabled 是否配置了证书
func (s ServerConfig) TLSEnabled() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}

// StorageConfig 笔记存储配置
type StorageConfig struct {
	// Driver 存储驱动 (fs, sqlite)
	Driver string `mapstructure:"driver"`
	// CacheDir 笔记根目录，启动时解析为绝对路径
	CacheDir string `mapstructure:"cache_dir"`
	// DSN sqlite数据库文件，仅 driver=sqlite 时使用
	DSN string `mapstructure:"dsn"`
}

// DocsConfig API文档配置
type DocsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// WatcherConfig 目录监听配置
type WatcherConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// I18nConfig 国际化配置
type I18nConfig struct {
	DefaultLang string `mapstructure:"default_lang"`
}

// Load 从命令行参数、环境变量和可选的配置文件加载配置
// 参数:
//   - args: 命令行参数（不含程序名）
//
// 返回值:
//   - *Config: 配置
//   - error: 参数解析失败或缺少必填项
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	flags := pflag.NewFlagSet("notestore", pflag.ContinueOnError)
	flags.StringP("host", "h", "", "host address")
	flags.IntP("port", "p", 0, "port number")
	flags.StringP("cache", "c", "", "cache directory path")
	flags.String("config", "", "config file (yaml, toml or json)")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	bindings := map[string]string{
		"server.host":       "host",
		"server.port":       "port",
		"storage.cache_dir": "cache",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file, _ := flags.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(cfg.Storage.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("resolve cache directory: %w", err)
	}
	cfg.Storage.CacheDir = abs

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.read_timeout", 0)
	v.SetDefault("server.write_timeout", 0)
	v.SetDefault("server.enable_http2", false)
	v.SetDefault("server.tls_cert_file", "")
	v.SetDefault("server.tls_key_file", "")
	v.SetDefault("storage.driver", DriverFS)
	v.SetDefault("storage.dsn", "notes.db")

	def := logger.DefaultConfig()
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.output", def.Output)
	v.SetDefault("log.file_path", def.FilePath)
	v.SetDefault("log.max_size", def.MaxSize)
	v.SetDefault("log.max_age", def.MaxAge)
	v.SetDefault("log.max_backups", def.MaxBackups)
	v.SetDefault("log.compress", def.Compress)

	v.SetDefault("docs.enabled", true)
	v.SetDefault("watcher.enabled", false)
	v.SetDefault("i18n.default_lang", "en-US")
}

func (c *Config) validate() error {
	var missing []string
	if c.Server.Host == "" {
		missing = append(missing, "host")
	}
	if c.Server.Port == 0 {
		missing = append(missing, "port")
	}
	if c.Storage.CacheDir == "" {
		missing = append(missing, "cache")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required option(s) not specified: %s", strings.Join(missing, ", "))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	switch c.Storage.Driver {
	case DriverFS, DriverSQLite:
	default:
		return fmt.Errorf("unsupported storage driver: %s", c.Storage.Driver)
	}
	if (c.Server.TLSCertFile == "") != (c.Server.TLSKeyFile == "") {
		return errors.New("tls_cert_file and tls_key_file must be set together")
	}
	return nil
}
