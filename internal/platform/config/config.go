package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ストレージドライバ名です。
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Directory  DirectoryConfig  `yaml:"directory"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Storage    StorageConfig    `yaml:"storage"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr         string        `yaml:"listen_addr"`
	ShutdownTimeout    time.Duration `yaml:"-"`
	ShutdownTimeoutRaw string        `yaml:"shutdown_timeout"`
}

// DirectoryConfig は社員ディレクトリ API の設定です。
type DirectoryConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Limit          int           `yaml:"limit"`
	MaxAttempts    int           `yaml:"max_attempts"`
	Timeout        time.Duration `yaml:"-"`
	BaseBackoff    time.Duration `yaml:"-"`
	MaxBackoff     time.Duration `yaml:"-"`
	TimeoutRaw     string        `yaml:"timeout"`
	BaseBackoffRaw string        `yaml:"base_backoff"`
	MaxBackoffRaw  string        `yaml:"max_backoff"`
}

// EnrichmentConfig は合成データ生成の設定です。Seed が nil の場合は実行ごとに異なる値になります。
type EnrichmentConfig struct {
	Seed *uint64 `yaml:"seed"`
}

// StorageConfig はブックマーク状態の保存先設定です。
type StorageConfig struct {
	Driver   string         `yaml:"driver"`
	Key      string         `yaml:"key"`
	File     FileConfig     `yaml:"file"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Database DatabaseConfig `yaml:"database"`
}

// FileConfig は file ドライバの設定です。
type FileConfig struct {
	Dir string `yaml:"dir"`
}

// SQLiteConfig は sqlite ドライバの設定です。
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// MetricsConfig は Prometheus エンドポイントの設定です。
type MetricsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
	Path       string `yaml:"path"`
}

// LoggingConfig は zap ロガーの設定です。
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.Server.validateAndNormalize(); err != nil {
		return err
	}
	if err := c.Directory.validateAndNormalize(); err != nil {
		return err
	}
	if err := c.Storage.validateAndNormalize(); err != nil {
		return err
	}
	if err := c.Metrics.validateAndNormalize(); err != nil {
		return err
	}
	return c.Logging.validateAndNormalize()
}

func (s *ServerConfig) validateAndNormalize() error {
	if s.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}
	timeout, err := parseDurationAllowEmpty(s.ShutdownTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	s.ShutdownTimeout = timeout
	return nil
}

func (d *DirectoryConfig) validateAndNormalize() error {
	if d.BaseURL == "" {
		d.BaseURL = "https://dummyjson.com"
	}
	u, err := url.Parse(d.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: directory.base_url must be an http(s) url, got %q", d.BaseURL)
	}
	if d.Limit < 0 {
		return fmt.Errorf("config: directory.limit must not be negative")
	}
	if d.Limit == 0 {
		d.Limit = 20
	}
	if d.MaxAttempts < 0 {
		return fmt.Errorf("config: directory.max_attempts must not be negative")
	}
	if d.MaxAttempts == 0 {
		d.MaxAttempts = 1
	}

	if d.Timeout, err = parseDurationDefault(d.TimeoutRaw, 10*time.Second); err != nil {
		return fmt.Errorf("config: directory.timeout: %w", err)
	}
	if d.BaseBackoff, err = parseDurationDefault(d.BaseBackoffRaw, 200*time.Millisecond); err != nil {
		return fmt.Errorf("config: directory.base_backoff: %w", err)
	}
	if d.MaxBackoff, err = parseDurationDefault(d.MaxBackoffRaw, 5*time.Second); err != nil {
		return fmt.Errorf("config: directory.max_backoff: %w", err)
	}
	return nil
}

func (s *StorageConfig) validateAndNormalize() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if s.Driver == "" {
		s.Driver = DriverFile
	}
	if s.Key == "" {
		s.Key = "hr-dashboard-bookmarks"
	}

	switch s.Driver {
	case DriverFile:
		if s.File.Dir == "" {
			s.File.Dir = "var/state"
		}
	case DriverSQLite:
		if s.SQLite.Path == "" {
			s.SQLite.Path = "var/hr-dashboard.db"
		}
	case DriverPostgres:
		if err := s.Database.validateAndNormalize(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: storage.driver %q is not supported (file, sqlite, postgres)", s.Driver)
	}
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: storage.database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: storage.database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: storage.database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: storage.database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: storage.database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: storage.database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: storage.database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (m *MetricsConfig) validateAndNormalize() error {
	if !m.Enabled {
		return nil
	}
	if m.ListenAddr == "" {
		m.ListenAddr = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
	if !strings.HasPrefix(m.Path, "/") {
		return fmt.Errorf("config: metrics.path must start with '/'")
	}
	return nil
}

func (l *LoggingConfig) validateAndNormalize() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	switch l.Level {
	case "":
		l.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: logging.level %q is not supported", l.Level)
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	return parseDurationDefault(raw, 0)
}

func parseDurationDefault(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", raw)
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。ユーザー名とパスワードはエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
