package dummyjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"go.uber.org/zap"
)

const (
	defaultBaseURL     = "https://dummyjson.com"
	defaultLimit       = 20
	defaultTimeout     = 10 * time.Second
	defaultMaxBackoff  = 5 * time.Second
	defaultBaseBackoff = 200 * time.Millisecond
)

var (
	ErrUnexpectedStatus = errors.New("dummyjson: unexpected status code")
	ErrInvalidBaseURL   = errors.New("dummyjson: invalid base url")
)

// Config はディレクトリ API への接続設定です。
type Config struct {
	BaseURL     string
	Limit       int
	Timeout     time.Duration
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// Client は dummyjson 形式のユーザー API から社員の元データを取得します。
type Client struct {
	cfg      Config
	endpoint string
	http     *http.Client
	validate *validator.Validate
	logger   *zap.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// Option は Client の生成オプションです。
type Option func(*Client)

// WithHTTPClient は HTTP クライアントを差し替えます。
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger はロガーを指定します。
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New は Client を生成します。
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = defaultBaseBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}
	base.Path += "/users"
	base.RawQuery = url.Values{"limit": []string{strconv.Itoa(cfg.Limit)}}.Encode()

	c := &Client{
		cfg:      cfg,
		endpoint: base.String(),
		http:     &http.Client{Timeout: cfg.Timeout},
		validate: validator.New(),
		logger:   zap.NewNop(),
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type usersResponse struct {
	Users []employee.Source `json:"users"`
}

// FetchEmployees は社員の元データを取得します。検証に失敗したレコードは警告を出して読み飛ばします。
func (c *Client) FetchEmployees(ctx context.Context) ([]employee.Source, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			wait := backoff(attempt-1, c.cfg.BaseBackoff, c.cfg.MaxBackoff) + jitter(c.cfg.BaseBackoff)
			c.logger.Warn("retrying directory fetch",
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait),
				zap.Error(lastErr),
			)
			if err := c.sleep(ctx, wait); err != nil {
				return nil, errors.Join(lastErr, err)
			}
		}

		sources, err := c.fetchOnce(ctx)
		if err == nil {
			return sources, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context) ([]employee.Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dummyjson: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dummyjson: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body usersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("dummyjson: decode: %w", err)
	}

	out := make([]employee.Source, 0, len(body.Users))
	for _, u := range body.Users {
		if err := c.validate.Struct(u); err != nil {
			c.logger.Warn("skipping invalid directory record", zap.Int64("id", u.ID), zap.Error(err))
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// backoff は base * 2^(retries-1) を ceiling で打ち切った待ち時間を返します。
func backoff(retries int, base, ceiling time.Duration) time.Duration {
	if retries <= 0 {
		return 0
	}
	d := time.Duration(math.Pow(2, float64(retries-1)) * float64(base))
	if d > ceiling || d <= 0 {
		return ceiling
	}
	return d
}

// jitter は [0, maxJitter] の乱数を返します。
func jitter(maxJitter time.Duration) time.Duration {
	if maxJitter <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(maxJitter) + 1)) //nolint:gosec
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
