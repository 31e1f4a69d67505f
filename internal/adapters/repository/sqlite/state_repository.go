package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const defaultPath = "hr-dashboard.db"

// StateRepository は SQLite の app_state テーブルにスロットを JSON として保存します。
type StateRepository struct {
	db   *sql.DB
	path string
}

// Open は SQLite ファイルを開き、app_state テーブルを用意します。
func Open(ctx context.Context, path string) (*StateRepository, error) {
	if path == "" {
		path = defaultPath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// modernc.org/sqlite は単一接続でないとロック競合が起きやすい
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: create app_state table: %w", err)
	}

	return &StateRepository{db: db, path: path}, nil
}

// Path はデータベースファイルのパスを返します。
func (r *StateRepository) Path() string {
	return r.path
}

// Load はスロットの内容を取得します。存在しない場合は bookmark.ErrStateNotFound を返します。
func (r *StateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if strings.TrimSpace(key) == "" {
		return nil, bookmark.ErrStateNotFound
	}

	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, bookmark.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: select state: %w", err)
	}
	return payload, nil
}

// Save はスロットの内容を丸ごと置き換えます。
func (r *StateRepository) Save(ctx context.Context, key string, payload []byte) (retErr error) {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("sqlite: empty state key")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `INSERT INTO app_state (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("sqlite: upsert state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

// Close はデータベースを閉じます。
func (r *StateRepository) Close() error {
	return r.db.Close()
}
