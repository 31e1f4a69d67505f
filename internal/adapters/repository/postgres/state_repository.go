package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	pgdb "github.com/ogurasousui/codex-hr-dashboard/internal/platform/db/postgres"
)

const undefinedTableCode = "42P01"

// ErrSchemaNotMigrated は app_state テーブルが存在しないことを表します。
var ErrSchemaNotMigrated = errors.New("postgres: app_state table does not exist (run migrations)")

// StateRepository は PostgreSQL の app_state テーブルを利用したスロット永続化の実装です。
type StateRepository struct {
	pool pgdb.Queryer
	now  func() time.Time
}

// NewStateRepository は StateRepository を生成します。
func NewStateRepository(pool pgdb.Queryer) *StateRepository {
	return &StateRepository{
		pool: pool,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Load はスロットの内容を取得します。存在しない場合は bookmark.ErrStateNotFound を返します。
func (r *StateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if strings.TrimSpace(key) == "" {
		return nil, bookmark.ErrStateNotFound
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT payload
          FROM app_state
         WHERE key = $1
    `, key)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		return nil, translateStatePgError(err)
	}
	return payload, nil
}

// Save はスロットの内容を丸ごと置き換えます。
func (r *StateRepository) Save(ctx context.Context, key string, payload []byte) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("postgres: empty state key")
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO app_state (key, payload, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE
           SET payload = EXCLUDED.payload,
               updated_at = EXCLUDED.updated_at
    `, key, payload, r.now())
	if err != nil {
		return translateStatePgError(err)
	}
	return nil
}

// Delete はスロットを削除します。存在しない場合は bookmark.ErrStateNotFound を返します。
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM app_state WHERE key = $1`, key)
	if err != nil {
		return translateStatePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return bookmark.ErrStateNotFound
	}
	return nil
}

func translateStatePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return bookmark.ErrStateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
		return fmt.Errorf("%w: %s", ErrSchemaNotMigrated, pgErr.Message)
	}

	return fmt.Errorf("postgres: %w", err)
}
