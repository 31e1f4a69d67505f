package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
)

// ErrInvalidKey はファイル名として使えないスロット名を表します。
var ErrInvalidKey = errors.New("file: invalid state key")

// StateRepository はスロットごとに 1 つの JSON ファイルを保存します。
type StateRepository struct {
	dir string
}

// NewStateRepository は保存先ディレクトリを作成して StateRepository を生成します。
func NewStateRepository(dir string) (*StateRepository, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("file: create state directory %s: %w", dir, err)
	}
	return &StateRepository{dir: dir}, nil
}

func (r *StateRepository) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(r.dir, key+".json"), nil
}

// Load はスロットの内容を読み込みます。ファイルがない場合は bookmark.ErrStateNotFound を返します。
func (r *StateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := r.path(key)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, bookmark.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("file: read %s: %w", p, err)
	}
	return b, nil
}

// Save は一時ファイルに書き込んでからリネームし、スロットを置き換えます。
func (r *StateRepository) Save(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := r.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, "."+filepath.Base(p)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("file: write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("file: sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("file: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		cleanup()
		return fmt.Errorf("file: rename to %s: %w", p, err)
	}
	return nil
}
