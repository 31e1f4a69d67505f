package storage

import (
	"context"
	"fmt"

	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository/file"
	pgrepo "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
	pgdb "github.com/ogurasousui/codex-hr-dashboard/internal/platform/db/postgres"
	"go.uber.org/zap"
)

// Backend は選択されたドライバのスロット保存先です。
type Backend struct {
	Driver     string
	Repository bookmark.Repository
	// Tx は postgres ドライバのときだけ設定されます。
	Tx    bookmark.TransactionManager
	close func()
}

// Close は保存先が保持する接続を解放します。
func (b *Backend) Close() {
	if b != nil && b.close != nil {
		b.close()
	}
}

// Options は Store に渡すオプションを返します。
func (b *Backend) Options() []bookmark.Option {
	if b == nil || b.Tx == nil {
		return nil
	}
	return []bookmark.Option{bookmark.WithTransactionManager(b.Tx)}
}

// Open は storage.driver に応じた保存先を開きます。
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Driver {
	case "", config.DriverFile:
		repo, err := file.NewStateRepository(cfg.File.Dir)
		if err != nil {
			return nil, err
		}
		logger.Info("bookmark storage ready", zap.String("driver", config.DriverFile), zap.String("dir", cfg.File.Dir))
		return &Backend{Driver: config.DriverFile, Repository: repo}, nil

	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("bookmark storage ready", zap.String("driver", config.DriverSQLite), zap.String("path", repo.Path()))
		return &Backend{
			Driver:     config.DriverSQLite,
			Repository: repo,
			close: func() {
				if err := repo.Close(); err != nil {
					logger.Warn("failed to close sqlite", zap.Error(err))
				}
			},
		}, nil

	case config.DriverPostgres:
		pool, err := pgdb.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver:     config.DriverPostgres,
			Repository: pgrepo.NewStateRepository(pool),
			Tx:         pgdb.NewTransactionManager(pool),
			close:      pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", cfg.Driver)
	}
}
