//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"github.com/ogurasousui/codex-hr-dashboard/internal/platform/config"
	pg "github.com/ogurasousui/codex-hr-dashboard/internal/platform/db/postgres"
)

const migrationsDir = "../assets/migrations"

func TestBookmarkPersistenceIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Storage.Driver != config.DriverPostgres {
		t.Skipf("storage.driver is %q; set it to postgres to run this test", cfg.Storage.Driver)
	}

	if err := resetMigrations(cfg.Storage.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Storage.Database, nil)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	stateRepo := repo.NewStateRepository(pool)
	tx := pg.NewTransactionManager(pool)
	clock := stubClock{now: time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)}
	key := "integration-bookmarks"

	store := bookmark.Open(ctx, stateRepo,
		bookmark.WithKey(key),
		bookmark.WithClock(clock),
		bookmark.WithTransactionManager(tx),
	)
	if store.Len() != 0 {
		t.Fatalf("expected empty store after migration, got %d", store.Len())
	}

	emp := &employee.Employee{
		ID:          7,
		FirstName:   "Ava",
		LastName:    "Taylor",
		Email:       "ava@example.com",
		Age:         31,
		Department:  employee.DepartmentEngineering,
		Performance: 4,
	}
	if _, err := store.Toggle(ctx, emp); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}

	reopened := bookmark.Open(ctx, stateRepo,
		bookmark.WithKey(key),
		bookmark.WithClock(clock),
		bookmark.WithTransactionManager(tx),
	)
	entries := reopened.List()
	if len(entries) != 1 || entries[0].Employee.ID != 7 || entries[0].Employee.Performance != 4 {
		t.Fatalf("unexpected restored entries: %+v", entries)
	}
	if trend := reopened.MonthlyTrend(2026); trend[2].Count != 1 {
		t.Fatalf("expected one bookmark in March, got %+v", trend)
	}

	if removed, err := reopened.Remove(ctx, 7); err != nil || !removed {
		t.Fatalf("Remove = %v, %v", removed, err)
	}

	if err := stateRepo.Delete(ctx, key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := stateRepo.Load(ctx, key); !errors.Is(err, bookmark.ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
