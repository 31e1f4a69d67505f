package bookmark

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"go.uber.org/zap"
)

// DefaultKey はブックマーク状態を保存するスロット名です。
const DefaultKey = "hr-dashboard-bookmarks"

// maxEvents を超えた古いイベントは破棄します。
const maxEvents = 1000

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Recorder はブックマーク操作のメトリクスを記録します。
type Recorder interface {
	ObserveBookmark(action string)
	ObservePersist(err error)
}

type noopRecorder struct{}

func (noopRecorder) ObserveBookmark(string) {}
func (noopRecorder) ObservePersist(error) {}

// UseCase はブックマークの公開インターフェースです。
type UseCase interface {
	IsBookmarked(id int64) bool
	Toggle(ctx context.Context, emp *employee.Employee) (bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
	List() []Entry
	Len() int
	MonthlyTrend(year int) []TrendPoint
}

// Store は社員スナップショットのブックマーク集合です。変更のたびに全体を Repository へ保存します。
type Store struct {
	mu      sync.Mutex
	repo    Repository
	key     string
	clock   Clock
	tx      TransactionManager
	logger  *zap.Logger
	metrics Recorder

	entries []Entry
	index   map[int64]int
	events  []Event
}

// Option は Store の生成オプションです。
type Option func(*Store)

// WithKey は保存先スロット名を指定します。
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock は時刻源を指定します。
func WithClock(clock Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTransactionManager はトランザクション制御を指定します。
func WithTransactionManager(tx TransactionManager) Option {
	return func(s *Store) {
		if tx != nil {
			s.tx = tx
		}
	}
}

// WithLogger はロガーを指定します。
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder はメトリクスの記録先を指定します。
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		if r != nil {
			s.metrics = r
		}
	}
}

// Open は Repository から状態を読み込んで Store を生成します。
// スロットが存在しない・読み込めない・壊れている場合はログを残して空の状態から始めます。
func Open(ctx context.Context, repo Repository, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		key:     DefaultKey,
		clock:   realClock{},
		tx:      noopTransactionManager{},
		logger:  zap.NewNop(),
		metrics: noopRecorder{},
		index:   make(map[int64]int),
	}
	for _, opt := range opts {
		opt(s)
	}

	snapshot, err := s.load(ctx)
	switch {
	case errors.Is(err, ErrStateNotFound):
		s.logger.Debug("no persisted bookmarks", zap.String("key", s.key))
	case err != nil:
		s.logger.Warn("discarding persisted bookmarks", zap.String("key", s.key), zap.Error(err))
	default:
		s.restore(snapshot)
		s.logger.Info("bookmarks restored", zap.String("key", s.key), zap.Int("count", len(s.entries)))
	}

	return s
}

func (s *Store) load(ctx context.Context) (Snapshot, error) {
	if s.repo == nil {
		return Snapshot{}, ErrStateNotFound
	}

	var payload []byte
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		b, err := s.repo.Load(txCtx, s.key)
		if err != nil {
			return err
		}
		payload = b
		return nil
	}); err != nil {
		return Snapshot{}, err
	}

	return Decode(payload)
}

func (s *Store) restore(snapshot Snapshot) {
	s.entries = make([]Entry, 0, len(snapshot.Entries))
	s.index = make(map[int64]int, len(snapshot.Entries))
	for _, e := range snapshot.Entries {
		s.index[e.Employee.ID] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	s.events = append([]Event(nil), snapshot.Events...)
}

// IsBookmarked は指定 ID がブックマーク済みかを返します。
func (s *Store) IsBookmarked(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.index[id]
	return ok
}

// Toggle はブックマーク済みなら削除し、未登録なら社員のスナップショットを追加します。
// 追加後に元の社員が昇格しても、ブックマーク側のスナップショットは更新されません。
// 戻り値は操作後にブックマーク済みかどうかです。保存に失敗してもメモリ上の変更は維持します。
func (s *Store) Toggle(ctx context.Context, emp *employee.Employee) (bool, error) {
	if emp == nil {
		return false, ErrNilEmployee
	}
	if emp.ID <= 0 {
		return false, fmt.Errorf("id %d: %w", emp.ID, ErrInvalidID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	bookmarked := false
	if _, ok := s.index[emp.ID]; ok {
		s.removeLocked(emp.ID)
		s.recordLocked(Event{EmployeeID: emp.ID, Action: ActionRemoved, At: now})
	} else {
		s.index[emp.ID] = len(s.entries)
		s.entries = append(s.entries, Entry{Employee: emp.Clone(), BookmarkedAt: now})
		s.recordLocked(Event{EmployeeID: emp.ID, Action: ActionAdded, At: now})
		bookmarked = true
	}

	return bookmarked, s.persistLocked(ctx)
}

// Remove は指定 ID のブックマークを削除し、削除したかどうかを返します。未登録の ID に対しては何もしません。
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; !ok {
		return false, nil
	}

	s.removeLocked(id)
	s.recordLocked(Event{EmployeeID: id, Action: ActionRemoved, At: s.clock.Now()})
	return true, s.persistLocked(ctx)
}

// List はブックマークを追加順に返します。
func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.clone())
	}
	return out
}

// Len はブックマーク数を返します。
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Snapshot は現在の状態のコピーを返します。
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// MonthlyTrend は指定年の月ごとのブックマーク追加件数を返します。
func (s *Store) MonthlyTrend(year int) []TrendPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return monthlyAdded(s.events, year)
}

func (s *Store) snapshotLocked() Snapshot {
	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e.clone())
	}
	return Snapshot{Entries: entries, Events: append([]Event(nil), s.events...)}
}

func (s *Store) removeLocked(id int64) {
	pos := s.index[id]
	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.entries); i++ {
		s.index[s.entries[i].Employee.ID] = i
	}
}

func (s *Store) recordLocked(ev Event) {
	s.events = append(s.events, ev)
	if over := len(s.events) - maxEvents; over > 0 {
		s.events = append([]Event(nil), s.events[over:]...)
	}
	s.metrics.ObserveBookmark(string(ev.Action))
}

func (s *Store) persistLocked(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	payload, err := Encode(s.snapshotLocked())
	if err != nil {
		return err
	}

	err = s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Save(txCtx, s.key, payload)
	})
	s.metrics.ObservePersist(err)
	if err != nil {
		s.logger.Error("failed to persist bookmarks", zap.String("key", s.key), zap.Error(err))
		return fmt.Errorf("bookmark: persist: %w", err)
	}
	return nil
}
