package dashboard

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"go.uber.org/zap"
)

// Directory は社員の元データを取得する外部ソースです。
type Directory interface {
	FetchEmployees(ctx context.Context) ([]employee.Source, error)
}

// Enricher は元データを表示用の社員に拡張します。
type Enricher interface {
	EnrichAll(sources []employee.Source) []*employee.Employee
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Recorder はダッシュボード操作のメトリクスを記録します。
type Recorder interface {
	ObserveLoad(err error, count int)
	ObservePromotion(promoted bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveLoad(error, int) {}
func (noopRecorder) ObservePromotion(bool) {}

// LoadState は社員一覧の読み込み状態です。
type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// Status は読み込み状態と件数をまとめたものです。
type Status struct {
	State    LoadState
	Error    string
	Total    int
	LoadedAt time.Time
}

// QueryUpdate は検索条件の部分更新です。nil のフィールドは変更しません。
type QueryUpdate struct {
	SearchTerm    *string
	Departments   *[]employee.Department
	Ratings       *[]int
	SortField     *employee.SortField
	SortDirection *employee.SortDirection
}

// UseCase はダッシュボードの公開インターフェースです。
type UseCase interface {
	Status() Status
	Employees() []*employee.Employee
	Employee(id int64) (*employee.Employee, error)
	View() []*employee.Employee
	Query() employee.Query
	UpdateQuery(in QueryUpdate) (employee.Query, error)
	Promote(id int64) (*employee.Employee, bool)
	DepartmentStats() []employee.DepartmentStats
	Overview() employee.Overview
}

// Service は社員一覧・検索条件・派生ビューを保持します。
// 一覧または条件が変わるたびに派生ビューを再計算します。
type Service struct {
	dir      Directory
	enricher Enricher
	clock    Clock
	logger   *zap.Logger
	metrics  Recorder

	mu        sync.RWMutex
	state     LoadState
	loadErr   string
	loadedAt  time.Time
	employees []*employee.Employee
	index     map[int64]int
	query     employee.Query
	view      []*employee.Employee
}

// Option は Service の生成オプションです。
type Option func(*Service)

// WithClock は時刻源を指定します。
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger はロガーを指定します。
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder はメトリクスの記録先を指定します。
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.metrics = r
		}
	}
}

// NewService は Service を生成します。enricher が nil の場合は既定の Enricher を使います。
func NewService(dir Directory, enricher Enricher, opts ...Option) *Service {
	if enricher == nil {
		enricher = employee.NewEnricher(nil, nil)
	}
	s := &Service{
		dir:       dir,
		enricher:  enricher,
		clock:     realClock{},
		logger:    zap.NewNop(),
		metrics:   noopRecorder{},
		state:     StateIdle,
		employees: []*employee.Employee{},
		index:     make(map[int64]int),
		query:     employee.DefaultQuery(),
		view:      []*employee.Employee{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load は外部ソースから社員一覧を一度だけ取得して拡張します。
// 失敗した場合は StateFailed とエラーメッセージを保持し、再試行は行いません。
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.state = StateLoading
	s.mu.Unlock()

	sources, err := s.fetch(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateFailed
		s.loadErr = err.Error()
		s.mu.Unlock()

		s.metrics.ObserveLoad(err, 0)
		s.logger.Error("failed to load employees", zap.Error(err))
		return fmt.Errorf("dashboard: load: %w", err)
	}

	records := s.enricher.EnrichAll(sources)

	s.mu.Lock()
	s.replaceLocked(records)
	s.state = StateReady
	s.loadedAt = s.clock.Now()
	s.mu.Unlock()

	s.metrics.ObserveLoad(nil, len(records))
	s.logger.Info("employees loaded", zap.Int("count", len(records)))
	return nil
}

func (s *Service) fetch(ctx context.Context) ([]employee.Source, error) {
	if s.dir == nil {
		return nil, ErrNoDirectory
	}
	return s.dir.FetchEmployees(ctx)
}

func (s *Service) replaceLocked(records []*employee.Employee) {
	s.employees = make([]*employee.Employee, 0, len(records))
	s.index = make(map[int64]int, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if _, dup := s.index[r.ID]; dup {
			s.logger.Warn("duplicate employee id ignored", zap.Int64("id", r.ID))
			continue
		}
		s.index[r.ID] = len(s.employees)
		s.employees = append(s.employees, r)
	}
	s.recomputeLocked()
}

func (s *Service) recomputeLocked() {
	s.view = employee.Apply(s.employees, s.query)
}

// Status は読み込み状態を返します。
func (s *Service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		State:    s.state,
		Error:    s.loadErr,
		Total:    len(s.employees),
		LoadedAt: s.loadedAt,
	}
}

// Employees は全社員を取得順で返します。
func (s *Service) Employees() []*employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.employees)
}

// Employee は ID で社員を返します。
func (s *Service) Employee(id int64) (*employee.Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id %d: %w", id, employee.ErrInvalidID)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return s.employees[pos].Clone(), nil
}

// View は現在の条件で検索・フィルタ・並び替えした社員を返します。
func (s *Service) View() []*employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.view)
}

// Query は現在の条件を返します。
func (s *Service) Query() employee.Query {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query.Clone()
}

// SetSearchTerm は検索語を設定します。
func (s *Service) SetSearchTerm(term string) {
	_, _ = s.UpdateQuery(QueryUpdate{SearchTerm: &term})
}

// SetDepartments は部署フィルタを設定します。
func (s *Service) SetDepartments(departments ...employee.Department) {
	_, _ = s.UpdateQuery(QueryUpdate{Departments: &departments})
}

// SetRatings は評価フィルタを設定します。
func (s *Service) SetRatings(ratings ...int) {
	_, _ = s.UpdateQuery(QueryUpdate{Ratings: &ratings})
}

// SetSortField は並び替えキーを設定します。
func (s *Service) SetSortField(field employee.SortField) error {
	_, err := s.UpdateQuery(QueryUpdate{SortField: &field})
	return err
}

// SetSortDirection は並び替え方向を設定します。
func (s *Service) SetSortDirection(direction employee.SortDirection) error {
	_, err := s.UpdateQuery(QueryUpdate{SortDirection: &direction})
	return err
}

// UpdateQuery は指定されたフィールドだけ条件を更新し、派生ビューを再計算します。
func (s *Service) UpdateQuery(in QueryUpdate) (employee.Query, error) {
	var (
		field     employee.SortField
		direction employee.SortDirection
	)
	if in.SortField != nil {
		parsed, err := employee.ParseSortField(string(*in.SortField))
		if err != nil || *in.SortField == "" {
			return employee.Query{}, employee.ErrInvalidSortField
		}
		field = parsed
	}
	if in.SortDirection != nil {
		parsed, err := employee.ParseSortDirection(string(*in.SortDirection))
		if err != nil || *in.SortDirection == "" {
			return employee.Query{}, employee.ErrInvalidSortDirection
		}
		direction = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if in.SearchTerm != nil {
		s.query.SearchTerm = *in.SearchTerm
	}
	if in.Departments != nil {
		s.query.Departments = slices.Clone(*in.Departments)
	}
	if in.Ratings != nil {
		s.query.Ratings = slices.Clone(*in.Ratings)
	}
	if field != "" {
		s.query.SortField = field
	}
	if direction != "" {
		s.query.SortDirection = direction
	}

	s.recomputeLocked()
	return s.query.Clone(), nil
}

// Promote は社員の評価を 1 上げます (上限 5)。
// 未知の ID や既に上限の場合は何も変更せず false を返します。
func (s *Service) Promote(id int64) (*employee.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		s.metrics.ObservePromotion(false)
		return nil, false
	}

	current := s.employees[pos]
	if current.Performance >= employee.MaxRating {
		s.metrics.ObservePromotion(false)
		return current.Clone(), false
	}

	updated := current.Clone()
	updated.Performance = employee.ClampRating(current.Performance + 1)
	s.employees[pos] = updated
	s.recomputeLocked()

	s.metrics.ObservePromotion(true)
	s.logger.Info("employee promoted", zap.Int64("id", id), zap.Int("performance", updated.Performance))
	return updated.Clone(), true
}

// DepartmentStats は全社員の部署別集計を返します。
func (s *Service) DepartmentStats() []employee.DepartmentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return employee.DepartmentStatistics(s.employees)
}

// Overview は全社員の概要を返します。
func (s *Service) Overview() employee.Overview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return employee.Summarize(s.employees)
}

func cloneAll(records []*employee.Employee) []*employee.Employee {
	out := make([]*employee.Employee, 0, len(records))
	for _, r := range records {
		out = append(out, r.Clone())
	}
	return out
}
