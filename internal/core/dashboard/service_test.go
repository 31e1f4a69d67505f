package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fakeDirectory struct {
	sources []employee.Source
	err     error
	calls   int
}

func (d *fakeDirectory) FetchEmployees(context.Context) ([]employee.Source, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return d.sources, nil
}

// scriptedEnricher は部署と評価を ID ごとに固定して拡張します。
type scriptedEnricher struct {
	departments map[int64]employee.Department
	ratings     map[int64]int
}

func (e scriptedEnricher) EnrichAll(sources []employee.Source) []*employee.Employee {
	out := make([]*employee.Employee, 0, len(sources))
	for _, src := range sources {
		out = append(out, &employee.Employee{
			ID:          src.ID,
			FirstName:   src.FirstName,
			LastName:    src.LastName,
			Department:  e.departments[src.ID],
			Performance: e.ratings[src.ID],
		})
	}
	return out
}

type countingRecorder struct {
	mu         sync.Mutex
	loads      int
	loadErrs   int
	promotions int
	noops      int
}

func (c *countingRecorder) ObserveLoad(err error, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loads++
	if err != nil {
		c.loadErrs++
	}
}

func (c *countingRecorder) ObservePromotion(promoted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if promoted {
		c.promotions++
	} else {
		c.noops++
	}
}

func fiveEmployees() (*fakeDirectory, scriptedEnricher) {
	dir := &fakeDirectory{sources: []employee.Source{
		{ID: 1, FirstName: "Emily", LastName: "Johnson"},
		{ID: 2, FirstName: "Michael", LastName: "Williams"},
		{ID: 3, FirstName: "Sophia", LastName: "Brown"},
		{ID: 4, FirstName: "James", LastName: "Davis"},
		{ID: 5, FirstName: "Emma", LastName: "Miller"},
	}}
	enricher := scriptedEnricher{
		departments: map[int64]employee.Department{
			1: employee.DepartmentEngineering,
			2: employee.DepartmentHR,
			3: employee.DepartmentEngineering,
			4: employee.DepartmentHR,
			5: employee.DepartmentEngineering,
		},
		ratings: map[int64]int{1: 2, 2: 5, 3: 3, 4: 5, 5: 4},
	}
	return dir, enricher
}

func loadedService(t *testing.T, opts ...Option) *Service {
	t.Helper()

	dir, enricher := fiveEmployees()
	svc := NewService(dir, enricher, opts...)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return svc
}

func viewIDs(records []*employee.Employee) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestService_Load_Success(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	rec := &countingRecorder{}
	svc := loadedService(t, WithClock(stubClock{now: now}), WithRecorder(rec))

	status := svc.Status()
	if status.State != StateReady || status.Total != 5 || status.Error != "" || !status.LoadedAt.Equal(now) {
		t.Fatalf("unexpected status: %+v", status)
	}

	if diff := cmp.Diff([]int64{1, 2, 3, 4, 5}, viewIDs(svc.Employees())); diff != "" {
		t.Errorf("canonical list should keep fetch order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{1, 5, 4, 2, 3}, viewIDs(svc.View())); diff != "" {
		t.Errorf("default view should be sorted by name (-want +got):\n%s", diff)
	}
	if rec.loads != 1 || rec.loadErrs != 0 {
		t.Errorf("unexpected load metrics: %+v", rec)
	}
}

func TestService_Load_FailureIsSurfaced(t *testing.T) {
	t.Parallel()

	dir := &fakeDirectory{err: errors.New("unexpected status 503")}
	svc := NewService(dir, nil)

	err := svc.Load(context.Background())
	if !errors.Is(err, dir.err) {
		t.Fatalf("expected fetch error, got %v", err)
	}

	status := svc.Status()
	if status.State != StateFailed || status.Error != "unexpected status 503" {
		t.Fatalf("unexpected status: %+v", status)
	}
	if len(svc.Employees()) != 0 || len(svc.View()) != 0 {
		t.Fatal("expected empty lists after failure")
	}

	if err := svc.Load(context.Background()); !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("expected ErrAlreadyLoaded, got %v", err)
	}
	if dir.calls != 1 {
		t.Fatalf("expected a single fetch, got %d", dir.calls)
	}
}

func TestService_Load_WithoutDirectory(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil)
	if err := svc.Load(context.Background()); !errors.Is(err, ErrNoDirectory) {
		t.Fatalf("expected ErrNoDirectory, got %v", err)
	}
}

func TestService_FilterTopRatedSortedByName(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)
	svc.SetRatings(5)

	got := svc.View()
	if diff := cmp.Diff([]int64{4, 2}, viewIDs(got)); diff != "" {
		t.Fatalf("unexpected view (-want +got):\n%s", diff)
	}
	if got[0].FullName() != "James Davis" || got[1].FullName() != "Michael Williams" {
		t.Fatalf("unexpected names: %s, %s", got[0].FullName(), got[1].FullName())
	}
}

func TestService_UpdateQuery(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)

	term := "EM"
	field := employee.SortByPerformance
	direction := employee.SortDescending
	q, err := svc.UpdateQuery(QueryUpdate{SearchTerm: &term, SortField: &field, SortDirection: &direction})
	if err != nil {
		t.Fatalf("UpdateQuery returned error: %v", err)
	}
	if q.SearchTerm != "EM" || q.SortField != employee.SortByPerformance || q.SortDirection != employee.SortDescending {
		t.Fatalf("unexpected query: %+v", q)
	}
	if diff := cmp.Diff([]int64{5, 1}, viewIDs(svc.View())); diff != "" {
		t.Fatalf("unexpected view (-want +got):\n%s", diff)
	}

	svc.SetDepartments(employee.DepartmentHR)
	if got := svc.View(); len(got) != 0 {
		t.Fatalf("expected no HR employee matching %q, got %v", term, viewIDs(got))
	}

	svc.SetSearchTerm("")
	if diff := cmp.Diff([]int64{2, 4}, viewIDs(svc.View())); diff != "" {
		t.Fatalf("unexpected view after clearing search (-want +got):\n%s", diff)
	}
}

func TestService_UpdateQuery_RejectsInvalidSort(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)

	if err := svc.SetSortField("salary"); !errors.Is(err, employee.ErrInvalidSortField) {
		t.Fatalf("expected ErrInvalidSortField, got %v", err)
	}
	if err := svc.SetSortDirection(""); !errors.Is(err, employee.ErrInvalidSortDirection) {
		t.Fatalf("expected ErrInvalidSortDirection, got %v", err)
	}
	if q := svc.Query(); q.SortField != employee.SortByName || q.SortDirection != employee.SortAscending {
		t.Fatalf("invalid update must not change the query: %+v", q)
	}
}

func TestService_Promote(t *testing.T) {
	t.Parallel()

	rec := &countingRecorder{}
	svc := loadedService(t, WithRecorder(rec))
	svc.SetRatings(5)

	updated, promoted := svc.Promote(5)
	if !promoted || updated.Performance != 5 {
		t.Fatalf("expected promotion to 5, got %+v, %v", updated, promoted)
	}
	if diff := cmp.Diff([]int64{5, 4, 2}, viewIDs(svc.View())); diff != "" {
		t.Fatalf("view not recomputed after promotion (-want +got):\n%s", diff)
	}

	emp, err := svc.Employee(5)
	if err != nil || emp.Performance != 5 || emp.ID != 5 {
		t.Fatalf("canonical record not updated: %+v, %v", emp, err)
	}
	if diff := cmp.Diff([]int64{1, 2, 3, 4, 5}, viewIDs(svc.Employees())); diff != "" {
		t.Fatalf("promotion must replace the record in place (-want +got):\n%s", diff)
	}

	if rec.promotions != 1 {
		t.Fatalf("expected 1 promotion metric, got %+v", rec)
	}
}

func TestService_Promote_IsIdempotentAtCeiling(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)

	for i := 0; i < 3; i++ {
		emp, promoted := svc.Promote(2)
		if promoted || emp.Performance != employee.MaxRating {
			t.Fatalf("promotion at ceiling changed state: %+v, %v", emp, promoted)
		}
	}
}

func TestService_Promote_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)
	before := svc.Employees()

	emp, promoted := svc.Promote(404)
	if emp != nil || promoted {
		t.Fatalf("expected no-op, got %+v, %v", emp, promoted)
	}
	if diff := cmp.Diff(before, svc.Employees()); diff != "" {
		t.Fatalf("unknown id changed state (-before +after):\n%s", diff)
	}
}

func TestService_Promote_DoesNotUpdateBookmarkSnapshot(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)
	store := bookmark.Open(context.Background(), nil)

	emp, err := svc.Employee(1)
	if err != nil {
		t.Fatalf("Employee returned error: %v", err)
	}
	if _, err := store.Toggle(context.Background(), emp); err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}

	if _, promoted := svc.Promote(1); !promoted {
		t.Fatal("expected promotion")
	}

	if got := store.List()[0].Employee.Performance; got != 2 {
		t.Fatalf("bookmark snapshot should keep performance 2, got %d", got)
	}
}

func TestService_Promote_Concurrent(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Promote(1)
			_ = svc.View()
		}()
	}
	wg.Wait()

	emp, err := svc.Employee(1)
	if err != nil {
		t.Fatalf("Employee returned error: %v", err)
	}
	if emp.Performance != employee.MaxRating {
		t.Fatalf("expected performance capped at %d, got %d", employee.MaxRating, emp.Performance)
	}
}

func TestService_Employee_NotFound(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)

	if _, err := svc.Employee(99); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := svc.Employee(0); !errors.Is(err, employee.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_ReturnsCopies(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)

	view := svc.View()
	view[0].Performance = 99
	emp, err := svc.Employee(view[0].ID)
	if err != nil {
		t.Fatalf("Employee returned error: %v", err)
	}
	if emp.Performance == 99 {
		t.Fatal("View must return copies")
	}

	q := svc.Query()
	q.Ratings = append(q.Ratings, 5)
	if len(svc.Query().Ratings) != 0 {
		t.Fatal("Query must return a copy")
	}
}

func TestService_Aggregates(t *testing.T) {
	t.Parallel()

	svc := loadedService(t)
	svc.SetRatings(5)

	stats := svc.DepartmentStats()
	want := []employee.DepartmentStats{
		{Department: employee.DepartmentEngineering, AverageRating: 3.0, EmployeeCount: 3},
		{Department: employee.DepartmentHR, AverageRating: 5.0, EmployeeCount: 2},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats should use the full list (-want +got):\n%s", diff)
	}

	overview := svc.Overview()
	if overview.TotalEmployees != 5 || overview.AveragePerformance != 3.8 || overview.TopPerformers != 3 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}
