package employee

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newEmployee(id int64, first, last string, dept Department, perf int) *Employee {
	return &Employee{ID: id, FirstName: first, LastName: last, Department: dept, Performance: perf}
}

func ids(records []*Employee) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func fixture() []*Employee {
	return []*Employee{
		newEmployee(1, "Emily", "Johnson", DepartmentEngineering, 2),
		newEmployee(2, "Michael", "Williams", DepartmentHR, 5),
		newEmployee(3, "sophia", "Brown", DepartmentEngineering, 3),
		newEmployee(4, "James", "Davis", DepartmentHR, 5),
		newEmployee(5, "Emma", "Miller", DepartmentEngineering, 4),
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	got := Search(fixture(), "MILL")
	if diff := cmp.Diff([]int64{5}, ids(got)); diff != "" {
		t.Fatalf("unexpected search result (-want +got):\n%s", diff)
	}

	// 名と姓をまたぐ部分一致
	got = Search(fixture(), "y joh")
	if diff := cmp.Diff([]int64{1}, ids(got)); diff != "" {
		t.Fatalf("unexpected search result across name parts (-want +got):\n%s", diff)
	}
}

func TestSearch_EmptyTermMatchesAll(t *testing.T) {
	t.Parallel()

	records := fixture()
	if diff := cmp.Diff(ids(records), ids(Search(records, ""))); diff != "" {
		t.Fatalf("empty term should match all (-want +got):\n%s", diff)
	}
}

func TestFilter_CombinesPredicates(t *testing.T) {
	t.Parallel()

	records := fixture()

	got := Filter(records, []Department{DepartmentHR}, nil)
	if diff := cmp.Diff([]int64{2, 4}, ids(got)); diff != "" {
		t.Errorf("department filter (-want +got):\n%s", diff)
	}

	got = Filter(records, nil, []int{3, 4})
	if diff := cmp.Diff([]int64{3, 5}, ids(got)); diff != "" {
		t.Errorf("rating filter (-want +got):\n%s", diff)
	}

	got = Filter(records, []Department{DepartmentEngineering}, []int{2, 5})
	if diff := cmp.Diff([]int64{1}, ids(got)); diff != "" {
		t.Errorf("combined filter (-want +got):\n%s", diff)
	}

	got = Filter(records, nil, nil)
	if diff := cmp.Diff(ids(records), ids(got)); diff != "" {
		t.Errorf("empty sets should match all (-want +got):\n%s", diff)
	}
}

func TestFilter_OutOfDomainValuesAreInert(t *testing.T) {
	t.Parallel()

	got := Filter(fixture(), []Department{"Legal", DepartmentHR}, []int{0, 9, 5})
	if diff := cmp.Diff([]int64{2, 4}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestSort_ByNameIsLocaleAware(t *testing.T) {
	t.Parallel()

	// 小文字始まりの "sophia" もロケール順で "Michael" の後に並ぶ
	got := Sort(fixture(), SortByName, SortAscending)
	if diff := cmp.Diff([]int64{1, 5, 4, 2, 3}, ids(got)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestSort_IsStableForEqualKeys(t *testing.T) {
	t.Parallel()

	records := fixture()

	got := Sort(records, SortByPerformance, SortAscending)
	if diff := cmp.Diff([]int64{1, 3, 5, 2, 4}, ids(got)); diff != "" {
		t.Errorf("ascending performance (-want +got):\n%s", diff)
	}

	got = Sort(records, SortByPerformance, SortDescending)
	if diff := cmp.Diff([]int64{2, 4, 5, 3, 1}, ids(got)); diff != "" {
		t.Errorf("descending performance keeps tie order (-want +got):\n%s", diff)
	}

	got = Sort(records, SortByDepartment, SortAscending)
	if diff := cmp.Diff([]int64{1, 3, 5, 2, 4}, ids(got)); diff != "" {
		t.Errorf("department order (-want +got):\n%s", diff)
	}
}

func TestSort_DescendingReversesDistinctKeys(t *testing.T) {
	t.Parallel()

	records := []*Employee{
		newEmployee(1, "Carol", "A", DepartmentSales, 1),
		newEmployee(2, "alice", "B", DepartmentSales, 3),
		newEmployee(3, "Bob", "C", DepartmentSales, 2),
		newEmployee(4, "Dave", "D", DepartmentSales, 5),
	}

	for _, field := range []SortField{SortByName, SortByPerformance} {
		asc := ids(Sort(records, field, SortAscending))
		desc := ids(Sort(records, field, SortDescending))
		slices.Reverse(desc)
		if diff := cmp.Diff(asc, desc); diff != "" {
			t.Errorf("%s: descending is not the reverse of ascending (-asc +reversed desc):\n%s", field, diff)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := fixture()
	before := ids(records)

	_ = Apply(records, Query{SortField: SortByPerformance, SortDirection: SortDescending})

	if diff := cmp.Diff(before, ids(records)); diff != "" {
		t.Fatalf("input order changed (-before +after):\n%s", diff)
	}
}

func TestApply_EmptyInput(t *testing.T) {
	t.Parallel()

	got := Apply(nil, DefaultQuery())
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestApply_TopRatedSortedByName(t *testing.T) {
	t.Parallel()

	q := DefaultQuery()
	q.Ratings = []int{5}

	got := Apply(fixture(), q)
	if diff := cmp.Diff([]int64{4, 2}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestApply_SearchAndFilterBeforeSort(t *testing.T) {
	t.Parallel()

	got := Apply(fixture(), Query{
		SearchTerm:    "m",
		Departments:   []Department{DepartmentEngineering},
		SortField:     SortByPerformance,
		SortDirection: SortDescending,
	})
	if diff := cmp.Diff([]int64{5, 1}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestParseSortOptions(t *testing.T) {
	t.Parallel()

	if f, err := ParseSortField(""); err != nil || f != SortByName {
		t.Errorf("empty field: got %q, %v", f, err)
	}
	if f, err := ParseSortField(" Performance "); err != nil || f != SortByPerformance {
		t.Errorf("performance field: got %q, %v", f, err)
	}
	if _, err := ParseSortField("age"); !errors.Is(err, ErrInvalidSortField) {
		t.Errorf("expected ErrInvalidSortField, got %v", err)
	}
	if d, err := ParseSortDirection("DESC"); err != nil || d != SortDescending {
		t.Errorf("desc direction: got %q, %v", d, err)
	}
	if _, err := ParseSortDirection("sideways"); !errors.Is(err, ErrInvalidSortDirection) {
		t.Errorf("expected ErrInvalidSortDirection, got %v", err)
	}
	if d, err := ParseDepartment("hr"); err != nil || d != DepartmentHR {
		t.Errorf("hr department: got %q, %v", d, err)
	}
	if _, err := ParseDepartment("Legal"); !errors.Is(err, ErrInvalidDepartment) {
		t.Errorf("expected ErrInvalidDepartment, got %v", err)
	}
}
