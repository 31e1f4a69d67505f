package employee

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDepartmentStatistics_GroupsInFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	records := []*Employee{
		newEmployee(1, "A", "A", DepartmentEngineering, 3),
		newEmployee(2, "B", "B", DepartmentHR, 4),
		newEmployee(3, "C", "C", DepartmentEngineering, 5),
	}

	got := DepartmentStatistics(records)
	want := []DepartmentStats{
		{Department: DepartmentEngineering, AverageRating: 4.0, EmployeeCount: 2},
		{Department: DepartmentHR, AverageRating: 4.0, EmployeeCount: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestDepartmentStatistics_RoundsHalfUp(t *testing.T) {
	t.Parallel()

	records := []*Employee{
		newEmployee(1, "A", "A", DepartmentSales, 4),
		newEmployee(2, "B", "B", DepartmentSales, 4),
		newEmployee(3, "C", "C", DepartmentSales, 4),
		newEmployee(4, "D", "D", DepartmentSales, 5),
		newEmployee(5, "E", "E", DepartmentDesign, 2),
		newEmployee(6, "F", "F", DepartmentDesign, 3),
		newEmployee(7, "G", "G", DepartmentDesign, 3),
		newEmployee(8, "H", "H", DepartmentDesign, 3),
		newEmployee(9, "I", "I", DepartmentFinance, 1),
		newEmployee(10, "J", "J", DepartmentFinance, 2),
		newEmployee(11, "K", "K", DepartmentFinance, 2),
	}

	got := DepartmentStatistics(records)
	want := []DepartmentStats{
		{Department: DepartmentSales, AverageRating: 4.3, EmployeeCount: 4},   // 4.25
		{Department: DepartmentDesign, AverageRating: 2.8, EmployeeCount: 4},  // 2.75
		{Department: DepartmentFinance, AverageRating: 1.7, EmployeeCount: 3}, // 1.666...
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected rounding (-want +got):\n%s", diff)
	}
}

func TestDepartmentStatistics_OmitsAbsentDepartments(t *testing.T) {
	t.Parallel()

	got := DepartmentStatistics([]*Employee{newEmployee(1, "A", "A", DepartmentProduct, 5)})
	if len(got) != 1 || got[0].Department != DepartmentProduct {
		t.Fatalf("expected only Product, got %+v", got)
	}

	if got := DepartmentStatistics(nil); len(got) != 0 {
		t.Fatalf("expected no stats for empty input, got %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize(fixture())
	want := Overview{TotalEmployees: 5, AveragePerformance: 3.8, TopPerformers: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected overview (-want +got):\n%s", diff)
	}

	if got := Summarize(nil); got != (Overview{}) {
		t.Fatalf("expected zero overview, got %+v", got)
	}
}
