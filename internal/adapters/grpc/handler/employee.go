package handler

import (
	"fmt"
	"time"

	dashboardv1 "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/api/dashboard/v1"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/dashboard"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
)

const dateLayout = "2006-01-02"

func toProtoEmployee(emp *employee.Employee) *dashboardv1.Employee {
	if emp == nil {
		return nil
	}

	out := &dashboardv1.Employee{
		ID:          emp.ID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
		FullName:    emp.FullName(),
		Email:       emp.Email,
		Age:         int32(emp.Age),
		Phone:       emp.Phone,
		Image:       emp.Image,
		Department:  string(emp.Department),
		Performance: int32(emp.Performance),
		RatingLabel: employee.RatingLabel(emp.Performance),
		Bio:         emp.Bio,
	}
	if emp.Address != (employee.Address{}) {
		out.Address = &dashboardv1.Address{
			Address:    emp.Address.Address,
			City:       emp.Address.City,
			State:      emp.Address.State,
			PostalCode: emp.Address.PostalCode,
		}
	}

	for _, r := range emp.PerformanceHistory {
		out.PerformanceHistory = append(out.PerformanceHistory, &dashboardv1.PerformanceRecord{
			ID:         int32(r.ID),
			Date:       formatDate(r.Date),
			Rating:     int32(r.Rating),
			ReviewedBy: r.ReviewedBy,
			Comments:   r.Comments,
		})
	}
	for _, p := range emp.Projects {
		project := &dashboardv1.Project{
			ID:          int32(p.ID),
			Name:        p.Name,
			Description: p.Description,
			StartDate:   formatDate(p.StartDate),
			Status:      string(p.Status),
			Role:        p.Role,
		}
		if p.EndDate != nil {
			project.EndDate = formatDate(*p.EndDate)
		}
		out.Projects = append(out.Projects, project)
	}
	for _, f := range emp.Feedback {
		out.Feedback = append(out.Feedback, &dashboardv1.Feedback{
			ID:      int32(f.ID),
			Date:    formatDate(f.Date),
			From:    f.From,
			Type:    string(f.Type),
			Content: f.Content,
		})
	}
	return out
}

func toProtoEmployees(records []*employee.Employee) []*dashboardv1.Employee {
	out := make([]*dashboardv1.Employee, 0, len(records))
	for _, r := range records {
		out = append(out, toProtoEmployee(r))
	}
	return out
}

func toProtoQuery(q employee.Query) *dashboardv1.Query {
	out := &dashboardv1.Query{
		SearchTerm:    q.SearchTerm,
		Departments:   make([]string, 0, len(q.Departments)),
		Ratings:       make([]int32, 0, len(q.Ratings)),
		SortField:     string(q.SortField),
		SortDirection: string(q.SortDirection),
	}
	for _, d := range q.Departments {
		out.Departments = append(out.Departments, string(d))
	}
	for _, r := range q.Ratings {
		out.Ratings = append(out.Ratings, int32(r))
	}
	return out
}

func toProtoBookmark(e bookmark.Entry) *dashboardv1.Bookmark {
	return &dashboardv1.Bookmark{
		Employee:     toProtoEmployee(e.Employee),
		BookmarkedAt: formatTimestamp(e.BookmarkedAt),
	}
}

func toProtoStats(stats []employee.DepartmentStats) []*dashboardv1.DepartmentStats {
	out := make([]*dashboardv1.DepartmentStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, &dashboardv1.DepartmentStats{
			Department:    string(s.Department),
			AverageRating: s.AverageRating,
			EmployeeCount: int32(s.EmployeeCount),
		})
	}
	return out
}

func toProtoTrend(points []bookmark.TrendPoint) []*dashboardv1.TrendPoint {
	out := make([]*dashboardv1.TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, &dashboardv1.TrendPoint{Month: p.Month, Count: int32(p.Count)})
	}
	return out
}

// toQueryUpdate はリクエストの部署と評価を検証して dashboard.QueryUpdate に変換します。
func toQueryUpdate(req *dashboardv1.UpdateQueryRequest) (dashboard.QueryUpdate, error) {
	update := dashboard.QueryUpdate{SearchTerm: req.SearchTerm}

	if req.Departments != nil {
		departments := make([]employee.Department, 0, len(*req.Departments))
		for _, raw := range *req.Departments {
			d, err := employee.ParseDepartment(raw)
			if err != nil {
				return dashboard.QueryUpdate{}, err
			}
			departments = append(departments, d)
		}
		update.Departments = &departments
	}

	if req.Ratings != nil {
		ratings := make([]int, 0, len(*req.Ratings))
		for _, r := range *req.Ratings {
			if r < employee.MinRating || r > employee.MaxRating {
				return dashboard.QueryUpdate{}, fmt.Errorf("rating %d: %w", r, employee.ErrInvalidRating)
			}
			ratings = append(ratings, int(r))
		}
		update.Ratings = &ratings
	}

	if req.SortField != nil {
		field := employee.SortField(*req.SortField)
		update.SortField = &field
	}
	if req.SortDirection != nil {
		direction := employee.SortDirection(*req.SortDirection)
		update.SortDirection = &direction
	}
	return update, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
