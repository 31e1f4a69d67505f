package handler

import (
	"context"
	"errors"
	"sync"
	"time"

	dashboardv1 "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/api/dashboard/v1"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/dashboard"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DashboardGrpcHandler は DashboardService の gRPC 実装です。
type DashboardGrpcHandler struct {
	dashboardv1.UnimplementedDashboardServiceServer

	dashboard dashboard.UseCase
	bookmarks bookmark.UseCase
	logger    *zap.Logger
	now       func() time.Time

	trendMu   sync.Mutex
	trendRand employee.Randomizer
}

// Option は DashboardGrpcHandler の生成オプションです。
type Option func(*DashboardGrpcHandler)

// WithLogger はロガーを指定します。
func WithLogger(logger *zap.Logger) Option {
	return func(h *DashboardGrpcHandler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithTrendRandomizer はサンプル推移の乱数源を指定します。
func WithTrendRandomizer(rnd employee.Randomizer) Option {
	return func(h *DashboardGrpcHandler) {
		h.trendRand = rnd
	}
}

// WithNow は現在時刻の取得関数を指定します。
func WithNow(now func() time.Time) Option {
	return func(h *DashboardGrpcHandler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewDashboardGrpcHandler は DashboardGrpcHandler を生成します。
func NewDashboardGrpcHandler(dash dashboard.UseCase, bookmarks bookmark.UseCase, opts ...Option) *DashboardGrpcHandler {
	h := &DashboardGrpcHandler{
		dashboard: dash,
		bookmarks: bookmarks,
		logger:    zap.NewNop(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetState は読み込み状態と現在の条件を返します。
func (h *DashboardGrpcHandler) GetState(ctx context.Context, _ *dashboardv1.GetStateRequest) (*dashboardv1.GetStateResponse, error) {
	st := h.dashboard.Status()
	return &dashboardv1.GetStateResponse{
		State:     string(st.State),
		Error:     st.Error,
		Total:     int32(st.Total),
		Visible:   int32(len(h.dashboard.View())),
		Bookmarks: int32(h.bookmarks.Len()),
		LoadedAt:  formatTimestamp(st.LoadedAt),
		Query:     toProtoQuery(h.dashboard.Query()),
	}, nil
}

// ListEmployees は全社員を取得順で返します。
func (h *DashboardGrpcHandler) ListEmployees(ctx context.Context, _ *dashboardv1.ListEmployeesRequest) (*dashboardv1.ListEmployeesResponse, error) {
	return &dashboardv1.ListEmployeesResponse{Employees: toProtoEmployees(h.dashboard.Employees())}, nil
}

// GetEmployee は ID で社員を返します。
func (h *DashboardGrpcHandler) GetEmployee(ctx context.Context, req *dashboardv1.GetEmployeeRequest) (*dashboardv1.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	emp, err := h.dashboard.Employee(req.ID)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &dashboardv1.GetEmployeeResponse{
		Employee:   toProtoEmployee(emp),
		Bookmarked: h.bookmarks.IsBookmarked(emp.ID),
	}, nil
}

// ListView は現在の条件で絞り込んだ社員を返します。
func (h *DashboardGrpcHandler) ListView(ctx context.Context, _ *dashboardv1.ListViewRequest) (*dashboardv1.ListViewResponse, error) {
	return &dashboardv1.ListViewResponse{
		Employees: toProtoEmployees(h.dashboard.View()),
		Query:     toProtoQuery(h.dashboard.Query()),
		Total:     int32(h.dashboard.Status().Total),
	}, nil
}

// UpdateQuery は条件を部分更新し、再計算後のビューを返します。
func (h *DashboardGrpcHandler) UpdateQuery(ctx context.Context, req *dashboardv1.UpdateQueryRequest) (*dashboardv1.UpdateQueryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	update, err := toQueryUpdate(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	q, err := h.dashboard.UpdateQuery(update)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &dashboardv1.UpdateQueryResponse{
		Query:     toProtoQuery(q),
		Employees: toProtoEmployees(h.dashboard.View()),
	}, nil
}

// PromoteEmployee は社員の評価を 1 上げます。未知の ID や上限の場合は promoted=false を返します。
func (h *DashboardGrpcHandler) PromoteEmployee(ctx context.Context, req *dashboardv1.PromoteEmployeeRequest) (*dashboardv1.PromoteEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	emp, promoted := h.dashboard.Promote(req.ID)
	return &dashboardv1.PromoteEmployeeResponse{
		Employee: toProtoEmployee(emp),
		Promoted: promoted,
	}, nil
}

// IsBookmarked は指定 ID がブックマーク済みかを返します。
func (h *DashboardGrpcHandler) IsBookmarked(ctx context.Context, req *dashboardv1.IsBookmarkedRequest) (*dashboardv1.IsBookmarkedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	return &dashboardv1.IsBookmarkedResponse{Bookmarked: h.bookmarks.IsBookmarked(req.ID)}, nil
}

// ToggleBookmark はブックマークを切り替えます。
// 一覧から消えた社員でもブックマーク済みであれば削除できます。
func (h *DashboardGrpcHandler) ToggleBookmark(ctx context.Context, req *dashboardv1.ToggleBookmarkRequest) (*dashboardv1.ToggleBookmarkResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	emp, err := h.dashboard.Employee(req.ID)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) || !h.bookmarks.IsBookmarked(req.ID) {
			return nil, toStatusError(err)
		}
		emp = &employee.Employee{ID: req.ID}
	}

	bookmarked, err := h.bookmarks.Toggle(ctx, emp)
	if errors.Is(err, bookmark.ErrInvalidID) || errors.Is(err, bookmark.ErrNilEmployee) {
		return nil, toStatusError(err)
	}
	if err != nil {
		h.logger.Warn("bookmark toggled but not persisted", zap.Int64("id", req.ID), zap.Error(err))
	}

	return &dashboardv1.ToggleBookmarkResponse{Bookmarked: bookmarked, Persisted: err == nil}, nil
}

// RemoveBookmark はブックマークを削除します。未登録の ID は removed=false を返します。
func (h *DashboardGrpcHandler) RemoveBookmark(ctx context.Context, req *dashboardv1.RemoveBookmarkRequest) (*dashboardv1.RemoveBookmarkResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	removed, err := h.bookmarks.Remove(ctx, req.ID)
	if err != nil {
		h.logger.Warn("bookmark removed but not persisted", zap.Int64("id", req.ID), zap.Error(err))
	}
	return &dashboardv1.RemoveBookmarkResponse{Removed: removed, Persisted: err == nil}, nil
}

// ListBookmarks はブックマークを追加順に返します。
func (h *DashboardGrpcHandler) ListBookmarks(ctx context.Context, _ *dashboardv1.ListBookmarksRequest) (*dashboardv1.ListBookmarksResponse, error) {
	entries := h.bookmarks.List()
	out := make([]*dashboardv1.Bookmark, 0, len(entries))
	for _, e := range entries {
		out = append(out, toProtoBookmark(e))
	}
	return &dashboardv1.ListBookmarksResponse{Bookmarks: out}, nil
}

// GetDepartmentStats は部署別の平均評価と人数を返します。
func (h *DashboardGrpcHandler) GetDepartmentStats(ctx context.Context, _ *dashboardv1.GetDepartmentStatsRequest) (*dashboardv1.GetDepartmentStatsResponse, error) {
	return &dashboardv1.GetDepartmentStatsResponse{Stats: toProtoStats(h.dashboard.DepartmentStats())}, nil
}

// GetOverview は全社員の概要を返します。
func (h *DashboardGrpcHandler) GetOverview(ctx context.Context, _ *dashboardv1.GetOverviewRequest) (*dashboardv1.GetOverviewResponse, error) {
	ov := h.dashboard.Overview()
	return &dashboardv1.GetOverviewResponse{
		TotalEmployees:     int32(ov.TotalEmployees),
		AveragePerformance: ov.AveragePerformance,
		TopPerformers:      int32(ov.TopPerformers),
	}, nil
}

// GetBookmarkTrend は月ごとのブックマーク追加件数を返します。
func (h *DashboardGrpcHandler) GetBookmarkTrend(ctx context.Context, req *dashboardv1.GetBookmarkTrendRequest) (*dashboardv1.GetBookmarkTrendResponse, error) {
	if req == nil {
		req = &dashboardv1.GetBookmarkTrendRequest{}
	}
	if req.Year < 0 {
		return nil, status.Error(codes.InvalidArgument, "year must not be negative")
	}

	year := int(req.Year)
	if year == 0 {
		year = h.now().Year()
	}

	var points []bookmark.TrendPoint
	if req.Synthetic {
		h.trendMu.Lock()
		points = bookmark.SyntheticTrend(h.trendRand)
		h.trendMu.Unlock()
	} else {
		points = h.bookmarks.MonthlyTrend(year)
	}

	return &dashboardv1.GetBookmarkTrendResponse{
		Year:      int32(year),
		Synthetic: req.Synthetic,
		Points:    toProtoTrend(points),
	}, nil
}
