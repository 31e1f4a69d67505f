package dashboardv1

import (
	"context"

	"github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/codec"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName は gRPC のサービス名です。
const ServiceName = "hrdashboard.v1.DashboardService"

const (
	DashboardService_GetState_FullMethodName           = "/hrdashboard.v1.DashboardService/GetState"
	DashboardService_ListEmployees_FullMethodName      = "/hrdashboard.v1.DashboardService/ListEmployees"
	DashboardService_GetEmployee_FullMethodName        = "/hrdashboard.v1.DashboardService/GetEmployee"
	DashboardService_ListView_FullMethodName           = "/hrdashboard.v1.DashboardService/ListView"
	DashboardService_UpdateQuery_FullMethodName        = "/hrdashboard.v1.DashboardService/UpdateQuery"
	DashboardService_PromoteEmployee_FullMethodName    = "/hrdashboard.v1.DashboardService/PromoteEmployee"
	DashboardService_IsBookmarked_FullMethodName       = "/hrdashboard.v1.DashboardService/IsBookmarked"
	DashboardService_ToggleBookmark_FullMethodName     = "/hrdashboard.v1.DashboardService/ToggleBookmark"
	DashboardService_RemoveBookmark_FullMethodName     = "/hrdashboard.v1.DashboardService/RemoveBookmark"
	DashboardService_ListBookmarks_FullMethodName      = "/hrdashboard.v1.DashboardService/ListBookmarks"
	DashboardService_GetDepartmentStats_FullMethodName = "/hrdashboard.v1.DashboardService/GetDepartmentStats"
	DashboardService_GetOverview_FullMethodName        = "/hrdashboard.v1.DashboardService/GetOverview"
	DashboardService_GetBookmarkTrend_FullMethodName   = "/hrdashboard.v1.DashboardService/GetBookmarkTrend"
)

// DashboardServiceServer は DashboardService のサーバー側インターフェースです。
type DashboardServiceServer interface {
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error)
	ListView(context.Context, *ListViewRequest) (*ListViewResponse, error)
	UpdateQuery(context.Context, *UpdateQueryRequest) (*UpdateQueryResponse, error)
	PromoteEmployee(context.Context, *PromoteEmployeeRequest) (*PromoteEmployeeResponse, error)
	IsBookmarked(context.Context, *IsBookmarkedRequest) (*IsBookmarkedResponse, error)
	ToggleBookmark(context.Context, *ToggleBookmarkRequest) (*ToggleBookmarkResponse, error)
	RemoveBookmark(context.Context, *RemoveBookmarkRequest) (*RemoveBookmarkResponse, error)
	ListBookmarks(context.Context, *ListBookmarksRequest) (*ListBookmarksResponse, error)
	GetDepartmentStats(context.Context, *GetDepartmentStatsRequest) (*GetDepartmentStatsResponse, error)
	GetOverview(context.Context, *GetOverviewRequest) (*GetOverviewResponse, error)
	GetBookmarkTrend(context.Context, *GetBookmarkTrendRequest) (*GetBookmarkTrendResponse, error)
}

// UnimplementedDashboardServiceServer は未実装の RPC に Unimplemented を返します。
type UnimplementedDashboardServiceServer struct{}

func (UnimplementedDashboardServiceServer) GetState(context.Context, *GetStateRequest) (*GetStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetState not implemented")
}

func (UnimplementedDashboardServiceServer) ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployees not implemented")
}

func (UnimplementedDashboardServiceServer) GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployee not implemented")
}

func (UnimplementedDashboardServiceServer) ListView(context.Context, *ListViewRequest) (*ListViewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListView not implemented")
}

func (UnimplementedDashboardServiceServer) UpdateQuery(context.Context, *UpdateQueryRequest) (*UpdateQueryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateQuery not implemented")
}

func (UnimplementedDashboardServiceServer) PromoteEmployee(context.Context, *PromoteEmployeeRequest) (*PromoteEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PromoteEmployee not implemented")
}

func (UnimplementedDashboardServiceServer) IsBookmarked(context.Context, *IsBookmarkedRequest) (*IsBookmarkedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IsBookmarked not implemented")
}

func (UnimplementedDashboardServiceServer) ToggleBookmark(context.Context, *ToggleBookmarkRequest) (*ToggleBookmarkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleBookmark not implemented")
}

func (UnimplementedDashboardServiceServer) RemoveBookmark(context.Context, *RemoveBookmarkRequest) (*RemoveBookmarkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveBookmark not implemented")
}

func (UnimplementedDashboardServiceServer) ListBookmarks(context.Context, *ListBookmarksRequest) (*ListBookmarksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBookmarks not implemented")
}

func (UnimplementedDashboardServiceServer) GetDepartmentStats(context.Context, *GetDepartmentStatsRequest) (*GetDepartmentStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDepartmentStats not implemented")
}

func (UnimplementedDashboardServiceServer) GetOverview(context.Context, *GetOverviewRequest) (*GetOverviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOverview not implemented")
}

func (UnimplementedDashboardServiceServer) GetBookmarkTrend(context.Context, *GetBookmarkTrendRequest) (*GetBookmarkTrendResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBookmarkTrend not implemented")
}

// RegisterDashboardServiceServer は srv を gRPC サーバーに登録します。
func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardService_ServiceDesc, srv)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(DashboardServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DashboardServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DashboardServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// DashboardService_ServiceDesc は DashboardService のサービス定義です。
var DashboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetState", Handler: unaryHandler(DashboardService_GetState_FullMethodName, DashboardServiceServer.GetState)},
		{MethodName: "ListEmployees", Handler: unaryHandler(DashboardService_ListEmployees_FullMethodName, DashboardServiceServer.ListEmployees)},
		{MethodName: "GetEmployee", Handler: unaryHandler(DashboardService_GetEmployee_FullMethodName, DashboardServiceServer.GetEmployee)},
		{MethodName: "ListView", Handler: unaryHandler(DashboardService_ListView_FullMethodName, DashboardServiceServer.ListView)},
		{MethodName: "UpdateQuery", Handler: unaryHandler(DashboardService_UpdateQuery_FullMethodName, DashboardServiceServer.UpdateQuery)},
		{MethodName: "PromoteEmployee", Handler: unaryHandler(DashboardService_PromoteEmployee_FullMethodName, DashboardServiceServer.PromoteEmployee)},
		{MethodName: "IsBookmarked", Handler: unaryHandler(DashboardService_IsBookmarked_FullMethodName, DashboardServiceServer.IsBookmarked)},
		{MethodName: "ToggleBookmark", Handler: unaryHandler(DashboardService_ToggleBookmark_FullMethodName, DashboardServiceServer.ToggleBookmark)},
		{MethodName: "RemoveBookmark", Handler: unaryHandler(DashboardService_RemoveBookmark_FullMethodName, DashboardServiceServer.RemoveBookmark)},
		{MethodName: "ListBookmarks", Handler: unaryHandler(DashboardService_ListBookmarks_FullMethodName, DashboardServiceServer.ListBookmarks)},
		{MethodName: "GetDepartmentStats", Handler: unaryHandler(DashboardService_GetDepartmentStats_FullMethodName, DashboardServiceServer.GetDepartmentStats)},
		{MethodName: "GetOverview", Handler: unaryHandler(DashboardService_GetOverview_FullMethodName, DashboardServiceServer.GetOverview)},
		{MethodName: "GetBookmarkTrend", Handler: unaryHandler(DashboardService_GetBookmarkTrend_FullMethodName, DashboardServiceServer.GetBookmarkTrend)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hrdashboard/v1/dashboard.proto",
}

// DashboardServiceClient は DashboardService のクライアントです。
type DashboardServiceClient interface {
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error)
	GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error)
	ListView(ctx context.Context, in *ListViewRequest, opts ...grpc.CallOption) (*ListViewResponse, error)
	UpdateQuery(ctx context.Context, in *UpdateQueryRequest, opts ...grpc.CallOption) (*UpdateQueryResponse, error)
	PromoteEmployee(ctx context.Context, in *PromoteEmployeeRequest, opts ...grpc.CallOption) (*PromoteEmployeeResponse, error)
	IsBookmarked(ctx context.Context, in *IsBookmarkedRequest, opts ...grpc.CallOption) (*IsBookmarkedResponse, error)
	ToggleBookmark(ctx context.Context, in *ToggleBookmarkRequest, opts ...grpc.CallOption) (*ToggleBookmarkResponse, error)
	RemoveBookmark(ctx context.Context, in *RemoveBookmarkRequest, opts ...grpc.CallOption) (*RemoveBookmarkResponse, error)
	ListBookmarks(ctx context.Context, in *ListBookmarksRequest, opts ...grpc.CallOption) (*ListBookmarksResponse, error)
	GetDepartmentStats(ctx context.Context, in *GetDepartmentStatsRequest, opts ...grpc.CallOption) (*GetDepartmentStatsResponse, error)
	GetOverview(ctx context.Context, in *GetOverviewRequest, opts ...grpc.CallOption) (*GetOverviewResponse, error)
	GetBookmarkTrend(ctx context.Context, in *GetBookmarkTrendRequest, opts ...grpc.CallOption) (*GetBookmarkTrendResponse, error)
}

type dashboardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDashboardServiceClient は JSON コーデックで呼び出すクライアントを生成します。
func NewDashboardServiceClient(cc grpc.ClientConnInterface) DashboardServiceClient {
	return &dashboardServiceClient{cc: cc}
}

func (c *dashboardServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *dashboardServiceClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	out := new(GetStateResponse)
	if err := c.invoke(ctx, DashboardService_GetState_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	out := new(ListEmployeesResponse)
	if err := c.invoke(ctx, DashboardService_ListEmployees_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error) {
	out := new(GetEmployeeResponse)
	if err := c.invoke(ctx, DashboardService_GetEmployee_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) ListView(ctx context.Context, in *ListViewRequest, opts ...grpc.CallOption) (*ListViewResponse, error) {
	out := new(ListViewResponse)
	if err := c.invoke(ctx, DashboardService_ListView_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) UpdateQuery(ctx context.Context, in *UpdateQueryRequest, opts ...grpc.CallOption) (*UpdateQueryResponse, error) {
	out := new(UpdateQueryResponse)
	if err := c.invoke(ctx, DashboardService_UpdateQuery_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) PromoteEmployee(ctx context.Context, in *PromoteEmployeeRequest, opts ...grpc.CallOption) (*PromoteEmployeeResponse, error) {
	out := new(PromoteEmployeeResponse)
	if err := c.invoke(ctx, DashboardService_PromoteEmployee_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) IsBookmarked(ctx context.Context, in *IsBookmarkedRequest, opts ...grpc.CallOption) (*IsBookmarkedResponse, error) {
	out := new(IsBookmarkedResponse)
	if err := c.invoke(ctx, DashboardService_IsBookmarked_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) ToggleBookmark(ctx context.Context, in *ToggleBookmarkRequest, opts ...grpc.CallOption) (*ToggleBookmarkResponse, error) {
	out := new(ToggleBookmarkResponse)
	if err := c.invoke(ctx, DashboardService_ToggleBookmark_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) RemoveBookmark(ctx context.Context, in *RemoveBookmarkRequest, opts ...grpc.CallOption) (*RemoveBookmarkResponse, error) {
	out := new(RemoveBookmarkResponse)
	if err := c.invoke(ctx, DashboardService_RemoveBookmark_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) ListBookmarks(ctx context.Context, in *ListBookmarksRequest, opts ...grpc.CallOption) (*ListBookmarksResponse, error) {
	out := new(ListBookmarksResponse)
	if err := c.invoke(ctx, DashboardService_ListBookmarks_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) GetDepartmentStats(ctx context.Context, in *GetDepartmentStatsRequest, opts ...grpc.CallOption) (*GetDepartmentStatsResponse, error) {
	out := new(GetDepartmentStatsResponse)
	if err := c.invoke(ctx, DashboardService_GetDepartmentStats_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) GetOverview(ctx context.Context, in *GetOverviewRequest, opts ...grpc.CallOption) (*GetOverviewResponse, error) {
	out := new(GetOverviewResponse)
	if err := c.invoke(ctx, DashboardService_GetOverview_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) GetBookmarkTrend(ctx context.Context, in *GetBookmarkTrendRequest, opts ...grpc.CallOption) (*GetBookmarkTrendResponse, error) {
	out := new(GetBookmarkTrendResponse)
	if err := c.invoke(ctx, DashboardService_GetBookmarkTrend_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
