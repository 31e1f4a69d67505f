package main

import (
	"context"
	"fmt"
	"strconv"

	dashboardv1 "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/api/dashboard/v1"
	"github.com/spf13/cobra"
)

type rpcFunc = func(context.Context, dashboardv1.DashboardServiceClient) (any, error)

func newStateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show load state, counts and the current query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.GetState(ctx, &dashboardv1.GetStateRequest{})
			})
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every employee in load order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.ListEmployees(ctx, &dashboardv1.ListEmployeesRequest{})
			})
		},
	}
}

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "List employees matching the current query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.ListView(ctx, &dashboardv1.ListViewRequest{})
			})
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: withID(a, func(id int64) rpcFunc {
			return func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.GetEmployee(ctx, &dashboardv1.GetEmployeeRequest{ID: id})
			}
		}),
	}
}

type queryOptions struct {
	Search      string
	Departments []string
	Ratings     []int
	Sort        string
	Direction   string
	Clear       bool
}

func newQueryCmd(a *app) *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query [--search s] [--dept d]... [--rating n]... [--sort field] [--dir asc|desc]",
		Short: "Update the query; only the given flags are changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := buildQueryRequest(opts, cmd.Flags().Changed)
			return a.call(cmd, func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.UpdateQuery(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "search term matched against name, email and department")
	cmd.Flags().StringSliceVar(&opts.Departments, "dept", nil, "department filter (repeatable)")
	cmd.Flags().IntSliceVar(&opts.Ratings, "rating", nil, "rating filter 1-5 (repeatable)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "sort field: name, department or performance")
	cmd.Flags().StringVar(&opts.Direction, "dir", "", "sort direction: asc or desc")
	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "reset search term and filters before applying other flags")

	return cmd
}

func buildQueryRequest(opts queryOptions, changed func(string) bool) *dashboardv1.UpdateQueryRequest {
	req := &dashboardv1.UpdateQueryRequest{}
	if opts.Clear {
		empty := ""
		req.SearchTerm = &empty
		req.Departments = &[]string{}
		req.Ratings = &[]int32{}
	}
	if changed("search") {
		req.SearchTerm = &opts.Search
	}
	if changed("dept") {
		depts := append([]string{}, opts.Departments...)
		req.Departments = &depts
	}
	if changed("rating") {
		ratings := make([]int32, 0, len(opts.Ratings))
		for _, r := range opts.Ratings {
			ratings = append(ratings, int32(r))
		}
		req.Ratings = &ratings
	}
	if changed("sort") {
		req.SortField = &opts.Sort
	}
	if changed("dir") {
		req.SortDirection = &opts.Direction
	}
	return req
}

func newPromoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "promote <id>",
		Short: "Raise an employee's rating by one",
		Args:  cobra.ExactArgs(1),
		RunE: withID(a, func(id int64) rpcFunc {
			return func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.PromoteEmployee(ctx, &dashboardv1.PromoteEmployeeRequest{ID: id})
			}
		}),
	}
}

func newBookmarkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage bookmarked employees",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Bookmark or unbookmark an employee",
			Args:  cobra.ExactArgs(1),
			RunE: withID(a, func(id int64) rpcFunc {
				return func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
					return c.ToggleBookmark(ctx, &dashboardv1.ToggleBookmarkRequest{ID: id})
				}
			}),
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a bookmark",
			Args:  cobra.ExactArgs(1),
			RunE: withID(a, func(id int64) rpcFunc {
				return func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
					return c.RemoveBookmark(ctx, &dashboardv1.RemoveBookmarkRequest{ID: id})
				}
			}),
		},
		&cobra.Command{
			Use:   "check <id>",
			Short: "Report whether an employee is bookmarked",
			Args:  cobra.ExactArgs(1),
			RunE: withID(a, func(id int64) rpcFunc {
				return func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
					return c.IsBookmarked(ctx, &dashboardv1.IsBookmarkedRequest{ID: id})
				}
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List bookmarks in the order they were added",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.call(cmd, func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
					return c.ListBookmarks(ctx, &dashboardv1.ListBookmarksRequest{})
				})
			},
		},
	)
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-department averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.GetDepartmentStats(ctx, &dashboardv1.GetDepartmentStatsRequest{})
			})
		},
	}
}

func newOverviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show headcount, average rating and top performers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.GetOverview(ctx, &dashboardv1.GetOverviewRequest{})
			})
		},
	}
}

func newTrendCmd(a *app) *cobra.Command {
	var (
		year      int
		synthetic bool
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show monthly bookmark counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if year < 0 {
				return fmt.Errorf("--year must not be negative")
			}
			return a.call(cmd, func(ctx context.Context, c dashboardv1.DashboardServiceClient) (any, error) {
				return c.GetBookmarkTrend(ctx, &dashboardv1.GetBookmarkTrendRequest{Year: int32(year), Synthetic: synthetic})
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (defaults to the current year)")
	cmd.Flags().BoolVar(&synthetic, "synthetic", false, "return sample data instead of recorded bookmarks")
	return cmd
}

func withID(a *app, build func(id int64) rpcFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid employee id %q", args[0])
		}
		return a.call(cmd, build(id))
	}
}
