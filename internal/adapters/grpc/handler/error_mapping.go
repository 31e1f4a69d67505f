package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/bookmark"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/dashboard"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidDepartment),
		errors.Is(err, employee.ErrInvalidRating),
		errors.Is(err, employee.ErrInvalidSortField),
		errors.Is(err, employee.ErrInvalidSortDirection),
		errors.Is(err, bookmark.ErrInvalidID),
		errors.Is(err, bookmark.ErrNilEmployee):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, dashboard.ErrAlreadyLoaded):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, dashboard.ErrNoDirectory):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
