package employee

import "errors"

var (
	ErrInvalidID            = errors.New("employee: invalid id")
	ErrInvalidDepartment    = errors.New("employee: invalid department")
	ErrInvalidRating        = errors.New("employee: invalid rating")
	ErrInvalidSortField     = errors.New("employee: invalid sort field")
	ErrInvalidSortDirection = errors.New("employee: invalid sort direction")
	ErrEmployeeNotFound     = errors.New("employee: not found")
)
