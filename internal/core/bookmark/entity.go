package bookmark

import (
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
)

// Action はブックマーク操作の種類です。
type Action string

const (
	ActionAdded   Action = "added"
	ActionRemoved Action = "removed"
)

// Entry はブックマーク時点の社員スナップショットです。
type Entry struct {
	Employee     *employee.Employee `json:"employee"`
	BookmarkedAt time.Time          `json:"bookmarkedAt"`
}

// Event はブックマークの追加・削除の記録です。
type Event struct {
	EmployeeID int64     `json:"employeeId"`
	Action     Action    `json:"action"`
	At         time.Time `json:"at"`
}

// TrendPoint は月ごとのブックマーク数です。
type TrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

func (e Entry) clone() Entry {
	return Entry{Employee: e.Employee.Clone(), BookmarkedAt: e.BookmarkedAt}
}
