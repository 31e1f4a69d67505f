// Package dashboardv1 は hrdashboard.v1.DashboardService のメッセージ型とサービス定義です。
// メッセージは JSON コーデック (content-subtype "json") で送受信します。
package dashboardv1

// Address は社員の住所です。
type Address struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// PerformanceRecord は年次評価の履歴です。Date は YYYY-MM-DD 形式です。
type PerformanceRecord struct {
	ID         int32  `json:"id"`
	Date       string `json:"date"`
	Rating     int32  `json:"rating"`
	ReviewedBy string `json:"reviewedBy"`
	Comments   string `json:"comments"`
}

// Project は社員が関わるプロジェクトです。EndDate が空の場合は終了日未定です。
type Project struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Status      string `json:"status"`
	Role        string `json:"role"`
}

// Feedback は同僚からのフィードバックです。
type Feedback struct {
	ID      int32  `json:"id"`
	Date    string `json:"date"`
	From    string `json:"from"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Employee は社員の表示用表現です。
type Employee struct {
	ID                 int64                `json:"id"`
	FirstName          string               `json:"firstName"`
	LastName           string               `json:"lastName"`
	FullName           string               `json:"fullName"`
	Email              string               `json:"email,omitempty"`
	Age                int32                `json:"age,omitempty"`
	Phone              string               `json:"phone,omitempty"`
	Image              string               `json:"image,omitempty"`
	Address            *Address             `json:"address,omitempty"`
	Department         string               `json:"department"`
	Performance        int32                `json:"performance"`
	RatingLabel        string               `json:"ratingLabel"`
	Bio                string               `json:"bio,omitempty"`
	PerformanceHistory []*PerformanceRecord `json:"performanceHistory,omitempty"`
	Projects           []*Project           `json:"projects,omitempty"`
	Feedback           []*Feedback          `json:"feedback,omitempty"`
}

// Query は検索・フィルタ・並び替え条件です。
type Query struct {
	SearchTerm    string   `json:"searchTerm"`
	Departments   []string `json:"departments"`
	Ratings       []int32  `json:"ratings"`
	SortField     string   `json:"sortField"`
	SortDirection string   `json:"sortDirection"`
}

type GetStateRequest struct{}

// GetStateResponse は読み込み状態と現在の条件です。
type GetStateResponse struct {
	State     string `json:"state"`
	Error     string `json:"error,omitempty"`
	Total     int32  `json:"total"`
	Visible   int32  `json:"visible"`
	Bookmarks int32  `json:"bookmarks"`
	LoadedAt  string `json:"loadedAt,omitempty"`
	Query     *Query `json:"query"`
}

type ListEmployeesRequest struct{}

type ListEmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}

type GetEmployeeRequest struct {
	ID int64 `json:"id"`
}

type GetEmployeeResponse struct {
	Employee   *Employee `json:"employee"`
	Bookmarked bool      `json:"bookmarked"`
}

type ListViewRequest struct{}

type ListViewResponse struct {
	Employees []*Employee `json:"employees"`
	Query     *Query      `json:"query"`
	Total     int32       `json:"total"`
}

// UpdateQueryRequest は条件の部分更新です。null または省略したフィールドは変更しません。
type UpdateQueryRequest struct {
	SearchTerm    *string   `json:"searchTerm,omitempty"`
	Departments   *[]string `json:"departments,omitempty"`
	Ratings       *[]int32  `json:"ratings,omitempty"`
	SortField     *string   `json:"sortField,omitempty"`
	SortDirection *string   `json:"sortDirection,omitempty"`
}

type UpdateQueryResponse struct {
	Query     *Query      `json:"query"`
	Employees []*Employee `json:"employees"`
}

type PromoteEmployeeRequest struct {
	ID int64 `json:"id"`
}

type PromoteEmployeeResponse struct {
	Employee *Employee `json:"employee,omitempty"`
	Promoted bool      `json:"promoted"`
}

type IsBookmarkedRequest struct {
	ID int64 `json:"id"`
}

type IsBookmarkedResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type ToggleBookmarkRequest struct {
	ID int64 `json:"id"`
}

// ToggleBookmarkResponse の Persisted が false の場合、変更はメモリ上にのみ反映されています。
type ToggleBookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
	Persisted  bool `json:"persisted"`
}

type RemoveBookmarkRequest struct {
	ID int64 `json:"id"`
}

type RemoveBookmarkResponse struct {
	Removed   bool `json:"removed"`
	Persisted bool `json:"persisted"`
}

type ListBookmarksRequest struct{}

// Bookmark はブックマーク時点の社員スナップショットです。
type Bookmark struct {
	Employee     *Employee `json:"employee"`
	BookmarkedAt string    `json:"bookmarkedAt"`
}

type ListBookmarksResponse struct {
	Bookmarks []*Bookmark `json:"bookmarks"`
}

type GetDepartmentStatsRequest struct{}

type DepartmentStats struct {
	Department    string  `json:"department"`
	AverageRating float64 `json:"averageRating"`
	EmployeeCount int32   `json:"employeeCount"`
}

type GetDepartmentStatsResponse struct {
	Stats []*DepartmentStats `json:"stats"`
}

type GetOverviewRequest struct{}

type GetOverviewResponse struct {
	TotalEmployees     int32   `json:"totalEmployees"`
	AveragePerformance float64 `json:"averagePerformance"`
	TopPerformers      int32   `json:"topPerformers"`
}

// GetBookmarkTrendRequest の Synthetic が true の場合はサンプルデータを返します。
// Year が 0 の場合は現在の年を使います。
type GetBookmarkTrendRequest struct {
	Year      int32 `json:"year,omitempty"`
	Synthetic bool  `json:"synthetic,omitempty"`
}

type TrendPoint struct {
	Month string `json:"month"`
	Count int32  `json:"count"`
}

type GetBookmarkTrendResponse struct {
	Year      int32         `json:"year"`
	Synthetic bool          `json:"synthetic"`
	Points    []*TrendPoint `json:"points"`
}
