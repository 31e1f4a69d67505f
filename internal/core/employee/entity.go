package employee

import "time"

// Department は社員の所属部署です。
type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
	DepartmentProduct     Department = "Product"
	DepartmentDesign      Department = "Design"
	DepartmentOperations  Department = "Operations"
)

// Departments は部署の閉じた集合を定義順で返します。
func Departments() []Department {
	return []Department{
		DepartmentEngineering,
		DepartmentMarketing,
		DepartmentSales,
		DepartmentHR,
		DepartmentFinance,
		DepartmentProduct,
		DepartmentDesign,
		DepartmentOperations,
	}
}

// IsValid は部署が閉じた集合に含まれるかを判定します。
func (d Department) IsValid() bool {
	switch d {
	case DepartmentEngineering, DepartmentMarketing, DepartmentSales, DepartmentHR,
		DepartmentFinance, DepartmentProduct, DepartmentDesign, DepartmentOperations:
		return true
	default:
		return false
	}
}

const (
	MinRating = 1
	MaxRating = 5
)

// ProjectStatus はプロジェクトの進行状態です。
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusPlanned    ProjectStatus = "planned"
)

// FeedbackType はフィードバックの極性です。
type FeedbackType string

const (
	FeedbackPositive FeedbackType = "positive"
	FeedbackNeutral  FeedbackType = "neutral"
	FeedbackNegative FeedbackType = "negative"
)

// Address は社員の住所です。
type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Source は外部ディレクトリから取得した最小限の社員情報です。
type Source struct {
	ID        int64   `json:"id" validate:"gt=0"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email"`
	Age       int     `json:"age" validate:"gte=0"`
	Phone     string  `json:"phone"`
	Image     string  `json:"image"`
	Address   Address `json:"address"`
}

// Employee は表示用に拡張された社員エンティティです。
type Employee struct {
	ID                 int64               `json:"id"`
	FirstName          string              `json:"firstName"`
	LastName           string              `json:"lastName"`
	Email              string              `json:"email"`
	Age                int                 `json:"age"`
	Phone              string              `json:"phone"`
	Image              string              `json:"image"`
	Address            Address             `json:"address"`
	Department         Department          `json:"department"`
	Performance        int                 `json:"performance"`
	Bio                string              `json:"bio"`
	PerformanceHistory []PerformanceRecord `json:"performanceHistory"`
	Projects           []Project           `json:"projects"`
	Feedback           []Feedback          `json:"feedback"`
}

// PerformanceRecord は年次評価の履歴です。
type PerformanceRecord struct {
	ID         int       `json:"id"`
	Date       time.Time `json:"date"`
	Rating     int       `json:"rating"`
	ReviewedBy string    `json:"reviewedBy"`
	Comments   string    `json:"comments"`
}

// Project は社員が関わるプロジェクトです。EndDate が nil の場合は進行中を表します。
type Project struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	Status      ProjectStatus `json:"status"`
	Role        string        `json:"role"`
}

// Feedback は同僚からのフィードバックです。
type Feedback struct {
	ID      int          `json:"id"`
	Date    time.Time    `json:"date"`
	From    string       `json:"from"`
	Type    FeedbackType `json:"type"`
	Content string       `json:"content"`
}

// FullName は "名 姓" 形式の氏名を返します。
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Clone は社員のディープコピーを返します。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	clone := *e
	if e.PerformanceHistory != nil {
		clone.PerformanceHistory = append([]PerformanceRecord(nil), e.PerformanceHistory...)
	}
	if e.Projects != nil {
		clone.Projects = make([]Project, len(e.Projects))
		for i, p := range e.Projects {
			p.EndDate = cloneTime(p.EndDate)
			clone.Projects[i] = p
		}
	}
	if e.Feedback != nil {
		clone.Feedback = append([]Feedback(nil), e.Feedback...)
	}
	return &clone
}

// ClampRating は評価値を [MinRating, MaxRating] に収めます。
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

// RatingLabel は評価値の表示ラベルを返します。
func RatingLabel(rating int) string {
	switch rating {
	case 1:
		return "Poor"
	case 2:
		return "Below Average"
	case 3:
		return "Average"
	case 4:
		return "Good"
	case 5:
		return "Excellent"
	default:
		return "Unknown"
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}
