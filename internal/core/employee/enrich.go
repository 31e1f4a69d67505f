package employee

import (
	"math/rand/v2"
	"slices"
	"time"
)

// Randomizer は拡張データ生成に使う乱数源です。*rand.Rand はこれを満たします。
type Randomizer interface {
	IntN(n int) int
}

type globalRandomizer struct{}

func (globalRandomizer) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededRandomizer はシード固定の Randomizer を生成します。
func NewSeededRandomizer(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

const (
	historyYears       = 4
	minProjects        = 2
	maxProjects        = 4
	minFeedbackEntries = 2
	maxFeedbackEntries = 4
	maxGeneratedDay    = 28
)

var bios = []string{
	"Dedicated professional with a strong track record of exceeding targets and mentoring team members.",
	"Results-oriented individual who thrives in fast-paced environments and adapts quickly to new challenges.",
	"Innovative problem-solver who consistently delivers high-quality work while maintaining excellent communication.",
	"Collaborative team player with exceptional attention to detail and project management skills.",
	"Strategic thinker with proven ability to drive business growth and implement process improvements.",
}

var reviewers = []string{"Jane Smith", "John Doe", "Michael Johnson", "Sarah Williams"}

var reviewComments = []string{
	"Consistently meets expectations and delivers quality work.",
	"Exceeds expectations in most areas. Strong communicator.",
	"Needs improvement in meeting deadlines, but quality of work is good.",
	"Outstanding performance across all objectives. A real team player.",
	"Shows potential but needs more guidance in technical areas.",
}

var feedbackAuthors = []string{"Alex Johnson", "Maria Garcia", "Robert Chen", "Emily Parker", "David Kim"}

var feedbackTypes = []FeedbackType{FeedbackPositive, FeedbackNegative, FeedbackNeutral}

var feedbackContent = map[FeedbackType][]string{
	FeedbackPositive: {
		"Consistently delivers high-quality work ahead of schedule.",
		"Excellent team player who helps others succeed.",
		"Innovative problem-solver with great communication skills.",
		"Takes initiative and goes beyond expectations.",
		"Provides thoughtful insights during team meetings.",
	},
	FeedbackNeutral: {
		"Meets expectations but could take more initiative.",
		"Good technical skills but needs to improve communication.",
		"Delivers work on time but sometimes lacks attention to detail.",
		"Works well with the team but could contribute more ideas.",
		"Has potential for growth with the right mentoring.",
	},
	FeedbackNegative: {
		"Missed several deadlines recently, needs to improve time management.",
		"Communication has been inconsistent, affecting team coordination.",
		"Work quality is below expectations, needs more attention to detail.",
		"Has been resistant to feedback and improvement suggestions.",
		"Attendance and punctuality issues need to be addressed.",
	},
}

func cannedProjects() []Project {
	return []Project{
		{
			ID:          1,
			Name:        "Website Redesign",
			Description: "Complete overhaul of the company website with improved UX/UI.",
			StartDate:   date(2023, time.January, 15),
			EndDate:     datePtr(2023, time.April, 30),
			Status:      ProjectStatusCompleted,
			Role:        "UI Designer",
		},
		{
			ID:          2,
			Name:        "CRM Implementation",
			Description: "Implementing a new customer relationship management system.",
			StartDate:   date(2023, time.May, 10),
			Status:      ProjectStatusInProgress,
			Role:        "Project Lead",
		},
		{
			ID:          3,
			Name:        "Annual Performance Review",
			Description: "Conducting annual performance reviews for the department.",
			StartDate:   date(2023, time.August, 1),
			EndDate:     datePtr(2023, time.August, 31),
			Status:      ProjectStatusCompleted,
			Role:        "Reviewer",
		},
		{
			ID:          4,
			Name:        "New Employee Onboarding",
			Description: "Developing an improved onboarding process for new hires.",
			StartDate:   date(2023, time.September, 15),
			Status:      ProjectStatusInProgress,
			Role:        "Team Member",
		},
		{
			ID:          5,
			Name:        "Q1 Planning",
			Description: "Strategic planning for Q1 of the upcoming year.",
			StartDate:   date(2023, time.November, 1),
			Status:      ProjectStatusPlanned,
			Role:        "Contributor",
		},
	}
}

// Enricher は最小限の社員情報に部署や評価などの表示用データを付与します。
type Enricher struct {
	rnd   Randomizer
	clock Clock
}

// NewEnricher は Enricher を生成します。rnd や clock が nil の場合は既定実装を使います。
func NewEnricher(rnd Randomizer, clock Clock) *Enricher {
	if rnd == nil {
		rnd = globalRandomizer{}
	}
	if clock == nil {
		clock = realClock{}
	}
	return &Enricher{rnd: rnd, clock: clock}
}

// Enrich は Source から Employee を生成します。
func (e *Enricher) Enrich(src Source) *Employee {
	year := e.clock.Now().Year()

	emp := &Employee{
		ID:        src.ID,
		FirstName: src.FirstName,
		LastName:  src.LastName,
		Email:     src.Email,
		Age:       src.Age,
		Phone:     src.Phone,
		Image:     src.Image,
		Address:   src.Address,
	}
	emp.Department = pick(e.rnd, Departments())
	emp.Performance = e.rating()
	emp.Bio = pick(e.rnd, bios)
	emp.PerformanceHistory = e.performanceHistory(year)
	emp.Projects = e.projects()
	emp.Feedback = e.feedback(year)
	return emp
}

// EnrichAll は Source の一覧をまとめて拡張します。
func (e *Enricher) EnrichAll(sources []Source) []*Employee {
	out := make([]*Employee, 0, len(sources))
	for _, src := range sources {
		out = append(out, e.Enrich(src))
	}
	return out
}

func (e *Enricher) rating() int {
	return e.rnd.IntN(MaxRating) + MinRating
}

func (e *Enricher) performanceHistory(currentYear int) []PerformanceRecord {
	history := make([]PerformanceRecord, 0, historyYears)
	for i := 0; i < historyYears; i++ {
		month := time.Month(e.rnd.IntN(12) + 1)
		day := e.rnd.IntN(maxGeneratedDay) + 1
		history = append(history, PerformanceRecord{
			ID:         i + 1,
			Date:       date(currentYear-i, month, day),
			Rating:     e.rating(),
			ReviewedBy: pick(e.rnd, reviewers),
			Comments:   pick(e.rnd, reviewComments),
		})
	}
	slices.SortStableFunc(history, func(a, b PerformanceRecord) int {
		return b.Date.Compare(a.Date)
	})
	return history
}

func (e *Enricher) projects() []Project {
	pool := cannedProjects()
	n := minProjects + e.rnd.IntN(maxProjects-minProjects+1)
	for i := len(pool) - 1; i > 0; i-- {
		j := e.rnd.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}

func (e *Enricher) feedback(currentYear int) []Feedback {
	n := minFeedbackEntries + e.rnd.IntN(maxFeedbackEntries-minFeedbackEntries+1)
	items := make([]Feedback, 0, n)
	for i := 0; i < n; i++ {
		kind := pick(e.rnd, feedbackTypes)
		month := time.Month(e.rnd.IntN(12) + 1)
		day := e.rnd.IntN(maxGeneratedDay) + 1
		items = append(items, Feedback{
			ID:      i + 1,
			Date:    date(currentYear, month, day),
			From:    pick(e.rnd, feedbackAuthors),
			Type:    kind,
			Content: pick(e.rnd, feedbackContent[kind]),
		})
	}
	slices.SortStableFunc(items, func(a, b Feedback) int {
		return b.Date.Compare(a.Date)
	})
	return items
}

func pick[T any](rnd Randomizer, values []T) T {
	return values[rnd.IntN(len(values))]
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
