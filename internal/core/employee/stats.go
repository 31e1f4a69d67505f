package employee

import "math"

// DepartmentStats は部署ごとの集計値です。
type DepartmentStats struct {
	Department    Department `json:"department"`
	AverageRating float64    `json:"averageRating"`
	EmployeeCount int        `json:"employeeCount"`
}

// Overview は社員一覧全体の集計値です。
type Overview struct {
	TotalEmployees     int     `json:"totalEmployees"`
	AveragePerformance float64 `json:"averagePerformance"`
	TopPerformers      int     `json:"topPerformers"`
}

// TopPerformerThreshold 以上の評価の社員をトップパフォーマーとして数えます。
const TopPerformerThreshold = 4

// DepartmentStatistics は部署ごとの平均評価と人数を返します。
// 出力順は入力での初出順で、社員のいない部署は含みません。
func DepartmentStatistics(records []*Employee) []DepartmentStats {
	type acc struct {
		total int
		count int
	}

	order := make([]Department, 0, len(Departments()))
	groups := make(map[Department]*acc)
	for _, r := range records {
		g, ok := groups[r.Department]
		if !ok {
			g = &acc{}
			groups[r.Department] = g
			order = append(order, r.Department)
		}
		g.total += r.Performance
		g.count++
	}

	out := make([]DepartmentStats, 0, len(order))
	for _, d := range order {
		g := groups[d]
		out = append(out, DepartmentStats{
			Department:    d,
			AverageRating: RoundToTenth(float64(g.total) / float64(g.count)),
			EmployeeCount: g.count,
		})
	}
	return out
}

// Summarize は全体の人数・平均評価・トップパフォーマー数を返します。
func Summarize(records []*Employee) Overview {
	if len(records) == 0 {
		return Overview{}
	}

	total := 0
	top := 0
	for _, r := range records {
		total += r.Performance
		if r.Performance >= TopPerformerThreshold {
			top++
		}
	}

	return Overview{
		TotalEmployees:     len(records),
		AveragePerformance: RoundToTenth(float64(total) / float64(len(records))),
		TopPerformers:      top,
	}
}

// RoundToTenth は小数第一位に四捨五入します (0.05 は 0 から遠い方へ丸めます)。
func RoundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
