package bookmark

import (
	"time"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
)

const maxSyntheticCount = 10

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// SyntheticTrend は 1 月から 12 月までのダミーの件数 (1〜10) を返します。
// 実際のブックマーク操作とは無関係なサンプルデータです。実データは Store.MonthlyTrend を使います。
func SyntheticTrend(rnd employee.Randomizer) []TrendPoint {
	if rnd == nil {
		rnd = employee.NewSeededRandomizer(uint64(time.Now().UnixNano()))
	}
	points := make([]TrendPoint, 0, len(monthLabels))
	for _, m := range monthLabels {
		points = append(points, TrendPoint{Month: m, Count: rnd.IntN(maxSyntheticCount) + 1})
	}
	return points
}

func monthlyAdded(events []Event, year int) []TrendPoint {
	var counts [12]int
	for _, ev := range events {
		if ev.Action != ActionAdded {
			continue
		}
		at := ev.At.UTC()
		if at.Year() != year {
			continue
		}
		counts[at.Month()-1]++
	}

	points := make([]TrendPoint, 0, len(monthLabels))
	for i, m := range monthLabels {
		points = append(points, TrendPoint{Month: m, Count: counts[i]})
	}
	return points
}
