package employee

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField は並び替えのキーです。
type SortField string

const (
	SortByName        SortField = "name"
	SortByPerformance SortField = "performance"
	SortByDepartment  SortField = "department"
)

// SortDirection は並び替えの方向です。
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Query は検索語・フィルタ・並び替えの条件です。
type Query struct {
	SearchTerm    string
	Departments   []Department
	Ratings       []int
	SortField     SortField
	SortDirection SortDirection
}

// DefaultQuery は名前の昇順で全件を返す条件を返します。
func DefaultQuery() Query {
	return Query{SortField: SortByName, SortDirection: SortAscending}
}

// Clone は Query のコピーを返します。
func (q Query) Clone() Query {
	q.Departments = slices.Clone(q.Departments)
	q.Ratings = slices.Clone(q.Ratings)
	return q
}

// Apply は検索・フィルタ・並び替えを順に適用した新しいスライスを返します。入力は変更しません。
func Apply(records []*Employee, q Query) []*Employee {
	out := Search(records, q.SearchTerm)
	out = Filter(out, q.Departments, q.Ratings)
	return Sort(out, q.SortField, q.SortDirection)
}

// Search は氏名に検索語を含む社員を返します。大文字小文字は区別しません。
func Search(records []*Employee, term string) []*Employee {
	needle := strings.ToLower(term)
	out := make([]*Employee, 0, len(records))
	for _, r := range records {
		if needle == "" || strings.Contains(strings.ToLower(r.FullName()), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Filter は部署と評価の両方の条件を満たす社員を返します。空の集合は条件なしを意味します。
func Filter(records []*Employee, departments []Department, ratings []int) []*Employee {
	out := make([]*Employee, 0, len(records))
	for _, r := range records {
		if len(departments) > 0 && !slices.Contains(departments, r.Department) {
			continue
		}
		if len(ratings) > 0 && !slices.Contains(ratings, r.Performance) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sort は安定ソートした新しいスライスを返します。同じキーの社員は入力順を保ちます。
func Sort(records []*Employee, field SortField, direction SortDirection) []*Employee {
	out := slices.Clone(records)
	if out == nil {
		out = []*Employee{}
	}

	compare := comparator(field)
	if compare == nil {
		return out
	}
	if direction == SortDescending {
		asc := compare
		compare = func(a, b *Employee) int { return -asc(a, b) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparator(field SortField) func(a, b *Employee) int {
	switch field {
	case SortByName:
		// collate.Collator は並行利用できないため呼び出しごとに生成する。
		col := collate.New(language.English)
		return func(a, b *Employee) int {
			return col.CompareString(a.FullName(), b.FullName())
		}
	case SortByPerformance:
		return func(a, b *Employee) int {
			return cmp.Compare(a.Performance, b.Performance)
		}
	case SortByDepartment:
		col := collate.New(language.English)
		return func(a, b *Employee) int {
			return col.CompareString(string(a.Department), string(b.Department))
		}
	default:
		return nil
	}
}

// ParseSortField は文字列を SortField に変換します。空文字は名前順として扱います。
func ParseSortField(raw string) (SortField, error) {
	switch SortField(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortByName:
		return SortByName, nil
	case SortByPerformance:
		return SortByPerformance, nil
	case SortByDepartment:
		return SortByDepartment, nil
	default:
		return "", ErrInvalidSortField
	}
}

// ParseSortDirection は文字列を SortDirection に変換します。空文字は昇順として扱います。
func ParseSortDirection(raw string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortAscending:
		return SortAscending, nil
	case SortDescending:
		return SortDescending, nil
	default:
		return "", ErrInvalidSortDirection
	}
}

// ParseDepartment は文字列を Department に変換します。
func ParseDepartment(raw string) (Department, error) {
	trimmed := strings.TrimSpace(raw)
	for _, d := range Departments() {
		if strings.EqualFold(string(d), trimmed) {
			return d, nil
		}
	}
	return "", ErrInvalidDepartment
}
