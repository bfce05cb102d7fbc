package core

import (
	"math"
	"sort"
)

// CategoryShare is a per-category slice of the dashboard total, used for
// chart rendering.
type CategoryShare struct {
	Name    string
	Amount  Money
	Percent int // integer share of the total, 0 when the total is zero
}

// Summary is the dashboard aggregation for one user's expenses.
type Summary struct {
	Total Money
	// ByCategory preserves first-seen order over the date-sorted list.
	ByCategory []CategoryShare
}

// Summarize sorts expenses by date descending (in place, stable) and
// reduces them to a total and a per-category breakdown. Blank categories
// are grouped under DefaultCategory. Percent shares are rounded to the
// nearest integer with ties going to the even neighbor; a zero total
// yields zero percent for every category rather than a division fault.
func Summarize(expenses []Expense) Summary {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})

	var s Summary
	index := make(map[string]int)
	for _, e := range expenses {
		s.Total = s.Total.Add(e.Amount)
		cat := e.CategoryOrDefault()
		if i, ok := index[cat]; ok {
			s.ByCategory[i].Amount = s.ByCategory[i].Amount.Add(e.Amount)
			continue
		}
		index[cat] = len(s.ByCategory)
		s.ByCategory = append(s.ByCategory, CategoryShare{Name: cat, Amount: e.Amount})
	}

	if s.Total.Cents > 0 {
		for i := range s.ByCategory {
			share := float64(s.ByCategory[i].Amount.Cents) * 100 / float64(s.Total.Cents)
			s.ByCategory[i].Percent = int(math.RoundToEven(share))
		}
	}
	return s
}
