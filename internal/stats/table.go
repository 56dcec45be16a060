package stats

import (
	"context"
	"sort"

	"calgarydogs/internal/core"
)

// TableQuerier answers queries by scanning an in-memory Table.
type TableQuerier struct {
	table *core.Table
}

var _ Querier = (*TableQuerier)(nil)

func NewTableQuerier(t *core.Table) *TableQuerier {
	return &TableQuerier{table: t}
}

func (q *TableQuerier) HasBreed(_ context.Context, breed string) (bool, error) {
	return q.table.HasBreed(breed), nil
}

// YearsPresent returns the distinct years breed was ranked, in the order
// they first appear in the table.
func (q *TableQuerier) YearsPresent(_ context.Context, breed string) ([]int, error) {
	seen := make(map[int]struct{})
	var years []int
	q.table.Each(func(r core.Record) bool {
		if r.Breed != breed {
			return true
		}
		if _, ok := seen[r.Year]; !ok {
			seen[r.Year] = struct{}{}
			years = append(years, r.Year)
		}
		return true
	})
	return years, nil
}

func (q *TableQuerier) TotalRegistrations(_ context.Context, breed string) (int64, error) {
	return q.breedTotals(breed).total, nil
}

// PercentageByYear covers every year of the table, including years where
// breed was not ranked (0%).
func (q *TableQuerier) PercentageByYear(_ context.Context, breed string) (core.Shares, error) {
	bt := q.breedTotals(breed)
	years := q.table.Years()
	shares := core.Shares{ByYear: make([]core.YearShare, 0, len(years))}
	for _, y := range years {
		shares.ByYear = append(shares.ByYear, core.YearShare{
			Year:    y,
			Percent: Percent(bt.byYear[y], q.table.YearTotal(y)),
		})
	}
	shares.Overall = Percent(bt.total, q.table.GrandTotal())
	return shares, nil
}

// PopularMonths counts record appearances (not registrations) per month and
// returns every month tied for the highest count, sorted by label.
func (q *TableQuerier) PopularMonths(_ context.Context, breed string) ([]string, error) {
	counts := make(map[string]int)
	q.table.Each(func(r core.Record) bool {
		if r.Breed == breed {
			counts[r.Month]++
		}
		return true
	})
	return TopMonths(counts), nil
}

type breedTotals struct {
	total  int64
	byYear map[int]int64
}

func (q *TableQuerier) breedTotals(breed string) breedTotals {
	bt := breedTotals{byYear: make(map[int]int64)}
	q.table.Each(func(r core.Record) bool {
		if r.Breed == breed {
			bt.total += r.Total
			bt.byYear[r.Year] += r.Total
		}
		return true
	})
	return bt
}

// TopMonths returns the labels with the maximum count, sorted.
func TopMonths(counts map[string]int) []string {
	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}
	if best == 0 {
		return nil
	}
	var out []string
	for m, n := range counts {
		if n == best {
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}
