// Package statstest holds behaviour tests shared by every stats.Querier
// implementation.
package statstest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calgarydogs/internal/core"
	"calgarydogs/internal/stats"
)

// NewQuerier builds a Querier over the given table.
type NewQuerier func(t *testing.T, tbl *core.Table) stats.Querier

const tolerance = 1e-9

func rec(year int, month, breed string, total int64) core.Record {
	return core.Record{Key: core.Key{Year: year, Month: month}, Breed: breed, Total: total}
}

func mustTable(t *testing.T, records ...core.Record) *core.Table {
	t.Helper()
	tbl, err := core.NewTable(records)
	require.NoError(t, err)
	return tbl
}

// Sample is a small table with years out of order and a breed missing from
// one year.
func Sample(t *testing.T) *core.Table {
	return mustTable(t,
		rec(2022, "January", "POODLE", 6),
		rec(2022, "January", "PUG", 14),
		rec(2022, "February", "POODLE", 4),
		rec(2022, "February", "PUG", 16),
		rec(2021, "March", "POODLE", 10),
		rec(2021, "March", "PUG", 30),
		rec(2021, "April", "PUG", 20),
		rec(2023, "May", "PUG", 5),
		rec(2023, "January", "BEAGLE", 5),
	)
}

// Run executes the shared suite against newQuerier.
func Run(t *testing.T, newQuerier NewQuerier) {
	ctx := context.Background()

	t.Run("has breed", func(t *testing.T) {
		q := newQuerier(t, Sample(t))
		ok, err := q.HasBreed(ctx, "POODLE")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = q.HasBreed(ctx, "poodle")
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = q.HasBreed(ctx, "CORGI")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("years present keeps first appearance order", func(t *testing.T) {
		q := newQuerier(t, Sample(t))
		years, err := q.YearsPresent(ctx, "PUG")
		require.NoError(t, err)
		assert.Equal(t, []int{2022, 2021, 2023}, years)

		years, err = q.YearsPresent(ctx, "POODLE")
		require.NoError(t, err)
		assert.Equal(t, []int{2022, 2021}, years)

		years, err = q.YearsPresent(ctx, "CORGI")
		require.NoError(t, err)
		assert.Empty(t, years)
	})

	t.Run("total registrations", func(t *testing.T) {
		q := newQuerier(t, Sample(t))
		total, err := q.TotalRegistrations(ctx, "POODLE")
		require.NoError(t, err)
		assert.Equal(t, int64(20), total)

		total, err = q.TotalRegistrations(ctx, "CORGI")
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("percentage by year two year scenario", func(t *testing.T) {
		q := newQuerier(t, mustTable(t,
			rec(2021, "January", "X", 10),
			rec(2021, "January", "Y", 90),
			rec(2022, "January", "X", 5),
			rec(2022, "January", "Y", 45),
		))
		shares, err := q.PercentageByYear(ctx, "X")
		require.NoError(t, err)
		require.Len(t, shares.ByYear, 2)
		assert.Equal(t, 2021, shares.ByYear[0].Year)
		assert.InDelta(t, 10.0, shares.ByYear[0].Percent, tolerance)
		assert.Equal(t, 2022, shares.ByYear[1].Year)
		assert.InDelta(t, 10.0, shares.ByYear[1].Percent, tolerance)
		assert.InDelta(t, 10.0, shares.Overall, tolerance)
	})

	t.Run("percentage covers years without the breed", func(t *testing.T) {
		q := newQuerier(t, Sample(t))
		shares, err := q.PercentageByYear(ctx, "POODLE")
		require.NoError(t, err)
		years := make([]int, len(shares.ByYear))
		for i, ys := range shares.ByYear {
			years[i] = ys.Year
		}
		assert.Equal(t, []int{2022, 2021, 2023}, years)
		p, ok := shares.Year(2023)
		require.True(t, ok)
		assert.Zero(t, p)
		p, _ = shares.Year(2022)
		assert.InDelta(t, 25.0, p, tolerance)
	})

	t.Run("percentages reconstruct totals", func(t *testing.T) {
		tbl := Sample(t)
		q := newQuerier(t, tbl)
		for _, breed := range []string{"POODLE", "PUG", "BEAGLE"} {
			total, err := q.TotalRegistrations(ctx, breed)
			require.NoError(t, err)
			shares, err := q.PercentageByYear(ctx, breed)
			require.NoError(t, err)

			var sum float64
			for _, ys := range shares.ByYear {
				sum += ys.Percent * float64(tbl.YearTotal(ys.Year)) / 100
			}
			assert.InDelta(t, float64(total), sum, 1e-6, breed)
			assert.InDelta(t, float64(total), shares.Overall*float64(tbl.GrandTotal())/100, 1e-6, breed)
		}
	})

	t.Run("popular months ties", func(t *testing.T) {
		q := newQuerier(t, mustTable(t,
			rec(2021, "March", "X", 1),
			rec(2021, "January", "X", 50),
			rec(2022, "January", "X", 1),
			rec(2022, "March", "X", 1),
			rec(2023, "January", "X", 1),
			rec(2023, "March", "X", 1),
			rec(2023, "May", "X", 999),
		))
		months, err := q.PopularMonths(ctx, "X")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"January", "March"}, months)
	})

	t.Run("popular months counts appearances not totals", func(t *testing.T) {
		q := newQuerier(t, mustTable(t,
			rec(2021, "June", "X", 1),
			rec(2022, "June", "X", 1),
			rec(2021, "July", "X", 1000),
		))
		months, err := q.PopularMonths(ctx, "X")
		require.NoError(t, err)
		assert.Equal(t, []string{"June"}, months)
	})

	t.Run("popular months are maximal", func(t *testing.T) {
		tbl := Sample(t)
		q := newQuerier(t, tbl)
		for _, breed := range []string{"POODLE", "PUG", "BEAGLE"} {
			months, err := q.PopularMonths(ctx, breed)
			require.NoError(t, err)
			require.NotEmpty(t, months, breed)

			counts := map[string]int{}
			for _, r := range tbl.Records() {
				if r.Breed == breed {
					counts[r.Month]++
				}
			}
			best := 0
			for _, n := range counts {
				if n > best {
					best = n
				}
			}
			for _, m := range months {
				assert.Equal(t, best, counts[m], "%s %s", breed, m)
			}
			for m, n := range counts {
				if n == best {
					assert.Contains(t, months, m)
				}
			}
		}
	})

	t.Run("popular months empty for unknown breed", func(t *testing.T) {
		q := newQuerier(t, Sample(t))
		months, err := q.PopularMonths(ctx, "CORGI")
		require.NoError(t, err)
		assert.Empty(t, months)
	})

	t.Run("summarize", func(t *testing.T) {
		q := newQuerier(t, Sample(t))
		s, err := stats.Summarize(ctx, q, "POODLE")
		require.NoError(t, err)
		assert.Equal(t, "POODLE", s.Breed)
		assert.Equal(t, []int{2022, 2021}, s.Years)
		assert.Equal(t, int64(20), s.Total)
		assert.InDelta(t, 20.0/110.0*100, s.Shares.Overall, tolerance)
		assert.Equal(t, []string{"February", "January", "March"}, s.PopularMonths)
	})
}
