// Package stats answers the per-breed questions asked by the report: which
// years a breed was ranked, how many registrations it had, its share of
// each year's registrations and its most frequent months.
package stats

import (
	"context"
	"fmt"

	"calgarydogs/internal/core"
)

// Querier is implemented by every backend able to answer breed queries.
type Querier interface {
	HasBreed(ctx context.Context, breed string) (bool, error)
	YearsPresent(ctx context.Context, breed string) ([]int, error)
	TotalRegistrations(ctx context.Context, breed string) (int64, error)
	PercentageByYear(ctx context.Context, breed string) (core.Shares, error)
	PopularMonths(ctx context.Context, breed string) ([]string, error)
}

// Summarize runs every query for breed and collects the results.
func Summarize(ctx context.Context, q Querier, breed string) (core.BreedSummary, error) {
	s := core.BreedSummary{Breed: breed}
	var err error
	if s.Years, err = q.YearsPresent(ctx, breed); err != nil {
		return s, fmt.Errorf("years present: %w", err)
	}
	if s.Total, err = q.TotalRegistrations(ctx, breed); err != nil {
		return s, fmt.Errorf("total registrations: %w", err)
	}
	if s.Shares, err = q.PercentageByYear(ctx, breed); err != nil {
		return s, fmt.Errorf("percentage by year: %w", err)
	}
	if s.PopularMonths, err = q.PopularMonths(ctx, breed); err != nil {
		return s, fmt.Errorf("popular months: %w", err)
	}
	return s, nil
}

// Percent returns part/whole*100, or 0 when whole is zero.
func Percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
