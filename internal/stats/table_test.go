package stats_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calgarydogs/internal/core"
	"calgarydogs/internal/stats"
	"calgarydogs/internal/stats/statstest"
)

func TestTableQuerier(t *testing.T) {
	statstest.Run(t, func(_ *testing.T, tbl *core.Table) stats.Querier {
		return stats.NewTableQuerier(tbl)
	})
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 10.0, stats.Percent(15, 150))
	assert.Equal(t, 0.0, stats.Percent(0, 0))
	assert.Equal(t, 100.0, stats.Percent(7, 7))
}

func TestTopMonths(t *testing.T) {
	assert.Nil(t, stats.TopMonths(nil))
	assert.Equal(t, []string{"April", "March"}, stats.TopMonths(map[string]int{"March": 2, "April": 2, "May": 1}))
	assert.Equal(t, []string{"May"}, stats.TopMonths(map[string]int{"May": 3}))
}

type failingQuerier struct {
	stats.Querier
	err error
}

func (f failingQuerier) YearsPresent(context.Context, string) ([]int, error) {
	return nil, f.err
}

func TestSummarizePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := stats.Summarize(context.Background(), failingQuerier{err: boom}, "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "years present")
}
