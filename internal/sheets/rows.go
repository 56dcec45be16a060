package sheets

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"calgarydogs/internal/core"
)

// Required column headers. Matching is case-insensitive.
const (
	ColYear  = "Year"
	ColMonth = "Month"
	ColBreed = "Breed"
	ColTotal = "Total"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidValue  = errors.New("invalid cell value")
)

// ParseRows converts a values matrix whose first row is a header into a
// Table. Columns may appear in any order; extra columns are ignored and
// fully blank rows are skipped.
func ParseRows(values [][]string) (*core.Table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s, %s, %s, %s (no header row)", ErrMissingColumn, ColYear, ColMonth, ColBreed, ColTotal)
	}
	headers := values[0]
	colYear := indexOf(headers, ColYear)
	colMonth := indexOf(headers, ColMonth)
	colBreed := indexOf(headers, ColBreed)
	colTotal := indexOf(headers, ColTotal)
	if colYear == -1 || colMonth == -1 || colBreed == -1 || colTotal == -1 {
		missing := make([]string, 0, 4)
		if colYear == -1 {
			missing = append(missing, ColYear)
		}
		if colMonth == -1 {
			missing = append(missing, ColMonth)
		}
		if colBreed == -1 {
			missing = append(missing, ColBreed)
		}
		if colTotal == -1 {
			missing = append(missing, ColTotal)
		}
		return nil, fmt.Errorf("%w: %s; got headers=%v", ErrMissingColumn, strings.Join(missing, ","), headers)
	}

	records := make([]core.Record, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		row := values[i]
		if blank(row) {
			continue
		}
		// Spreadsheet rows are 1-based and the header is row 1.
		line := i + 1
		year, err := parseInt(safeGet(row, colYear))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %s: %v", ErrInvalidValue, line, ColYear, err)
		}
		total, err := parseInt(safeGet(row, colTotal))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %s: %v", ErrInvalidValue, line, ColTotal, err)
		}
		r := core.Record{
			Key:   core.Key{Year: int(year), Month: strings.TrimSpace(safeGet(row, colMonth))},
			Breed: strings.TrimSpace(safeGet(row, colBreed)),
			Total: total,
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidValue, line, err)
		}
		records = append(records, r)
	}
	return core.NewTable(records)
}

// parseInt accepts plain integers and integral floats such as "2021.0",
// which is how some spreadsheet exports render whole numbers.
func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return int64(f), nil
}

func indexOf(arr []string, target string) int {
	for i, v := range arr {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return i
		}
	}
	return -1
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
