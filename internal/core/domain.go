package core

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// Key is the (Year, Month) grouping key shared by every breed ranked in
	// that period. It is not unique across records.
	Key struct {
		Year  int
		Month string
	}

	Record struct {
		Key
		Breed string
		Total int64 // registrations for Breed in Year/Month
	}
)

var (
	ErrInvalidYear   = errors.New("invalid year")
	ErrEmptyMonth    = errors.New("empty month")
	ErrEmptyBreed    = errors.New("empty breed")
	ErrNegativeTotal = errors.New("negative total")
)

func (r Record) Validate() error {
	if r.Year <= 0 {
		return ErrInvalidYear
	}
	if strings.TrimSpace(r.Month) == "" {
		return ErrEmptyMonth
	}
	if strings.TrimSpace(r.Breed) == "" {
		return ErrEmptyBreed
	}
	if r.Total < 0 {
		return ErrNegativeTotal
	}
	return nil
}

// NormalizeBreed trims surrounding whitespace and upper-cases a breed name
// the way user input is compared against the data.
func NormalizeBreed(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Table is the immutable, ordered set of records loaded at startup. Secondary
// indexes are built once by NewTable.
type Table struct {
	records    []Record
	years      []int
	yearTotals map[int]int64
	grandTotal int64
	breeds     map[string]struct{}
}

// NewTable validates records and builds the year and breed indexes.
// The input slice is copied.
func NewTable(records []Record) (*Table, error) {
	t := &Table{
		records:    make([]Record, 0, len(records)),
		yearTotals: make(map[int]int64),
		breeds:     make(map[string]struct{}),
	}
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		r.Month = strings.TrimSpace(r.Month)
		r.Breed = strings.TrimSpace(r.Breed)
		if _, ok := t.yearTotals[r.Year]; !ok {
			t.years = append(t.years, r.Year)
		}
		t.yearTotals[r.Year] += r.Total
		t.grandTotal += r.Total
		t.breeds[r.Breed] = struct{}{}
		t.records = append(t.records, r)
	}
	return t, nil
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of all records in load order.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

// Years returns the distinct years in order of first appearance.
func (t *Table) Years() []int {
	return append([]int(nil), t.years...)
}

// YearTotal returns the sum of Total over every record of year.
func (t *Table) YearTotal(year int) int64 {
	return t.yearTotals[year]
}

// GrandTotal returns the sum of Total over the whole table.
func (t *Table) GrandTotal() int64 {
	return t.grandTotal
}

// HasBreed reports whether breed occurs verbatim in the data.
func (t *Table) HasBreed(breed string) bool {
	_, ok := t.breeds[breed]
	return ok
}

// BreedCount returns the size of the breed vocabulary.
func (t *Table) BreedCount() int {
	return len(t.breeds)
}

// Each calls fn for every record in load order until fn returns false.
func (t *Table) Each(fn func(Record) bool) {
	for _, r := range t.records {
		if !fn(r) {
			return
		}
	}
}
