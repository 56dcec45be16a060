package core

// YearShare is a breed's percentage of all registrations in one year.
type YearShare struct {
	Year    int
	Percent float64
}

// Shares holds the per-year percentages in table year order plus the
// share across the whole table.
type Shares struct {
	ByYear  []YearShare
	Overall float64
}

// Year returns the share for year, if the table has that year.
func (s Shares) Year(year int) (float64, bool) {
	for _, ys := range s.ByYear {
		if ys.Year == year {
			return ys.Percent, true
		}
	}
	return 0, false
}

// BreedSummary is everything reported for a single breed.
type BreedSummary struct {
	Breed         string
	Years         []int
	Total         int64
	Shares        Shares
	PopularMonths []string
}
