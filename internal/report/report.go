package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"calgarydogs/internal/core"
)

const Title = "Dogs of Calgary"

// Banner writes the program title.
func Banner(w io.Writer) error {
	_, err := fmt.Fprintln(w, Title)
	return err
}

// Write prints the summary for one breed, one fact per line.
func Write(w io.Writer, s core.BreedSummary) error {
	years := make([]string, len(s.Years))
	for i, y := range s.Years {
		years[i] = strconv.Itoa(y)
	}

	lines := make([]string, 0, len(s.Shares.ByYear)+4)
	lines = append(lines,
		fmt.Sprintf("The %s was found in the top breeds for years: %s", s.Breed, strings.Join(years, " ")),
		fmt.Sprintf("There have been %d %s dogs registered total.", s.Total, s.Breed),
	)
	for _, ys := range s.Shares.ByYear {
		lines = append(lines, fmt.Sprintf("The %s was %.6f%% of top breeds in %d.", s.Breed, ys.Percent, ys.Year))
	}
	lines = append(lines,
		fmt.Sprintf("The %s was %.6f%% of top breeds across all years.", s.Breed, s.Shares.Overall),
		fmt.Sprintf("Most popular month(s) for %s dogs: %s", s.Breed, strings.Join(s.PopularMonths, " ")),
	)

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
