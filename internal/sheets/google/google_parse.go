package google

import (
	"fmt"
	"strconv"
	"strings"

	"calgarydogs/internal/core"
	"calgarydogs/internal/sheets"
)

// parseValues converts a values matrix (as returned by Sheets API) into a
// Table. The first row must hold the Year, Month, Breed and Total headers.
func parseValues(values [][]interface{}) (*core.Table, error) {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = toStrings(row)
	}
	return sheets.ParseRows(rows)
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		switch n := v.(type) {
		case nil:
			out[i] = ""
		case float64:
			// Unformatted numbers arrive as float64.
			out[i] = strconv.FormatFloat(n, 'f', -1, 64)
		default:
			out[i] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return out
}
