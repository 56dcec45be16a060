package memory

import (
	"context"

	"calgarydogs/internal/core"
	"calgarydogs/internal/sheets"
)

// Store serves a fixed set of records. Useful for tests and demos.
type Store struct {
	records []core.Record
}

var _ sheets.TableLoader = (*Store)(nil)

func New(records []core.Record) *Store {
	return &Store{records: append([]core.Record(nil), records...)}
}

// Load builds a fresh Table from the stored records.
func (s *Store) Load(_ context.Context) (*core.Table, error) {
	return core.NewTable(s.records)
}
