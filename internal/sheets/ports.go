package sheets

import (
	"context"

	"calgarydogs/internal/core"
)

// Ports for inbound data sources.
type (
	// TableLoader reads the registration dataset into a Table.
	TableLoader interface {
		Load(ctx context.Context) (*core.Table, error)
	}

	// LoaderFunc adapts a plain function to TableLoader.
	LoaderFunc func(ctx context.Context) (*core.Table, error)
)

func (f LoaderFunc) Load(ctx context.Context) (*core.Table, error) {
	return f(ctx)
}
