package sheets

import "context"

// Source is the single outbound port of the ingestion pipeline: fetch the raw
// cell grid of one sheet tab, addressed by its opaque gid. Rows may be ragged;
// callers never assume a column count.
type Source interface {
	Fetch(ctx context.Context, gid string) ([][]string, error)
}
