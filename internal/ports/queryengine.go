package ports

import "context"

// QueryEngine runs read-only Datalog queries against a graph.
// The raw result is either a bare number or a nested sequence, decoded
// from JSON; callers normalize it.
type QueryEngine interface {
	Query(ctx context.Context, query string, args ...any) (any, error)
}
