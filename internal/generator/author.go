package generator

import "context"

// AuthorSource is one strategy for resolving the license author name.
type AuthorSource struct {
	Name   string // strategy name, for logging
	Lookup func(ctx context.Context) (string, error)
}

// FallbackAuthor is used when every author source fails.
const FallbackAuthor = "Your Name"

// ResolveAuthor tries each source in order and returns the first
// non-empty result. Failures advance silently to the next source; when
// all sources are exhausted the fallback placeholder is returned, never
// an error.
func ResolveAuthor(ctx context.Context, sources []AuthorSource) string {
	for _, src := range sources {
		name, err := src.Lookup(ctx)
		if err == nil && name != "" {
			return name
		}
	}
	return FallbackAuthor
}
