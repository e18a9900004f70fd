package generator

import (
	"context"
	"errors"
	"testing"
)

func TestResolveAuthor(t *testing.T) {
	failing := AuthorSource{Name: "failing", Lookup: func(context.Context) (string, error) {
		return "", errors.New("not available")
	}}
	empty := AuthorSource{Name: "empty", Lookup: func(context.Context) (string, error) {
		return "", nil
	}}
	named := func(name string) AuthorSource {
		return AuthorSource{Name: name, Lookup: func(context.Context) (string, error) {
			return name, nil
		}}
	}

	tests := []struct {
		name    string
		sources []AuthorSource
		want    string
	}{
		{name: "first success wins", sources: []AuthorSource{named("git"), named("gh")}, want: "git"},
		{name: "failure advances", sources: []AuthorSource{failing, named("gh")}, want: "gh"},
		{name: "empty result advances", sources: []AuthorSource{empty, named("gh")}, want: "gh"},
		{name: "all exhausted falls back", sources: []AuthorSource{failing, empty}, want: FallbackAuthor},
		{name: "no sources", sources: nil, want: FallbackAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAuthor(context.Background(), tt.sources); got != tt.want {
				t.Errorf("ResolveAuthor() = %q, want %q", got, tt.want)
			}
		})
	}
}
