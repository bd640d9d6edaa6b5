package site

import (
	"path/filepath"
	"testing"

	"github.com/c360studio/graphsite/rdf"
)

func TestOutputPath(t *testing.T) {
	prefix := "https://example.org/site/"

	tests := []struct {
		name     string
		resource rdf.IRI
		want     string
	}{
		{
			name:     "top level resource",
			resource: "https://example.org/site/rex",
			want:     filepath.Join("out", "rex.html"),
		},
		{
			name:     "nested resource",
			resource: "https://example.org/site/animals/rex",
			want:     filepath.Join("out", "animals", "rex.html"),
		},
		{
			name:     "trailing slash becomes index",
			resource: "https://example.org/site/",
			want:     filepath.Join("out", "index.html"),
		},
		{
			name:     "nested trailing slash",
			resource: "https://example.org/site/animals/",
			want:     filepath.Join("out", "animals", "index.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.resource, prefix, "out"); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.resource, got, tt.want)
			}
		})
	}
}
