package site

import (
	"path/filepath"
	"strings"

	"github.com/c360studio/graphsite/rdf"
)

// OutputPath maps a resource to the file its page is written to: the part
// of the IRI after the resource prefix, with the last path segment as file
// name plus ".html". A resource ending in "/" becomes index.html of its
// folder.
func OutputPath(resource rdf.IRI, resourcePrefix, outDir string) string {
	s := string(resource)

	rel := s
	if idx := strings.LastIndex(s, resourcePrefix); idx >= 0 {
		rel = s[idx+len(resourcePrefix):]
	}

	local := s
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		local = s[idx+1:]
	}
	if local == "" {
		local = "index"
	} else {
		rel = strings.TrimSuffix(rel, local)
	}

	return filepath.Join(outDir, rel, local) + ".html"
}
