// Package render wraps Go's html/template with accessor functions for
// reading the fact store from inside templates. The environment is built
// once per run; after that both the parsed templates and the store are
// read-only.
package render

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/graphsite/graph"
	"github.com/c360studio/graphsite/rdf"
)

// Context carries the per-page variables available to every template.
type Context struct {
	// Node is the resource the current page is being built for.
	Node rdf.IRI
	// BaseURL is the base hostname and protocol of the site.
	BaseURL string
	// BasePath is the subpath of the site.
	BasePath string
	// ResourcePrefix is BaseURL + BasePath; all site resources live in
	// this namespace.
	ResourcePrefix string
	// Prefixes is the prefix table in effect for this run.
	Prefixes rdf.Prefixes
}

// Environment holds the parsed templates and the accessor bindings.
type Environment struct {
	store          *graph.Store
	prefixes       rdf.Prefixes
	resourcePrefix string
	templates      *template.Template
}

// NewEnvironment parses every template under templateDir (including theme
// subfolders) with the accessor functions bound to the given store.
// Template names are paths relative to templateDir.
func NewEnvironment(store *graph.Store, prefixes rdf.Prefixes, resourcePrefix, templateDir string) (*Environment, error) {
	env := &Environment{
		store:          store,
		prefixes:       prefixes,
		resourcePrefix: resourcePrefix,
	}

	root := template.New("").Funcs(env.funcMap())
	fsys := os.DirFS(templateDir)
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".tmpl" && ext != ".html" {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if _, err := root.New(path).Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load templates from %s: %w", templateDir, err)
	}

	env.templates = root
	return env, nil
}

// Has reports whether a template with the given name was loaded.
func (e *Environment) Has(name string) bool {
	return e.templates.Lookup(name) != nil
}

// Render executes the named template with the given context.
func (e *Environment) Render(w io.Writer, name string, ctx Context) error {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return fmt.Errorf("template %q not found", name)
	}
	if err := tmpl.Execute(w, ctx); err != nil {
		return fmt.Errorf("render %q for %s: %w", name, ctx.Node, err)
	}
	return nil
}

func (e *Environment) funcMap() template.FuncMap {
	return template.FuncMap{
		"property":           e.property,
		"propertyAny":        e.propertyAny,
		"inverseProperty":    e.inverseProperty,
		"inversePropertyAny": e.inversePropertyAny,
		"title":              e.title,
		"description":        e.description,
		"isIRI":              isIRI,
		"curie":              e.curie,
		"relativeURI":        e.relativeURI,
		"markdown":           renderMarkdown,
		"highlight":          highlightCode,
	}
}

// property returns all objects of (subject, predicate) in assertion order.
// The predicate may be a CURIE or a full IRI.
func (e *Environment) property(subject any, predicate string) ([]string, error) {
	pred, err := e.prefixes.Expand(predicate)
	if err != nil {
		return nil, err
	}
	return e.store.ObjectsOf(toIRI(subject), pred), nil
}

// propertyAny returns the first object of (subject, predicate), or "".
func (e *Environment) propertyAny(subject any, predicate string) (string, error) {
	values, err := e.property(subject, predicate)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}
	return values[0], nil
}

// inverseProperty returns all subjects of (?, predicate, object).
func (e *Environment) inverseProperty(object any, predicate string) ([]rdf.IRI, error) {
	pred, err := e.prefixes.Expand(predicate)
	if err != nil {
		return nil, err
	}
	return e.store.SubjectsOf(pred, string(toIRI(object))), nil
}

// inversePropertyAny returns the first subject of (?, predicate, object),
// or "".
func (e *Environment) inversePropertyAny(object any, predicate string) (rdf.IRI, error) {
	subjects, err := e.inverseProperty(object, predicate)
	if err != nil {
		return "", err
	}
	if len(subjects) == 0 {
		return "", nil
	}
	return subjects[0], nil
}

// title returns the first value of the first title-like property the
// subject has, falling back to the IRI's local name.
func (e *Environment) title(subject any) string {
	iri := toIRI(subject)
	if v := e.firstValue(iri, rdf.TitleProperties); v != "" {
		return v
	}
	return localName(iri)
}

// description returns the first value of the first description-like property
// the subject has, or "".
func (e *Environment) description(subject any) string {
	return e.firstValue(toIRI(subject), rdf.DescriptionProperties)
}

func (e *Environment) firstValue(subject rdf.IRI, properties []rdf.IRI) string {
	for _, prop := range properties {
		values := e.store.ObjectsOf(subject, prop)
		if len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// curie shortens an IRI against the run's prefix table.
func (e *Environment) curie(value any) string {
	return e.prefixes.Shorten(toIRI(value))
}

// relativeURI strips the site's resource prefix from an IRI, yielding a
// root-relative link. IRIs outside the site are returned unchanged.
func (e *Environment) relativeURI(value any) string {
	s := string(toIRI(value))
	if rest, ok := strings.CutPrefix(s, e.resourcePrefix); ok {
		return "/" + rest
	}
	return s
}

func isIRI(value any) bool {
	return strings.Contains(fmt.Sprintf("%v", value), "://")
}

func toIRI(value any) rdf.IRI {
	switch v := value.(type) {
	case rdf.IRI:
		return v
	case string:
		return rdf.IRI(v)
	default:
		return rdf.IRI(fmt.Sprintf("%v", v))
	}
}

func localName(iri rdf.IRI) string {
	s := strings.TrimRight(string(iri), "/")
	if idx := strings.LastIndexAny(s, "/#"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}
