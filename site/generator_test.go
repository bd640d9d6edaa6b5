package site

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/graphsite/config"
)

// newTestProject lays out a minimal site project in a temp dir and chdirs
// into it: a dataset with a Thing -> Animal -> Dog hierarchy, two templates,
// and an asset to include.
func newTestProject(t *testing.T) *config.Config {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, os.MkdirAll("data", 0755))
	require.NoError(t, os.MkdirAll("templates", 0755))
	require.NoError(t, os.MkdirAll("assets", 0755))

	dataset := `
triples:
  - subject: ex:Dog
    predicate: rdfs:subClassOf
    object: ex:Animal
  - subject: ex:Animal
    predicate: rdfs:subClassOf
    object: owl:Thing
  - subject: https://example.org/site/rex
    predicate: rdf:type
    object: ex:Dog
  - subject: https://example.org/site/rex
    predicate: rdfs:label
    object: "Rex"
  - subject: https://example.org/site/rex
    predicate: rdfs:comment
    object: "A good dog"
  - subject: https://example.org/site/
    predicate: rdfs:label
    object: "Home"
`
	require.NoError(t, os.WriteFile("data/dataset.yaml", []byte(dataset), 0644))

	defaultTmpl := `<h1>{{ title .Node }}</h1>`
	animalTmpl := `<h1>{{ title .Node }}</h1><p>{{ propertyAny .Node "rdfs:comment" }}</p>`
	require.NoError(t, os.WriteFile("templates/default.html.tmpl", []byte(defaultTmpl), 0644))
	require.NoError(t, os.WriteFile("templates/animal.html.tmpl", []byte(animalTmpl), 0644))

	require.NoError(t, os.WriteFile("assets/style.css", []byte("body {}"), 0644))

	cfg := config.DefaultConfig()
	cfg.Site.BaseURL = "https://example.org"
	cfg.Site.BasePath = "/site"
	cfg.Templates.ClassMappings = map[string]string{"ex:Animal": "animal.html.tmpl"}
	cfg.Output.Include = []string{"assets/**"}
	cfg.Prefixes = map[string]string{"ex": "https://example.org/vocab/"}
	require.NoError(t, cfg.Validate())
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGenerator_Build(t *testing.T) {
	cfg := newTestProject(t)

	generator, err := New(cfg, quietLogger())
	require.NoError(t, err)

	report, err := generator.Build(NewMetrics())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Resources)
	assert.Equal(t, 2, report.Pages)
	assert.NotEmpty(t, report.RunID)

	// Dog is unmapped, so rex falls to Animal's template, which renders
	// the comment.
	rex, err := os.ReadFile(filepath.Join("output", "rex.html"))
	require.NoError(t, err)
	assert.Contains(t, string(rex), "<h1>Rex</h1>")
	assert.Contains(t, string(rex), "A good dog")

	// The untyped root resource gets the default template as index.html.
	index, err := os.ReadFile(filepath.Join("output", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<h1>Home</h1>")

	// Includes land in the output folder with their relative path.
	css, err := os.ReadFile(filepath.Join("output", "assets", "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "body {}", string(css))
}

func TestGenerator_BuildIsIdempotent(t *testing.T) {
	cfg := newTestProject(t)

	generator, err := New(cfg, quietLogger())
	require.NoError(t, err)

	_, err = generator.Build(nil)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join("output", "rex.html"))
	require.NoError(t, err)

	_, err = generator.Build(nil)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join("output", "rex.html"))
	require.NoError(t, err)

	assert.Equal(t, first, second, "unchanged inputs must yield byte-identical output")
}

func TestGenerator_Clean(t *testing.T) {
	cfg := newTestProject(t)

	generator, err := New(cfg, quietLogger())
	require.NoError(t, err)
	_, err = generator.Build(nil)
	require.NoError(t, err)

	require.NoError(t, generator.Clean())
	_, err = os.Stat("output")
	assert.True(t, os.IsNotExist(err))
}

func TestNew_UnknownMappingPrefixFailsFast(t *testing.T) {
	cfg := newTestProject(t)
	cfg.Templates.ClassMappings = map[string]string{"nope:Dog": "dog.html.tmpl"}

	_, err := New(cfg, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope:Dog")
}

func TestNew_BadSelectionFailsFast(t *testing.T) {
	cfg := newTestProject(t)
	cfg.Data.Selection = "resource.startsWith("

	_, err := New(cfg, quietLogger())
	require.Error(t, err)
}

func TestGenerator_CustomSelection(t *testing.T) {
	cfg := newTestProject(t)
	cfg.Data.Selection = `resource.endsWith("/rex")`

	generator, err := New(cfg, quietLogger())
	require.NoError(t, err)

	report, err := generator.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Pages)

	_, err = os.Stat(filepath.Join("output", "index.html"))
	assert.True(t, os.IsNotExist(err), "unselected resources must not be rendered")
}
