// Package site drives a generation run: select resources from the fact
// store, classify them, build the class hierarchy, resolve templates, and
// render one page per resource.
package site

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"

	"github.com/c360studio/graphsite/config"
	"github.com/c360studio/graphsite/graph"
	"github.com/c360studio/graphsite/rdf"
	"github.com/c360studio/graphsite/render"
	"github.com/c360studio/graphsite/resolve"
	"github.com/c360studio/graphsite/theme"
)

// Report summarizes one generation run.
type Report struct {
	RunID     string
	Resources int
	Pages     int
	Duration  time.Duration
	Output    string
}

// Generator wires the fact store, the resolution engine, and the renderer
// together. Construction performs all fail-fast work (theme install, prefix
// layering, dataset load, mapping expansion, selection compilation); Build
// performs one full recompute and render.
type Generator struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *graph.Store
	prefixes rdf.Prefixes
	mapping  *resolve.TemplateMapping
	selector *graph.Selector
	env      *render.Environment
}

// New builds a Generator from the given configuration. Any error returned
// here is a configuration or data error; no resolution has happened yet.
func New(cfg *config.Config, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	g := &Generator{cfg: cfg, logger: logger}

	// Themes first: their prefixes sit between the defaults and the
	// config's own. The table is final after this; nothing re-merges at
	// lookup time.
	themePrefixes, err := g.installThemes()
	if err != nil {
		return nil, err
	}
	configPrefixes := rdf.Prefixes(cfg.Prefixes)
	if len(configPrefixes) == 0 {
		logger.Info("prefixes not found in config, using defaults")
	}
	g.prefixes = rdf.LayerPrefixes(rdf.DefaultPrefixes(), themePrefixes, configPrefixes)

	g.store = graph.NewStore()
	if err := graph.LoadDataset(g.store, cfg.Data.DatasetPath, g.prefixes); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("loaded dataset",
		slog.String("path", cfg.Data.DatasetPath),
		slog.Int("triples", g.store.Len()))

	g.mapping, err = resolve.NewTemplateMapping(cfg.Templates.ClassMappings, g.prefixes, cfg.Templates.Default)
	if err != nil {
		return nil, err
	}

	selection := cfg.Data.Selection
	if selection == "" {
		selection = graph.DefaultSelection(cfg.ResourcePrefix())
		logger.Info("selection not found in config, using default",
			slog.String("selection", selection))
	}
	g.selector, err = graph.NewSelector(selection)
	if err != nil {
		return nil, err
	}

	g.env, err = render.NewEnvironment(g.store, g.prefixes, cfg.ResourcePrefix(), cfg.Templates.Path)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Prefixes returns the final layered prefix table.
func (g *Generator) Prefixes() rdf.Prefixes { return g.prefixes }

// Build performs one full generation run and writes the site to the output
// folder.
func (g *Generator) Build(metrics *Metrics) (*Report, error) {
	runID := uuid.NewString()
	start := time.Now()
	logger := g.logger.With(slog.String("run_id", runID))

	resources, err := g.selector.Select(g.store)
	if err != nil {
		return nil, fmt.Errorf("select resources: %w", err)
	}
	logger.Info("selected resources", slog.Int("count", len(resources)))

	// The three indexes, in the order the resolver requires: the
	// hierarchy must be built from exactly the classifier's class set.
	classIndex := resolve.Classify(resources, g.store.TriplesWith(rdf.RDFType))
	seeds := classIndex.Classes(resources)
	ancestors := resolve.BuildAncestors(seeds, func(class rdf.IRI) []rdf.IRI {
		return g.store.Transitive(class, rdf.RDFSSubClassOf)
	})
	templates := resolve.Resolve(resources, classIndex, ancestors, g.mapping)

	outDir := g.cfg.Output.Path
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output folder: %w", err)
	}
	if err := g.copyIncludes(); err != nil {
		return nil, err
	}

	pages := 0
	for _, resource := range resources {
		name, ok := templates[resource]
		if !ok {
			// Typed resource whose classes all missed the mapping;
			// cannot happen while the root stays mapped.
			logger.Warn("no template resolved, skipping",
				slog.String("resource", string(resource)))
			continue
		}
		if err := g.renderPage(resource, name, outDir); err != nil {
			return nil, err
		}
		pages++
	}

	report := &Report{
		RunID:     runID,
		Resources: len(resources),
		Pages:     pages,
		Duration:  time.Since(start),
		Output:    outDir,
	}
	if metrics != nil {
		metrics.observeBuild(report.Resources, report.Pages, report.Duration.Seconds())
	}
	logger.Info("site built",
		slog.Int("pages", report.Pages),
		slog.Duration("duration", report.Duration),
		slog.String("output", outDir))
	return report, nil
}

// Clean removes the output folder.
func (g *Generator) Clean() error {
	if err := os.RemoveAll(g.cfg.Output.Path); err != nil {
		return fmt.Errorf("clean output folder: %w", err)
	}
	return nil
}

func (g *Generator) renderPage(resource rdf.IRI, templateName, outDir string) error {
	path := OutputPath(resource, g.cfg.ResourcePrefix(), outDir)
	g.logger.Debug("rendering",
		slog.String("resource", string(resource)),
		slog.String("template", templateName),
		slog.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create page folder: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create page file: %w", err)
	}
	defer file.Close()

	ctx := render.Context{
		Node:           resource,
		BaseURL:        g.cfg.SiteURL(),
		BasePath:       g.cfg.Site.BasePath,
		ResourcePrefix: g.cfg.ResourcePrefix(),
		Prefixes:       g.prefixes,
	}
	return g.env.Render(file, templateName, ctx)
}

// installThemes copies each configured theme's templates and assets into
// the site's working folders and layers their prefixes, in declaration
// order.
func (g *Generator) installThemes() (rdf.Prefixes, error) {
	merged := rdf.Prefixes{}
	if len(g.cfg.Themes.Names) == 0 {
		return merged, nil
	}
	locator := theme.DirLocator{Base: g.cfg.Themes.Path}
	for _, name := range g.cfg.Themes.Names {
		g.logger.Debug("installing theme", slog.String("theme", name))
		prefixes, err := theme.New(name).Install(locator, g.cfg.Templates.Path, "assets")
		if err != nil {
			return nil, fmt.Errorf("install theme: %w", err)
		}
		for prefix, ns := range prefixes {
			merged[prefix] = ns
		}
	}
	return merged, nil
}

// copyIncludes copies every file matching the configured include patterns
// into the output folder, keeping relative paths.
func (g *Generator) copyIncludes() error {
	for _, pattern := range g.cfg.Output.Include {
		pattern = filepath.Clean(pattern)
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			g.logger.Warn("include pattern matched nothing", slog.String("pattern", pattern))
		}
		for _, match := range matches {
			if err := g.copyPath(match); err != nil {
				return fmt.Errorf("copy include %q: %w", match, err)
			}
		}
	}
	return nil
}

func (g *Generator) copyPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return nil
			}
			return g.copyFile(p)
		})
	}
	return g.copyFile(path)
}

func (g *Generator) copyFile(path string) error {
	dst := filepath.Join(g.cfg.Output.Path, path)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, src)
	return err
}
