// Package theme installs template and asset bundles into a site's working
// folders. A theme is a data-only descriptor of a directory layout; where
// that directory comes from is a pluggable capability, so themes can be
// shipped on disk, embedded, or fetched by other means.
package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/graphsite/rdf"
)

// Theme describes a bundle of templates, assets, and config fragments.
type Theme struct {
	// Name identifies the theme; installed templates live in a
	// subfolder of this name so themes cannot shadow site templates.
	Name string
	// TemplateDir is the templates subfolder inside the theme.
	TemplateDir string
	// AssetDir is the assets subfolder inside the theme.
	AssetDir string
	// ConfigDir is the config subfolder inside the theme.
	ConfigDir string
}

// New returns a Theme with the conventional subfolder names.
func New(name string) Theme {
	return Theme{
		Name:        name,
		TemplateDir: "templates",
		AssetDir:    "assets",
		ConfigDir:   "config",
	}
}

// Locator resolves a theme name to its file tree.
type Locator interface {
	Locate(name string) (fs.FS, error)
}

// DirLocator locates themes as subdirectories of a base directory.
type DirLocator struct {
	Base string
}

// Locate returns the theme's directory as a file system.
func (l DirLocator) Locate(name string) (fs.FS, error) {
	dir := filepath.Join(l.Base, name)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("locate theme %q: %w", name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("locate theme %q: %s is not a directory", name, dir)
	}
	return os.DirFS(dir), nil
}

// Install copies the theme's templates into templateDir/<name>/ and its
// assets into assetDir, and returns the prefixes declared by the theme's
// config fragments. Missing subfolders are fine: a theme may ship only
// templates, only assets, or only prefixes.
func (t Theme) Install(locator Locator, templateDir, assetDir string) (rdf.Prefixes, error) {
	fsys, err := locator.Locate(t.Name)
	if err != nil {
		return nil, err
	}

	if err := copyTree(fsys, t.TemplateDir, filepath.Join(templateDir, t.Name)); err != nil {
		return nil, fmt.Errorf("install theme %q templates: %w", t.Name, err)
	}
	if err := copyTree(fsys, t.AssetDir, assetDir); err != nil {
		return nil, fmt.Errorf("install theme %q assets: %w", t.Name, err)
	}

	prefixes, err := t.readPrefixes(fsys)
	if err != nil {
		return nil, fmt.Errorf("install theme %q config: %w", t.Name, err)
	}
	return prefixes, nil
}

// readPrefixes collects the prefixes map from every YAML file in the theme's
// config folder.
func (t Theme) readPrefixes(fsys fs.FS) (rdf.Prefixes, error) {
	entries, err := fs.ReadDir(fsys, t.ConfigDir)
	if err != nil {
		if os.IsNotExist(err) {
			return rdf.Prefixes{}, nil
		}
		return nil, err
	}

	merged := rdf.Prefixes{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, filepath.Join(t.ConfigDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var fragment struct {
			Prefixes map[string]string `yaml:"prefixes"`
		}
		if err := yaml.Unmarshal(data, &fragment); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		for prefix, ns := range fragment.Prefixes {
			merged[prefix] = ns
		}
	}
	return merged, nil
}

// copyTree copies the src subtree of fsys into the dst directory on disk.
// A missing src is not an error.
func copyTree(fsys fs.FS, src, dst string) error {
	if _, err := fs.Stat(fsys, src); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return fs.WalkDir(fsys, src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}
