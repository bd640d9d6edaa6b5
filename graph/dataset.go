package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/graphsite/rdf"
)

// Dataset is the on-disk form of a fact snapshot: a flat list of triples, an
// entity-grouped list, or both. Predicates and subjects may be written as
// CURIEs; they are expanded against the run's prefix table at load time.
type Dataset struct {
	Triples  []datasetTriple `yaml:"triples"`
	Entities []datasetEntity `yaml:"entities"`
}

type datasetTriple struct {
	Subject   string `yaml:"subject"`
	Predicate string `yaml:"predicate"`
	Object    string `yaml:"object"`
}

type datasetEntity struct {
	ID      string `yaml:"id"`
	Triples []struct {
		Predicate string `yaml:"predicate"`
		Object    string `yaml:"object"`
	} `yaml:"triples"`
}

// LoadDataset reads a dataset document from path and adds its triples to the
// store. Object values are expanded only when they parse as CURIEs against
// the table; plain literals pass through.
func LoadDataset(store *Store, path string, prefixes rdf.Prefixes) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return fmt.Errorf("parse dataset %s: %w", path, err)
	}

	for i, t := range ds.Triples {
		triple, err := expandTriple(t.Subject, t.Predicate, t.Object, prefixes)
		if err != nil {
			return fmt.Errorf("dataset %s triple %d: %w", path, i, err)
		}
		store.Add(triple)
	}

	for _, e := range ds.Entities {
		subject, err := prefixes.Expand(e.ID)
		if err != nil {
			return fmt.Errorf("dataset %s entity %q: %w", path, e.ID, err)
		}
		for i, t := range e.Triples {
			triple, err := expandTriple(string(subject), t.Predicate, t.Object, prefixes)
			if err != nil {
				return fmt.Errorf("dataset %s entity %q triple %d: %w", path, e.ID, i, err)
			}
			store.Add(triple)
		}
	}

	return nil
}

func expandTriple(subject, predicate, object string, prefixes rdf.Prefixes) (rdf.Triple, error) {
	s, err := prefixes.Expand(subject)
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("subject: %w", err)
	}
	p, err := prefixes.Expand(predicate)
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("predicate: %w", err)
	}
	// Objects are literals unless they expand cleanly as a CURIE or are
	// already absolute IRIs.
	obj := object
	if expanded, err := prefixes.Expand(object); err == nil {
		obj = string(expanded)
	}
	return rdf.Triple{Subject: s, Predicate: p, Object: obj}, nil
}
