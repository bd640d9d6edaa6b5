// Package graph provides the in-memory fact store the site generator reads
// from: triple pattern lookups, transitive closure along a hierarchy edge,
// and resource selection. A store is loaded once per run and treated as
// read-only while the run computes its indexes.
package graph

import (
	"github.com/c360studio/graphsite/rdf"
)

// Store holds triples with deterministic iteration order. Lookups return
// results in assertion order, which downstream index construction depends on
// for stable output across identical runs.
type Store struct {
	triples []rdf.Triple

	bySubjectPredicate map[rdf.IRI]map[rdf.IRI][]string
	byPredicate        map[rdf.IRI][]rdf.Triple
	subjects           []rdf.IRI
	subjectSeen        map[rdf.IRI]bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		bySubjectPredicate: make(map[rdf.IRI]map[rdf.IRI][]string),
		byPredicate:        make(map[rdf.IRI][]rdf.Triple),
		subjectSeen:        make(map[rdf.IRI]bool),
	}
}

// Add appends a triple to the store.
func (s *Store) Add(t rdf.Triple) {
	s.triples = append(s.triples, t)

	preds, ok := s.bySubjectPredicate[t.Subject]
	if !ok {
		preds = make(map[rdf.IRI][]string)
		s.bySubjectPredicate[t.Subject] = preds
	}
	preds[t.Predicate] = append(preds[t.Predicate], t.Object)

	s.byPredicate[t.Predicate] = append(s.byPredicate[t.Predicate], t)

	if !s.subjectSeen[t.Subject] {
		s.subjectSeen[t.Subject] = true
		s.subjects = append(s.subjects, t.Subject)
	}
}

// Len returns the number of triples in the store.
func (s *Store) Len() int { return len(s.triples) }

// ObjectsOf returns the objects of all (subject, predicate, ?) triples, in
// assertion order.
func (s *Store) ObjectsOf(subject, predicate rdf.IRI) []string {
	preds, ok := s.bySubjectPredicate[subject]
	if !ok {
		return nil
	}
	return preds[predicate]
}

// SubjectsOf returns the subjects of all (?, predicate, object) triples, in
// assertion order.
func (s *Store) SubjectsOf(predicate rdf.IRI, object string) []rdf.IRI {
	var out []rdf.IRI
	for _, t := range s.byPredicate[predicate] {
		if t.Object == object {
			out = append(out, t.Subject)
		}
	}
	return out
}

// TriplesWith returns all triples with the given predicate, in assertion
// order. The returned slice is shared; callers must not modify it.
func (s *Store) TriplesWith(predicate rdf.IRI) []rdf.Triple {
	return s.byPredicate[predicate]
}

// Subjects returns the distinct subjects of the store in first-assertion
// order. This is the candidate set for resource selection.
func (s *Store) Subjects() []rdf.IRI {
	return s.subjects
}

// Transitive returns every IRI reachable from start via one or more hops
// along the given predicate. Traversal is breadth-first with first-seen
// deduplication, so diamond hierarchies yield each ancestor once and the
// output order is deterministic for a given assertion order. The start node
// itself is only included if it is genuinely reachable from itself.
func (s *Store) Transitive(start, predicate rdf.IRI) []rdf.IRI {
	var out []rdf.IRI
	seen := map[rdf.IRI]bool{}
	frontier := []rdf.IRI{start}
	for len(frontier) > 0 {
		var next []rdf.IRI
		for _, node := range frontier {
			for _, obj := range s.ObjectsOf(node, predicate) {
				target := rdf.IRI(obj)
				if seen[target] {
					continue
				}
				seen[target] = true
				out = append(out, target)
				next = append(next, target)
			}
		}
		frontier = next
	}
	return out
}
