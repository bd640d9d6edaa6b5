// Package resolve implements the resource-to-template resolution engine:
// building a class hierarchy from facts, indexing resources by class, and
// picking the most specific mapped template per resource.
//
// All indexes are computed once per generation run from an immutable fact
// store snapshot, and are safe for concurrent reads afterwards.
package resolve

import (
	"github.com/c360studio/graphsite/rdf"
)

// HierarchyLookup returns every class reachable from start via one or more
// hops along the subclass edge. The fact store's transitive closure satisfies
// this.
type HierarchyLookup func(start rdf.IRI) []rdf.IRI

// AncestorIndex maps a class to its ancestor classes, ordered least specific
// first. Every list starts with the root class, except the root itself,
// which maps to an empty list.
type AncestorIndex map[rdf.IRI][]rdf.IRI

// BuildAncestors computes the ancestor index for the given seed classes.
// A class with no asserted superclasses still gets [owl:Thing]: every branch
// of the hierarchy implicitly ends in the root, and that is materialized
// here so that the resolver never has to special-case it.
func BuildAncestors(seeds []rdf.IRI, lookup HierarchyLookup) AncestorIndex {
	index := make(AncestorIndex, len(seeds))
	for _, class := range seeds {
		if _, done := index[class]; done {
			continue
		}
		if class == rdf.OWLThing {
			// The root has no ancestors, whatever the store says.
			index[class] = []rdf.IRI{}
			continue
		}
		closure := lookup(class)
		ancestors := make([]rdf.IRI, 0, len(closure)+1)
		for _, a := range closure {
			// The root is re-appended below so it lands in its
			// guaranteed position regardless of where the
			// traversal discovered it.
			if a == rdf.OWLThing {
				continue
			}
			ancestors = append(ancestors, a)
		}
		ancestors = append(ancestors, rdf.OWLThing)
		reverse(ancestors)
		index[class] = ancestors
	}
	return index
}

func reverse(s []rdf.IRI) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
