package resolve

import (
	"github.com/c360studio/graphsite/rdf"
)

// ClassIndex maps a resource to the classes it was asserted to be an
// instance of, in fact discovery order. A resource with no type assertions
// maps to an empty list.
type ClassIndex map[rdf.IRI][]rdf.IRI

// Classify builds the class index for the given resources from the store's
// rdf:type facts. Every requested resource gets an entry, typed or not, and
// multi-typed resources keep every asserted class. The typeFacts slice is
// the store's (?, rdf:type, ?) triples in assertion order.
func Classify(resources []rdf.IRI, typeFacts []rdf.Triple) ClassIndex {
	index := make(ClassIndex, len(resources))
	for _, r := range resources {
		index[r] = []rdf.IRI{}
	}
	for _, fact := range typeFacts {
		if _, wanted := index[fact.Subject]; !wanted {
			continue
		}
		index[fact.Subject] = append(index[fact.Subject], rdf.IRI(fact.Object))
	}
	return index
}

// Classes returns the distinct classes appearing anywhere in the index, in
// first-appearance order over the resources slice. This is the seed set for
// BuildAncestors: the hierarchy builder must be invoked with exactly the
// classes the classifier produced.
func (ci ClassIndex) Classes(resources []rdf.IRI) []rdf.IRI {
	var classes []rdf.IRI
	seen := map[rdf.IRI]bool{}
	for _, r := range resources {
		for _, class := range ci[r] {
			if seen[class] {
				continue
			}
			seen[class] = true
			classes = append(classes, class)
		}
	}
	return classes
}
