package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/graphsite/rdf"
)

const ns = "https://example.org/vocab/"

func lookupFrom(edges map[rdf.IRI][]rdf.IRI) HierarchyLookup {
	return func(start rdf.IRI) []rdf.IRI {
		// Breadth-first closure over the edge map, first-seen dedup,
		// mirroring the store's Transitive.
		var out []rdf.IRI
		seen := map[rdf.IRI]bool{}
		frontier := []rdf.IRI{start}
		for len(frontier) > 0 {
			var next []rdf.IRI
			for _, node := range frontier {
				for _, parent := range edges[node] {
					if seen[parent] {
						continue
					}
					seen[parent] = true
					out = append(out, parent)
					next = append(next, parent)
				}
			}
			frontier = next
		}
		return out
	}
}

func TestBuildAncestors_ChainOrder(t *testing.T) {
	animal := rdf.IRI(ns + "Animal")
	dog := rdf.IRI(ns + "Dog")
	lookup := lookupFrom(map[rdf.IRI][]rdf.IRI{
		dog:    {animal},
		animal: {rdf.OWLThing},
	})

	index := BuildAncestors([]rdf.IRI{dog, animal}, lookup)

	// Least specific first, root guaranteed first, no duplicates.
	assert.Equal(t, []rdf.IRI{rdf.OWLThing, animal}, index[dog])
	assert.Equal(t, []rdf.IRI{rdf.OWLThing}, index[animal])
}

func TestBuildAncestors_RootMapsToEmpty(t *testing.T) {
	lookup := lookupFrom(nil)
	index := BuildAncestors([]rdf.IRI{rdf.OWLThing}, lookup)

	require.Contains(t, index, rdf.OWLThing)
	assert.Empty(t, index[rdf.OWLThing])
}

func TestBuildAncestors_NoSuperclassFactsStillGetsRoot(t *testing.T) {
	orphan := rdf.IRI(ns + "Orphan")
	index := BuildAncestors([]rdf.IRI{orphan}, lookupFrom(nil))

	assert.Equal(t, []rdf.IRI{rdf.OWLThing}, index[orphan])
}

func TestBuildAncestors_DiamondYieldsNoDuplicates(t *testing.T) {
	a := rdf.IRI(ns + "A")
	b := rdf.IRI(ns + "B")
	c := rdf.IRI(ns + "C")
	top := rdf.IRI(ns + "Top")
	lookup := lookupFrom(map[rdf.IRI][]rdf.IRI{
		a: {b, c},
		b: {top},
		c: {top},
	})

	index := BuildAncestors([]rdf.IRI{a}, lookup)

	chain := index[a]
	assert.Equal(t, rdf.OWLThing, chain[0], "root must come first")
	seen := map[rdf.IRI]int{}
	for _, class := range chain {
		seen[class]++
	}
	for class, count := range seen {
		assert.Equal(t, 1, count, "class %s appears more than once", class)
	}
	assert.ElementsMatch(t, []rdf.IRI{rdf.OWLThing, top, b, c}, chain)
}

func TestBuildAncestors_AssertedRootIsNotDuplicated(t *testing.T) {
	// A class whose closure already reaches owl:Thing explicitly must
	// still begin with a single root entry.
	animal := rdf.IRI(ns + "Animal")
	lookup := lookupFrom(map[rdf.IRI][]rdf.IRI{
		animal: {rdf.OWLThing},
	})

	index := BuildAncestors([]rdf.IRI{animal}, lookup)
	assert.Equal(t, []rdf.IRI{rdf.OWLThing}, index[animal])
}
