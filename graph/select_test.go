package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/graphsite/rdf"
)

func seededStore() *Store {
	s := NewStore()
	s.Add(triple(rdf.IRI(ns+"site/a"), rdf.RDFSLabel, "A"))
	s.Add(triple(rdf.IRI(ns+"site/b"), rdf.RDFSLabel, "B"))
	s.Add(triple("https://elsewhere.org/c", rdf.RDFSLabel, "C"))
	return s
}

func TestSelector_DefaultSelection(t *testing.T) {
	selector, err := NewSelector(DefaultSelection(ns + "site/"))
	require.NoError(t, err)

	selected, err := selector.Select(seededStore())
	require.NoError(t, err)
	assert.Equal(t, []rdf.IRI{ns + "site/a", ns + "site/b"}, selected)
}

func TestSelector_CustomExpression(t *testing.T) {
	selector, err := NewSelector(`resource.endsWith("/b") || resource.contains("elsewhere")`)
	require.NoError(t, err)

	selected, err := selector.Select(seededStore())
	require.NoError(t, err)
	assert.Equal(t, []rdf.IRI{ns + "site/b", "https://elsewhere.org/c"}, selected)
}

func TestNewSelector_CompileErrorIsConfigurationError(t *testing.T) {
	_, err := NewSelector("resource.startsWith(")
	assert.Error(t, err)
}

func TestNewSelector_NonBooleanRejected(t *testing.T) {
	_, err := NewSelector(`resource + "x"`)
	assert.Error(t, err)
}

func TestSelector_SelectsNothingFromEmptyStore(t *testing.T) {
	selector, err := NewSelector("true")
	require.NoError(t, err)

	selected, err := selector.Select(NewStore())
	require.NoError(t, err)
	assert.Empty(t, selected)
}
