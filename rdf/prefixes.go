package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// Prefixes maps namespace prefixes ("rdfs") to namespace IRIs
// ("http://www.w3.org/2000/01/rdf-schema#"). A table is assembled once per
// run by layering defaults, theme prefixes, and config prefixes, and is
// read-only afterwards.
type Prefixes map[string]string

// DefaultPrefixes returns the prefixes available when the config declares
// none.
func DefaultPrefixes() Prefixes {
	return Prefixes{
		"rdf":  RDFNamespace,
		"rdfs": RDFSNamespace,
		"owl":  OWLNamespace,
		"dct":  DCTNamespace,
	}
}

// LayerPrefixes merges the given tables into a new one, left to right, later
// layers taking precedence. The inputs are not modified.
func LayerPrefixes(layers ...Prefixes) Prefixes {
	merged := Prefixes{}
	for _, layer := range layers {
		for prefix, ns := range layer {
			merged[prefix] = ns
		}
	}
	return merged
}

// SplitCURIE splits "prefix:localname" into its two parts. It returns an
// error if the string contains no colon.
func SplitCURIE(curie string) (prefix, local string, err error) {
	idx := strings.Index(curie, ":")
	if idx < 0 {
		return "", "", fmt.Errorf("%q does not look like a CURIE", curie)
	}
	return curie[:idx], curie[idx+1:], nil
}

// Expand resolves a CURIE against the table, returning the full IRI. Strings
// that already look like absolute IRIs (scheme://) pass through unchanged.
// An unknown prefix is an error: mappings must be validated eagerly, before
// any resolution runs.
func (p Prefixes) Expand(curie string) (IRI, error) {
	if strings.Contains(curie, "://") {
		return IRI(curie), nil
	}
	prefix, local, err := SplitCURIE(curie)
	if err != nil {
		return "", err
	}
	ns, ok := p[prefix]
	if !ok {
		return "", fmt.Errorf("prefix %q is not defined", prefix)
	}
	return IRI(ns + local), nil
}

// Shorten rewrites an IRI as a CURIE if some namespace in the table is a
// prefix of it. Longer namespaces win; unmatched IRIs are returned verbatim.
func (p Prefixes) Shorten(iri IRI) string {
	s := string(iri)
	best := ""
	bestPrefix := ""
	for prefix, ns := range p {
		if strings.HasPrefix(s, ns) && len(ns) > len(best) {
			best = ns
			bestPrefix = prefix
		}
	}
	if best == "" {
		return s
	}
	return bestPrefix + ":" + strings.TrimPrefix(s, best)
}

// Sorted returns the prefix names in lexical order, for deterministic
// iteration when logging or rendering the table.
func (p Prefixes) Sorted() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
