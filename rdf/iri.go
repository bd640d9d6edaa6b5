// Package rdf provides the base data model for graphsite: IRIs, triples,
// well-known vocabulary terms, and prefix tables for CURIE expansion.
package rdf

// IRI is an opaque absolute identifier for an entity in the fact graph.
// IRIs are compared by value equality and are never mutated.
type IRI string

// String returns the IRI as a plain string.
func (i IRI) String() string { return string(i) }

// Triple is a single subject-predicate-object assertion. The object is kept
// as a string; whether it denotes an IRI or a literal is up to the caller.
type Triple struct {
	Subject   IRI    `yaml:"subject" json:"subject"`
	Predicate IRI    `yaml:"predicate" json:"predicate"`
	Object    string `yaml:"object" json:"object"`
}

// Well-known namespace IRIs.
const (
	RDFNamespace    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace   = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace    = "http://www.w3.org/2002/07/owl#"
	XSDNamespace    = "http://www.w3.org/2001/XMLSchema#"
	DCTNamespace    = "http://purl.org/dc/terms/"
	FOAFNamespace   = "http://xmlns.com/foaf/0.1/"
	SchemaNamespace = "https://schema.org/"
	SKOSNamespace   = "http://www.w3.org/2004/02/skos/core#"
)

// Well-known terms used by the resolution engine and the accessor functions.
const (
	// RDFType is the "is-a" predicate linking a resource to its class.
	RDFType IRI = RDFNamespace + "type"

	// RDFSSubClassOf is the hierarchy edge between a class and its
	// immediate superclass(es).
	RDFSSubClassOf IRI = RDFSNamespace + "subClassOf"

	// OWLThing is the universal root class. Every ancestor chain begins
	// with it, and it is the guaranteed fallback key in every
	// class-to-template mapping.
	OWLThing IRI = OWLNamespace + "Thing"

	// RDFSLabel is the canonical human-readable name of a resource.
	RDFSLabel IRI = RDFSNamespace + "label"

	// RDFSComment is the canonical human-readable description.
	RDFSComment IRI = RDFSNamespace + "comment"

	// DCTTitle is the Dublin Core title property.
	DCTTitle IRI = DCTNamespace + "title"

	// DCTDescription is the Dublin Core description property.
	DCTDescription IRI = DCTNamespace + "description"

	// FOAFName is the FOAF name property.
	FOAFName IRI = FOAFNamespace + "name"

	// SchemaName is the schema.org name property.
	SchemaName IRI = SchemaNamespace + "name"

	// SchemaDescription is the schema.org description property.
	SchemaDescription IRI = SchemaNamespace + "description"

	// SKOSPrefLabel is the SKOS preferred label property.
	SKOSPrefLabel IRI = SKOSNamespace + "prefLabel"
)

// TitleProperties are tried in order by the title accessor function.
var TitleProperties = []IRI{
	RDFSLabel,
	DCTTitle,
	FOAFName,
	SchemaName,
	SKOSPrefLabel,
}

// DescriptionProperties are tried in order by the description accessor.
var DescriptionProperties = []IRI{
	RDFSComment,
	DCTDescription,
	SchemaDescription,
}
