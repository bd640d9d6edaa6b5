package resolve

import (
	"github.com/c360studio/graphsite/rdf"
)

// TemplateIndex maps a resource to the name of the template that will render
// it. One entry per selected resource, rebuilt from scratch on every run.
type TemplateIndex map[rdf.IRI]string

// Resolve computes the template index for the given resources.
//
// For a typed resource, each asserted class is considered in assertion
// order: the class's ancestor chain plus the class itself (least to most
// specific) is filtered down to classes present in the mapping, and the last
// survivor, the most specific mapped class, supplies the template. When a
// resource has several asserted classes, each class's match overwrites the
// previous one unconditionally: the last asserted class wins, with no
// cross-class specificity comparison. That matches how mappings have always
// been applied here; reordering the type assertions is the way to
// prioritize.
//
// Untyped resources never consult the mapping and get the default template.
//
// Every class in classIndex must be a key of ancestors; the caller is
// responsible for building the hierarchy from the classifier's output.
func Resolve(resources []rdf.IRI, classIndex ClassIndex, ancestors AncestorIndex, mapping *TemplateMapping) TemplateIndex {
	index := make(TemplateIndex, len(resources))
	for _, resource := range resources {
		classes := classIndex[resource]
		if len(classes) == 0 {
			index[resource] = mapping.Default()
			continue
		}
		for _, class := range classes {
			chain := append(append([]rdf.IRI{}, ancestors[class]...), class)
			var mapped []rdf.IRI
			for _, c := range chain {
				if mapping.Has(c) {
					mapped = append(mapped, c)
				}
			}
			if len(mapped) == 0 {
				continue
			}
			index[resource] = mapping.Template(mapped[len(mapped)-1])
		}
	}
	return index
}
