package resolve

import (
	"fmt"

	"github.com/c360studio/graphsite/rdf"
)

// MappingError reports an invalid class-to-template mapping entry. It is a
// configuration error and is raised at mapping construction time, before any
// resolution runs.
type MappingError struct {
	CURIE    string
	Template string
	Err      error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("class-template mapping %q -> %q: %v", e.CURIE, e.Template, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }

// TemplateMapping maps class IRIs to template names. It is built once from
// configuration and always contains an entry for owl:Thing, so every
// classified resource resolves to some template.
type TemplateMapping struct {
	byClass         map[rdf.IRI]string
	defaultTemplate string
}

// NewTemplateMapping expands the CURIE-keyed config mapping against the
// prefix table. A key with an unknown or missing prefix yields a
// *MappingError. If owl:Thing is not mapped explicitly, it is mapped to the
// default template.
func NewTemplateMapping(entries map[string]string, prefixes rdf.Prefixes, defaultTemplate string) (*TemplateMapping, error) {
	m := &TemplateMapping{
		byClass:         make(map[rdf.IRI]string, len(entries)+1),
		defaultTemplate: defaultTemplate,
	}
	for curie, template := range entries {
		class, err := prefixes.Expand(curie)
		if err != nil {
			return nil, &MappingError{CURIE: curie, Template: template, Err: err}
		}
		m.byClass[class] = template
	}
	if _, ok := m.byClass[rdf.OWLThing]; !ok {
		m.byClass[rdf.OWLThing] = defaultTemplate
	}
	return m, nil
}

// Has reports whether the class has a mapped template.
func (m *TemplateMapping) Has(class rdf.IRI) bool {
	_, ok := m.byClass[class]
	return ok
}

// Template returns the template mapped to the class, or "" if unmapped.
func (m *TemplateMapping) Template(class rdf.IRI) string {
	return m.byClass[class]
}

// Default returns the template assigned to untyped resources.
func (m *TemplateMapping) Default() string {
	return m.defaultTemplate
}

// Len returns the number of mapped classes, including the root entry.
func (m *TemplateMapping) Len() int { return len(m.byClass) }
