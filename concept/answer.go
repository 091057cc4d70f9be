package concept

import (
	"sort"

	"github.com/9triver/conceptdb/proto"
)

// ConceptMap is one answer row: variable names bound to concepts.
type ConceptMap struct {
	bindings map[string]*Concept
}

// MapFromProto decodes one wire answer row.
func MapFromProto(m *proto.ConceptMap) (*ConceptMap, error) {
	bindings := make(map[string]*Concept, len(m.Map))
	for name, raw := range m.Map {
		c, err := FromProto(raw)
		if err != nil {
			return nil, err
		}
		bindings[name] = c
	}
	return &ConceptMap{bindings: bindings}, nil
}

// Get returns the concept bound to a variable, or nil when unbound.
func (cm *ConceptMap) Get(variable string) *Concept {
	return cm.bindings[variable]
}

// Variables lists the bound variable names, sorted.
func (cm *ConceptMap) Variables() []string {
	names := make([]string, 0, len(cm.bindings))
	for name := range cm.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (cm *ConceptMap) Len() int { return len(cm.bindings) }
