package semantics

import "fmt"

// FieldSchema maps a nominal type's name to the set of field names it
// defines. It is populated by whoever processes type declarations and
// then frozen before the first check runs; unions never have entries.
type FieldSchema struct {
	fields map[string]map[string]bool
	frozen bool
}

func NewFieldSchema() *FieldSchema {
	return &FieldSchema{
		fields: make(map[string]map[string]bool),
	}
}

// Register adds fields to the schema entry for typeName. Registration
// must complete before any checker is constructed over the schema.
func (s *FieldSchema) Register(typeName string, fields ...string) error {
	if s.frozen {
		return fmt.Errorf("field schema is frozen: cannot register fields for '%s'", typeName)
	}
	set, ok := s.fields[typeName]
	if !ok {
		set = make(map[string]bool)
		s.fields[typeName] = set
	}
	for _, f := range fields {
		set[f] = true
	}
	return nil
}

// FieldsOf returns the set of field names known for typeName. Unknown
// type names yield an empty set.
func (s *FieldSchema) FieldsOf(typeName string) map[string]bool {
	set := make(map[string]bool, len(s.fields[typeName]))
	for f := range s.fields[typeName] {
		set[f] = true
	}
	return set
}

// HasField reports whether typeName defines field.
func (s *FieldSchema) HasField(typeName, field string) bool {
	return s.fields[typeName][field]
}

func (s *FieldSchema) freeze() {
	s.frozen = true
}
