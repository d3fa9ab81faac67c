package semantics

import (
	"fmt"
	"strings"
)

// Kind discriminates the type variants. The set is closed: a type
// is either a nominal type or a union, nothing else.
type Kind int

const (
	KindNominal Kind = iota
	KindUnion
)

// UnionName is the identity name shared by every union type.
const UnionName = "union"

// Type is a nominal type or a union over a fixed list of member types.
// Identity is the name: two types are equal iff their names are equal,
// never by structure. Types are immutable and are only created through
// a Registry, which guarantees a single canonical instance per nominal
// name.
type Type struct {
	kind    Kind
	name    string
	members []*Type
}

// Name returns the type's identity name. All unions answer UnionName.
func (t *Type) Name() string {
	return t.name
}

// IsUnion reports whether t is the union variant.
func (t *Type) IsUnion() bool {
	return t.kind == KindUnion
}

// Members returns the union's member list in declaration order.
// It is nil for nominal types.
func (t *Type) Members() []*Type {
	return t.members
}

// Equals reports whether a and b have the same name. Equality is by
// nominal identity only.
func (t *Type) Equals(o *Type) bool {
	return t.name == o.name
}

// Contains reports whether o is name-equal to one of the union's
// immediate members. It never recurses: a member is matched by its own
// name only. For nominal types it is always false.
func (t *Type) Contains(o *Type) bool {
	for _, m := range t.members {
		if m.Equals(o) {
			return true
		}
	}
	return false
}

func (t *Type) String() string {
	if t.kind != KindUnion {
		return t.name
	}
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = m.String()
	}
	return strings.Join(names, " | ")
}

// Registry is an interning table of type definitions keyed by name.
// Symbols and union members hold the canonical *Type handles it hands
// out, so name equality and handle equality coincide for nominal types.
// A Registry is not safe for concurrent registration; build it fully
// before checking starts.
type Registry struct {
	nominals map[string]*Type
}

func NewRegistry() *Registry {
	return &Registry{
		nominals: make(map[string]*Type),
	}
}

// Nominal returns the canonical type for name, creating it on first use.
func (r *Registry) Nominal(name string) *Type {
	if t, ok := r.nominals[name]; ok {
		return t
	}
	t := &Type{kind: KindNominal, name: name}
	r.nominals[name] = t
	return t
}

// Lookup returns the nominal type registered under name, if any.
// Unions are anonymous and are never found by name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.nominals[name]
	return t, ok
}

// Union builds a union over the given members. A union has at least one
// member, and members must themselves be nominal: nested unions are
// rejected here so that containment never has to decide whether to
// flatten.
func (r *Registry) Union(members ...*Type) (*Type, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("union must have at least one member")
	}
	for _, m := range members {
		if m.IsUnion() {
			return nil, fmt.Errorf("union member '%s' is itself a union: nested unions are not supported", m)
		}
	}
	ms := make([]*Type, len(members))
	copy(ms, members)
	return &Type{kind: KindUnion, name: UnionName, members: ms}, nil
}

// Symbol is a name bound once to its declared type. The declared type
// never changes: narrowing produces a new type value for the caller, it
// does not touch the symbol.
type Symbol struct {
	Name string
	Type *Type
}
