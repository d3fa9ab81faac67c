package semantics

import (
	"strings"
	"testing"
)

func TestTypeEquality(t *testing.T) {
	r := NewRegistry()
	intType := r.Nominal("int")
	stringType := r.Nominal("string")
	pointType := r.Nominal("Point")

	tests := []struct {
		name string
		a, b *Type
		want bool
	}{
		{"reflexive", intType, intType, true},
		{"same name", intType, r.Nominal("int"), true},
		{"different names", intType, stringType, false},
		{"nominal vs nominal", pointType, stringType, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equality is pure name comparison, so it is symmetric.
			if got := tt.b.Equals(tt.a); got != tt.want {
				t.Errorf("Equals(%s, %s) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestTypeEqualityTransitive(t *testing.T) {
	r := NewRegistry()
	a := r.Nominal("int")
	b := r.Nominal("int")
	c := r.Nominal("int")
	if !a.Equals(b) || !b.Equals(c) || !a.Equals(c) {
		t.Error("expected name equality to be transitive")
	}
}

func TestRegistryInterning(t *testing.T) {
	r := NewRegistry()
	a := r.Nominal("Point")
	b := r.Nominal("Point")
	if a != b {
		t.Error("expected the registry to return the canonical instance for a name")
	}
	got, ok := r.Lookup("Point")
	if !ok || got != a {
		t.Errorf("Lookup(Point) = %v, %v, want the interned instance", got, ok)
	}
	if _, ok := r.Lookup("Rect"); ok {
		t.Error("Lookup(Rect) succeeded for a name that was never registered")
	}
}

func TestUnionContains(t *testing.T) {
	r := NewRegistry()
	intType := r.Nominal("int")
	stringType := r.Nominal("string")
	pointType := r.Nominal("Point")
	boolType := r.Nominal("bool")

	u, err := r.Union(intType, stringType, pointType)
	if err != nil {
		t.Fatalf("Union() = %v", err)
	}

	tests := []struct {
		name      string
		candidate *Type
		want      bool
	}{
		{"first member", intType, true},
		{"last member", pointType, true},
		{"non-member", boolType, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.Contains(tt.candidate); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}

	if intType.Contains(intType) {
		t.Error("Contains on a nominal type should always be false")
	}
}

func TestUnionConstruction(t *testing.T) {
	r := NewRegistry()
	intType := r.Nominal("int")
	stringType := r.Nominal("string")

	if _, err := r.Union(); err == nil {
		t.Error("expected an error for an empty union")
	}

	inner, err := r.Union(intType, stringType)
	if err != nil {
		t.Fatalf("Union() = %v", err)
	}
	if _, err := r.Union(inner, r.Nominal("Point")); err == nil {
		t.Error("expected an error for a nested union")
	}

	if !inner.IsUnion() {
		t.Error("expected IsUnion to hold for a union")
	}
	if inner.Name() != UnionName {
		t.Errorf("union name = %q, want %q", inner.Name(), UnionName)
	}
	if len(inner.Members()) != 2 {
		t.Errorf("union has %d members, want 2", len(inner.Members()))
	}
}

func TestTypeString(t *testing.T) {
	r := NewRegistry()
	u, err := r.Union(r.Nominal("int"), r.Nominal("string"), r.Nominal("Point"))
	if err != nil {
		t.Fatalf("Union() = %v", err)
	}
	if got := r.Nominal("int").String(); got != "int" {
		t.Errorf("String() = %q, want %q", got, "int")
	}
	if got := u.String(); got != "int | string | Point" {
		t.Errorf("String() = %q, want %q", got, "int | string | Point")
	}
	if !strings.Contains(u.String(), "Point") {
		t.Error("union rendering should mention every member")
	}
}
