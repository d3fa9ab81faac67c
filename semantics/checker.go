package semantics

// Checker validates assignments, type discrimination checks and field
// accesses against the type model and a field schema. Every check is a
// pure function of its inputs: nothing is recorded between calls, and
// a failed check never mutates the symbol or type it inspected.
type Checker struct {
	schema *FieldSchema
}

// NewChecker binds a checker to its field schema. The schema is frozen
// here: registration must be complete before checking begins.
func NewChecker(schema *FieldSchema) *Checker {
	schema.freeze()
	return &Checker{schema: schema}
}

// CheckAssignment validates that a value of exprType may be assigned to
// sym. A union-declared symbol accepts exactly the immediate members of
// its union; any other declared type accepts exactly itself.
func (c *Checker) CheckAssignment(sym *Symbol, exprType *Type) error {
	if sym.Type.IsUnion() {
		if !sym.Type.Contains(exprType) {
			return &SemanticError{
				Kind:   UnionMembership,
				Symbol: sym.Name,
				Expr:   exprType.Name(),
			}
		}
		return nil
	}
	if !sym.Type.Equals(exprType) {
		return &SemanticError{
			Kind:     TypeMismatch,
			Symbol:   sym.Name,
			TypeName: sym.Type.Name(),
			Expr:     exprType.Name(),
		}
	}
	return nil
}

// CheckIs validates a discrimination check of exprType against target
// and returns the narrowed type. For a union the target must be one of
// the immediate members; for a nominal type only the type itself is a
// legal (if redundant) target. The returned type is valid only for the
// caller's guarded branch: the checker keeps no state tying it back to
// the original expression.
func (c *Checker) CheckIs(exprType, target *Type) (*Type, error) {
	if exprType.IsUnion() {
		if !exprType.Contains(target) {
			return nil, &SemanticError{
				Kind: InvalidTypeTest,
				Expr: target.Name(),
			}
		}
		return target, nil
	}
	if !exprType.Equals(target) {
		return nil, &SemanticError{
			Kind:     InvalidTypeTest,
			TypeName: exprType.Name(),
			Expr:     target.Name(),
		}
	}
	return target, nil
}

// CheckFieldAccess validates accessing field on a value of type t.
// Union-typed values always fail, whatever their members define: they
// must be discriminated first. Nominal types are checked against the
// field schema.
func (c *Checker) CheckFieldAccess(t *Type, field string) error {
	if t.IsUnion() {
		return &SemanticError{
			Kind:  UnsafeFieldAccess,
			Field: field,
		}
	}
	if !c.schema.HasField(t.Name(), field) {
		return &SemanticError{
			Kind:     UnknownField,
			TypeName: t.Name(),
			Field:    field,
		}
	}
	return nil
}
