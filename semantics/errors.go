package semantics

import "fmt"

// ErrorKind identifies which check rejected the program construct.
type ErrorKind int

const (
	TypeMismatch ErrorKind = iota
	UnionMembership
	InvalidTypeTest
	UnsafeFieldAccess
	UnknownField
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case UnionMembership:
		return "UnionMembership"
	case InvalidTypeTest:
		return "InvalidTypeTest"
	case UnsafeFieldAccess:
		return "UnsafeFieldAccess"
	case UnknownField:
		return "UnknownField"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// SemanticError is the single failure category every check reports.
// Kind selects the diagnostic; the remaining fields carry whatever
// names that diagnostic mentions.
type SemanticError struct {
	Kind     ErrorKind
	Symbol   string // variable involved in an assignment failure
	Field    string // field involved in an access failure
	TypeName string // the type the check ran against
	Expr     string // the offending expression or target type
}

func (e *SemanticError) Error() string {
	return "Semantic Error: " + e.message()
}

func (e *SemanticError) message() string {
	switch e.Kind {
	case TypeMismatch:
		return fmt.Sprintf("Type mismatch in assignment to '%s': cannot assign '%s' to '%s'",
			e.Symbol, e.Expr, e.TypeName)
	case UnionMembership:
		return fmt.Sprintf("Cannot assign type '%s' to union variable '%s': not a member of the declared union",
			e.Expr, e.Symbol)
	case InvalidTypeTest:
		if e.TypeName == "" {
			return fmt.Sprintf("Invalid type test: '%s' is not part of the union", e.Expr)
		}
		return fmt.Sprintf("Invalid type test: '%s' does not match '%s'", e.Expr, e.TypeName)
	case UnsafeFieldAccess:
		return fmt.Sprintf("Unsafe field access '%s' on union type: type discrimination required", e.Field)
	case UnknownField:
		return fmt.Sprintf("Type '%s' has no field '%s'", e.TypeName, e.Field)
	default:
		return fmt.Sprintf("unknown error kind %d", int(e.Kind))
	}
}
