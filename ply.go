package ply

import (
	"fmt"
	"maps"

	"github.com/plylang/ply-go/internal/toposort"
	"github.com/plylang/ply-go/semantics"
)

// Diagnostic is one semantic failure, tagged with the path of the
// statement that produced it (e.g. "checks[2].then[0]").
type Diagnostic struct {
	Path string
	Err  *semantics.SemanticError
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Path, d.Err)
}

type analyzer struct {
	checker *semantics.Checker
	symbols map[string]*semantics.Symbol
	named   map[string]*semantics.Type
	diags   []Diagnostic
}

// Analyze builds the type registry, field schema and symbol table from
// the program's declarations and then runs every check. Semantic
// failures are collected as diagnostics and analysis continues with the
// next statement; a malformed program (unknown names, duplicate or
// cyclic declarations) aborts with an error instead.
func Analyze(p Program) ([]Diagnostic, error) {
	a, err := newAnalyzer(p)
	if err != nil {
		return nil, err
	}
	if err := a.checkStmts(p.Checks, nil, "checks"); err != nil {
		return nil, err
	}
	return a.diags, nil
}

func newAnalyzer(p Program) (*analyzer, error) {
	// Step 1: collect declarations and their dependencies. A union
	// depends on each of its member types; nominal types are leaves.
	decls := make(map[string]TypeDecl, len(p.Types))
	graph := make(map[string]map[string]bool, len(p.Types))
	for _, d := range p.Types {
		if _, exists := decls[d.Name]; exists {
			return nil, fmt.Errorf("type '%s' is declared more than once", d.Name)
		}
		decls[d.Name] = d
		deps := make(map[string]bool, len(d.Union))
		for _, m := range d.Union {
			deps[m] = true
		}
		graph[d.Name] = deps
	}

	// Step 2: process type declarations in dependency order, so a
	// union may be written before the types it names.
	sorted, err := toposort.Sort(graph, "type")
	if err != nil {
		return nil, err
	}

	registry := semantics.NewRegistry()
	schema := semantics.NewFieldSchema()
	named := make(map[string]*semantics.Type, len(sorted))
	for _, name := range sorted {
		d := decls[name]
		if len(d.Union) == 0 {
			named[name] = registry.Nominal(name)
			if err := schema.Register(name, d.Fields...); err != nil {
				return nil, err
			}
			continue
		}
		members := make([]*semantics.Type, len(d.Union))
		for i, m := range d.Union {
			members[i] = named[m]
			if members[i] == nil {
				return nil, fmt.Errorf("type '%s' depends on undefined type '%s'", name, m)
			}
		}
		u, err := registry.Union(members...)
		if err != nil {
			return nil, fmt.Errorf("type '%s': %w", name, err)
		}
		named[name] = u
	}

	symbols := make(map[string]*semantics.Symbol, len(p.Symbols))
	for _, s := range p.Symbols {
		if _, exists := symbols[s.Name]; exists {
			return nil, fmt.Errorf("symbol '%s' is declared more than once", s.Name)
		}
		t, ok := named[s.Type]
		if !ok {
			return nil, fmt.Errorf("symbol '%s' has undeclared type '%s'", s.Name, s.Type)
		}
		symbols[s.Name] = &semantics.Symbol{Name: s.Name, Type: t}
	}

	return &analyzer{
		checker: semantics.NewChecker(schema),
		symbols: symbols,
		named:   named,
	}, nil
}

// checkStmts walks a statement list. The scope maps symbol names to
// their narrowed types inside "is" blocks; outside any block it is nil
// and every symbol has its declared type.
func (a *analyzer) checkStmts(stmts []Stmt, scope map[string]*semantics.Type, path string) error {
	for i, s := range stmts {
		at := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case s.Assign != nil:
			if err := a.checkAssign(s.Assign, at); err != nil {
				return err
			}
		case s.Is != nil:
			if err := a.checkIs(s.Is, scope, at); err != nil {
				return err
			}
		case s.Access != nil:
			if err := a.checkAccess(s.Access, scope, at); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *analyzer) checkAssign(s *AssignStmt, at string) error {
	sym, ok := a.symbols[s.To]
	if !ok {
		return fmt.Errorf("%s: assignment to undeclared symbol '%s'", at, s.To)
	}
	exprType, ok := a.named[s.Type]
	if !ok {
		return fmt.Errorf("%s: undeclared type '%s'", at, s.Type)
	}
	// Assignment is always checked against the declared type: only
	// field access inside a guarded branch sees the narrowed type.
	a.report(at, a.checker.CheckAssignment(sym, exprType))
	return nil
}

func (a *analyzer) checkIs(s *IsStmt, scope map[string]*semantics.Type, at string) error {
	exprType, err := a.typeOf(s.Expr, scope, at)
	if err != nil {
		return err
	}
	target, ok := a.named[s.Target]
	if !ok {
		return fmt.Errorf("%s: undeclared type '%s'", at, s.Target)
	}
	narrowed, checkErr := a.checker.CheckIs(exprType, target)
	if checkErr != nil {
		// The guarded branch has no valid type to run under, so its
		// statements are skipped.
		a.report(at, checkErr)
		return nil
	}
	inner := maps.Clone(scope)
	if inner == nil {
		inner = make(map[string]*semantics.Type, 1)
	}
	inner[s.Expr] = narrowed
	return a.checkStmts(s.Then, inner, at+".then")
}

func (a *analyzer) checkAccess(s *AccessStmt, scope map[string]*semantics.Type, at string) error {
	exprType, err := a.typeOf(s.Expr, scope, at)
	if err != nil {
		return err
	}
	a.report(at, a.checker.CheckFieldAccess(exprType, s.Field))
	return nil
}

// typeOf resolves the static type of a symbol reference, preferring a
// narrowed type from the enclosing "is" blocks over the declared one.
func (a *analyzer) typeOf(name string, scope map[string]*semantics.Type, at string) (*semantics.Type, error) {
	if t, ok := scope[name]; ok {
		return t, nil
	}
	sym, ok := a.symbols[name]
	if !ok {
		return nil, fmt.Errorf("%s: reference to undeclared symbol '%s'", at, name)
	}
	return sym.Type, nil
}

func (a *analyzer) report(at string, err error) {
	if err == nil {
		return
	}
	a.diags = append(a.diags, Diagnostic{Path: at, Err: err.(*semantics.SemanticError)})
}
