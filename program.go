package ply

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// TypeDecl declares either a nominal type, optionally with the fields
// it defines, or a named alias for a union over previously declared
// types. The two forms are mutually exclusive.
type TypeDecl struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields,omitempty"`
	Union  []string `yaml:"union,omitempty"`
}

// SymbolDecl binds a variable name to a declared type name.
type SymbolDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Stmt is one check to run. Exactly one of the three statement forms
// must be set.
type Stmt struct {
	Assign *AssignStmt `yaml:"assign,omitempty"`
	Is     *IsStmt     `yaml:"is,omitempty"`
	Access *AccessStmt `yaml:"access,omitempty"`
}

// AssignStmt checks assigning an expression of the given static type
// to a symbol.
type AssignStmt struct {
	To   string `yaml:"to"`
	Type string `yaml:"type"`
}

// IsStmt checks a type discrimination ("is") test on a symbol. The
// statements under Then run with the symbol narrowed to the target
// type; the narrowing ends with the block.
type IsStmt struct {
	Expr   string `yaml:"expr"`
	Target string `yaml:"target"`
	Then   []Stmt `yaml:"then,omitempty"`
}

// AccessStmt checks a field access on a symbol.
type AccessStmt struct {
	Expr  string `yaml:"expr"`
	Field string `yaml:"field"`
}

// Program is a declarative description of the constructs to check:
// type declarations, symbol declarations and a statement list.
type Program struct {
	Types   []TypeDecl   `yaml:"types,omitempty"`
	Symbols []SymbolDecl `yaml:"symbols,omitempty"`
	Checks  []Stmt       `yaml:"checks,omitempty"`
}

// LoadProgram parses a YAML program description.
func LoadProgram(data []byte) (Program, error) {
	var p Program
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return Program{}, fmt.Errorf("parsing program: %w", err)
	}
	if err := p.validate(); err != nil {
		return Program{}, err
	}
	return p, nil
}

// LoadProgramFile reads and parses a YAML program file.
func LoadProgramFile(path string) (Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Program{}, err
	}
	return LoadProgram(data)
}

func (p Program) validate() error {
	for _, d := range p.Types {
		if d.Name == "" {
			return fmt.Errorf("type declaration is missing a name")
		}
		if len(d.Fields) > 0 && len(d.Union) > 0 {
			return fmt.Errorf("type '%s' declares both fields and union members", d.Name)
		}
	}
	for _, s := range p.Symbols {
		if s.Name == "" {
			return fmt.Errorf("symbol declaration is missing a name")
		}
		if s.Type == "" {
			return fmt.Errorf("symbol '%s' is missing a type", s.Name)
		}
	}
	return validateStmts(p.Checks, "checks")
}

func validateStmts(stmts []Stmt, path string) error {
	for i, s := range stmts {
		at := fmt.Sprintf("%s[%d]", path, i)
		n := 0
		if s.Assign != nil {
			n++
		}
		if s.Is != nil {
			n++
		}
		if s.Access != nil {
			n++
		}
		if n != 1 {
			return fmt.Errorf("%s: statement must have exactly one of assign, is, access", at)
		}
		if s.Is != nil {
			if err := validateStmts(s.Is.Then, at+".then"); err != nil {
				return err
			}
		}
	}
	return nil
}
