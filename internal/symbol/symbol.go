// Package symbol implements the two-scope Jack symbol table: a
// class-level scope for static/field variables and a subroutine-level
// scope for argument/local variables, with dense per-kind indices.
package symbol

import "fmt"

// Kind is the storage class of a Symbol.
type Kind string

const (
	Invalid  Kind = ""
	Static   Kind = "static"
	Field    Kind = "field"
	Argument Kind = "argument"
	Local    Kind = "local"
)

// Symbol is one entry of the symbol table.
type Symbol struct {
	Name  string
	Type  string
	Kind  Kind
	Index int
}

// ResolutionError reports a variable reference or redefinition that
// could not be resolved: either the name is used but never declared in
// either scope, or the same name is declared twice in one scope.
type ResolutionError struct {
	Name string
	Line int
	Msg  string
}

func (e *ResolutionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s %q", e.Line, e.Msg, e.Name)
	}
	return fmt.Sprintf("%s %q", e.Msg, e.Name)
}

func isClassScope(k Kind) bool {
	return k == Static || k == Field
}

// Table holds the class scope and subroutine scope of a single class
// under compilation. The zero value is ready to use.
type Table struct {
	class      []Symbol
	subroutine []Symbol
}

// StartSubroutine empties the subroutine scope, to be called at the
// start of every subroutine body.
func (t *Table) StartSubroutine() {
	t.subroutine = nil
}

// ClearClass empties the class scope, to be called once at the start of
// compiling a class.
func (t *Table) ClearClass() {
	t.class = nil
}

// Define appends a new symbol of the given kind to the scope implied by
// kind (class scope for Static/Field, subroutine scope for
// Argument/Local), assigning it the next dense index for that kind. It
// fails if name is already declared in that same scope.
func (t *Table) Define(name, typ string, kind Kind) (Symbol, error) {
	scope := t.scopeFor(kind)
	for _, s := range *scope {
		if s.Name == name {
			return Symbol{}, &ResolutionError{Name: name, Msg: "duplicate declaration of"}
		}
	}
	sym := Symbol{Name: name, Type: typ, Kind: kind, Index: t.Count(kind)}
	*scope = append(*scope, sym)
	return sym, nil
}

func (t *Table) scopeFor(kind Kind) *[]Symbol {
	if isClassScope(kind) {
		return &t.class
	}
	return &t.subroutine
}

// Count returns the number of symbols of kind already declared in the
// scope implied by kind.
func (t *Table) Count(kind Kind) int {
	n := 0
	for _, s := range *t.scopeFor(kind) {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// lookup searches subroutine scope then class scope.
func (t *Table) lookup(name string) (Symbol, bool) {
	for _, s := range t.subroutine {
		if s.Name == name {
			return s, true
		}
	}
	for _, s := range t.class {
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}

// Lookup returns the full symbol for name, searching subroutine scope
// before class scope.
func (t *Table) Lookup(name string) (Symbol, bool) {
	return t.lookup(name)
}

// Kind returns the kind of name, or false if undeclared.
func (t *Table) Kind(name string) (Kind, bool) {
	s, ok := t.lookup(name)
	return s.Kind, ok
}

// Type returns the declared type of name, or false if undeclared.
func (t *Table) Type(name string) (string, bool) {
	s, ok := t.lookup(name)
	return s.Type, ok
}

// Index returns the per-kind index of name, or false if undeclared.
func (t *Table) Index(name string) (int, bool) {
	s, ok := t.lookup(name)
	return s.Index, ok
}
