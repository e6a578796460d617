package resolver

import (
	"fmt"
	"strings"

	"srgmap/internal/names"
)

// InconsistentDataError reports a member row whose owner class is absent from
// the classes table.
type InconsistentDataError struct {
	Resource string
	Line     int
	// Owner is the notch name of the missing class.
	Owner string
	// Member is the owner-qualified notch name of the member.
	Member string
}

func (e *InconsistentDataError) Error() string {
	return fmt.Sprintf("%s:%d: owner class %q of %q not found in classes table",
		e.Resource, e.Line, e.Owner, e.Member)
}

// ClassNotFoundError reports a class lookup miss.
type ClassNotFoundError struct {
	Form      Form
	Namespace names.Namespace
	Name      string
	Err       error
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("class %q not found (form %s, namespace %s)", e.Name, e.Form, e.Namespace)
}

func (e *ClassNotFoundError) Unwrap() error { return e.Err }

// SymbolKind tells fields and methods apart in SymbolNotFoundError.
type SymbolKind string

const (
	KindField  SymbolKind = "field"
	KindMethod SymbolKind = "method"
)

// SymbolNotFoundError reports that a member reference matched nothing along
// the fallback chain.
type SymbolNotFoundError struct {
	Kind       SymbolKind
	Owner      string
	Name       string
	Descriptor string
	DevMode    bool
	// Tried lists the namespaces attempted, in order.
	Tried []names.Namespace
	// Causes holds the miss of each attempt, aligned with Tried.
	Causes []error
}

func (e *SymbolNotFoundError) Error() string {
	symbol := fmt.Sprintf("%s %s.%s%s", e.Kind, e.Owner, e.Name, e.Descriptor)

	if e.DevMode {
		return fmt.Sprintf("%s not found under %s names: dev mode resolves developer names only, "+
			"srg and notch names are not loaded outside a production environment", symbol, names.MCP)
	}

	tried := make([]string, 0, len(e.Tried))
	for _, ns := range e.Tried {
		tried = append(tried, ns.String())
	}

	return fmt.Sprintf("%s not found: neither fallback namespace matched (tried %s)",
		symbol, strings.Join(tried, ", then "))
}

func (e *SymbolNotFoundError) Unwrap() []error { return e.Causes }
