package names

import "strings"

//go:generate go tool stringer -type=Namespace -linecomment -output=namespace_string.go

// Namespace is one naming scheme for the same underlying symbol.
type Namespace int

const (
	Notch  Namespace = iota // notch
	Searge                  // srg
	MCP                     // mcp

	// Count is the number of namespaces.
	Count = int(iota)
)

// All returns every namespace in iteration order.
func All() []Namespace {
	return []Namespace{Notch, Searge, MCP}
}

// Valid reports whether ns is one of the defined namespaces.
func (ns Namespace) Valid() bool {
	return ns >= Notch && int(ns) < Count
}

// Parse maps external text to a namespace. It accepts the column names used
// by the mapping tables as well as descriptive aliases.
func Parse(text string) (Namespace, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "notch", "raw", "obf", "original":
		return Notch, nil
	case "srg", "searge", "intermediate":
		return Searge, nil
	case "mcp", "dev", "named":
		return MCP, nil
	default:
		return 0, &InvalidNamespaceError{Text: text}
	}
}
