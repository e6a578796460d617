package names

import "strings"

// Transform rewrites a raw table cell before it is interned.
type Transform func(string) string

// Identity leaves the name unchanged.
func Identity(s string) string { return s }

// Dotted converts an internal "a/b/C" class name to its regular "a.b.C" form.
func Dotted(s string) string {
	return strings.ReplaceAll(s, "/", ".")
}

// SimpleName strips the owner path from an owner-qualified member name:
// "net/minecraft/Foo/bar" becomes "bar".
func SimpleName(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}

	return s
}

// OwnerPath returns the owner part of an owner-qualified member name:
// "net/minecraft/Foo/bar" becomes "net/minecraft/Foo". Names without an owner
// yield the empty string.
func OwnerPath(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[:i]
	}

	return ""
}
