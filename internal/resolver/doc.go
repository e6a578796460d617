// Package resolver provides the mapping registry that answers "what is this
// symbol called in namespace X" for classes, fields and methods.
//
// Resolution pipeline:
//  1. Fetch and decode the classes, fields and methods tables (concurrently)
//  2. Index classes by internal and regular name under every namespace
//  3. Attach each field and method to its owner class, found by its notch name
//  4. Answer lookups from the now read-only indices
//
// Steps 1-3 run once, on the first call to Initialize or to any lookup.
// Concurrent first callers all wait for that single run and observe the same
// outcome, including a failure: a resolver whose tables are malformed or
// inconsistent never exposes a partially built state.
//
// # Fallback chain
//
// Member references taken from bytecode are resolved through a chain that
// depends on the running environment:
//
//   - In dev mode only MCP names are tried.
//   - Otherwise Searge names are tried first, since they are stable across
//     releases, then Notch names.
package resolver
