// Package index provides the lookup structure behind every mapping table:
// a value reachable by its name in any namespace.
//
// An Index keeps one map per namespace and remembers, for every member, the
// Identifier it is currently registered under. Re-registering a member under
// a changed Identifier first evicts the old names, so a member is never
// reachable through more than one name per namespace. A value whose name is
// taken by another value is dropped entirely.
package index
