// Package table reads the comma-separated mapping tables that feed the
// resolver.
//
// Three tables are expected, each with a header row:
//
//	classes.csv  notch,srg,mcp
//	fields.csv   notch,srg,mcp                  (owner-qualified names)
//	methods.csv  notch,sig,srg,sig,mcp,sig      (owner-qualified names)
//
// The column order and the comma delimiter are fixed by the existing data
// files. Tables are obtained by name from a Provider, which hides where the
// bundled data actually lives.
package table
