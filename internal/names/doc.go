// Package names defines the fixed set of naming schemes a symbol is known by
// and the Identifier value that carries one name per scheme.
//
// # Namespaces
//
// Every class, field and method exists under three parallel names:
//
//   - Notch: the raw, obfuscated name found in the shipped artifact (e.g. "abc").
//   - Searge: the intermediate name, stable across releases (e.g. "field_70170_p").
//   - MCP: the developer-friendly name (e.g. "worldObj").
//
// Namespaces are ordered only so that iteration is deterministic.
//
// # Identifiers
//
// An Identifier is built from a row of a mapping table. FromRow addresses the
// three names with an offset and a stride, which covers both the simple
// "notch,srg,mcp" rows and the paired "name,desc,name,desc,name,desc" method
// rows. Each raw name goes through a Transform before it is interned.
package names
