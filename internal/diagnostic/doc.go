// Package diagnostic provides structured findings about mapping tables.
//
// Strict loading stops at the first bad row. The check pass instead walks
// every table and records what it finds:
//   - Malformed rows and members whose owner class is missing (errors)
//   - Names registered twice within a namespace (warnings)
//   - Symbols whose name is identical in every namespace (infos)
package diagnostic
