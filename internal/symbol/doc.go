// Package symbol provides the class, field and method records indexed by the
// resolver.
//
// Key types:
//   - Class: internal ("a/b/C") and regular ("a.b.C") identifiers plus
//     nested indices of its fields and methods
//   - Field: simple name per namespace, keyed by that name in its class
//   - Method: simple name and descriptor per namespace, keyed by name+descriptor
package symbol
