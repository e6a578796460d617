// Package intern provides the string pool shared by every mapping entity.
//
// Mapping tables repeat the same text constantly: owner class names appear
// on every member row, descriptors such as "()V" are shared by thousands of
// methods, and many names are identical across namespaces. Interning makes
// all equal names share one allocation, so an Identifier built from any row
// points at the same backing bytes as every other Identifier with that name.
package intern
