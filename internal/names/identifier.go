package names

import "strings"

// Interner returns a canonical instance for equal strings.
type Interner interface {
	Intern(s string) string
}

// Identifier holds one interned name per namespace for a single symbol.
// Identifiers are comparable; equal identifiers name the same symbol.
type Identifier struct {
	names [Count]string
}

// New builds an Identifier from explicit names.
func New(notch, srg, mcp string, pool Interner) Identifier {
	return Identifier{names: [Count]string{
		pool.Intern(notch),
		pool.Intern(srg),
		pool.Intern(mcp),
	}}
}

// FromRow reads fields[offset], fields[offset+stride] and
// fields[offset+2*stride] as the Notch, Searge and MCP names, applies
// transform to each and interns the results.
func FromRow(fields []string, offset, stride int, transform Transform, pool Interner) (Identifier, error) {
	want := offset + (Count-1)*stride + 1
	if offset < 0 || stride < 0 || len(fields) < want {
		return Identifier{}, &MalformedRowError{Got: len(fields), Want: want}
	}

	if transform == nil {
		transform = Identity
	}

	var id Identifier
	for i := range Count {
		id.names[i] = pool.Intern(transform(fields[offset+i*stride]))
	}

	return id, nil
}

// Fuse concatenates a's and b's names per namespace with delimiter between
// them. Method keys are the fusion of the name and the descriptor.
func Fuse(a, b Identifier, delimiter string, pool Interner) Identifier {
	var id Identifier
	for i := range Count {
		id.names[i] = pool.Intern(a.names[i] + delimiter + b.names[i])
	}

	return id
}

// Map derives a new Identifier by applying transform to every name.
func (id Identifier) Map(transform Transform, pool Interner) Identifier {
	var out Identifier
	for i := range Count {
		out.names[i] = pool.Intern(transform(id.names[i]))
	}

	return out
}

// Name returns the name under ns. It panics if ns is not a defined namespace.
func (id Identifier) Name(ns Namespace) string {
	return id.names[ns]
}

// Lookup returns the name under ns, or an InvalidNamespaceError for a value
// outside the defined set.
func (id Identifier) Lookup(ns Namespace) (string, error) {
	if !ns.Valid() {
		return "", &InvalidNamespaceError{Namespace: ns}
	}

	return id.names[ns], nil
}

// IsZero reports whether id was never initialized.
func (id Identifier) IsZero() bool {
	return id == Identifier{}
}

// String renders the names as "notch -> srg -> mcp".
func (id Identifier) String() string {
	return strings.Join(id.names[:], " -> ")
}
