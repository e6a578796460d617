package index

import (
	"fmt"
	"slices"

	"srgmap/internal/names"
)

// NotFoundError reports a name with no entry under the given namespace.
type NotFoundError struct {
	Namespace names.Namespace
	Name      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q not found in namespace %s", e.Name, e.Namespace)
}

// Index maps (namespace, name) pairs to values. The zero value is not usable;
// create one with New.
type Index[V comparable] struct {
	byName  [names.Count]map[string]V
	members map[V]names.Identifier
}

// New creates an empty Index.
func New[V comparable]() *Index[V] {
	idx := &Index[V]{
		members: make(map[V]names.Identifier),
	}
	for i := range idx.byName {
		idx.byName[i] = make(map[string]V)
	}

	return idx
}

// Put registers v under every name of id.
//
// If v is already a member, the names it was registered under are evicted
// from every namespace first. Any other value currently holding one of the
// new names is then displaced: all its entries are removed and it stops
// being a member. Finally the new names are inserted, so every member owns
// exactly one entry per namespace.
func (idx *Index[V]) Put(id names.Identifier, v V) {
	if prior, ok := idx.members[v]; ok {
		idx.evict(prior, v)
	}

	for _, ns := range names.All() {
		if w, ok := idx.byName[ns][id.Name(ns)]; ok && w != v {
			idx.evict(idx.members[w], w)
			delete(idx.members, w)
		}
	}

	idx.members[v] = id
	for _, ns := range names.All() {
		idx.byName[ns][id.Name(ns)] = v
	}
}

func (idx *Index[V]) evict(prior names.Identifier, v V) {
	for _, ns := range names.All() {
		name := prior.Name(ns)
		if cur, ok := idx.byName[ns][name]; ok && cur == v {
			delete(idx.byName[ns], name)
		}
	}
}

// Get returns the value registered under name in ns.
func (idx *Index[V]) Get(ns names.Namespace, name string) (V, error) {
	if ns.Valid() {
		if v, ok := idx.byName[ns][name]; ok {
			return v, nil
		}
	}

	var zero V

	return zero, &NotFoundError{Namespace: ns, Name: name}
}

// ContainsKey reports whether name is registered in ns.
func (idx *Index[V]) ContainsKey(ns names.Namespace, name string) bool {
	if !ns.Valid() {
		return false
	}

	_, ok := idx.byName[ns][name]

	return ok
}

// Len returns the number of members.
func (idx *Index[V]) Len() int {
	return len(idx.members)
}

// Names returns the sorted names registered in ns.
func (idx *Index[V]) Names(ns names.Namespace) []string {
	if !ns.Valid() {
		return nil
	}

	out := make([]string, 0, len(idx.byName[ns]))
	for name := range idx.byName[ns] {
		out = append(out, name)
	}

	slices.Sort(out)

	return out
}

// Values returns all members in unspecified order.
func (idx *Index[V]) Values() []V {
	out := make([]V, 0, len(idx.members))
	for v := range idx.members {
		out = append(out, v)
	}

	return out
}
