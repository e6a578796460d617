package resolver

import (
	"slices"

	"srgmap/internal/names"
	"srgmap/internal/symbol"
)

var (
	devChain  = []names.Namespace{names.MCP}
	prodChain = []names.Namespace{names.Searge, names.Notch}
)

// Chain returns the namespaces tried, in order, when resolving a member
// reference in the given mode.
func Chain(dev bool) []names.Namespace {
	return slices.Clone(chain(dev))
}

func chain(dev bool) []names.Namespace {
	if dev {
		return devChain
	}

	return prodChain
}

// ResolveField resolves a field reference using the environment's mode.
func (r *Resolver) ResolveField(owner, name string) (*symbol.Field, error) {
	return r.ResolveFieldMode(owner, name, r.env.DevMode())
}

// ResolveMethod resolves a method reference using the environment's mode.
func (r *Resolver) ResolveMethod(owner, name, descriptor string) (*symbol.Method, error) {
	return r.ResolveMethodMode(owner, name, descriptor, r.env.DevMode())
}

// ResolveFieldMode resolves the field name of class owner along the chain
// for the given mode.
func (r *Resolver) ResolveFieldMode(owner, name string, dev bool) (*symbol.Field, error) {
	st, err := r.ready()
	if err != nil {
		return nil, err
	}

	miss := &SymbolNotFoundError{Kind: KindField, Owner: owner, Name: name, DevMode: dev}

	return resolve(st, owner, dev, miss, func(c *symbol.Class, ns names.Namespace) (*symbol.Field, error) {
		return c.Field(ns, name)
	})
}

// ResolveMethodMode resolves the method name with the given descriptor of
// class owner along the chain for the given mode.
func (r *Resolver) ResolveMethodMode(owner, name, descriptor string, dev bool) (*symbol.Method, error) {
	st, err := r.ready()
	if err != nil {
		return nil, err
	}

	miss := &SymbolNotFoundError{
		Kind:       KindMethod,
		Owner:      owner,
		Name:       name,
		Descriptor: descriptor,
		DevMode:    dev,
	}

	return resolve(st, owner, dev, miss, func(c *symbol.Class, ns names.Namespace) (*symbol.Method, error) {
		return c.Method(ns, name, descriptor)
	})
}

// resolve walks the chain: for each namespace it finds the owner under that
// namespace, then the member under the same namespace. The first hit wins.
func resolve[T any](
	st *state,
	owner string,
	dev bool,
	miss *SymbolNotFoundError,
	member func(*symbol.Class, names.Namespace) (T, error),
) (T, error) {
	for _, ns := range chain(dev) {
		c, err := st.internal.Get(ns, owner)
		if err == nil {
			var v T
			if v, err = member(c, ns); err == nil {
				return v, nil
			}
		}

		miss.Tried = append(miss.Tried, ns)
		miss.Causes = append(miss.Causes, err)
	}

	var zero T

	return zero, miss
}
