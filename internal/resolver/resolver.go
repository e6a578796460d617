package resolver

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"srgmap/internal/index"
	"srgmap/internal/intern"
	"srgmap/internal/names"
	"srgmap/internal/symbol"
	"srgmap/internal/table"
)

// poolCapacity is the initial size of the string pool; the shipped tables
// hold a few tens of thousands of distinct names.
const poolCapacity = 1 << 15

// Resolver indexes the mapping tables and answers lookups. Create one with
// New; the tables are loaded on first use.
type Resolver struct {
	provider  table.Provider
	resources table.Resources
	env       Environment
	logger    *slog.Logger

	once  sync.Once
	state *state
	err   error
}

// state is everything built by a successful load. It is never modified after
// it is published.
type state struct {
	pool     *intern.Pool
	internal *index.Index[*symbol.Class]
	regular  *index.Index[*symbol.Class]
	fields   int
	methods  int
}

// Stats summarizes a loaded resolver.
type Stats struct {
	Classes int
	Fields  int
	Methods int
	// Strings is the number of distinct interned names.
	Strings int
}

// New creates a resolver reading its tables from provider.
func New(provider table.Provider, opts ...Option) *Resolver {
	r := &Resolver{
		provider:  provider,
		resources: table.DefaultResources(),
		env:       StaticEnvironment(false),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Initialize loads and indexes the tables. Only the first call does any
// work; every call returns the outcome of that first load.
func (r *Resolver) Initialize() error {
	r.once.Do(func() {
		r.state, r.err = r.load()
		if r.err != nil {
			r.logger.Error("mapping tables rejected", "error", r.err)
		}
	})

	return r.err
}

// ready initializes the resolver if needed and returns its state.
func (r *Resolver) ready() (*state, error) {
	if err := r.Initialize(); err != nil {
		return nil, fmt.Errorf("mappings unavailable: %w", err)
	}

	return r.state, nil
}

func (r *Resolver) load() (*state, error) {
	start := time.Now()

	tables, err := r.fetch()
	if err != nil {
		return nil, err
	}

	st := &state{
		pool:     intern.New(poolCapacity),
		internal: index.New[*symbol.Class](),
		regular:  index.New[*symbol.Class](),
	}

	// Members name their owner by its notch class name, so classes go first.
	if err := st.addClasses(tables[0]); err != nil {
		return nil, err
	}

	if err := st.addFields(tables[1]); err != nil {
		return nil, err
	}

	if err := st.addMethods(tables[2]); err != nil {
		return nil, err
	}

	for _, c := range st.internal.Values() {
		st.fields += c.Fields.Len()
		st.methods += c.Methods.Len()
	}

	r.logger.Info("mapping tables loaded",
		"classes", st.internal.Len(),
		"fields", st.fields,
		"methods", st.methods,
		"strings", st.pool.Size(),
		"duration", time.Since(start),
	)

	return st, nil
}

// fetch reads and decodes the three tables concurrently. The result is in
// classes, fields, methods order.
func (r *Resolver) fetch() ([]*table.Table, error) {
	sources := []struct {
		name    string
		columns int
	}{
		{r.resources.Classes, table.ClassColumns},
		{r.resources.Fields, table.FieldColumns},
		{r.resources.Methods, table.MethodColumns},
	}

	tables := make([]*table.Table, len(sources))

	var g errgroup.Group

	for i, src := range sources {
		g.Go(func() error {
			data, err := r.provider.ReadResource(src.name)
			if err != nil {
				return err
			}

			t, err := table.Decode(src.name, data, src.columns)
			if err != nil {
				return err
			}

			r.logger.Debug("mapping table decoded", "resource", src.name, "rows", len(t.Rows))
			tables[i] = t

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tables, nil
}

func (st *state) addClasses(t *table.Table) error {
	for _, row := range t.Rows {
		id, err := names.FromRow(row.Fields, 0, 1, names.Identity, st.pool)
		if err != nil {
			return locate(err, t.Name, row.Line)
		}

		c := symbol.NewClass(id, st.pool)
		st.internal.Put(c.Internal, c)
		st.regular.Put(c.Regular, c)
	}

	return nil
}

func (st *state) addFields(t *table.Table) error {
	for _, row := range t.Rows {
		qualified, err := names.FromRow(row.Fields, 0, 1, names.Identity, st.pool)
		if err != nil {
			return locate(err, t.Name, row.Line)
		}

		owner, err := st.owner(t.Name, row.Line, qualified)
		if err != nil {
			return err
		}

		owner.AddField(qualified, st.pool)
	}

	return nil
}

func (st *state) addMethods(t *table.Table) error {
	for _, row := range t.Rows {
		qualified, err := names.FromRow(row.Fields, 0, 2, names.Identity, st.pool)
		if err != nil {
			return locate(err, t.Name, row.Line)
		}

		descriptor, err := names.FromRow(row.Fields, 1, 2, names.Identity, st.pool)
		if err != nil {
			return locate(err, t.Name, row.Line)
		}

		owner, err := st.owner(t.Name, row.Line, qualified)
		if err != nil {
			return err
		}

		owner.AddMethod(qualified, descriptor, st.pool)
	}

	return nil
}

// owner finds the class of an owner-qualified member by its notch name.
func (st *state) owner(resource string, line int, qualified names.Identifier) (*symbol.Class, error) {
	member := qualified.Name(names.Notch)
	ownerName := names.OwnerPath(member)

	c, err := st.internal.Get(names.Notch, ownerName)
	if err != nil {
		return nil, &InconsistentDataError{
			Resource: resource,
			Line:     line,
			Owner:    ownerName,
			Member:   member,
		}
	}

	return c, nil
}

// locate attaches the table position to a row error.
func locate(err error, resource string, line int) error {
	var rowErr *names.MalformedRowError
	if errors.As(err, &rowErr) {
		located := *rowErr
		located.Resource = resource
		located.Line = line

		return &located
	}

	return fmt.Errorf("%s:%d: %w", resource, line, err)
}

func (st *state) classes(form Form) (*index.Index[*symbol.Class], error) {
	switch form {
	case Internal:
		return st.internal, nil
	case Regular:
		return st.regular, nil
	default:
		return nil, fmt.Errorf("invalid class form %s", form)
	}
}

// ClassForName returns the class called name in namespace ns, looked up in
// the given form.
func (r *Resolver) ClassForName(form Form, ns names.Namespace, name string) (*symbol.Class, error) {
	st, err := r.ready()
	if err != nil {
		return nil, err
	}

	classes, err := st.classes(form)
	if err != nil {
		return nil, &ClassNotFoundError{Form: form, Namespace: ns, Name: name, Err: err}
	}

	c, err := classes.Get(ns, name)
	if err != nil {
		return nil, &ClassNotFoundError{Form: form, Namespace: ns, Name: name, Err: err}
	}

	return c, nil
}

// ContainsClass reports whether a class called name exists in namespace ns.
// It returns false if the tables could not be loaded.
func (r *Resolver) ContainsClass(form Form, ns names.Namespace, name string) bool {
	st, err := r.ready()
	if err != nil {
		return false
	}

	classes, err := st.classes(form)
	if err != nil {
		return false
	}

	return classes.ContainsKey(ns, name)
}

// RemapClass converts a class name from one namespace to another, keeping
// the form.
func (r *Resolver) RemapClass(form Form, from, to names.Namespace, name string) (string, error) {
	c, err := r.ClassForName(form, from, name)
	if err != nil {
		return "", err
	}

	if form == Regular {
		return c.Regular.Lookup(to)
	}

	return c.Internal.Lookup(to)
}

// Classes returns every class ordered by notch name.
func (r *Resolver) Classes() ([]*symbol.Class, error) {
	st, err := r.ready()
	if err != nil {
		return nil, err
	}

	out := st.internal.Values()
	slices.SortFunc(out, func(a, b *symbol.Class) int {
		return cmp.Compare(a.Internal.Name(names.Notch), b.Internal.Name(names.Notch))
	})

	return out, nil
}

// ClassNames returns the sorted class names of namespace ns in the given form.
func (r *Resolver) ClassNames(form Form, ns names.Namespace) ([]string, error) {
	st, err := r.ready()
	if err != nil {
		return nil, err
	}

	classes, err := st.classes(form)
	if err != nil {
		return nil, err
	}

	return classes.Names(ns), nil
}

// Stats returns the size of the loaded tables.
func (r *Resolver) Stats() (Stats, error) {
	st, err := r.ready()
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Classes: st.internal.Len(),
		Fields:  st.fields,
		Methods: st.methods,
		Strings: st.pool.Size(),
	}, nil
}
