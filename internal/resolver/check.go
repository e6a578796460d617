package resolver

import (
	"errors"
	"fmt"

	"srgmap/internal/diagnostic"
	"srgmap/internal/intern"
	"srgmap/internal/names"
	"srgmap/internal/table"
)

// Check reads the tables like Initialize does but keeps going after problems,
// reporting each one. A table set without error findings loads successfully.
func Check(provider table.Provider, res table.Resources) *diagnostic.Diagnostics {
	c := &checker{
		diags:   &diagnostic.Diagnostics{},
		pool:    intern.New(poolCapacity),
		classes: make(map[string]struct{}),
	}

	if t := c.read(provider, res.Classes, table.ClassColumns); t != nil {
		c.checkClasses(t)
	}

	if t := c.read(provider, res.Fields, table.FieldColumns); t != nil {
		c.checkMembers(t, 1, nil)
	}

	if t := c.read(provider, res.Methods, table.MethodColumns); t != nil {
		descriptor := func(row table.Row) (names.Identifier, error) {
			return names.FromRow(row.Fields, 1, 2, names.Identity, c.pool)
		}
		c.checkMembers(t, 2, descriptor)
	}

	return c.diags
}

type checker struct {
	diags   *diagnostic.Diagnostics
	pool    *intern.Pool
	classes map[string]struct{}
}

func (c *checker) read(provider table.Provider, name string, columns int) *table.Table {
	data, err := provider.ReadResource(name)
	if err != nil {
		c.diags.AddError(diagnostic.CodeUnreadableTable, err.Error(), name, 0)
		return nil
	}

	t, errs := table.DecodeLenient(name, data, columns)
	for _, err := range errs {
		c.malformed(name, err)
	}

	return t
}

func (c *checker) malformed(resource string, err error) {
	var rowErr *names.MalformedRowError
	if errors.As(err, &rowErr) {
		c.diags.AddError(diagnostic.CodeMalformedRow,
			fmt.Sprintf("%d columns, need at least %d", rowErr.Got, rowErr.Want),
			resource, rowErr.Line)

		return
	}

	c.diags.AddError(diagnostic.CodeMalformedRow, err.Error(), resource, 0)
}

func (c *checker) checkClasses(t *table.Table) {
	seen := newSeen()

	for _, row := range t.Rows {
		id, err := names.FromRow(row.Fields, 0, 1, names.Identity, c.pool)
		if err != nil {
			c.malformed(t.Name, err)
			continue
		}

		c.classes[id.Name(names.Notch)] = struct{}{}
		c.duplicates(seen, t.Name, row.Line, "class", id)

		if sameEverywhere(id) {
			c.diags.AddInfo(diagnostic.CodeUnmappedSymbol,
				fmt.Sprintf("class %q has the same name in every namespace", id.Name(names.Notch)),
				t.Name, row.Line)
		}
	}
}

// checkMembers checks field (stride 1) or method (stride 2) rows. Methods
// pass a descriptor reader so that overloads are not reported as duplicates.
func (c *checker) checkMembers(t *table.Table, stride int, descriptor func(table.Row) (names.Identifier, error)) {
	seen := newSeen()

	kind := KindField
	if descriptor != nil {
		kind = KindMethod
	}

	for _, row := range t.Rows {
		qualified, err := names.FromRow(row.Fields, 0, stride, names.Identity, c.pool)
		if err != nil {
			c.malformed(t.Name, err)
			continue
		}

		key := qualified
		if descriptor != nil {
			desc, err := descriptor(row)
			if err != nil {
				c.malformed(t.Name, err)
				continue
			}

			key = names.Fuse(qualified, desc, "", c.pool)
		}

		member := qualified.Name(names.Notch)
		if owner := names.OwnerPath(member); !c.hasClass(owner) {
			c.diags.AddError(diagnostic.CodeMissingOwner,
				fmt.Sprintf("owner class %q of %s %q not found in classes table", owner, kind, member),
				t.Name, row.Line)
		}

		c.duplicates(seen, t.Name, row.Line, string(kind), key)
	}
}

func (c *checker) hasClass(name string) bool {
	_, ok := c.classes[name]
	return ok
}

// seen records, per namespace, the line where each name first appeared.
type seen [names.Count]map[string]int

func newSeen() *seen {
	var s seen
	for i := range s {
		s[i] = make(map[string]int)
	}

	return &s
}

func (c *checker) duplicates(s *seen, resource string, line int, kind string, id names.Identifier) {
	for _, ns := range names.All() {
		name := id.Name(ns)
		if first, ok := s[ns][name]; ok {
			c.diags.AddWarning(diagnostic.CodeDuplicateName,
				fmt.Sprintf("%s %s name %q already registered on line %d; the later row wins", kind, ns, name, first),
				resource, line)

			continue
		}

		s[ns][name] = line
	}
}

func sameEverywhere(id names.Identifier) bool {
	first := id.Name(names.Notch)
	for _, ns := range names.All() {
		if id.Name(ns) != first {
			return false
		}
	}

	return true
}
