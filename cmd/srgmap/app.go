package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"srgmap/internal/cli"
	"srgmap/internal/config"
	"srgmap/internal/names"
	"srgmap/internal/resolver"
	"srgmap/internal/suggest"
	"srgmap/internal/symbol"
	"srgmap/internal/table"
)

// maxSuggestions bounds the "did you mean" list printed on a miss.
const maxSuggestions = 3

// app holds the state shared by the command handlers.
type app struct {
	global cli.GlobalOptions
	stderr io.Writer
}

func newApp(stderr io.Writer) *app {
	return &app{stderr: stderr}
}

// settings resolves the effective configuration: file, then environment,
// then command-line flags.
func (a *app) settings() (config.Config, error) {
	cfg := config.DefaultConfig()

	if a.global.Config != "" {
		loaded, err := config.LoadFile(a.global.Config)
		if err != nil {
			return cfg, err
		}

		cfg = *loaded
		if !filepath.IsAbs(cfg.MappingsDir) {
			cfg.MappingsDir = filepath.Join(filepath.Dir(a.global.Config), cfg.MappingsDir)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if a.global.Dir != "" {
		cfg.MappingsDir = a.global.Dir
	}

	if a.global.DevSet {
		cfg.DevMode = a.global.Dev
	}

	return cfg, nil
}

func (a *app) logger() *slog.Logger {
	level := slog.LevelInfo
	if a.global.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

// open builds a resolver and loads its tables.
func (a *app) open() (*resolver.Resolver, config.Config, error) {
	cfg, err := a.settings()
	if err != nil {
		return nil, cfg, err
	}

	r := resolver.New(table.DirProvider(cfg.MappingsDir),
		resolver.WithResources(cfg.Resources),
		resolver.WithDevMode(cfg.DevMode),
		resolver.WithLogger(a.logger()),
	)

	if err := r.Initialize(); err != nil {
		return nil, cfg, fmt.Errorf("loading mappings from %s: %w", cfg.MappingsDir, err)
	}

	return r, cfg, nil
}

func (a *app) runConfig(_ context.Context, out io.Writer) error {
	cfg, err := a.settings()
	if err != nil {
		return err
	}

	data, err := config.Marshal(&cfg)
	if err != nil {
		return err
	}

	_, err = out.Write(data)

	return err
}

func (a *app) runClass(_ context.Context, out io.Writer, opts cli.ClassOptions) error {
	r, _, err := a.open()
	if err != nil {
		return err
	}

	c, err := r.ClassForName(opts.Form, opts.Namespace, opts.Name)
	if err != nil {
		if candidates, nerr := r.ClassNames(opts.Form, opts.Namespace); nerr == nil {
			a.hint(opts.Name, candidates)
		}

		return err
	}

	printClass(out, c)

	return nil
}

func (a *app) runField(_ context.Context, out io.Writer, opts cli.FieldOptions) error {
	r, _, err := a.open()
	if err != nil {
		return err
	}

	f, err := r.ResolveField(opts.Owner, opts.Name)
	if err != nil {
		a.memberHint(r, opts.Owner, opts.Name, err, func(c *symbol.Class, ns names.Namespace) []string {
			return c.Fields.Names(ns)
		})

		return err
	}

	for _, ns := range names.All() {
		fmt.Fprintf(out, "%-6s %s\n", ns, f.Qualified.Name(ns))
	}

	return nil
}

func (a *app) runMethod(_ context.Context, out io.Writer, opts cli.MethodOptions) error {
	r, _, err := a.open()
	if err != nil {
		return err
	}

	m, err := r.ResolveMethod(opts.Owner, opts.Name, opts.Descriptor)
	if err != nil {
		a.memberHint(r, opts.Owner, opts.Name+opts.Descriptor, err, func(c *symbol.Class, ns names.Namespace) []string {
			return c.Methods.Names(ns)
		})

		return err
	}

	for _, ns := range names.All() {
		fmt.Fprintf(out, "%-6s %s%s\n", ns, m.Qualified.Name(ns), m.Descriptor.Name(ns))
	}

	return nil
}

func (a *app) runRemap(_ context.Context, out io.Writer, opts cli.RemapOptions) error {
	r, _, err := a.open()
	if err != nil {
		return err
	}

	name, err := r.RemapClass(opts.Form, opts.From, opts.To, opts.Name)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, name)

	return nil
}

func (a *app) runCheck(_ context.Context, out io.Writer) error {
	cfg, err := a.settings()
	if err != nil {
		return err
	}

	diags := resolver.Check(table.DirProvider(cfg.MappingsDir), cfg.Resources)
	for _, d := range diags.All() {
		fmt.Fprintf(out, "%-7s %s\n", d.Severity, d)
	}

	fmt.Fprintf(out, "%d errors, %d warnings, %d infos\n",
		len(diags.Errors), len(diags.Warnings), len(diags.Infos))

	if diags.HasErrors() {
		return errors.New("mapping tables have errors")
	}

	return nil
}

func (a *app) runStats(_ context.Context, out io.Writer) error {
	r, cfg, err := a.open()
	if err != nil {
		return err
	}

	stats, err := r.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "mappings: %s\n", cfg.MappingsDir)
	fmt.Fprintf(out, "dev mode: %t (chain: %s)\n", cfg.DevMode, chainString(resolver.Chain(cfg.DevMode)))
	fmt.Fprintf(out, "classes:  %d\n", stats.Classes)
	fmt.Fprintf(out, "fields:   %d\n", stats.Fields)
	fmt.Fprintf(out, "methods:  %d\n", stats.Methods)
	fmt.Fprintf(out, "strings:  %d\n", stats.Strings)

	return nil
}

// classDump is the flattened view of a class printed by "dump"; the entity
// graph itself is cyclic through the owner pointers.
type classDump struct {
	Internal map[string]string
	Regular  map[string]string
	Fields   []map[string]string
	Methods  []map[string]string
}

func (a *app) runDump(_ context.Context, out io.Writer, opts cli.DumpOptions) error {
	r, _, err := a.open()
	if err != nil {
		return err
	}

	c, err := r.ClassForName(resolver.Internal, opts.Namespace, opts.Name)
	if err != nil {
		return err
	}

	dumper := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	dumper.Fdump(out, newClassDump(c))

	return nil
}

func newClassDump(c *symbol.Class) classDump {
	d := classDump{
		Internal: perNamespace(c.Internal),
		Regular:  perNamespace(c.Regular),
	}

	for _, name := range c.Fields.Names(names.Notch) {
		f, err := c.Fields.Get(names.Notch, name)
		if err != nil {
			continue
		}

		d.Fields = append(d.Fields, perNamespace(f.Name))
	}

	for _, key := range c.Methods.Names(names.Notch) {
		m, err := c.Methods.Get(names.Notch, key)
		if err != nil {
			continue
		}

		d.Methods = append(d.Methods, perNamespace(m.Key))
	}

	return d
}

func perNamespace(id names.Identifier) map[string]string {
	out := make(map[string]string, names.Count)
	for _, ns := range names.All() {
		out[ns.String()] = id.Name(ns)
	}

	return out
}

func printClass(out io.Writer, c *symbol.Class) {
	for _, ns := range names.All() {
		fmt.Fprintf(out, "%-6s %s (%s)\n", ns, c.Internal.Name(ns), c.Regular.Name(ns))
	}

	fmt.Fprintf(out, "%d fields, %d methods\n", c.Fields.Len(), c.Methods.Len())
}

// memberHint prints close member names of the owner under each namespace the
// failed resolution tried.
func (a *app) memberHint(
	r *resolver.Resolver,
	owner, name string,
	err error,
	members func(*symbol.Class, names.Namespace) []string,
) {
	var miss *resolver.SymbolNotFoundError
	if !errors.As(err, &miss) {
		return
	}

	for _, ns := range miss.Tried {
		c, cerr := r.ClassForName(resolver.Internal, ns, owner)
		if cerr != nil {
			continue
		}

		a.hint(name, members(c, ns))
	}
}

func (a *app) hint(name string, candidates []string) {
	if matches := suggest.Closest(name, candidates, maxSuggestions); len(matches) > 0 {
		fmt.Fprintf(a.stderr, "did you mean: %s?\n", strings.Join(matches, ", "))
	}
}

func chainString(chain []names.Namespace) string {
	parts := make([]string, 0, len(chain))
	for _, ns := range chain {
		parts = append(parts, ns.String())
	}

	return strings.Join(parts, " -> ")
}
