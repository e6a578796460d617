package symbol

import (
	"fmt"

	"srgmap/internal/index"
	"srgmap/internal/names"
)

// Class is a class known under every namespace.
type Class struct {
	// Internal is the slash-separated name, e.g. "net/minecraft/world/World".
	Internal names.Identifier
	// Regular is the dotted name, e.g. "net.minecraft.world.World".
	Regular names.Identifier
	// Fields indexes the class's fields by simple name.
	Fields *index.Index[*Field]
	// Methods indexes the class's methods by name fused with descriptor.
	Methods *index.Index[*Method]
}

// NewClass creates a class from its internal identifier and derives the
// regular one.
func NewClass(internal names.Identifier, pool names.Interner) *Class {
	return &Class{
		Internal: internal,
		Regular:  internal.Map(names.Dotted, pool),
		Fields:   index.New[*Field](),
		Methods:  index.New[*Method](),
	}
}

// AddField creates a field from its owner-qualified identifier and registers
// it in the class.
func (c *Class) AddField(qualified names.Identifier, pool names.Interner) *Field {
	f := &Field{
		Owner:     c,
		Qualified: qualified,
		Name:      qualified.Map(names.SimpleName, pool),
	}
	c.Fields.Put(f.Name, f)

	return f
}

// AddMethod creates a method from its owner-qualified identifier and its
// descriptor, and registers it in the class.
func (c *Class) AddMethod(qualified, descriptor names.Identifier, pool names.Interner) *Method {
	m := &Method{
		Owner:      c,
		Qualified:  qualified,
		Name:       qualified.Map(names.SimpleName, pool),
		Descriptor: descriptor,
	}
	m.Key = names.Fuse(m.Name, m.Descriptor, "", pool)
	c.Methods.Put(m.Key, m)

	return m
}

// Field returns the field called name under ns.
func (c *Class) Field(ns names.Namespace, name string) (*Field, error) {
	return c.Fields.Get(ns, name)
}

// Method returns the method called name with the given descriptor under ns.
func (c *Class) Method(ns names.Namespace, name, descriptor string) (*Method, error) {
	return c.Methods.Get(ns, name+descriptor)
}

func (c *Class) String() string {
	return "class " + c.Internal.String()
}

// Field is a field of a Class.
type Field struct {
	Owner *Class
	// Qualified is the owner-qualified name as found in the table.
	Qualified names.Identifier
	// Name is the simple field name.
	Name names.Identifier
}

func (f *Field) String() string {
	return "field " + f.Qualified.String()
}

// Method is a method of a Class.
type Method struct {
	Owner      *Class
	Qualified  names.Identifier
	Name       names.Identifier
	Descriptor names.Identifier
	// Key is Name fused with Descriptor; it indexes the method in its class.
	Key names.Identifier
}

func (m *Method) String() string {
	parts := make([]any, 0, names.Count*2)
	for _, ns := range names.All() {
		parts = append(parts, m.Qualified.Name(ns), m.Descriptor.Name(ns))
	}

	return fmt.Sprintf("method %s%s -> %s%s -> %s%s", parts...)
}
