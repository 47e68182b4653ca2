package memenv

import "go.trai.ch/vdex/internal/core/ports"

var (
	_ ports.Class  = (*Class)(nil)
	_ ports.Field  = (*Member)(nil)
	_ ports.Method = (*Member)(nil)
)

// Class is an in-memory class definition. Its supertype links are stored as
// descriptors and resolved lazily through the owning environment, so a class
// can reference types loaded from any module in precedence order.
type Class struct {
	module     *Module
	env        *Env
	descriptor string
	access     uint32
	super      string
	interfaces []string
	fields     []*Member
	methods    []*Member

	// Reference-table indices this class's code touches; the structural
	// verifier resolves exactly these.
	typeRefs   []int
	fieldRefs  []int
	methodRefs []int
}

// AddField declares a field on the class and returns its handle.
func (c *Class) AddField(name, descriptor string, access uint32) *Member {
	f := &Member{declaring: c, name: name, descriptor: descriptor, access: access}
	c.fields = append(c.fields, f)
	return f
}

// AddMethod declares a method on the class and returns its handle.
func (c *Class) AddMethod(name, descriptor string, access uint32) *Member {
	m := &Member{declaring: c, name: name, descriptor: descriptor, access: access}
	c.methods = append(c.methods, m)
	return m
}

// UseTypeRef marks a module type reference as used by this class's code.
func (c *Class) UseTypeRef(index int) { c.typeRefs = append(c.typeRefs, index) }

// UseFieldRef marks a module field reference as used by this class's code.
func (c *Class) UseFieldRef(index int) { c.fieldRefs = append(c.fieldRefs, index) }

// UseMethodRef marks a module method reference as used by this class's code.
func (c *Class) UseMethodRef(index int) { c.methodRefs = append(c.methodRefs, index) }

// SetAccessFlags mutates the modifier word. Tests use it to model classpath
// drift between recording and validation.
func (c *Class) SetAccessFlags(access uint32) { c.access = access }

// Field returns the declared field with the given name, or nil.
func (c *Class) Field(name string) *Member {
	for _, f := range c.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Method returns the declared method with the given name, or nil.
func (c *Class) Method(name string) *Member {
	for _, m := range c.methods {
		if m.name == name {
			return m
		}
	}
	return nil
}

// Descriptor implements ports.Class.
func (c *Class) Descriptor() string { return c.descriptor }

// AccessFlags implements ports.Class.
func (c *Class) AccessFlags() uint32 { return c.access }

// Module implements ports.Class.
func (c *Class) Module() ports.Module {
	if c.module == nil {
		return nil
	}
	return c.module
}

// SuperClass implements ports.Class.
func (c *Class) SuperClass() ports.Class {
	if c.super == "" || c.env == nil {
		return nil
	}
	return c.env.LookupClass(c.super)
}

// Interfaces implements ports.Class.
func (c *Class) Interfaces() []ports.Class {
	if len(c.interfaces) == 0 || c.env == nil {
		return nil
	}
	out := make([]ports.Class, 0, len(c.interfaces))
	for _, d := range c.interfaces {
		if iface := c.env.LookupClass(d); iface != nil {
			out = append(out, iface)
		}
	}
	return out
}

// Member is a field or method declared on a class. Field and method handles
// expose the same surface, so one type serves both ports.
type Member struct {
	declaring  *Class
	name       string
	descriptor string
	access     uint32
}

// SetAccessFlags mutates the modifier word, for drift tests.
func (m *Member) SetAccessFlags(access uint32) { m.access = access }

// AccessFlags implements ports.Field and ports.Method.
func (m *Member) AccessFlags() uint32 { return m.access }

// DeclaringClass implements ports.Field and ports.Method.
func (m *Member) DeclaringClass() ports.Class { return m.declaring }
