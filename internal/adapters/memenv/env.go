package memenv

import "go.trai.ch/vdex/internal/core/ports"

var _ ports.Environment = (*Env)(nil)

// Env is a single class-loader context over a list of modules. Modules
// earlier in the precedence list shadow later same-descriptor definitions,
// matching parent-first delegation when the classpath precedes the compiled
// set.
type Env struct {
	precedence []*Module
	byName     map[string]*Module
}

// NewEnv builds an environment over the given modules in precedence order
// and wires every class definition back to it for supertype resolution.
func NewEnv(modules ...*Module) *Env {
	e := &Env{
		precedence: modules,
		byName:     make(map[string]*Module, len(modules)),
	}
	for _, m := range modules {
		e.byName[m.name] = m
		for _, c := range m.classes {
			c.env = e
		}
	}
	return e
}

// Modules returns the precedence list.
func (e *Env) Modules() []*Module { return e.precedence }

// LookupClass implements ports.Environment.
func (e *Env) LookupClass(descriptor string) ports.Class {
	for _, m := range e.precedence {
		if c := m.Class(descriptor); c != nil {
			return c
		}
	}
	return nil
}

// ResolveType implements ports.Environment.
func (e *Env) ResolveType(pm ports.Module, typeIndex uint32) ports.Class {
	m := e.byName[pm.Name()]
	if m == nil || int(typeIndex) >= len(m.typeRefs) {
		return nil
	}
	return e.LookupClass(m.typeRefs[typeIndex])
}

// ResolveField implements ports.Environment.
func (e *Env) ResolveField(pm ports.Module, memberIndex uint32) ports.Field {
	m := e.byName[pm.Name()]
	if m == nil || int(memberIndex) >= len(m.fieldRefs) {
		return nil
	}
	ref := m.fieldRefs[memberIndex]
	if f := e.findMember(ref, false); f != nil {
		return f
	}
	return nil
}

// ResolveMethod implements ports.Environment.
func (e *Env) ResolveMethod(pm ports.Module, memberIndex uint32) ports.Method {
	m := e.byName[pm.Name()]
	if m == nil || int(memberIndex) >= len(m.methodRefs) {
		return nil
	}
	ref := m.methodRefs[memberIndex]
	if f := e.findMember(ref, true); f != nil {
		return f
	}
	return nil
}

// findMember searches the owner class and its supertypes for a declared
// member matching the reference, superclasses before interfaces.
func (e *Env) findMember(ref MemberRef, method bool) *Member {
	owner, _ := e.LookupClass(ref.Owner).(*Class)
	seen := make(map[string]bool)
	var search func(c *Class) *Member
	search = func(c *Class) *Member {
		if c == nil || seen[c.descriptor] {
			return nil
		}
		seen[c.descriptor] = true
		declared := c.fields
		if method {
			declared = c.methods
		}
		for _, m := range declared {
			if m.name == ref.Name && m.descriptor == ref.Descriptor {
				return m
			}
		}
		if super, ok := e.LookupClass(c.super).(*Class); ok {
			if m := search(super); m != nil {
				return m
			}
		}
		for _, d := range c.interfaces {
			if iface, ok := e.LookupClass(d).(*Class); ok {
				if m := search(iface); m != nil {
					return m
				}
			}
		}
		return nil
	}
	return search(owner)
}

// IsAssignable implements ports.Environment. Assignability is structural:
// source is assignable to destination when destination appears anywhere on
// source's superclass or interface ancestry.
func (e *Env) IsAssignable(destination, source ports.Class, _ bool) bool {
	if destination == nil || source == nil {
		return false
	}
	want := destination.Descriptor()
	seen := make(map[string]bool)
	var walk func(c ports.Class) bool
	walk = func(c ports.Class) bool {
		if c == nil || seen[c.Descriptor()] {
			return false
		}
		seen[c.Descriptor()] = true
		if c.Descriptor() == want {
			return true
		}
		if walk(c.SuperClass()) {
			return true
		}
		for _, iface := range c.Interfaces() {
			if walk(iface) {
				return true
			}
		}
		return false
	}
	return walk(source)
}
