// Package memenv implements the metadata and environment ports over plain
// in-memory structures. It backs the CLI's manifest-described environments
// and the test suites; a runtime embedding the core would supply its own
// implementations instead.
package memenv

import (
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
)

var _ ports.Module = (*Module)(nil)

// MemberRef is one entry of a module's field or method reference table.
type MemberRef struct {
	Owner      string
	Name       string
	Descriptor string
}

// Module is an in-memory compilation unit: class definitions, a native
// string table, and type/field/method reference tables indexed by the
// resolution hooks.
type Module struct {
	name         string
	strings      []string
	stringIDs    map[string]domain.StringID
	classes      []*Class
	classIndex   map[string]int
	typeRefs     []string
	typeRefIDs   map[string]int
	fieldRefs    []MemberRef
	fieldRefIDs  map[MemberRef]int
	methodRefs   []MemberRef
	methodRefIDs map[MemberRef]int
}

// NewModule creates an empty module with the given stable name.
func NewModule(name string) *Module {
	return &Module{
		name:         name,
		stringIDs:    make(map[string]domain.StringID),
		classIndex:   make(map[string]int),
		typeRefIDs:   make(map[string]int),
		fieldRefIDs:  make(map[MemberRef]int),
		methodRefIDs: make(map[MemberRef]int),
	}
}

// AddString appends s to the native string table if not already present and
// returns its id.
func (m *Module) AddString(s string) domain.StringID {
	if id, ok := m.stringIDs[s]; ok {
		return id
	}
	id := domain.StringID(len(m.strings))
	m.strings = append(m.strings, s)
	m.stringIDs[s] = id
	return id
}

// DefineClass appends a class definition. The descriptor is added to the
// native string table, matching how real containers carry their own type
// names.
func (m *Module) DefineClass(descriptor string, access uint32, super string, interfaces ...string) *Class {
	c := &Class{
		module:     m,
		descriptor: descriptor,
		access:     access,
		super:      super,
		interfaces: interfaces,
	}
	m.classIndex[descriptor] = len(m.classes)
	m.classes = append(m.classes, c)
	m.AddString(descriptor)
	return c
}

// AddTypeRef adds a type reference if not already present and returns its
// index.
func (m *Module) AddTypeRef(descriptor string) int {
	if i, ok := m.typeRefIDs[descriptor]; ok {
		return i
	}
	i := len(m.typeRefs)
	m.typeRefs = append(m.typeRefs, descriptor)
	m.typeRefIDs[descriptor] = i
	m.AddString(descriptor)
	return i
}

// AddFieldRef adds a field reference if not already present and returns its
// index.
func (m *Module) AddFieldRef(owner, name, descriptor string) int {
	ref := MemberRef{Owner: owner, Name: name, Descriptor: descriptor}
	if i, ok := m.fieldRefIDs[ref]; ok {
		return i
	}
	i := len(m.fieldRefs)
	m.fieldRefs = append(m.fieldRefs, ref)
	m.fieldRefIDs[ref] = i
	m.AddString(owner)
	return i
}

// AddMethodRef adds a method reference if not already present and returns
// its index.
func (m *Module) AddMethodRef(owner, name, descriptor string) int {
	ref := MemberRef{Owner: owner, Name: name, Descriptor: descriptor}
	if i, ok := m.methodRefIDs[ref]; ok {
		return i
	}
	i := len(m.methodRefs)
	m.methodRefs = append(m.methodRefs, ref)
	m.methodRefIDs[ref] = i
	m.AddString(owner)
	return i
}

// Class returns the defined class with the given descriptor, or nil.
func (m *Module) Class(descriptor string) *Class {
	if i, ok := m.classIndex[descriptor]; ok {
		return m.classes[i]
	}
	return nil
}

// Name implements ports.Module.
func (m *Module) Name() string { return m.name }

// ClassDefCount implements ports.Module.
func (m *Module) ClassDefCount() int { return len(m.classes) }

// ClassDescriptor implements ports.Module.
func (m *Module) ClassDescriptor(classDef int) string {
	return m.classes[classDef].descriptor
}

// HasClassDef implements ports.Module.
func (m *Module) HasClassDef(descriptor string) bool {
	_, ok := m.classIndex[descriptor]
	return ok
}

// StringCount implements ports.Module.
func (m *Module) StringCount() int { return len(m.strings) }

// String implements ports.Module.
func (m *Module) String(id domain.StringID) (string, bool) {
	if int(id) >= len(m.strings) {
		return "", false
	}
	return m.strings[int(id)], true
}

// FindString implements ports.Module.
func (m *Module) FindString(s string) (domain.StringID, bool) {
	id, ok := m.stringIDs[s]
	return id, ok
}
