// Package ports defines the interfaces between the dependency-tracking core
// and its collaborators: the class metadata provider, the live resolution
// environment, the verifier driving the recorder hooks, and the ambient
// logging and tracing surfaces.
package ports

import "go.trai.ch/vdex/internal/core/domain"

// Module is a compilation unit: an ordered list of class definitions plus
// an intrinsic string table queried by id. Module names are the stable
// identity used to match a compiled set declaration against live metadata.
//
// Implementations must keep the underlying metadata stable while any core
// operation runs; the core performs reads without synchronization.
//
//go:generate mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type Module interface {
	// Name returns the module's stable identifier.
	Name() string

	// ClassDefCount returns the number of class definitions.
	ClassDefCount() int

	// ClassDescriptor returns the descriptor of the class definition at the
	// given index.
	ClassDescriptor(classDef int) string

	// HasClassDef reports whether the module defines a class with the given
	// descriptor.
	HasClassDef(descriptor string) bool

	// StringCount returns the size of the native string table.
	StringCount() int

	// String returns the native string table entry with the given id, or
	// false if the id is outside the table.
	String(id domain.StringID) (string, bool)

	// FindString returns the id of s in the native string table, or false
	// if the table does not contain it.
	FindString(s string) (domain.StringID, bool)
}

// Class is live metadata for a loaded class.
type Class interface {
	// Descriptor returns the class's type descriptor.
	Descriptor() string

	// AccessFlags returns the class's modifier word. The core records only
	// the bottom 16 bits.
	AccessFlags() uint32

	// Module returns the module defining the class, or nil for classes
	// synthesized without an owning module. A nil module makes the class a
	// classpath entity regardless of the compiled set.
	Module() Module

	// SuperClass returns the direct superclass, or nil.
	SuperClass() Class

	// Interfaces returns the directly implemented interfaces in
	// declaration order.
	Interfaces() []Class
}

// Field is live metadata for a resolved field.
type Field interface {
	AccessFlags() uint32
	DeclaringClass() Class
}

// Method is live metadata for a resolved method.
type Method interface {
	AccessFlags() uint32
	DeclaringClass() Class
}
