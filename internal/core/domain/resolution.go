// Package domain contains the core data model for recorded verification
// dependencies: resolution records, assignability pairs, bit vectors and the
// per-module dependency sets they are collected into.
package domain

import "cmp"

// StringID identifies a descriptor string relative to one module. IDs below
// the module's native string count index the module's own string table;
// higher IDs index the dependency set's extra strings in insertion order.
type StringID uint32

// UnresolvedMarker is the access-flags sentinel recording that a class,
// field or method resolution failed. No other field of a record carrying it
// is meaningful.
const UnresolvedMarker uint16 = 0xFFFF

// ClassResolution records the outcome of resolving a type reference.
type ClassResolution struct {
	// TypeIndex is the index of the type reference inside the module that
	// performed the resolution.
	TypeIndex uint32
	// AccessFlags holds the bottom 16 bits of the resolved class's modifier
	// word, or UnresolvedMarker if resolution failed.
	AccessFlags uint16
}

// Resolved reports whether the record describes a successful resolution.
func (r ClassResolution) Resolved() bool {
	return r.AccessFlags != UnresolvedMarker
}

// Compare imposes a total order matching field order.
func (r ClassResolution) Compare(other ClassResolution) int {
	return cmp.Or(
		cmp.Compare(r.TypeIndex, other.TypeIndex),
		cmp.Compare(r.AccessFlags, other.AccessFlags),
	)
}

// MemberResolution records the outcome of resolving a field or method
// reference. The same shape serves both kinds; a dependency set keeps them
// in separate sets.
type MemberResolution struct {
	// MemberIndex is the index of the field or method reference inside the
	// module that performed the resolution.
	MemberIndex uint32
	// AccessFlags holds the bottom 16 bits of the resolved member's modifier
	// word, or UnresolvedMarker if resolution failed.
	AccessFlags uint16
	// DeclaringClass is the string id of the descriptor of the class that
	// declares the resolved member. Meaningless when AccessFlags is
	// UnresolvedMarker.
	DeclaringClass StringID
}

// Resolved reports whether the record describes a successful resolution.
func (r MemberResolution) Resolved() bool {
	return r.AccessFlags != UnresolvedMarker
}

// Compare imposes a total order matching field order.
func (r MemberResolution) Compare(other MemberResolution) int {
	return cmp.Or(
		cmp.Compare(r.MemberIndex, other.MemberIndex),
		cmp.Compare(r.AccessFlags, other.AccessFlags),
		cmp.Compare(r.DeclaringClass, other.DeclaringClass),
	)
}

// TypeAssignability records the observed outcome of an assignability test
// between two types named by their descriptor string ids. Whether the
// outcome was "assignable" or "not assignable" is carried by which set the
// pair is stored in.
type TypeAssignability struct {
	Destination StringID
	Source      StringID
}

// Compare imposes a total order matching field order.
func (a TypeAssignability) Compare(other TypeAssignability) int {
	return cmp.Or(
		cmp.Compare(a.Destination, other.Destination),
		cmp.Compare(a.Source, other.Source),
	)
}
