package domain

import (
	"maps"
	"slices"
)

// ModuleDeps holds the classpath-sensitive facts collected while verifying
// the classes of one module: descriptor strings not present in the module's
// own string table, recorded assignability outcomes, recorded class/field/
// method resolutions, and one bit per class definition for the verified and
// redefined statuses.
//
// ModuleDeps performs no locking. The tracker serializes mutations.
type ModuleDeps struct {
	nativeStrings int
	extraStrings  []string
	extraIndex    map[string]StringID

	assignable   map[TypeAssignability]struct{}
	unassignable map[TypeAssignability]struct{}

	classes map[ClassResolution]struct{}
	fields  map[MemberResolution]struct{}
	methods map[MemberResolution]struct{}

	verified  BitVector
	redefined BitVector
}

// NewModuleDeps creates an empty dependency set for a module with the given
// number of class definitions and native string table entries.
func NewModuleDeps(classDefs, nativeStrings int) *ModuleDeps {
	return &ModuleDeps{
		nativeStrings: nativeStrings,
		extraIndex:    make(map[string]StringID),
		assignable:    make(map[TypeAssignability]struct{}),
		unassignable:  make(map[TypeAssignability]struct{}),
		classes:       make(map[ClassResolution]struct{}),
		fields:        make(map[MemberResolution]struct{}),
		methods:       make(map[MemberResolution]struct{}),
		verified:      NewBitVector(classDefs),
		redefined:     NewBitVector(classDefs),
	}
}

// NativeStrings returns the module's native string table size the set was
// created with. Extra string ids start here.
func (d *ModuleDeps) NativeStrings() int {
	return d.nativeStrings
}

// Intern returns the id of s among the extra strings, appending it if not
// yet present. Ids are assigned in insertion order, offset by the native
// string count, and are never reused.
func (d *ModuleDeps) Intern(s string) StringID {
	if id, ok := d.extraIndex[s]; ok {
		return id
	}
	id := StringID(d.nativeStrings + len(d.extraStrings))
	d.extraStrings = append(d.extraStrings, s)
	d.extraIndex[s] = id
	return id
}

// ExtraString returns the extra string with the given id, or false if the
// id falls inside the module's native table or beyond the extra strings.
func (d *ModuleDeps) ExtraString(id StringID) (string, bool) {
	i := int(id) - d.nativeStrings
	if i < 0 || i >= len(d.extraStrings) {
		return "", false
	}
	return d.extraStrings[i], true
}

// ExtraStrings returns the extra strings in insertion order. The returned
// slice aliases the set's storage.
func (d *ModuleDeps) ExtraStrings() []string {
	return d.extraStrings
}

// AddAssignability records the outcome of an assignability test between the
// two types named by the pair.
func (d *ModuleDeps) AddAssignability(pair TypeAssignability, assignable bool) {
	if assignable {
		d.assignable[pair] = struct{}{}
	} else {
		d.unassignable[pair] = struct{}{}
	}
}

// AddClass records a class resolution outcome.
func (d *ModuleDeps) AddClass(r ClassResolution) {
	d.classes[r] = struct{}{}
}

// AddField records a field resolution outcome.
func (d *ModuleDeps) AddField(r MemberResolution) {
	d.fields[r] = struct{}{}
}

// AddMethod records a method resolution outcome.
func (d *ModuleDeps) AddMethod(r MemberResolution) {
	d.methods[r] = struct{}{}
}

// Verified returns the per-class-definition verified bit vector.
func (d *ModuleDeps) Verified() BitVector {
	return d.verified
}

// Redefined returns the per-class-definition redefined bit vector.
func (d *ModuleDeps) Redefined() BitVector {
	return d.redefined
}

// SetBitVectors installs decoded bit vectors. Both must match the class
// definition count the set was created with.
func (d *ModuleDeps) SetBitVectors(verified, redefined BitVector) {
	if verified.Len() != d.verified.Len() || redefined.Len() != d.redefined.Len() {
		panic("domain: bit vector length mismatch")
	}
	d.verified = verified
	d.redefined = redefined
}

// SortedAssignable returns the recorded assignable pairs in their total
// order. The copy is fresh on every call.
func (d *ModuleDeps) SortedAssignable() []TypeAssignability {
	return sortedSet(d.assignable, TypeAssignability.Compare)
}

// SortedUnassignable returns the recorded unassignable pairs in their total
// order.
func (d *ModuleDeps) SortedUnassignable() []TypeAssignability {
	return sortedSet(d.unassignable, TypeAssignability.Compare)
}

// SortedClasses returns the recorded class resolutions in their total order.
func (d *ModuleDeps) SortedClasses() []ClassResolution {
	return sortedSet(d.classes, ClassResolution.Compare)
}

// SortedFields returns the recorded field resolutions in their total order.
func (d *ModuleDeps) SortedFields() []MemberResolution {
	return sortedSet(d.fields, MemberResolution.Compare)
}

// SortedMethods returns the recorded method resolutions in their total order.
func (d *ModuleDeps) SortedMethods() []MemberResolution {
	return sortedSet(d.methods, MemberResolution.Compare)
}

func sortedSet[T comparable](set map[T]struct{}, compare func(T, T) int) []T {
	out := slices.Collect(maps.Keys(set))
	slices.SortFunc(out, compare)
	return out
}

// MergeFrom unions other into d. Both sets must belong to the same module,
// so native string ids are shared; other's extra string ids are remapped
// through d's pool. The verified bits combine with AND (a class stays
// trusted only if every contributing pass judged it verified), the
// redefined bits with OR (a detected eclipsing is never discarded).
func (d *ModuleDeps) MergeFrom(other *ModuleDeps) {
	remap := func(id StringID) StringID {
		if int(id) < other.nativeStrings {
			return id
		}
		s, ok := other.ExtraString(id)
		if !ok {
			panic("domain: dangling string id in merge source")
		}
		return d.Intern(s)
	}

	for pair := range other.assignable {
		d.assignable[TypeAssignability{
			Destination: remap(pair.Destination),
			Source:      remap(pair.Source),
		}] = struct{}{}
	}
	for pair := range other.unassignable {
		d.unassignable[TypeAssignability{
			Destination: remap(pair.Destination),
			Source:      remap(pair.Source),
		}] = struct{}{}
	}
	for r := range other.classes {
		d.classes[r] = struct{}{}
	}
	for r := range other.fields {
		if r.Resolved() {
			r.DeclaringClass = remap(r.DeclaringClass)
		}
		d.fields[r] = struct{}{}
	}
	for r := range other.methods {
		if r.Resolved() {
			r.DeclaringClass = remap(r.DeclaringClass)
		}
		d.methods[r] = struct{}{}
	}

	d.verified.IntersectWith(other.verified)
	d.redefined.UnionWith(other.redefined)
}

// Canonical returns a copy in canonical form: extra strings sorted, every
// string id remapped accordingly. Extra string ids depend on the order facts
// were recorded in, so two logically identical sets can differ in raw ids;
// their canonical forms do not. The codec encodes the canonical form and
// Equal compares it.
func (d *ModuleDeps) Canonical() *ModuleDeps {
	out := NewModuleDeps(d.verified.Len(), d.nativeStrings)
	for _, s := range slices.Sorted(slices.Values(d.extraStrings)) {
		out.Intern(s)
	}

	remap := func(id StringID) StringID {
		s, ok := d.ExtraString(id)
		if !ok {
			return id
		}
		return out.Intern(s)
	}

	for pair := range d.assignable {
		out.assignable[TypeAssignability{
			Destination: remap(pair.Destination),
			Source:      remap(pair.Source),
		}] = struct{}{}
	}
	for pair := range d.unassignable {
		out.unassignable[TypeAssignability{
			Destination: remap(pair.Destination),
			Source:      remap(pair.Source),
		}] = struct{}{}
	}
	maps.Copy(out.classes, d.classes)
	for r := range d.fields {
		if r.Resolved() {
			r.DeclaringClass = remap(r.DeclaringClass)
		}
		out.fields[r] = struct{}{}
	}
	for r := range d.methods {
		if r.Resolved() {
			r.DeclaringClass = remap(r.DeclaringClass)
		}
		out.methods[r] = struct{}{}
	}

	out.verified = d.verified.Clone()
	out.redefined = d.redefined.Clone()
	return out
}

// Equal reports logical equality of the two dependency sets: identical facts
// after canonicalization, identical bit vectors.
func (d *ModuleDeps) Equal(other *ModuleDeps) bool {
	a, b := d.Canonical(), other.Canonical()
	return a.nativeStrings == b.nativeStrings &&
		slices.Equal(a.extraStrings, b.extraStrings) &&
		maps.Equal(a.assignable, b.assignable) &&
		maps.Equal(a.unassignable, b.unassignable) &&
		maps.Equal(a.classes, b.classes) &&
		maps.Equal(a.fields, b.fields) &&
		maps.Equal(a.methods, b.methods) &&
		a.verified.Equal(b.verified) &&
		a.redefined.Equal(b.redefined)
}
