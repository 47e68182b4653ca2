package tracker

import (
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
)

// RecordClassResolution records the outcome class of resolving the type
// reference with the given index inside m. A nil class means the resolution
// failed. Resolutions landing inside the compiled set are invariant across
// classpath changes and are not recorded.
func (t *Tracker) RecordClassResolution(m ports.Module, typeIndex uint32, class ports.Class) {
	if class != nil && t.inCompiledSet(class) {
		return
	}

	rec := domain.ClassResolution{TypeIndex: typeIndex, AccessFlags: domain.UnresolvedMarker}
	if class != nil {
		rec.AccessFlags = uint16(class.AccessFlags())
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.moduleDeps(m).AddClass(rec)
}

// RecordFieldResolution records the outcome field of resolving the field
// reference with the given index inside m.
func (t *Tracker) RecordFieldResolution(m ports.Module, memberIndex uint32, field ports.Field) {
	if field != nil && t.inCompiledSet(field.DeclaringClass()) {
		return
	}

	rec := domain.MemberResolution{MemberIndex: memberIndex, AccessFlags: domain.UnresolvedMarker}

	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.moduleDeps(m)
	if field != nil {
		rec.AccessFlags = uint16(field.AccessFlags())
		rec.DeclaringClass = t.stringID(m, d, field.DeclaringClass().Descriptor())
	}
	d.AddField(rec)
}

// RecordMethodResolution records the outcome method of resolving the method
// reference with the given index inside m.
func (t *Tracker) RecordMethodResolution(m ports.Module, memberIndex uint32, method ports.Method) {
	if method != nil && t.inCompiledSet(method.DeclaringClass()) {
		return
	}

	rec := domain.MemberResolution{MemberIndex: memberIndex, AccessFlags: domain.UnresolvedMarker}

	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.moduleDeps(m)
	if method != nil {
		rec.AccessFlags = uint16(method.AccessFlags())
		rec.DeclaringClass = t.stringID(m, d, method.DeclaringClass().Descriptor())
	}
	d.AddMethod(rec)
}

// RecordAssignability records the outcome of an assignability test from
// source to destination performed while verifying code owned by m. Tests
// whose outcome cannot change under classpath drift are not recorded: both
// endpoints inside the compiled set, or a positive outcome realized by an
// inheritance chain that never leaves the compiled set. Strictness is not
// persisted; strict and non-strict call sites merge into the same sets.
func (t *Tracker) RecordAssignability(m ports.Module, destination, source ports.Class, _ bool, assignable bool) {
	if destination == nil || source == nil {
		return
	}
	if destination.Descriptor() == source.Descriptor() {
		return
	}

	destInternal := t.inCompiledSet(destination)
	srcInternal := t.inCompiledSet(source)
	if destInternal && srcInternal {
		return
	}

	if assignable && srcInternal {
		// The relationship passes through some classpath ancestor of
		// source; depend on that ancestor instead of the internal class.
		boundary := t.classpathBoundary(destination, source)
		if boundary == nil {
			return
		}
		source = boundary
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.moduleDeps(m)
	pair := domain.TypeAssignability{
		Destination: t.stringID(m, d, destination.Descriptor()),
		Source:      t.stringID(m, d, source.Descriptor()),
	}
	d.AddAssignability(pair, assignable)
}

// RecordClassVerified records that the class definition at the given index
// of m was judged verified.
func (t *Tracker) RecordClassVerified(m ports.Module, classDef int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moduleDeps(m).Verified().Set(classDef)
}

// RecordClassRedefined records that the class definition at the given index
// of m is eclipsed by a same-descriptor class with loader precedence.
func (t *Tracker) RecordClassRedefined(m ports.Module, classDef int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.moduleDeps(m).Redefined().Set(classDef)
}

// classpathBoundary finds the classpath-defined ancestor of source through
// which its assignability to destination passes: the first ancestor, walking
// superclass then interfaces in declaration order, that is outside the
// compiled set and assignable to destination. Returns nil when the whole
// chain realizing the relationship lies inside the compiled set.
func (t *Tracker) classpathBoundary(destination, source ports.Class) ports.Class {
	seen := make(map[string]bool)
	var walk func(c ports.Class) ports.Class
	walk = func(c ports.Class) ports.Class {
		for _, ancestor := range directAncestors(c) {
			if ancestor == nil || seen[ancestor.Descriptor()] {
				continue
			}
			seen[ancestor.Descriptor()] = true
			if !t.inCompiledSet(ancestor) && typeAssignable(destination, ancestor) {
				return ancestor
			}
			if b := walk(ancestor); b != nil {
				return b
			}
		}
		return nil
	}
	return walk(source)
}

// directAncestors lists c's superclass followed by its interfaces in
// declaration order.
func directAncestors(c ports.Class) []ports.Class {
	out := make([]ports.Class, 0, 1+len(c.Interfaces()))
	out = append(out, c.SuperClass())
	out = append(out, c.Interfaces()...)
	return out
}

// typeAssignable reports whether source's inheritance chain reaches
// destination.
func typeAssignable(destination, source ports.Class) bool {
	if source.Descriptor() == destination.Descriptor() {
		return true
	}
	seen := make(map[string]bool)
	var walk func(c ports.Class) bool
	walk = func(c ports.Class) bool {
		for _, ancestor := range directAncestors(c) {
			if ancestor == nil || seen[ancestor.Descriptor()] {
				continue
			}
			seen[ancestor.Descriptor()] = true
			if ancestor.Descriptor() == destination.Descriptor() || walk(ancestor) {
				return true
			}
		}
		return false
	}
	return walk(source)
}
