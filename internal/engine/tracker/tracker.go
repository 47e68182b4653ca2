// Package tracker implements the recording side of verification dependency
// tracking: the aggregate handle over one compiled set of modules, the
// recorder hooks a verifier reports into, and the merge of aggregates
// produced by parallel verification workers.
package tracker

import (
	"sync"

	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
)

var _ ports.Recorder = (*Tracker)(nil)

// Tracker owns the dependency sets for one compiled set. The verifier driver
// passes the active Tracker into every hook call; there is no global or
// thread-local registry. Hooks may be called from multiple goroutines; an
// internal mutex serializes mutations and is held only for the duration of a
// single fact insertion.
type Tracker struct {
	mu      sync.Mutex
	modules []ports.Module
	index   map[string]int
	deps    *domain.Deps
}

// New creates a Tracker with one empty dependency set per module of the
// compiled set, in the given order. The outputOnly flag distinguishes an
// aggregate being built for persistence from one decoded to gate trust.
func New(modules []ports.Module, outputOnly bool) *Tracker {
	shapes := make([]domain.ModuleShape, len(modules))
	index := make(map[string]int, len(modules))
	for i, m := range modules {
		shapes[i] = domain.ModuleShape{ClassDefs: m.ClassDefCount(), Strings: m.StringCount()}
		index[m.Name()] = i
	}
	return &Tracker{
		modules: modules,
		index:   index,
		deps:    domain.NewDeps(shapes, outputOnly),
	}
}

// FromDeps wraps an already materialized aggregate, typically one decoded
// from persisted bytes, with the module list it was declared over. The list
// must agree with the aggregate in cardinality and order.
func FromDeps(modules []ports.Module, deps *domain.Deps) *Tracker {
	if len(modules) != deps.ModuleCount() {
		panic("tracker: module list does not match dependency aggregate")
	}
	index := make(map[string]int, len(modules))
	for i, m := range modules {
		index[m.Name()] = i
	}
	return &Tracker{modules: modules, index: index, deps: deps}
}

// Modules returns the compiled set in declared order. Callers must not
// mutate the returned slice.
func (t *Tracker) Modules() []ports.Module {
	return t.modules
}

// Deps returns the underlying aggregate.
func (t *Tracker) Deps() *domain.Deps {
	return t.deps
}

// OutputOnly reports whether the aggregate is being built for persistence.
func (t *Tracker) OutputOnly() bool {
	return t.deps.OutputOnly()
}

// VerifiedClasses returns m's verified bit vector, one bit per class
// definition.
func (t *Tracker) VerifiedClasses(m ports.Module) domain.BitVector {
	return t.moduleDeps(m).Verified()
}

// RedefinedClasses returns m's redefined bit vector.
func (t *Tracker) RedefinedClasses(m ports.Module) domain.BitVector {
	return t.moduleDeps(m).Redefined()
}

// StringAt resolves a string id recorded for m: native table first, then the
// dependency set's extra strings.
func (t *Tracker) StringAt(m ports.Module, id domain.StringID) (string, bool) {
	if s, ok := m.String(id); ok {
		return s, true
	}
	return t.moduleDeps(m).ExtraString(id)
}

// moduleDeps returns the dependency set owned by m. Asking for a module
// outside the compiled set is caller misuse, not environmental drift.
func (t *Tracker) moduleDeps(m ports.Module) *domain.ModuleDeps {
	i, ok := t.index[m.Name()]
	if !ok {
		panic("tracker: module " + m.Name() + " is not part of the compiled set")
	}
	return t.deps.ModuleDeps(i)
}

// inCompiledSet reports whether class is defined by a module of the
// compiled set. Unresolved classes and classes synthesized without an
// owning module count as classpath.
func (t *Tracker) inCompiledSet(class ports.Class) bool {
	if class == nil || class.Module() == nil {
		return false
	}
	_, ok := t.index[class.Module().Name()]
	return ok
}

// stringID returns the id of s for records owned by m: the module's native
// string table if it contains s, the dependency set's extra strings
// otherwise. Must be called with t.mu held.
func (t *Tracker) stringID(m ports.Module, d *domain.ModuleDeps, s string) domain.StringID {
	if id, ok := m.FindString(s); ok {
		return id
	}
	return d.Intern(s)
}

// Merge unions other into t, consuming other. Both trackers must have been
// created over the identical ordered module list.
func (t *Tracker) Merge(other *Tracker) {
	if len(t.modules) != len(other.modules) {
		panic("tracker: merging trackers declared over different module lists")
	}
	for i, m := range t.modules {
		if other.modules[i].Name() != m.Name() {
			panic("tracker: merging trackers declared over different module lists")
		}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deps.MergeFrom(other.deps)
}
