package domain

// ModuleShape carries the two module properties the data model needs:
// how many class definitions the module has (sizes the bit vectors) and how
// many native string table entries (offsets the extra string ids).
type ModuleShape struct {
	ClassDefs int
	Strings   int
}

// Deps is the top-level aggregate: one dependency set per module of the
// compiled set, in the caller-supplied order, plus a construction-time flag
// distinguishing "being built for persistence" from "being used to gate
// trust". Modules are addressed by their position in the declared order;
// mapping from module identity to position is the tracker's job.
type Deps struct {
	outputOnly bool
	modules    []*ModuleDeps
}

// NewDeps creates an aggregate with one empty dependency set per shape.
func NewDeps(shapes []ModuleShape, outputOnly bool) *Deps {
	modules := make([]*ModuleDeps, len(shapes))
	for i, s := range shapes {
		modules[i] = NewModuleDeps(s.ClassDefs, s.Strings)
	}
	return &Deps{outputOnly: outputOnly, modules: modules}
}

// OutputOnly reports whether the aggregate is being built for persistence
// rather than consumed to gate trust.
func (d *Deps) OutputOnly() bool {
	return d.outputOnly
}

// ModuleCount returns the number of modules in the compiled set.
func (d *Deps) ModuleCount() int {
	return len(d.modules)
}

// ModuleDeps returns the dependency set at position i of the declared
// module order.
func (d *Deps) ModuleDeps(i int) *ModuleDeps {
	return d.modules[i]
}

// MergeFrom unions other into d. Both aggregates must have been declared
// over the identical ordered module list; a mismatch is caller misuse.
func (d *Deps) MergeFrom(other *Deps) {
	if len(d.modules) != len(other.modules) {
		panic("domain: merging dependency sets declared over different module lists")
	}
	for i, m := range d.modules {
		m.MergeFrom(other.modules[i])
	}
}

// Equal reports logical equality across all modules. The outputOnly flag is
// a usage mode, not recorded content, and does not participate.
func (d *Deps) Equal(other *Deps) bool {
	if len(d.modules) != len(other.modules) {
		return false
	}
	for i, m := range d.modules {
		if !m.Equal(other.modules[i]) {
			return false
		}
	}
	return true
}
