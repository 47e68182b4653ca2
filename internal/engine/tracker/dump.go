package tracker

import (
	"fmt"
	"io"

	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
)

// Dump writes a human-readable rendering of all recorded facts. The output
// is for debugging; it is deterministic but not a stability contract.
func (t *Tracker) Dump(w io.Writer) {
	for i, m := range t.modules {
		t.dumpModule(w, m, t.deps.ModuleDeps(i))
	}
}

func (t *Tracker) dumpModule(w io.Writer, m ports.Module, d *domain.ModuleDeps) {
	fmt.Fprintf(w, "module %s (%d classes, %d native strings)\n",
		m.Name(), m.ClassDefCount(), m.StringCount())

	for i, s := range d.ExtraStrings() {
		fmt.Fprintf(w, "  extra string #%d: %s\n", d.NativeStrings()+i, s)
	}
	for _, pair := range d.SortedAssignable() {
		fmt.Fprintf(w, "  type %s must be assignable to %s\n",
			t.dumpString(m, pair.Source), t.dumpString(m, pair.Destination))
	}
	for _, pair := range d.SortedUnassignable() {
		fmt.Fprintf(w, "  type %s must not be assignable to %s\n",
			t.dumpString(m, pair.Source), t.dumpString(m, pair.Destination))
	}
	for _, rec := range d.SortedClasses() {
		if rec.Resolved() {
			fmt.Fprintf(w, "  type #%d resolved with access flags %#04x\n",
				rec.TypeIndex, rec.AccessFlags)
		} else {
			fmt.Fprintf(w, "  type #%d unresolved\n", rec.TypeIndex)
		}
	}
	dumpMembers(w, t, m, "field", d.SortedFields())
	dumpMembers(w, t, m, "method", d.SortedMethods())

	dumpBits(w, m, "verified", d.Verified())
	dumpBits(w, m, "redefined", d.Redefined())
}

func dumpMembers(w io.Writer, t *Tracker, m ports.Module, kind string, recs []domain.MemberResolution) {
	for _, rec := range recs {
		if rec.Resolved() {
			fmt.Fprintf(w, "  %s #%d resolved with access flags %#04x in class %s\n",
				kind, rec.MemberIndex, rec.AccessFlags, t.dumpString(m, rec.DeclaringClass))
		} else {
			fmt.Fprintf(w, "  %s #%d unresolved\n", kind, rec.MemberIndex)
		}
	}
}

func dumpBits(w io.Writer, m ports.Module, label string, bits domain.BitVector) {
	for i := 0; i < bits.Len(); i++ {
		if bits.Get(i) {
			fmt.Fprintf(w, "  %s class %s\n", label, m.ClassDescriptor(i))
		}
	}
}

func (t *Tracker) dumpString(m ports.Module, id domain.StringID) string {
	if s, ok := t.StringAt(m, id); ok {
		return s
	}
	return fmt.Sprintf("<dangling string #%d>", id)
}
