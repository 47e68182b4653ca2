// Package validator re-derives recorded verification dependencies against a
// live class environment and reports the first fact that no longer holds.
// A clean run means the paired verification result can still be trusted.
package validator

import (
	"context"

	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/vdex/internal/engine/tracker"
	"go.trai.ch/zerr"
)

// Validator checks dependency aggregates against one live environment.
// Validation is read-only and single-threaded; the caller guarantees the
// environment's metadata is stable for the duration of a Validate call.
type Validator struct {
	env    ports.Environment
	tracer ports.Tracer
}

// New creates a Validator over the given live environment.
func New(env ports.Environment, tracer ports.Tracer) *Validator {
	return &Validator{env: env, tracer: tracer}
}

// Validate re-derives every fact recorded in t and confirms it still holds:
// resolution outcomes, assignability outcomes, and the absence of eclipsing
// for every class recorded as verified and not redefined. It stops at the
// first violation. classpath lists the modules outside the compiled set in
// loader precedence order.
func (v *Validator) Validate(ctx context.Context, t *tracker.Tracker, classpath []ports.Module) error {
	for i, m := range t.Modules() {
		if err := v.validateModule(ctx, t, m, t.Deps().ModuleDeps(i), classpath); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateModule(
	ctx context.Context,
	t *tracker.Tracker,
	m ports.Module,
	d *domain.ModuleDeps,
	classpath []ports.Module,
) error {
	_, span := v.tracer.Start(ctx, "validate.module", ports.WithAttribute("module", m.Name()))
	defer span.End()

	err := v.validateResolutions(t, m, d)
	if err == nil {
		err = v.validateAssignability(t, m, d)
	}
	if err == nil {
		err = v.validateInternalClasses(m, d, classpath)
	}
	if err != nil {
		span.RecordError(err)
		return zerr.With(err, "module", m.Name())
	}
	return nil
}

func (v *Validator) validateResolutions(t *tracker.Tracker, m ports.Module, d *domain.ModuleDeps) error {
	for _, rec := range d.SortedClasses() {
		class := v.env.ResolveType(m, rec.TypeIndex)
		if err := checkOutcome("class", uint64(rec.TypeIndex), rec.Resolved(), class != nil); err != nil {
			return err
		}
		if class == nil {
			continue
		}
		if got := uint16(class.AccessFlags()); got != rec.AccessFlags {
			return flagsMismatch("class", uint64(rec.TypeIndex), rec.AccessFlags, got)
		}
	}

	for _, rec := range d.SortedFields() {
		field := v.env.ResolveField(m, rec.MemberIndex)
		if err := v.checkMember(t, m, "field", rec, field); err != nil {
			return err
		}
	}
	for _, rec := range d.SortedMethods() {
		method := v.env.ResolveMethod(m, rec.MemberIndex)
		var meta ports.Field
		if method != nil {
			meta = memberMeta{method}
		}
		if err := v.checkMember(t, m, "method", rec, meta); err != nil {
			return err
		}
	}
	return nil
}

// memberMeta adapts a Method to the Field shape shared by member checks.
type memberMeta struct {
	ports.Method
}

func (v *Validator) checkMember(
	t *tracker.Tracker,
	m ports.Module,
	kind string,
	rec domain.MemberResolution,
	member ports.Field,
) error {
	if err := checkOutcome(kind, uint64(rec.MemberIndex), rec.Resolved(), member != nil); err != nil {
		return err
	}
	if member == nil {
		return nil
	}
	if got := uint16(member.AccessFlags()); got != rec.AccessFlags {
		return flagsMismatch(kind, uint64(rec.MemberIndex), rec.AccessFlags, got)
	}

	recorded, ok := t.StringAt(m, rec.DeclaringClass)
	if !ok {
		return zerr.With(zerr.With(domain.ErrDependencyViolation,
			"kind", kind), "defect", "dangling declaring class string id")
	}
	if got := member.DeclaringClass().Descriptor(); got != recorded {
		return zerr.With(zerr.With(zerr.With(zerr.With(domain.ErrDependencyViolation,
			"kind", kind), "index", rec.MemberIndex), "recorded_declaring", recorded), "actual_declaring", got)
	}
	return nil
}

func (v *Validator) validateAssignability(t *tracker.Tracker, m ports.Module, d *domain.ModuleDeps) error {
	if err := v.checkPairs(t, m, d.SortedAssignable(), true); err != nil {
		return err
	}
	return v.checkPairs(t, m, d.SortedUnassignable(), false)
}

func (v *Validator) checkPairs(
	t *tracker.Tracker,
	m ports.Module,
	pairs []domain.TypeAssignability,
	expectAssignable bool,
) error {
	for _, pair := range pairs {
		destName, ok := t.StringAt(m, pair.Destination)
		if !ok {
			return zerr.With(domain.ErrDependencyViolation, "defect", "dangling destination string id")
		}
		srcName, ok := t.StringAt(m, pair.Source)
		if !ok {
			return zerr.With(domain.ErrDependencyViolation, "defect", "dangling source string id")
		}

		dest := v.env.LookupClass(destName)
		src := v.env.LookupClass(srcName)
		if dest == nil || src == nil {
			return zerr.With(zerr.With(zerr.With(domain.ErrDependencyViolation,
				"kind", "assignability"), "destination", destName), "source", srcName)
		}
		if got := v.env.IsAssignable(dest, src, false); got != expectAssignable {
			return zerr.With(zerr.With(zerr.With(zerr.With(domain.ErrDependencyViolation,
				"kind", "assignability"), "destination", destName), "source", srcName),
				"recorded_assignable", expectAssignable)
		}
	}
	return nil
}

// validateInternalClasses confirms that every class recorded as verified
// and not redefined is still the one the loader resolves for its
// descriptor: no same-descriptor class in the classpath may now take
// precedence when none was recorded at generation time.
func (v *Validator) validateInternalClasses(m ports.Module, d *domain.ModuleDeps, classpath []ports.Module) error {
	verified, redefined := d.Verified(), d.Redefined()
	for i := 0; i < verified.Len(); i++ {
		if !verified.Get(i) || redefined.Get(i) {
			continue
		}
		descriptor := m.ClassDescriptor(i)
		for _, cp := range classpath {
			if cp.HasClassDef(descriptor) {
				return zerr.With(zerr.With(zerr.With(domain.ErrDependencyViolation,
					"kind", "eclipse"), "class", descriptor), "eclipsed_by", cp.Name())
			}
		}
	}
	return nil
}

func checkOutcome(kind string, index uint64, recordedResolved, actuallyResolved bool) error {
	if recordedResolved == actuallyResolved {
		return nil
	}
	return zerr.With(zerr.With(zerr.With(zerr.With(domain.ErrDependencyViolation,
		"kind", kind), "index", index), "recorded_resolved", recordedResolved),
		"actual_resolved", actuallyResolved)
}

func flagsMismatch(kind string, index uint64, recorded, actual uint16) error {
	return zerr.With(zerr.With(zerr.With(zerr.With(domain.ErrDependencyViolation,
		"kind", kind), "index", index), "recorded_flags", recorded), "actual_flags", actual)
}
