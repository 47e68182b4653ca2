package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdex/internal/adapters/memenv"
	"go.trai.ch/vdex/internal/adapters/telemetry"
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/vdex/internal/engine/tracker"
	"go.trai.ch/vdex/internal/engine/validator"
)

// fixture is a compiled module m1 over a classpath module cp, with reference
// tables wired so the environment can re-resolve every recorded fact:
//
//	cp: Object; X extends Object with field tag and method greet
//	m1: C extends X; type ref #0 = X, field ref #0 = X.tag,
//	    method ref #0 = X.gone (unresolvable)
type fixture struct {
	cp  *memenv.Module
	m1  *memenv.Module
	env *memenv.Env
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cp := memenv.NewModule("cp")
	cp.DefineClass("Ljava/lang/Object;", 0x0001, "")
	x := cp.DefineClass("Lcp/X;", 0x0001, "Ljava/lang/Object;")
	x.AddField("tag", "I", 0x0011)
	x.AddMethod("greet", "()V", 0x0001)

	m1 := memenv.NewModule("m1")
	c := m1.DefineClass("Lm1/C;", 0x0001, "Lcp/X;")
	c.UseTypeRef(m1.AddTypeRef("Lcp/X;"))
	c.UseFieldRef(m1.AddFieldRef("Lcp/X;", "tag", "I"))
	c.UseMethodRef(m1.AddMethodRef("Lcp/X;", "gone", "()V"))

	env := memenv.NewEnv(cp, m1)
	return &fixture{cp: cp, m1: m1, env: env}
}

// record re-derives the facts the structural verifier would report for C.
func (f *fixture) record() *tracker.Tracker {
	rec := tracker.New([]ports.Module{f.m1}, true)
	rec.RecordClassResolution(f.m1, 0, f.env.ResolveType(f.m1, 0))
	rec.RecordFieldResolution(f.m1, 0, f.env.ResolveField(f.m1, 0))
	rec.RecordMethodResolution(f.m1, 0, f.env.ResolveMethod(f.m1, 0))
	rec.RecordAssignability(f.m1, f.env.LookupClass("Lcp/X;"), f.m1.Class("Lm1/C;"), true, true)
	rec.RecordClassVerified(f.m1, 0)
	return rec
}

func (f *fixture) validate(rec *tracker.Tracker, classpath ...ports.Module) error {
	v := validator.New(f.env, telemetry.NewNoOpTracer())
	return v.Validate(context.Background(), rec, classpath)
}

func TestValidator_StableEnvironment(t *testing.T) {
	f := newFixture(t)
	rec := f.record()

	require.NoError(t, f.validate(rec, f.cp))
}

func TestValidator_ClassFlagDrift(t *testing.T) {
	f := newFixture(t)
	rec := f.record()

	f.cp.Class("Lcp/X;").SetAccessFlags(0x0401)

	err := f.validate(rec, f.cp)
	require.ErrorIs(t, err, domain.ErrDependencyViolation)
}

func TestValidator_FieldFlagDrift(t *testing.T) {
	f := newFixture(t)
	rec := f.record()

	f.cp.Class("Lcp/X;").Field("tag").SetAccessFlags(0x0019)

	err := f.validate(rec, f.cp)
	require.ErrorIs(t, err, domain.ErrDependencyViolation)
}

func TestValidator_UnresolvedNowResolves(t *testing.T) {
	f := newFixture(t)
	rec := f.record()

	// The method recorded as unresolved appears on the classpath later.
	f.cp.Class("Lcp/X;").AddMethod("gone", "()V", 0x0001)

	err := f.validate(rec, f.cp)
	require.ErrorIs(t, err, domain.ErrDependencyViolation)
}

func TestValidator_DeclaringClassDrift(t *testing.T) {
	f := newFixture(t)

	// Simulate a recording made when tag was declared on Object: the current
	// environment resolves it on X instead.
	obj := f.cp.Class("Ljava/lang/Object;")
	tag := obj.AddField("tag", "I", 0x0011)

	rec := tracker.New([]ports.Module{f.m1}, true)
	rec.RecordFieldResolution(f.m1, 0, tag)

	err := f.validate(rec, f.cp)
	require.ErrorIs(t, err, domain.ErrDependencyViolation)
}

func TestValidator_AssignabilityDrift(t *testing.T) {
	f := newFixture(t)
	rec := tracker.New([]ports.Module{f.m1}, true)

	// Record a negative outcome that the current hierarchy contradicts.
	rec.RecordAssignability(f.m1, f.env.LookupClass("Ljava/lang/Object;"), f.env.LookupClass("Lcp/X;"), true, false)

	err := f.validate(rec, f.cp)
	require.ErrorIs(t, err, domain.ErrDependencyViolation)
}

func TestValidator_EclipseDetection(t *testing.T) {
	f := newFixture(t)
	rec := f.record()

	shadow := memenv.NewModule("shadow")
	shadow.DefineClass("Lm1/C;", 0x0001, "")

	err := f.validate(rec, f.cp, shadow)
	require.ErrorIs(t, err, domain.ErrDependencyViolation)

	t.Run("redefined classes are exempt", func(t *testing.T) {
		rec := f.record()
		rec.RecordClassRedefined(f.m1, 0)

		assert.NoError(t, f.validate(rec, f.cp, shadow))
	})
}

// The compiled class C extends the classpath class X. Replacing X's
// supertype relationship breaks the recorded assignability.
func TestValidator_SupertypeRemoved(t *testing.T) {
	cpThen := memenv.NewModule("cp")
	cpThen.DefineClass("Ljava/lang/Object;", 0x0001, "")
	cpThen.DefineClass("Lcp/X;", 0x0001, "Ljava/lang/Object;")

	build := func(cp *memenv.Module) (*memenv.Module, *memenv.Env) {
		m1 := memenv.NewModule("m1")
		m1.DefineClass("Lm1/C;", 0x0001, "Lcp/X;")
		env := memenv.NewEnv(cp, m1)
		return m1, env
	}

	m1Then, envThen := build(cpThen)
	rec := tracker.New([]ports.Module{m1Then}, true)
	rec.RecordAssignability(m1Then,
		envThen.LookupClass("Ljava/lang/Object;"), m1Then.Class("Lm1/C;"), true, true)

	// Recorded through the boundary: X, not C, must stay assignable.
	pairs := rec.Deps().ModuleDeps(0).SortedAssignable()
	require.Len(t, pairs, 1)

	// Same classpath shape, but X no longer descends from Object.
	cpNow := memenv.NewModule("cp")
	cpNow.DefineClass("Ljava/lang/Object;", 0x0001, "")
	cpNow.DefineClass("Lcp/X;", 0x0001, "")
	m1Now, envNow := build(cpNow)

	recNow := tracker.FromDeps([]ports.Module{m1Now}, rec.Deps())
	v := validator.New(envNow, telemetry.NewNoOpTracer())
	err := v.Validate(context.Background(), recNow, []ports.Module{cpNow})
	require.ErrorIs(t, err, domain.ErrDependencyViolation)
}
