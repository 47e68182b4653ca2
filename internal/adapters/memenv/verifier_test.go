package memenv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdex/internal/adapters/memenv"
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/vdex/internal/engine/tracker"
)

func TestStructuralVerifier_CleanClass(t *testing.T) {
	env, _, m1 := buildEnv(t)
	c := m1.Class("Lm1/C;")
	c.UseTypeRef(m1.AddTypeRef("Lcp/X;"))
	c.UseFieldRef(m1.AddFieldRef("Lcp/X;", "tag", "I"))

	rec := tracker.New([]ports.Module{m1}, true)
	v := memenv.NewStructuralVerifier(env)

	outcome, err := v.VerifyClass(context.Background(), m1, 0, rec)
	require.NoError(t, err)
	assert.Equal(t, ports.OutcomeVerified, outcome)

	d := rec.Deps().ModuleDeps(0)
	require.Len(t, d.SortedClasses(), 1)
	require.Len(t, d.SortedFields(), 1)
	assert.NotEmpty(t, d.SortedAssignable(), "supertype relationships are recorded")
}

func TestStructuralVerifier_UnresolvableReferenceSoftFails(t *testing.T) {
	env, _, m1 := buildEnv(t)
	c := m1.Class("Lm1/C;")
	c.UseTypeRef(m1.AddTypeRef("Lcp/Gone;"))

	rec := tracker.New([]ports.Module{m1}, true)
	v := memenv.NewStructuralVerifier(env)

	outcome, err := v.VerifyClass(context.Background(), m1, 0, rec)
	require.NoError(t, err)
	assert.Equal(t, ports.OutcomeSoftFail, outcome)

	classes := rec.Deps().ModuleDeps(0).SortedClasses()
	require.Len(t, classes, 1)
	assert.Equal(t, domain.UnresolvedMarker, classes[0].AccessFlags)
}

func TestStructuralVerifier_MissingSupertypeHardFails(t *testing.T) {
	m1 := memenv.NewModule("m1")
	m1.DefineClass("Lm1/C;", 0x0001, "Lcp/Gone;")
	env := memenv.NewEnv(m1)

	rec := tracker.New([]ports.Module{m1}, true)
	v := memenv.NewStructuralVerifier(env)

	outcome, err := v.VerifyClass(context.Background(), m1, 0, rec)
	require.NoError(t, err)
	assert.Equal(t, ports.OutcomeHardFail, outcome)
}

func TestStructuralVerifier_BadInput(t *testing.T) {
	env, _, m1 := buildEnv(t)
	rec := tracker.New([]ports.Module{m1}, true)
	v := memenv.NewStructuralVerifier(env)

	_, err := v.VerifyClass(context.Background(), memenv.NewModule("stray"), 0, rec)
	require.Error(t, err)

	_, err = v.VerifyClass(context.Background(), m1, 99, rec)
	require.Error(t, err)
}
