package memenv

import (
	"context"

	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ClassVerifier = (*StructuralVerifier)(nil)

// StructuralVerifier is a shallow class verifier over in-memory metadata: it
// resolves every reference the class's code touches and checks the class
// against its declared supertypes, reporting each outcome through the
// recorder. It performs no bytecode-level flow analysis.
type StructuralVerifier struct {
	env *Env
}

// NewStructuralVerifier creates a verifier over env.
func NewStructuralVerifier(env *Env) *StructuralVerifier {
	return &StructuralVerifier{env: env}
}

// VerifyClass implements ports.ClassVerifier.
func (v *StructuralVerifier) VerifyClass(_ context.Context, pm ports.Module, classDef int, rec ports.Recorder) (ports.VerifyOutcome, error) {
	m := v.env.byName[pm.Name()]
	if m == nil {
		return ports.OutcomeHardFail, zerr.With(zerr.New("module not loaded in environment"), "module", pm.Name())
	}
	if classDef < 0 || classDef >= len(m.classes) {
		return ports.OutcomeHardFail, zerr.With(zerr.New("class definition index out of range"), "module", pm.Name())
	}
	c := m.classes[classDef]

	outcome := ports.OutcomeVerified
	for _, i := range c.typeRefs {
		resolved := v.env.ResolveType(pm, uint32(i))
		rec.RecordClassResolution(pm, uint32(i), resolved)
		if resolved == nil {
			outcome = ports.OutcomeSoftFail
		}
	}
	for _, i := range c.fieldRefs {
		resolved := v.env.ResolveField(pm, uint32(i))
		rec.RecordFieldResolution(pm, uint32(i), resolved)
		if resolved == nil {
			outcome = ports.OutcomeSoftFail
		}
	}
	for _, i := range c.methodRefs {
		resolved := v.env.ResolveMethod(pm, uint32(i))
		rec.RecordMethodResolution(pm, uint32(i), resolved)
		if resolved == nil {
			outcome = ports.OutcomeSoftFail
		}
	}

	// A class must be assignable to each of its declared supertypes. A
	// missing supertype fails the class outright.
	for _, super := range c.supertypes() {
		dest := v.env.LookupClass(super)
		if dest == nil {
			outcome = ports.OutcomeHardFail
			continue
		}
		assignable := v.env.IsAssignable(dest, c, true)
		rec.RecordAssignability(pm, dest, c, true, assignable)
		if !assignable {
			outcome = ports.OutcomeHardFail
		}
	}
	return outcome, nil
}

func (c *Class) supertypes() []string {
	var out []string
	if c.super != "" {
		out = append(out, c.super)
	}
	return append(out, c.interfaces...)
}
