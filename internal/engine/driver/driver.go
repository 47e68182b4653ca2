// Package driver runs a verification pass over a compiled set: it fans the
// per-class verifier out across worker goroutines, performs the
// generation-time eclipse probe, and records the whole-class verified and
// redefined facts that the finer-grained recorder hooks do not cover.
package driver

import (
	"context"
	"runtime"

	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/vdex/internal/engine/tracker"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Driver coordinates one verification pass.
type Driver struct {
	verifier ports.ClassVerifier
	env      ports.Environment
	logger   ports.Logger
	tracer   ports.Tracer
	workers  int
}

// New creates a Driver. workers bounds the verification goroutines; zero
// means one per CPU.
func New(verifier ports.ClassVerifier, env ports.Environment, logger ports.Logger, tracer ports.Tracer, workers int) *Driver {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Driver{
		verifier: verifier,
		env:      env,
		logger:   logger,
		tracer:   tracer,
		workers:  workers,
	}
}

// Run verifies every class definition of every module in rec's compiled
// set, recording outcomes into rec. Classes found eclipsed by a
// same-descriptor class with loader precedence are recorded as redefined
// and skipped; classes whose verification does not hard-fail are recorded
// as verified.
func (d *Driver) Run(ctx context.Context, rec *tracker.Tracker) error {
	ctx, span := d.tracer.Start(ctx, "verify.pass", ports.WithAttribute("workers", d.workers))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for _, m := range rec.Modules() {
		for classDef := range m.ClassDefCount() {
			g.Go(func() error {
				return d.verifyClass(ctx, rec, m, classDef)
			})
		}
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "verification pass failed")
	}
	return nil
}

func (d *Driver) verifyClass(ctx context.Context, rec *tracker.Tracker, m ports.Module, classDef int) error {
	descriptor := m.ClassDescriptor(classDef)

	if class := d.env.LookupClass(descriptor); class != nil && !definedBy(class, m) {
		// A same-descriptor class with loader precedence shadows this
		// definition; its verification result would not be authoritative.
		rec.RecordClassRedefined(m, classDef)
		return nil
	}

	outcome, err := d.verifier.VerifyClass(ctx, m, classDef, rec)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "class verification failed"), "class", descriptor)
	}
	if outcome == ports.OutcomeHardFail {
		d.logger.Warn("class failed verification: " + descriptor)
		return nil
	}
	rec.RecordClassVerified(m, classDef)
	return nil
}

func definedBy(class ports.Class, m ports.Module) bool {
	return class.Module() != nil && class.Module().Name() == m.Name()
}
