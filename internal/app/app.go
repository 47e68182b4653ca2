// Package app implements the application layer for vdex: each CLI command
// maps onto one method tying the manifest loader, the verification driver,
// the wire codec, and the validator together.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/vdex/internal/adapters/manifest"
	"go.trai.ch/vdex/internal/adapters/memenv"
	"go.trai.ch/vdex/internal/adapters/wire"
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/vdex/internal/engine/driver"
	"go.trai.ch/vdex/internal/engine/tracker"
	"go.trai.ch/vdex/internal/engine/validator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader *manifest.Loader
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a new App instance.
func New(loader *manifest.Loader, log ports.Logger, tracer ports.Tracer) *App {
	return &App{
		loader: loader,
		logger: log,
		tracer: tracer,
	}
}

// RecordOptions configuration for the Record method.
type RecordOptions struct {
	// Workers bounds the number of concurrent class verifications;
	// 0 means one per CPU.
	Workers int
}

// Record verifies every class of the manifest's compiled set, records the
// classpath-sensitive facts observed along the way, and writes the encoded
// aggregate to outPath.
func (a *App) Record(ctx context.Context, manifestPath, outPath string, opts RecordOptions) error {
	env, err := a.loader.Load(manifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	modules := env.CompiledPorts()
	rec := tracker.New(modules, true)
	d := driver.New(memenv.NewStructuralVerifier(env.Env), env.Env, a.logger, a.tracer, opts.Workers)
	if err := d.Run(ctx, rec); err != nil {
		return zerr.Wrap(err, "verification pass failed")
	}

	data := wire.Encode(modules, rec.Deps())
	if err := os.WriteFile(outPath, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write dependency file")
	}

	a.logger.Info(fmt.Sprintf("recorded dependencies for %d modules (%d bytes)", len(modules), len(data)))
	return nil
}

// Dump decodes a dependency file against the manifest's compiled set and
// renders its contents in text form to w.
func (a *App) Dump(_ context.Context, manifestPath, depsPath string, w io.Writer) error {
	_, rec, err := a.loadRecorded(manifestPath, depsPath)
	if err != nil {
		return err
	}

	rec.Dump(w)
	return nil
}

// Check re-derives every fact of a dependency file against the manifest's
// current classpath. A nil return means the cached verification results are
// still trustworthy.
func (a *App) Check(ctx context.Context, manifestPath, depsPath string) error {
	env, rec, err := a.loadRecorded(manifestPath, depsPath)
	if err != nil {
		return err
	}

	v := validator.New(env.Env, a.tracer)
	if err := v.Validate(ctx, rec, env.ClasspathPorts()); err != nil {
		return zerr.Wrap(err, "dependency validation failed")
	}

	a.logger.Info("all recorded dependencies hold")
	return nil
}

// Merge unions the dependency files produced by split verification passes
// over the same compiled set and writes the combined aggregate to outPath.
func (a *App) Merge(_ context.Context, manifestPath string, inputs []string, outPath string) error {
	if len(inputs) == 0 {
		return zerr.New("no dependency files to merge")
	}

	env, err := a.loader.Load(manifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}
	modules := env.CompiledPorts()

	merged, err := a.decodeDeps(modules, inputs[0])
	if err != nil {
		return err
	}
	rec := tracker.FromDeps(modules, merged)
	for _, path := range inputs[1:] {
		next, err := a.decodeDeps(modules, path)
		if err != nil {
			return err
		}
		rec.Merge(tracker.FromDeps(modules, next))
	}

	data := wire.Encode(modules, rec.Deps())
	if err := os.WriteFile(outPath, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write dependency file")
	}

	a.logger.Info(fmt.Sprintf("merged %d dependency files (%d bytes)", len(inputs), len(data)))
	return nil
}

// loadRecorded loads the manifest and decodes a dependency file recorded
// over its compiled set.
func (a *App) loadRecorded(manifestPath, depsPath string) (*manifest.Environment, *tracker.Tracker, error) {
	env, err := a.loader.Load(manifestPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load manifest")
	}

	modules := env.CompiledPorts()
	deps, err := a.decodeDeps(modules, depsPath)
	if err != nil {
		return nil, nil, err
	}
	return env, tracker.FromDeps(modules, deps), nil
}

func (a *App) decodeDeps(modules []ports.Module, path string) (*domain.Deps, error) {
	// #nosec G304 -- path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read dependency file")
	}
	deps, err := wire.Decode(modules, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode dependency file"), "path", path)
	}
	return deps, nil
}
