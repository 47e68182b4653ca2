// Package manifest loads YAML verification manifests into in-memory
// modules and a class-loader environment.
package manifest

import (
	"os"
	"regexp"

	"go.trai.ch/vdex/internal/adapters/memenv"
	"go.trai.ch/vdex/internal/core/domain"
	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the manifest schema version this loader accepts.
const SupportedVersion = "1"

// Environment is a loaded manifest: the compiled modules, the classpath
// modules, and the resolution environment over both. The classpath precedes
// the compiled set in precedence order, so classpath definitions eclipse
// same-descriptor compiled classes.
type Environment struct {
	Compiled  []*memenv.Module
	Classpath []*memenv.Module
	Env       *memenv.Env
}

// CompiledPorts returns the compiled modules as the port type, in manifest
// order.
func (e *Environment) CompiledPorts() []ports.Module {
	out := make([]ports.Module, len(e.Compiled))
	for i, m := range e.Compiled {
		out[i] = m
	}
	return out
}

// ClasspathPorts returns the classpath modules as the port type.
func (e *Environment) ClasspathPorts() []ports.Module {
	out := make([]ports.Module, len(e.Classpath))
	for i, m := range e.Classpath {
		out[i] = m
	}
	return out
}

// Loader reads verification manifests from YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validDescriptorRegex = regexp.MustCompile(`^\[*(L[A-Za-z0-9_/$-]+;|[VZBSCIJFD])$`)

// Load reads a manifest from the given path and builds the described
// modules and environment.
func (l *Loader) Load(path string) (*Environment, error) {
	// #nosec G304 -- path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var m Manifest
	if parseErr := yaml.Unmarshal(data, &m); parseErr != nil {
		return nil, zerr.Wrap(parseErr, domain.ErrManifestInvalid.Error())
	}

	return l.build(&m)
}

func (l *Loader) build(m *Manifest) (*Environment, error) {
	if m.Version != "" && m.Version != SupportedVersion {
		return nil, zerr.With(domain.ErrManifestInvalid, "unsupported_version", m.Version)
	}
	if len(m.Compiled) == 0 {
		return nil, zerr.With(domain.ErrManifestInvalid, "reason", "no compiled modules")
	}

	names := make(map[string]bool)
	env := &Environment{}
	for _, dto := range m.Classpath {
		mod, err := l.buildModule(dto, names)
		if err != nil {
			return nil, err
		}
		env.Classpath = append(env.Classpath, mod)
	}
	for _, dto := range m.Compiled {
		mod, err := l.buildModule(dto, names)
		if err != nil {
			return nil, err
		}
		env.Compiled = append(env.Compiled, mod)
	}

	precedence := make([]*memenv.Module, 0, len(env.Classpath)+len(env.Compiled))
	precedence = append(precedence, env.Classpath...)
	precedence = append(precedence, env.Compiled...)
	env.Env = memenv.NewEnv(precedence...)
	return env, nil
}

func (l *Loader) buildModule(dto *ModuleDTO, names map[string]bool) (*memenv.Module, error) {
	if dto.Name == "" {
		return nil, zerr.With(domain.ErrManifestInvalid, "reason", "module without a name")
	}
	if names[dto.Name] {
		return nil, zerr.With(domain.ErrManifestInvalid, "duplicate_module", dto.Name)
	}
	names[dto.Name] = true

	mod := memenv.NewModule(dto.Name)
	defined := make(map[string]bool)
	for _, c := range dto.Classes {
		if err := l.addClass(mod, c, defined); err != nil {
			return nil, zerr.With(err, "module", dto.Name)
		}
	}
	for _, s := range dto.Strings {
		mod.AddString(s)
	}
	return mod, nil
}

func (l *Loader) addClass(mod *memenv.Module, dto *ClassDTO, defined map[string]bool) error {
	if err := validateDescriptor(dto.Descriptor); err != nil {
		return err
	}
	if defined[dto.Descriptor] {
		return zerr.With(domain.ErrManifestInvalid, "duplicate_class", dto.Descriptor)
	}
	defined[dto.Descriptor] = true

	for _, d := range append([]string{dto.Super}, dto.Interfaces...) {
		if d == "" {
			continue
		}
		if err := validateDescriptor(d); err != nil {
			return zerr.With(err, "class", dto.Descriptor)
		}
	}

	c := mod.DefineClass(dto.Descriptor, dto.Access, dto.Super, dto.Interfaces...)
	for _, f := range dto.Fields {
		c.AddField(f.Name, f.Descriptor, f.Access)
	}
	for _, f := range dto.Methods {
		c.AddMethod(f.Name, f.Descriptor, f.Access)
	}
	return addUses(mod, c, dto.Uses)
}

// addUses turns the class's declared references into module reference-table
// entries, reusing entries already present so repeated uses across classes
// share one index.
func addUses(mod *memenv.Module, c *memenv.Class, uses UsesDTO) error {
	for _, d := range uses.Types {
		if err := validateDescriptor(d); err != nil {
			return zerr.With(err, "class", c.Descriptor())
		}
		c.UseTypeRef(mod.AddTypeRef(d))
	}
	for _, r := range uses.Fields {
		if err := validateRef(r); err != nil {
			return zerr.With(err, "class", c.Descriptor())
		}
		c.UseFieldRef(mod.AddFieldRef(r.Owner, r.Name, r.Descriptor))
	}
	for _, r := range uses.Methods {
		if err := validateRef(r); err != nil {
			return zerr.With(err, "class", c.Descriptor())
		}
		c.UseMethodRef(mod.AddMethodRef(r.Owner, r.Name, r.Descriptor))
	}
	return nil
}

func validateDescriptor(descriptor string) error {
	if !validDescriptorRegex.MatchString(descriptor) {
		return zerr.With(domain.ErrManifestInvalid, "invalid_descriptor", descriptor)
	}
	return nil
}

func validateRef(r *RefDTO) error {
	if err := validateDescriptor(r.Owner); err != nil {
		return err
	}
	if r.Name == "" {
		return zerr.With(domain.ErrManifestInvalid, "reason", "reference without a member name")
	}
	return nil
}
