package manifest

// Manifest represents the structure of a verification manifest file: the
// modules being compiled and the classpath they link against.
type Manifest struct {
	Version   string       `yaml:"version"`
	Compiled  []*ModuleDTO `yaml:"compiled"`
	Classpath []*ModuleDTO `yaml:"classpath"`
}

// ModuleDTO describes one module's class definitions and any extra native
// strings beyond the descriptors the loader collects automatically.
type ModuleDTO struct {
	Name    string      `yaml:"name"`
	Strings []string    `yaml:"strings"`
	Classes []*ClassDTO `yaml:"classes"`
}

// ClassDTO describes one class definition.
type ClassDTO struct {
	Descriptor string       `yaml:"descriptor"`
	Access     uint32       `yaml:"access"`
	Super      string       `yaml:"super"`
	Interfaces []string     `yaml:"interfaces"`
	Fields     []*MemberDTO `yaml:"fields"`
	Methods    []*MemberDTO `yaml:"methods"`
	Uses       UsesDTO      `yaml:"uses"`
}

// MemberDTO describes a declared field or method.
type MemberDTO struct {
	Name       string `yaml:"name"`
	Descriptor string `yaml:"descriptor"`
	Access     uint32 `yaml:"access"`
}

// UsesDTO lists the references a class's code touches; the loader turns
// them into module reference-table entries.
type UsesDTO struct {
	Types   []string  `yaml:"types"`
	Fields  []*RefDTO `yaml:"fields"`
	Methods []*RefDTO `yaml:"methods"`
}

// RefDTO is a field or method reference: the class searched plus the
// member's name and type descriptor.
type RefDTO struct {
	Owner      string `yaml:"owner"`
	Name       string `yaml:"name"`
	Descriptor string `yaml:"descriptor"`
}
