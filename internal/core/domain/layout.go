package domain

const (
	// ManifestFileName is the default name of the verification manifest.
	ManifestFileName = "vdex.yaml"

	// DepsFileName is the default name for encoded dependency files.
	DepsFileName = "deps.vdep"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
