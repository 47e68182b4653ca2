package ports

// Environment resolves references against live class metadata under one
// class-loader context. It is consumed read-only: validation runs while the
// caller guarantees metadata stability, and the environment itself performs
// no synchronization.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// ResolveType resolves the type reference with the given index inside
	// m. Returns nil if resolution fails.
	ResolveType(m Module, typeIndex uint32) Class

	// ResolveField resolves the field reference with the given index inside
	// m. Returns nil if resolution fails.
	ResolveField(m Module, memberIndex uint32) Field

	// ResolveMethod resolves the method reference with the given index
	// inside m. Returns nil if resolution fails.
	ResolveMethod(m Module, memberIndex uint32) Method

	// LookupClass finds the class with the given descriptor following
	// class-loader precedence order: classes earlier in precedence shadow
	// later same-descriptor definitions. Returns nil if no loaded module
	// defines the descriptor.
	LookupClass(descriptor string) Class

	// IsAssignable reports whether source may be used where destination is
	// expected. The strict flag mirrors the verifier's two call sites; it
	// does not change what gets recorded.
	IsAssignable(destination, source Class, strict bool) bool
}
