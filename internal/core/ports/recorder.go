package ports

// Recorder receives the outcome of every resolution and assignability test
// a verifier performs, and decides which of them are classpath-sensitive and
// worth recording. The verifier passes the module owning the code under
// verification, never the target's module.
//
// Implementations serialize their own mutations; hooks never block on I/O
// or on other verification threads. Callers must keep the live metadata
// behind the Class/Field/Method arguments stable for the duration of each
// call. Invoking any hook for a module outside the declared compiled set is
// a programming error and panics.
//
//go:generate mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks
type Recorder interface {
	// RecordClassResolution records the outcome class of resolving the type
	// reference with the given index inside m. A nil class means the
	// resolution failed.
	RecordClassResolution(m Module, typeIndex uint32, class Class)

	// RecordFieldResolution records the outcome field of resolving the
	// field reference with the given index inside m. A nil field means the
	// resolution failed.
	RecordFieldResolution(m Module, memberIndex uint32, field Field)

	// RecordMethodResolution records the outcome method of resolving the
	// method reference with the given index inside m. A nil method means
	// the resolution failed.
	RecordMethodResolution(m Module, memberIndex uint32, method Method)

	// RecordAssignability records the outcome of an assignability test from
	// source to destination performed while verifying code owned by m.
	RecordAssignability(m Module, destination, source Class, strict, assignable bool)

	// RecordClassVerified records that the class definition at the given
	// index of m was judged verified (possibly with only benign issues).
	RecordClassVerified(m Module, classDef int)

	// RecordClassRedefined records that the class definition at the given
	// index of m is shadowed by a same-descriptor class with precedence in
	// class-loader resolution order.
	RecordClassRedefined(m Module, classDef int)
}
