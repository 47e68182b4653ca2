package ports

import "context"

// VerifyOutcome classifies the result of verifying one class.
type VerifyOutcome int

const (
	// OutcomeVerified means the class verified cleanly.
	OutcomeVerified VerifyOutcome = iota
	// OutcomeSoftFail means verification found only issues that can be
	// re-checked at runtime; the class still counts as verified for
	// dependency purposes.
	OutcomeSoftFail
	// OutcomeHardFail means the class failed verification.
	OutcomeHardFail
)

// ClassVerifier verifies a single class definition, reporting every
// resolution and assignability test it performs through the recorder. The
// driver calls it once per class per verification pass, possibly from
// multiple goroutines concurrently.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type ClassVerifier interface {
	VerifyClass(ctx context.Context, m Module, classDef int, rec Recorder) (VerifyOutcome, error)
}
