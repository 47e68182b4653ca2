package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedDeps is returned when encoded dependency data cannot be
	// decoded. The metadata names the specific defect.
	ErrMalformedDeps = zerr.New("malformed dependency data")

	// ErrTruncatedData is returned when encoded dependency data ends before
	// the last module's record is complete.
	ErrTruncatedData = zerr.New("unexpected end of dependency data")

	// ErrTrailingData is returned when bytes remain after the last module's
	// record.
	ErrTrailingData = zerr.New("trailing bytes after dependency data")

	// ErrBitVectorLength is returned when an encoded bit vector disagrees
	// with the corresponding module's class definition count.
	ErrBitVectorLength = zerr.New("bit vector length does not match class definition count")

	// ErrChecksumMismatch is returned when the payload checksum does not
	// match the one recorded in the header.
	ErrChecksumMismatch = zerr.New("dependency data checksum mismatch")

	// ErrUnsupportedVersion is returned when the encoded format version is
	// not understood.
	ErrUnsupportedVersion = zerr.New("unsupported dependency data version")

	// ErrDependencyViolation is returned by validation when a re-derived
	// fact disagrees with the recorded one. The metadata identifies the
	// fact and both outcomes.
	ErrDependencyViolation = zerr.New("recorded dependency no longer holds")

	// ErrManifestInvalid is returned when a module manifest fails
	// structural validation.
	ErrManifestInvalid = zerr.New("invalid module manifest")
)
