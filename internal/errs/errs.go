// Package errs holds the error taxonomy shared by every vgbuf package.
//
// The sentinels are re-exported from the root package; sub-packages wrap
// them with %w so callers can test with errors.Is.
package errs

import "errors"

var (
	// InvalidArgument reports malformed dimensions, granularity violations
	// and malformed textual configuration.
	InvalidArgument = errors.New("invalid argument")

	// OutOfMemory reports an allocation request that could not be satisfied.
	OutOfMemory = errors.New("out of memory")

	// UnrecognizedIdentifier reports a name that does not resolve to a known
	// enumeration value. Only strict lookups return it.
	UnrecognizedIdentifier = errors.New("unrecognized identifier")
)
