package vgbuf

import "github.com/gogpu/vgbuf/internal/errs"

// Error taxonomy. Every error returned by vgbuf and its sub-packages wraps
// one of these; test with errors.Is.
var (
	// ErrInvalidArgument reports malformed dimensions, compressed-format
	// granularity violations, bad alignments and malformed configuration.
	ErrInvalidArgument = errs.InvalidArgument

	// ErrOutOfMemory reports an allocation request that could not be
	// satisfied. It is never retried.
	ErrOutOfMemory = errs.OutOfMemory

	// ErrUnrecognizedIdentifier reports an unknown format name from
	// format.Lookup. format.Parse substitutes the default instead.
	ErrUnrecognizedIdentifier = errs.UnrecognizedIdentifier
)
