package axml

import (
	"errors"
)

// Sentinel errors for decode failure classification.
// Every error returned by Parse wraps exactly one of these, with context
// (offsets, indices, namespace URIs) appended via fmt.Errorf("%w: ...").
//
// Example usage:
//
//	doc, err := axml.Parse(f)
//	if errors.Is(err, axml.ErrUnsupportedFeature) {
//	    // manifest uses a format feature this decoder does not handle
//	}
var (
	// ErrInvalidFormat indicates the input is not a well-formed binary XML
	// document: wrong top-level chunk type, an unknown chunk tag, a chunk
	// size that contradicts its header, or character data outside any
	// element.
	ErrInvalidFormat = errors.New("invalid binary XML")

	// ErrTruncatedInput indicates the buffer ended in the middle of a field
	// or chunk that the format required to be present.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrMissingChunk indicates the document finished without a string pool
	// or resource map chunk, both of which are mandatory.
	ErrMissingChunk = errors.New("missing required chunk")

	// ErrStringNotFound indicates a string pool reference pointed outside
	// the pool, or a required reference carried the absent sentinel.
	ErrStringNotFound = errors.New("string pool index not found")

	// ErrNamespaceNotFound indicates an attribute referenced a namespace URI
	// that no StartNamespace event registered.
	ErrNamespaceNotFound = errors.New("namespace not registered")

	// ErrInvalidEncoding indicates a pool entry contained an invalid UTF-8
	// sequence or an unpaired UTF-16 surrogate.
	ErrInvalidEncoding = errors.New("invalid string encoding")

	// ErrUnsupportedFeature indicates the document uses a format feature
	// deliberately outside this decoder's scope: styled strings, strings
	// longer than 32767 units, or namespaced element tags.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrIncompleteDocument indicates the input ended while elements were
	// still open, or contained no element at all. Callers must never treat
	// an absent root as a successful empty document.
	ErrIncompleteDocument = errors.New("incomplete document")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known decode
// failures, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrTruncatedInput):
		return ExitTruncatedInput
	case errors.Is(err, ErrUnsupportedFeature):
		return ExitUnsupportedFeature
	case errors.Is(err, ErrIncompleteDocument):
		return ExitIncompleteDocument
	case errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrMissingChunk),
		errors.Is(err, ErrStringNotFound),
		errors.Is(err, ErrNamespaceNotFound),
		errors.Is(err, ErrInvalidEncoding):
		return ExitInvalidFormat
	}

	return ExitGeneralError
}
