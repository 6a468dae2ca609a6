package axml

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Decode completed successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitInvalidFormat      = 10 // Input is not well-formed binary XML
	ExitTruncatedInput     = 11 // Input ended mid-field or mid-chunk
	ExitUnsupportedFeature = 12 // Input uses a format feature out of scope
	ExitIncompleteDocument = 13 // Input ended with elements still open
)
