// Package logging provides the diagnostic logging surface for the axmldump
// CLI.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr
//   - NullLogger: discards all messages (useful for testing)
//
// Decoder output (the XML text itself) never goes through a logger; loggers
// carry only progress and diagnostic chatter, on stderr, so piped stdout
// stays machine-consumable.
//
// All logger implementations are safe for concurrent use by multiple
// goroutines.
package logging
