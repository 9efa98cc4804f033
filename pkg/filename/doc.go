// Package filename turns arbitrary user input into a string that is a valid
// filename on unix, windows and macos at the same time, and that carries no
// embedded markup or risky control characters.
//
// A Sanitizer holds one filename and exposes three independent passes that
// rewrite it in place. Each returns the Sanitizer so calls chain:
//
//	name := filename.New(userInput).
//	    StripMarkup().
//	    StripRiskyCharacters().
//	    StripIllegalFilesystemCharacters().
//	    Filename()
//
// The passes are:
//
//   - StripMarkup drops <tag> spans, whole <name>...</name> elements and
//     everything after an unterminated '<'.
//   - StripRiskyCharacters deletes backticks and ASCII control characters and
//     escapes & " ' < > (and, by default, non-ASCII characters) as numeric
//     entities such as &#60;.
//   - StripIllegalFilesystemCharacters deletes every character in the union of
//     the per-platform sets in the Catalog.
//
// The library does not impose an order. Sanitize and Compose run
// DefaultPasses (markup, risky, illegal) or a custom list. The same logic is
// available as stateless functions: StripMarkup, EscapeRisky and StripIllegal.
//
// # Scope
//
// The package only transforms strings. It does not enforce length limits,
// reject reserved device names such as CON or NUL, normalize unicode or touch
// the filesystem. An empty result is valid and is never replaced by a default.
//
// # Errors
//
// No pass fails on valid UTF-8 input. StripRiskyCharacters cannot escape
// invalid UTF-8; the filename decays to "" and Err returns ErrInvalidEncoding
// until SetFilename is called again.
//
// # Configuration
//
// LoadConfig reads a Config from the environment (optionally seeded from .env
// files) and NewFromConfig builds a Sanitizer with the configured passes,
// high-character encoding and logger:
//
//	cfg, err := filename.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	clean := filename.NewFromConfig(upload.Name, cfg).Apply().Filename()
//
// # Concurrency
//
// A Sanitizer is not safe for concurrent mutation. The Catalog and the
// package-level functions are safe for concurrent use.
package filename
