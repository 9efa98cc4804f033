package filename

import (
	"log/slog"

	"github.com/University4Industry/filename-sanitizer/pkg/logger"
)

// Sanitizer holds a single filename and transforms it in place.
// It is not safe for concurrent use; create one per filename.
type Sanitizer struct {
	filename   string
	catalog    Catalog
	log        *slog.Logger
	encodeHigh bool
	passes     []Pass
	err        error
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithLogger sets the logger used for pass diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sanitizer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHighCharacterEncoding controls whether StripRiskyCharacters encodes
// non-ASCII characters as numeric entities. Enabled by default.
func WithHighCharacterEncoding(enabled bool) Option {
	return func(s *Sanitizer) {
		s.encodeHigh = enabled
	}
}

// WithPasses sets the passes run by Apply when called without arguments.
// An empty list keeps DefaultPasses.
func WithPasses(passes ...Pass) Option {
	return func(s *Sanitizer) {
		if len(passes) > 0 {
			s.passes = append([]Pass(nil), passes...)
		}
	}
}

// New returns a Sanitizer holding name.
func New(name string, opts ...Option) *Sanitizer {
	s := &Sanitizer{
		catalog:    defaultCatalog,
		log:        logger.Nop(),
		encodeHigh: true,
		passes:     DefaultPasses(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s.SetFilename(name)
}

// IllegalCharacters returns the per-platform catalog of illegal characters.
func (s *Sanitizer) IllegalCharacters() Catalog {
	return s.catalog
}

// SetFilename replaces the held filename verbatim and clears any error
// recorded by a previous pass.
func (s *Sanitizer) SetFilename(name string) *Sanitizer {
	s.filename = name
	s.err = nil
	return s
}

// Filename returns the held filename.
func (s *Sanitizer) Filename() string {
	return s.filename
}

// Err returns the first error recorded by a pass since the filename was last set.
func (s *Sanitizer) Err() error {
	return s.err
}

// StripMarkup removes tags and tag-enclosed content from the filename.
// See the package-level StripMarkup.
func (s *Sanitizer) StripMarkup() *Sanitizer {
	return s.apply(PassMarkup)
}

// StripRiskyCharacters deletes backticks and control characters and escapes
// markup-significant characters. If the filename is not valid UTF-8 it
// becomes empty and Err reports ErrInvalidEncoding.
func (s *Sanitizer) StripRiskyCharacters() *Sanitizer {
	return s.apply(PassRisky)
}

// StripIllegalFilesystemCharacters removes every character listed for any
// platform in the catalog.
func (s *Sanitizer) StripIllegalFilesystemCharacters() *Sanitizer {
	return s.apply(PassIllegal)
}

// Apply runs passes in order, or the configured passes when none are given.
// Unknown passes leave the filename untouched and are reported by Err.
func (s *Sanitizer) Apply(passes ...Pass) *Sanitizer {
	if len(passes) == 0 {
		passes = s.passes
	}
	for _, p := range passes {
		s.apply(p)
	}
	return s
}

func (s *Sanitizer) apply(p Pass) *Sanitizer {
	before := s.filename
	after, err := p.run(before, s.encodeHigh)
	if err != nil {
		s.log.Warn("sanitization pass failed",
			logger.Pass(p.String()),
			logger.Error(err),
		)
		if s.err == nil {
			s.err = err
		}
		s.filename = after
		return s
	}

	s.filename = after
	s.log.Debug("sanitization pass applied",
		logger.Pass(p.String()),
		logger.Length("before", len(before)),
		logger.Length("after", len(after)),
		logger.Removed(len(before)-len(after)),
	)
	return s
}
