package filename

import (
	"fmt"
	"strings"
)

// Pass names one of the three sanitization passes.
type Pass string

const (
	PassMarkup  Pass = "markup"
	PassRisky   Pass = "risky"
	PassIllegal Pass = "illegal"
)

// DefaultPasses returns the recommended order: markup before risky, because
// escaping hides '<' and '>' from the markup pass, and illegal last so it
// sees the final text.
func DefaultPasses() []Pass {
	return []Pass{PassMarkup, PassRisky, PassIllegal}
}

// ParsePass converts a case-insensitive pass name into a Pass.
func ParsePass(s string) (Pass, error) {
	switch p := Pass(strings.ToLower(strings.TrimSpace(s))); p {
	case PassMarkup, PassRisky, PassIllegal:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPass, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pass) UnmarshalText(text []byte) error {
	parsed, err := ParsePass(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Pass) String() string {
	return string(p)
}

func (p Pass) run(s string, encodeHigh bool) (string, error) {
	switch p {
	case PassMarkup:
		return StripMarkup(s), nil
	case PassRisky:
		if encodeHigh {
			return EscapeRisky(s)
		}
		return EscapeRisky(s, KeepHigh())
	case PassIllegal:
		return StripIllegal(s), nil
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownPass, string(p))
	}
}

// Compose returns a reusable function that runs passes in order over a
// fresh value. With no passes it uses DefaultPasses. The error is the one
// Sanitizer.Err would report, such as ErrInvalidEncoding, in which case the
// returned string is the decayed value.
func Compose(passes ...Pass) func(string) (string, error) {
	passes = append([]Pass(nil), passes...)
	return func(name string) (string, error) {
		s := New(name).Apply(passes...)
		return s.Filename(), s.Err()
	}
}

// Sanitize runs the configured passes (DefaultPasses unless WithPasses is
// given) over name and returns the result. Input the risky pass cannot
// escape decays to ""; use Compose or a Sanitizer to observe the error.
func Sanitize(name string, opts ...Option) string {
	return New(name, opts...).Apply().Filename()
}
