package filename

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Backticks and ASCII control characters have no safe textual form and are deleted.
var riskyRemover = runes.Remove(runes.Predicate(func(r rune) bool {
	return r == '`' || r < 0x20
}))

// Markup-significant characters are kept as numeric entities.
var riskyEntities = map[rune]string{
	'&':  "&#38;",
	'"':  "&#34;",
	'\'': "&#39;",
	'<':  "&#60;",
	'>':  "&#62;",
}

// RiskyOption configures EscapeRisky.
type RiskyOption func(*riskyConfig)

type riskyConfig struct {
	keepHigh bool
}

// KeepHigh leaves characters at or above U+0080 unescaped.
func KeepHigh() RiskyOption {
	return func(c *riskyConfig) {
		c.keepHigh = true
	}
}

// EscapeRisky deletes backticks and control characters below U+0020 and
// replaces & " ' < > with numeric entities. Unless KeepHigh is given,
// non-ASCII characters are encoded as &#N; with their decimal code point.
//
// Invalid UTF-8 cannot be escaped: EscapeRisky returns "" and ErrInvalidEncoding.
func EscapeRisky(s string, opts ...RiskyOption) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidEncoding
	}

	var cfg riskyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	stripped, _, err := transform.String(riskyRemover, s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if entity, ok := riskyEntities[r]; ok {
			b.WriteString(entity)
			continue
		}
		if r >= utf8.RuneSelf && !cfg.keepHigh {
			b.WriteString("&#")
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteByte(';')
			continue
		}
		b.WriteRune(r)
	}

	return b.String(), nil
}
