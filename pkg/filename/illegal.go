package filename

import (
	"slices"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"
)

var illegalRemover = newIllegalRemover(defaultCatalog)

func newIllegalRemover(c Catalog) transform.Transformer {
	// rangetable.New sorts its argument in place.
	return runes.Remove(runes.In(rangetable.New(slices.Clone(c.union)...)))
}

// StripIllegal removes every character that is illegal in filenames on unix,
// windows or macos. The result may be empty.
//
// Invalid UTF-8 bytes are replaced with utf8.RuneError, so the output is
// always valid UTF-8 and a second call is a no-op.
func StripIllegal(s string) string {
	out, _, err := transform.String(illegalRemover, s)
	if err != nil {
		return ""
	}
	return out
}
