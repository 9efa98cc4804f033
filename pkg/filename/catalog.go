package filename

import "slices"

// Platform identifies a filesystem family.
type Platform string

const (
	Unix    Platform = "unix"
	Windows Platform = "windows"
	MacOS   Platform = "macos"
)

// Platforms returns every known platform in catalog order.
func Platforms() []Platform {
	return []Platform{Unix, Windows, MacOS}
}

// Catalog maps each platform to the ordered set of characters it forbids in
// filenames. A Catalog is immutable; accessors return copies.
type Catalog struct {
	chars map[Platform][]rune
	union []rune
}

var defaultCatalog = newCatalog()

func newCatalog() Catalog {
	windows := []rune{'<', '>', ':', '"', '/', '\\', '|', '?', '*'}
	for r := rune(0); r < 32; r++ {
		windows = append(windows, r)
	}

	chars := map[Platform][]rune{
		Unix:    {'/', 0},
		Windows: windows,
		MacOS:   {':'},
	}

	var union []rune
	for _, p := range Platforms() {
		union = append(union, chars[p]...)
	}

	return Catalog{chars: chars, union: union}
}

// DefaultCatalog returns the catalog shared by every Sanitizer.
func DefaultCatalog() Catalog {
	return defaultCatalog
}

// Platforms returns the catalog keys.
func (c Catalog) Platforms() []Platform {
	return Platforms()
}

// Characters returns the illegal characters for p, or nil for an unknown platform.
func (c Catalog) Characters(p Platform) []rune {
	return slices.Clone(c.chars[p])
}

// Len returns the number of characters listed for p.
func (c Catalog) Len(p Platform) int {
	return len(c.chars[p])
}

// Union returns the unix, windows and macos sets concatenated in that order.
// Characters shared by several platforms appear once per platform.
func (c Catalog) Union() []rune {
	return slices.Clone(c.union)
}

// Contains reports whether r is illegal on any platform.
func (c Catalog) Contains(r rune) bool {
	return slices.Contains(c.union, r)
}
