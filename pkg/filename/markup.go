package filename

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StripMarkup removes tag-delimited content from s.
//
// Each '<' is paired with the first '>' after it and the span is dropped;
// a '<' with no '>' after it drops the rest of the string. An opening tag
// that is later closed by a matching </name> is dropped together with its
// content and closing tag, leaving a single space when it sat between two
// non-space characters. Nothing is parsed recursively.
//
// A string with no '<' is returned unchanged.
func StripMarkup(s string) string {
	if strings.IndexByte(s, '<') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	var closing *closingTags
	pos := 0
	for pos < len(s) {
		open := strings.IndexByte(s[pos:], '<')
		if open < 0 {
			b.WriteString(s[pos:])
			break
		}
		open += pos
		b.WriteString(s[pos:open])

		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			break
		}
		pos = open + end + 1

		name := openingTagName(s[open:pos])
		if name == "" {
			continue
		}
		if closing == nil {
			closing = indexClosingTags(s)
		}
		at := closing.next(name, pos)
		if at < 0 {
			continue
		}
		gt := strings.IndexByte(s[at:], '>')
		if gt < 0 {
			break
		}
		pos = at + gt + 1
		if separates(b.String(), s[pos:]) {
			b.WriteByte(' ')
		}
	}

	return b.String()
}

// closingTags holds the offsets of every </name in a string, keyed by the
// lower-cased name. Lookups only move forward, so a whole StripMarkup call
// stays linear in the input length.
type closingTags struct {
	offsets map[string][]int
	cursor  map[string]int
}

func indexClosingTags(s string) *closingTags {
	c := &closingTags{
		offsets: make(map[string][]int),
		cursor:  make(map[string]int),
	}
	for i := 0; i < len(s); {
		j := strings.Index(s[i:], "</")
		if j < 0 {
			break
		}
		j += i
		k := j + 2
		for k < len(s) && isNameByte(s[k]) {
			k++
		}
		if k > j+2 {
			name := strings.ToLower(s[j+2 : k])
			c.offsets[name] = append(c.offsets[name], j)
		}
		i = j + 2
	}
	return c
}

// next returns the offset of the first </name at or after from, or -1.
func (c *closingTags) next(name string, from int) int {
	name = strings.ToLower(name)
	offsets := c.offsets[name]
	i := c.cursor[name]
	for i < len(offsets) && offsets[i] < from {
		i++
	}
	c.cursor[name] = i
	if i == len(offsets) {
		return -1
	}
	return offsets[i]
}

// openingTagName returns the element name of an opening tag such as
// <script type="x">, or "" for closing, self-closing, comment or
// processing-instruction tags.
func openingTagName(tag string) string {
	if strings.HasSuffix(tag, "/>") {
		return ""
	}
	inner := tag[1:]
	if len(inner) == 0 || !isASCIILetter(inner[0]) {
		return ""
	}
	i := 1
	for i < len(inner) && isNameByte(inner[i]) {
		i++
	}
	return inner[:i]
}

func separates(before, after string) bool {
	if before == "" || after == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(before)
	first, _ := utf8.DecodeRuneInString(after)
	return !unicode.IsSpace(last) && !unicode.IsSpace(first)
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isASCIILetter(c) || ('0' <= c && c <= '9') || c == '-' || c == '_' || c == ':'
}
