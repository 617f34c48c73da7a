// Package xmlscan implements tolerant tag-scoped extraction over the
// XML subset that feeds and sitemaps actually use. It is deliberately
// not an XML parser: a malformed block is skipped instead of failing
// the whole document. Same-named tags are assumed not to nest.
package xmlscan

import (
	"strings"
)

// Blocks returns the inner text of every <tag ...>...</tag> pair in
// document order. Attributes on the opening tag are tolerated.
func Blocks(text string, tag string) []string {
	var blocks []string

	tag = strings.ToLower(tag)
	open := "<" + tag
	closing := "</" + tag + ">"
	lower := strings.ToLower(text)

	pos := 0
	for {
		start := indexTag(lower, open, pos)
		if start < 0 {
			break
		}

		gt := strings.Index(lower[start:], ">")
		if gt < 0 {
			break
		}
		bodyStart := start + gt + 1

		end := strings.Index(lower[bodyStart:], closing)
		if end < 0 {
			break
		}

		blocks = append(blocks, text[bodyStart:bodyStart+end])
		pos = bodyStart + end + len(closing)
	}

	return blocks
}

// HasTag reports whether an opening <tag is present, regardless of
// attributes or self-closing form.
func HasTag(text string, tag string) bool {
	return indexTag(strings.ToLower(text), "<"+strings.ToLower(tag), 0) >= 0
}

// Text extracts the trimmed, CDATA-unwrapped content of the first
// <tag>...</tag> inside block. Returns "" when the tag is absent or
// only present in self-closing form.
func Text(block string, tag string) string {
	inner := Blocks(block, tag)
	if len(inner) == 0 {
		return ""
	}
	return Unwrap(inner[0])
}

// Attr extracts an attribute value from the first <tag ...> opening
// in block, covering the self-closing forms Atom links use
// (<link href="..."/>). Returns "" when tag or attribute is missing.
func Attr(block string, tag string, attr string) string {
	lower := strings.ToLower(block)

	start := indexTag(lower, "<"+strings.ToLower(tag), 0)
	if start < 0 {
		return ""
	}

	gt := strings.Index(lower[start:], ">")
	if gt < 0 {
		return ""
	}
	opening := block[start : start+gt+1]

	return AttrValue(opening, attr)
}

// AttrValue pulls a quoted attribute value out of a single opening tag.
func AttrValue(opening string, attr string) string {
	lower := strings.ToLower(opening)
	needle := strings.ToLower(attr) + "="

	pos := 0
	for {
		idx := strings.Index(lower[pos:], needle)
		if idx < 0 {
			return ""
		}
		idx += pos

		// Reject matches inside other attribute names (e.g. "data-href=").
		if idx > 0 {
			prev := lower[idx-1]
			if prev != ' ' && prev != '\t' && prev != '\n' && prev != '\r' {
				pos = idx + len(needle)
				continue
			}
		}

		rest := opening[idx+len(needle):]
		if len(rest) < 2 {
			return ""
		}
		quote := rest[0]
		if quote != '"' && quote != '\'' {
			pos = idx + len(needle)
			continue
		}
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			return ""
		}
		return rest[1 : 1+end]
	}
}

// Unwrap strips an optional CDATA envelope and trims whitespace.
func Unwrap(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<![CDATA[") && strings.HasSuffix(s, "]]>") {
		s = s[len("<![CDATA[") : len(s)-len("]]>")]
		s = strings.TrimSpace(s)
	}
	return s
}

// indexTag finds an opening tag occurrence where the tag name is not a
// prefix of a longer name (so "<sitemap" does not match "<sitemapindex").
func indexTag(lower string, open string, from int) int {
	pos := from
	for {
		idx := strings.Index(lower[pos:], open)
		if idx < 0 {
			return -1
		}
		idx += pos

		after := idx + len(open)
		if after >= len(lower) {
			return -1
		}
		switch lower[after] {
		case '>', ' ', '\t', '\n', '\r', '/':
			return idx
		}
		pos = after
	}
}
