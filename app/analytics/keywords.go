package analytics

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

var titleCaser = cases.Title(language.English)

// TitleKeywords tallies the meaningful words across feed item titles:
// lower-cased, stripped of non-alphanumerics, tokens of length <= 2
// and stop words dropped. Sorted by descending count, stable on ties.
func TitleKeywords(titles []string) []Keyword {
	counts := make(map[string]int)
	var order []string

	for _, title := range titles {
		cleaned := stripNonAlphanumeric(strings.ToLower(title))
		for _, token := range strings.Fields(cleaned) {
			if len(token) <= 2 || stopWords[token] {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	return sorted(counts, order)
}

// Phrases tallies the keyword phrase of every URL. URLs with no
// qualifying path segment contribute nothing.
func Phrases(rawURLs []string) []Keyword {
	counts := make(map[string]int)
	var order []string

	for _, raw := range rawURLs {
		phrase, ok := SlugPhrase(raw)
		if !ok {
			continue
		}
		if _, seen := counts[phrase]; !seen {
			order = append(order, phrase)
		}
		counts[phrase]++
	}

	return sorted(counts, order)
}

// SlugPhrase derives a human-readable topic label from a URL's last
// meaningful path segment. Segments are walked from the end backward;
// purely numeric segments (pagination) and structural names are
// skipped. The first segment splitting into at least two words on
// hyphens or underscores wins.
func SlugPhrase(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := strings.ToLower(segments[i])
		segment = strings.TrimSuffix(segment, ".html")
		segment = strings.TrimSuffix(segment, ".htm")
		segment = strings.TrimSuffix(segment, ".php")

		if segment == "" || isNumeric(segment) || structuralSegments[segment] {
			continue
		}

		words := splitSlug(segment)
		if len(words) < 2 {
			continue
		}

		return titlePhrase(words), true
	}

	return "", false
}

// titlePhrase capitalizes each word, keeping small function words
// lower-case unless they lead the phrase.
func titlePhrase(words []string) string {
	out := make([]string, 0, len(words))
	for i, w := range words {
		if i > 0 && smallWords[w] {
			out = append(out, w)
			continue
		}
		out = append(out, titleCaser.String(w))
	}
	return strings.Join(out, " ")
}

func splitSlug(segment string) []string {
	parts := strings.FieldsFunc(segment, func(r rune) bool {
		return r == '-' || r == '_'
	})

	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" && !isNumeric(p) {
			words = append(words, p)
		}
	}
	return words
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '\t', r == '\n':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// sorted orders tally results by descending count; ties keep first
// discovery order so repeated runs over the same input are identical.
func sorted(counts map[string]int, order []string) []Keyword {
	keywords := make([]Keyword, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, Keyword{Word: word, Count: counts[word]})
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	return keywords
}
