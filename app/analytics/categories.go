package analytics

import (
	"net/url"
	"sort"
	"strings"
)

// Number of path categories reported.
const topCategories = 30

type Category struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Categories tallies the first path segment of every URL and returns
// the top 30 by descending count. Ties keep discovery order.
func Categories(rawURLs []string) []Category {
	counts := make(map[string]int)
	var order []string

	for _, raw := range rawURLs {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}

		segment := firstSegment(u.Path)
		if segment == "" {
			continue
		}

		prefix := "/" + segment
		if _, seen := counts[prefix]; !seen {
			order = append(order, prefix)
		}
		counts[prefix]++
	}

	categories := make([]Category, 0, len(order))
	for _, prefix := range order {
		categories = append(categories, Category{Path: prefix, Count: counts[prefix]})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Count > categories[j].Count
	})

	if len(categories) > topCategories {
		categories = categories[:topCategories]
	}

	return categories
}

func firstSegment(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			return segment
		}
	}
	return ""
}
