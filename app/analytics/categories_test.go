package analytics

import (
	"fmt"
	"testing"
)

func TestCategories(t *testing.T) {
	urls := []string{
		"https://example.com/blog/one",
		"https://example.com/blog/two",
		"https://example.com/docs/intro",
		"https://example.com/",
		"https://example.com/blog/three",
	}

	categories := Categories(urls)

	if len(categories) != 2 {
		t.Fatalf("Expected 2 categories, got: %d", len(categories))
	}
	if categories[0].Path != "/blog" || categories[0].Count != 3 {
		t.Errorf("Unexpected top category: %+v", categories[0])
	}
	if categories[1].Path != "/docs" || categories[1].Count != 1 {
		t.Errorf("Unexpected second category: %+v", categories[1])
	}
}

func TestCategoriesStableTieOrder(t *testing.T) {
	urls := []string{
		"https://example.com/zebra/a",
		"https://example.com/apple/b",
	}

	categories := Categories(urls)

	// Equal counts keep discovery order, not alphabetical.
	if categories[0].Path != "/zebra" || categories[1].Path != "/apple" {
		t.Errorf("Expected discovery order on ties, got: %+v", categories)
	}
}

func TestCategoriesTopThirtyCap(t *testing.T) {
	var urls []string
	for i := 0; i < 40; i++ {
		urls = append(urls, fmt.Sprintf("https://example.com/section-%d/page", i))
	}

	categories := Categories(urls)

	if len(categories) != topCategories {
		t.Errorf("Expected %d categories, got: %d", topCategories, len(categories))
	}
}

func TestCategoriesSkipsUnparseableUrls(t *testing.T) {
	categories := Categories([]string{"https://%zz", "https://example.com/ok/page"})

	if len(categories) != 1 {
		t.Fatalf("Expected 1 category, got: %d", len(categories))
	}
	if categories[0].Path != "/ok" {
		t.Errorf("Unexpected category: %+v", categories[0])
	}
}
