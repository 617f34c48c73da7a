package analytics

// Common English function words excluded from title keyword tallies.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "any": true, "can": true,
	"had": true, "her": true, "was": true, "one": true, "our": true,
	"out": true, "day": true, "get": true, "has": true, "him": true,
	"his": true, "how": true, "its": true, "may": true, "new": true,
	"now": true, "old": true, "see": true, "two": true, "way": true,
	"who": true, "did": true, "yes": true, "your": true, "from": true,
	"they": true, "know": true, "want": true, "been": true, "good": true,
	"much": true, "some": true, "time": true, "very": true, "when": true,
	"come": true, "here": true, "just": true, "like": true, "long": true,
	"make": true, "many": true, "more": true, "most": true, "only": true,
	"over": true, "such": true, "take": true, "than": true, "them": true,
	"well": true, "were": true, "will": true, "with": true, "have": true,
	"this": true, "that": true, "what": true, "their": true, "would": true,
	"there": true, "which": true, "about": true, "could": true, "other": true,
	"after": true, "first": true, "never": true, "these": true, "think": true,
	"where": true, "being": true, "every": true, "great": true, "might": true,
	"shall": true, "still": true, "those": true, "under": true, "while": true,
}

// Structural path segments that never describe content: pagination,
// CMS plumbing, archive buckets.
var structuralSegments = map[string]bool{
	"page": true, "pages": true, "category": true, "categories": true,
	"tag": true, "tags": true, "archive": true, "archives": true,
	"author": true, "authors": true, "blog": true, "news": true,
	"post": true, "posts": true, "article": true, "articles": true,
	"wp-content": true, "wp-includes": true, "wp-json": true,
	"index": true, "default": true, "home": true, "main": true,
	"feed": true, "rss": true, "atom": true, "sitemap": true,
	"amp": true, "print": true, "embed": true, "comments": true,
	"html": true, "htm": true, "php": true,
}

// Function words kept lower-case inside title-cased phrases.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "in": true, "of": true,
	"on": true, "or": true, "the": true, "to": true, "vs": true,
	"with": true,
}
