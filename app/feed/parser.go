package feed

import (
	"github.com/lysyi3m/feed-scout/app/xmlscan"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Run extracts items from a feed document: RSS <item> blocks first,
// Atom <entry> blocks only when no <item> was found. An item without a
// resolvable link is dropped silently, never reported as an error.
func (p *Parser) Run(data []byte) []Item {
	text := string(data)

	items := p.parseRSSItems(text)
	if len(items) == 0 {
		items = p.parseAtomEntries(text)
	}

	return items
}

func (p *Parser) parseRSSItems(text string) []Item {
	var items []Item

	for _, block := range xmlscan.Blocks(text, "item") {
		link := xmlscan.Text(block, "link")
		if link == "" {
			// Atom-style self-closing form inside an RSS item.
			link = xmlscan.Attr(block, "link", "href")
		}
		if link == "" {
			continue
		}

		title := xmlscan.Text(block, "title")
		if title == "" {
			title = link
		}

		items = append(items, Item{
			Title:   title,
			Link:    link,
			PubDate: xmlscan.Text(block, "pubDate"),
		})
	}

	return items
}

func (p *Parser) parseAtomEntries(text string) []Item {
	var items []Item

	for _, block := range xmlscan.Blocks(text, "entry") {
		link := xmlscan.Attr(block, "link", "href")
		if link == "" {
			continue
		}

		title := xmlscan.Text(block, "title")
		if title == "" {
			title = link
		}

		pubDate := xmlscan.Text(block, "published")
		if pubDate == "" {
			pubDate = xmlscan.Text(block, "updated")
		}

		items = append(items, Item{
			Title:   title,
			Link:    link,
			PubDate: pubDate,
		})
	}

	return items
}
