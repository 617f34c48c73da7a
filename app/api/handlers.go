package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/feed-scout/app/discovery"
	"github.com/lysyi3m/feed-scout/app/fetch"
)

func NewHandler(feedExtractor FeedExtractorInterface, sitemapExtractor SitemapExtractorInterface, version string) *Handler {
	return &Handler{
		feedExtractor:    feedExtractor,
		sitemapExtractor: sitemapExtractor,
		version:          version,
	}
}

func (h *Handler) ExtractFeed(c *gin.Context) {
	seed, ok := h.bindSeed(c)
	if !ok {
		return
	}

	result, err := h.feedExtractor.Run(c.Request.Context(), seed)
	if err != nil {
		h.handleExtractionError(c, seed.String(), err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ExtractSitemap(c *gin.Context) {
	seed, ok := h.bindSeed(c)
	if !ok {
		return
	}

	result, err := h.sitemapExtractor.Run(c.Request.Context(), seed)
	if err != nil {
		h.handleExtractionError(c, seed.String(), err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
	})
}

// bindSeed parses and normalizes the request body's seed URL. A
// missing or malformed URL is a client error and never reaches the
// network.
func (h *Handler) bindSeed(c *gin.Context) (*url.URL, bool) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be JSON with a \"url\" field"})
		return nil, false
	}

	normalized, err := discovery.NormalizeSeed(req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	return normalized, true
}

func (h *Handler) handleExtractionError(c *gin.Context, seed string, err error) {
	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		slog.Warn("Seed fetch failed", "seed", seed, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch the site: " + fetchErr.Error()})
		return
	}

	slog.Error("Extraction failed", "seed", seed, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
