package server

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
)

const helpCacheKey = "help-html"

// HelpRenderer converts the embedded help markdown to HTML once and
// caches the result.
type HelpRenderer struct {
	cache *cache.Cache
}

func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (h *HelpRenderer) HTML() (template.HTML, error) {
	if v, found := h.cache.Get(helpCacheKey); found {
		return v.(template.HTML), nil
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(helpMarkdown, &buf); err != nil {
		return "", fmt.Errorf("error rendering help markdown: %w", err)
	}
	html := template.HTML(buf.String())
	h.cache.Set(helpCacheKey, html, cache.NoExpiration)
	return html, nil
}
