package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name        string
		pageURL     string
		html        string
		wantTitle   string
		wantFavicon string
	}{
		{
			name:        "title and absolute favicon",
			pageURL:     "https://example.com/articles/1",
			html:        `<html><head><title>Example Article</title><link rel="icon" href="https://cdn.example.com/fav.png"></head></html>`,
			wantTitle:   "Example Article",
			wantFavicon: "https://cdn.example.com/fav.png",
		},
		{
			name:        "relative favicon resolved against origin",
			pageURL:     "https://example.com/deep/path/page",
			html:        `<html><head><title>Deep</title><link rel="icon" href="img/fav.ico"></head></html>`,
			wantTitle:   "Deep",
			wantFavicon: "https://example.com/img/fav.ico",
		},
		{
			name:        "root-relative favicon",
			pageURL:     "https://example.com/page",
			html:        `<html><head><link rel="icon" href="/static/fav.ico"></head></html>`,
			wantTitle:   "",
			wantFavicon: "https://example.com/static/fav.ico",
		},
		{
			name:        "shortcut icon rel variant",
			pageURL:     "https://example.com/",
			html:        `<html><head><link rel="shortcut icon" href="/fav.ico"></head></html>`,
			wantTitle:   "",
			wantFavicon: "https://example.com/fav.ico",
		},
		{
			name:        "rel matching is case-insensitive",
			pageURL:     "https://example.com/",
			html:        `<html><head><link rel="Shortcut Icon" href="/fav.ico"></head></html>`,
			wantTitle:   "",
			wantFavicon: "https://example.com/fav.ico",
		},
		{
			name:        "no icon link falls back to origin favicon.ico",
			pageURL:     "https://example.com/some/page",
			html:        `<html><head><title>No Icon</title></head></html>`,
			wantTitle:   "No Icon",
			wantFavicon: "https://example.com/favicon.ico",
		},
		{
			name:        "no title tag yields empty title",
			pageURL:     "https://example.com/",
			html:        `<html><head></head><body><h1>Heading, not title</h1></body></html>`,
			wantTitle:   "",
			wantFavicon: "https://example.com/favicon.ico",
		},
		{
			name:        "first title wins",
			pageURL:     "https://example.com/",
			html:        `<html><head><title>First</title><title>Second</title></head></html>`,
			wantTitle:   "First",
			wantFavicon: "https://example.com/favicon.ico",
		},
		{
			name:        "stylesheet links are ignored",
			pageURL:     "https://example.com/",
			html:        `<html><head><link rel="stylesheet" href="/style.css"><link rel="icon" href="/fav.ico"></head></html>`,
			wantTitle:   "",
			wantFavicon: "https://example.com/fav.ico",
		},
		{
			name:        "icon link without href falls back",
			pageURL:     "https://example.com/",
			html:        `<html><head><link rel="icon"></head></html>`,
			wantTitle:   "",
			wantFavicon: "https://example.com/favicon.ico",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := ParseMetadata(tt.pageURL, strings.NewReader(tt.html))
			require.NoError(t, err)

			assert.Equal(t, tt.wantTitle, meta.Title)
			assert.Equal(t, tt.wantFavicon, meta.Favicon)
		})
	}
}

func TestParseMetadata_InvalidPageURL(t *testing.T) {
	_, err := ParseMetadata("://not-a-url", strings.NewReader("<html></html>"))
	assert.Error(t, err)
}
