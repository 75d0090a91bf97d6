package enrich

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mkarpov/linkvault/models"
)

// ParseMetadata extracts the title and favicon URL from an HTML document.
// It is a pure function over the document body, decoupled from fetching, so
// extraction logic is testable without network access.
//
// The title is the inner text of the first <title> element. The favicon is
// taken from the first <link> whose rel attribute is "icon" or
// "shortcut icon" (case-insensitive); a relative href is resolved against
// the page URL's origin. When no such link exists the favicon falls back to
// <origin>/favicon.ico.
//
// Returns an error only when pageURL or the document cannot be parsed at
// all; callers treat that the same as any other fetch failure.
func ParseMetadata(pageURL string, body io.Reader) (models.PageMetadata, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return models.PageMetadata{}, err
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return models.PageMetadata{}, err
	}

	meta := models.PageMetadata{
		Title:   doc.Find("title").First().Text(),
		Favicon: findFavicon(doc, base),
	}

	return meta, nil
}

func findFavicon(doc *goquery.Document, base *url.URL) string {
	var favicon string

	doc.Find("link").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		switch strings.ToLower(strings.TrimSpace(rel)) {
		case "icon", "shortcut icon":
		default:
			return true
		}

		href, ok := s.Attr("href")
		if !ok || href == "" {
			return true
		}

		if resolved := resolveAgainstOrigin(base, href); resolved != "" {
			favicon = resolved
			return false
		}
		return true
	})

	if favicon == "" {
		favicon = originOf(base) + "/favicon.ico"
	}

	return favicon
}

// resolveAgainstOrigin resolves href against the page's origin (not its full
// path), matching the behaviour of resolving against `new URL(origin)`.
func resolveAgainstOrigin(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
	return origin.ResolveReference(ref).String()
}

func originOf(u *url.URL) string {
	return (&url.URL{Scheme: u.Scheme, Host: u.Host}).String()
}
