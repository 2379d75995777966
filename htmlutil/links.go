// Package htmlutil provides helpers for pulling data out of HTML
// documents. Parsing is delegated to [golang.org/x/net/html], which is
// tolerant of malformed markup the way browsers are.
package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks returns the href targets of all <a> elements in doc, in
// document order, with duplicates removed. Empty and whitespace-only
// hrefs are skipped.
//
// When baseURL is non-empty, links that are not already absolute
// (http:// or https://) are joined onto it.
func ExtractLinks(doc, baseURL string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, err
	}

	links := []string{}
	seen := map[string]struct{}{}

	for n := range root.Descendants() {
		if n.Type != html.ElementNode || n.Data != "a" {
			continue
		}

		href := strings.TrimSpace(attrValue(n, "href"))
		if href == "" {
			continue
		}

		if baseURL != "" && !isAbsolute(href) {
			href = joinToBase(baseURL, href)
		}

		if _, ok := seen[href]; ok {
			continue
		}
		seen[href] = struct{}{}
		links = append(links, href)
	}

	return links, nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isAbsolute(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

func joinToBase(baseURL, href string) string {
	base := strings.TrimRight(baseURL, "/")
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return base + "/" + href
}
