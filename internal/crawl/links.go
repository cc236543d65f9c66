// internal/crawl/links.go
package crawl

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks pulls followable link targets out of an HTML document:
// anchor hrefs with an http or https scheme, and https image sources.
// Relative links are ignored, the crawler only follows absolute URLs.
func ExtractLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a":
				if href, ok := attr(n, "href"); ok && isAbsolute(href) {
					links = append(links, href)
				}
			case "img":
				if src, ok := attr(n, "src"); ok && strings.HasPrefix(src, "https://") {
					links = append(links, src)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func isAbsolute(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
