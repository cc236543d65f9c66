// internal/maze/render.go
package maze

import (
	"fmt"
	"html"
	"strings"
)

// Render builds the HTML document for a page: the depth in title and
// heading, then one list entry per child linking to its absolute URL.
// Rendering is deterministic, identical pages produce identical bytes.
func (r *Responder) Render(page *Page) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head><title>Depth %d</title></head>\n<body>\n<h1>Depth %d</h1>\n<ul>\n", page.Depth, page.Depth)
	for _, child := range page.Children {
		fmt.Fprintf(&buf, "<li><a href=\"%s\">%s</a></li>\n",
			html.EscapeString(r.cfg.BaseURL+child), html.EscapeString(child))
	}
	buf.WriteString("</ul>\n</body>\n</html>\n")

	return buf.String()
}
