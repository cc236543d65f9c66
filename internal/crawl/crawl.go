// internal/crawl/crawl.go
package crawl

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/nkxxll/rget/internal/fetch"
	"github.com/nkxxll/rget/internal/tree"
)

// Crawler discovers a tree of pages by following links breadth-first.
type Crawler struct {
	client *http.Client
	log    zerolog.Logger
}

func New(client *http.Client, log zerolog.Logger) *Crawler {
	if client == nil {
		client = http.DefaultClient
	}
	return &Crawler{client: client, log: log}
}

// Run expands rootURL level by level until the tree is maxDepth levels
// deep. The root alone counts as depth 1, so maxDepth <= 1 fetches nothing.
// A page that is not text, fails to fetch, or links nowhere ends its
// branch; discovered URLs are not deduplicated.
func (c *Crawler) Run(ctx context.Context, rootURL string, maxDepth int) (*tree.Tree[string], error) {
	t := tree.New(rootURL)
	level := []*tree.Node[string]{t.Root}

	for t.Depth < maxDepth && len(level) > 0 {
		var next []*tree.Node[string]
		for _, node := range level {
			links, err := c.fetchLinks(ctx, node.Value)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				c.log.Warn().Str("url", node.Value).Err(err).Msg("skipping page")
				continue
			}
			for _, link := range links {
				child := tree.NewNode(link)
				node.Add(child)
				next = append(next, child)
			}
		}
		if len(next) == 0 {
			break
		}
		level = next
		t.Depth++
	}

	return t, nil
}

func (c *Crawler) fetchLinks(ctx context.Context, url string) ([]string, error) {
	resp, err := fetch.Get(ctx, c.client, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	ct := fetch.Classify(resp.Header.Get("Content-Type"))
	if !ct.IsText() {
		c.log.Info().Str("url", url).Str("content_type", ct.Value).Msg("not a text page, stopping branch")
		return nil, nil
	}

	links, err := ExtractLinks(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", url, err)
	}
	c.log.Debug().Str("url", url).Int("links", len(links)).Msg("page expanded")

	return links, nil
}
