// internal/maze/maze.go
package maze

import (
	"errors"
	"strconv"
	"strings"
)

// ErrDepthExceeded is returned for paths deeper than the configured maximum.
// It is the only failure the responder knows about.
var ErrDepthExceeded = errors.New("path depth exceeds maximum")

// Config bounds the synthetic tree. MaxDepth is the deepest path that is
// still served, ChildrenPerPage the fan-out of every non-leaf page, and
// BaseURL the absolute prefix baked into child links.
type Config struct {
	MaxDepth        int
	ChildrenPerPage int
	BaseURL         string
}

// Responder maps request paths onto a synthetic tree of linked pages. It
// holds no mutable state; every page is computed fresh from its path, so
// identical paths always produce identical pages.
type Responder struct {
	cfg Config
}

func NewResponder(cfg Config) *Responder {
	return &Responder{cfg: cfg}
}

// Page describes one node of the synthetic tree. Children is nil for a leaf.
type Page struct {
	Path     string
	Depth    int
	Children []string
}

// Segments splits a path on "/" and drops empty parts, so "//a//b/" and
// "/a/b" name the same node.
func Segments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Depth is the number of non-empty segments in path.
func Depth(path string) int {
	return len(Segments(path))
}

// Describe computes the page for path. A path deeper than MaxDepth yields
// ErrDepthExceeded; a path at exactly MaxDepth is a leaf, served with an
// empty child list. Child paths are built from the collapsed segments, so
// duplicate slashes in the request never leak into the links.
func (r *Responder) Describe(path string) (*Page, error) {
	segs := Segments(path)
	depth := len(segs)
	if depth > r.cfg.MaxDepth {
		return nil, ErrDepthExceeded
	}

	page := &Page{Path: path, Depth: depth}
	if depth >= r.cfg.MaxDepth {
		return page, nil
	}

	base := ""
	if depth > 0 {
		base = "/" + strings.Join(segs, "/")
	}
	for i := 0; i < r.cfg.ChildrenPerPage; i++ {
		page.Children = append(page.Children, base+"/"+strconv.Itoa(i))
	}

	return page, nil
}
