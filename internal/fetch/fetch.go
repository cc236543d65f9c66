// internal/fetch/fetch.go
package fetch

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"os"

	"github.com/schollz/progressbar/v3"
)

// DefaultOutfile is where plain downloads land when no name is given.
const DefaultOutfile = "rget.out"

// Get issues a GET and turns HTTP error statuses into errors. The caller
// owns the response body.
func Get(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", url, err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %q: unexpected status %s", url, resp.Status)
	}

	return resp, nil
}

// Download fetches url into outfile, reporting progress on stderr: a byte
// bar when the server announces a length, a spinner otherwise
// (progressbar treats -1 as unknown total).
func Download(ctx context.Context, client *http.Client, url, outfile string) error {
	resp, err := Get(ctx, client, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	dest, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outfile, err)
	}

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
	if _, err := io.Copy(io.MultiWriter(dest, bar), resp.Body); err != nil {
		dest.Close()
		return fmt.Errorf("writing %q: %w", outfile, err)
	}
	_ = bar.Finish()

	if err := dest.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", outfile, err)
	}
	return nil
}

// HashName derives a stable output filename for a crawled URL.
func HashName(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return fmt.Sprintf("%x", h.Sum64())
}
