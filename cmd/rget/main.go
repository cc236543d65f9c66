// cmd/rget/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nkxxll/rget/internal/crawl"
	"github.com/nkxxll/rget/internal/fetch"
	"github.com/nkxxll/rget/internal/logger"
)

// maxDownloads bounds the fan-out when downloading a crawled tree.
const maxDownloads = 10

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rget <command> [options] <url>")
	fmt.Fprintln(os.Stderr, "  get [-o outfile] <url>     download a single URL")
	fmt.Fprintln(os.Stderr, "  getdepth [-d depth] <url>  crawl to depth and download every page")
	fmt.Fprintln(os.Stderr, "  interactive [-o outfile]   read 'url [outfile]' lines from stdin")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	log := logger.New(os.Getenv("RGET_DEBUG") != "", false)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := http.DefaultClient

	var err error
	switch os.Args[1] {
	case "get":
		err = runGet(ctx, client, os.Args[2:])
	case "getdepth":
		err = runGetDepth(ctx, client, log, os.Args[2:])
	case "interactive":
		err = runInteractive(ctx, client, os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("rget failed")
	}
}

func runGet(ctx context.Context, client *http.Client, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	outfile := fs.String("o", fetch.DefaultOutfile, "output file")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("get: exactly one URL expected")
	}

	return fetch.Download(ctx, client, fs.Arg(0), *outfile)
}

func runGetDepth(ctx context.Context, client *http.Client, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("getdepth", flag.ExitOnError)
	depth := fs.Int("d", 1, "crawl depth")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("getdepth: exactly one URL expected")
	}

	t, err := crawl.New(client, log).Run(ctx, fs.Arg(0), *depth)
	if err != nil {
		return err
	}

	var urls []string
	t.Walk(func(u string) { urls = append(urls, u) })
	log.Info().Int("pages", len(urls)).Int("depth", t.Depth).Msg("crawl finished")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDownloads)
	for _, u := range urls {
		u := u
		g.Go(func() error {
			return fetch.Download(gctx, client, u, fetch.HashName(u))
		})
	}

	return g.Wait()
}

func runInteractive(ctx context.Context, client *http.Client, args []string) error {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	outfile := fs.String("o", fetch.DefaultOutfile, "default output file")
	fs.Parse(args)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		// An empty line quits, same as an explicit quit.
		if len(fields) == 0 {
			break
		}
		url := fields[0]
		if url == "quit" || url == "q" {
			break
		}

		out := *outfile
		if len(fields) > 1 {
			out = fields[1]
		}
		if err := fetch.Download(ctx, client, url, out); err != nil {
			return err
		}
	}

	return scanner.Err()
}
