package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lrcat/lrcat-go/internal/config"
	"github.com/lrcat/lrcat-go/internal/dump"
	"github.com/lrcat/lrcat-go/internal/log"
	"github.com/lrcat/lrcat-go/internal/storage"
	"github.com/lrcat/lrcat-go/pkg/catalog"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

const usage = `Usage:
  lrcat-dump <command> ([--all] | [--collections] [--libfiles] [--images] [--folders] [--keywords]) <path>...

Commands:
  dump    print the content of the catalogs
  audit   report dropped rows and invalid ids

Options:
`

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("lrcat-dump\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", storage.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
		os.Exit(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// options is the parsed command line
type options struct {
	command   string
	selection dump.Selection
	paths     []string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return opts, errors.New("missing command")
	}
	opts.command = args[0]
	if opts.command != "dump" && opts.command != "audit" {
		fmt.Fprint(stderr, usage)
		return opts, fmt.Errorf("unknown command %q", opts.command)
	}

	fs := flag.NewFlagSet("lrcat-dump "+opts.command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	all := fs.Bool("all", false, "dump everything")
	fs.BoolVar(&opts.selection.Collections, "collections", false, "dump collections")
	fs.BoolVar(&opts.selection.LibraryFiles, "libfiles", false, "dump library files")
	fs.BoolVar(&opts.selection.Images, "images", false, "dump images")
	fs.BoolVar(&opts.selection.Folders, "folders", false, "dump folders")
	fs.BoolVar(&opts.selection.Keywords, "keywords", false, "dump keywords")
	if err := fs.Parse(args[1:]); err != nil {
		return opts, err
	}
	if *all {
		opts.selection = dump.All()
	}

	opts.paths = fs.Args()
	if len(opts.paths) == 0 {
		fs.Usage()
		return opts, errors.New("missing catalog path")
	}
	return opts, nil
}

// run processes the catalogs concurrently. Output is buffered per catalog
// and written in argument order.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "lrcat-dump: %v\n", err)
		return 2
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "lrcat-dump: %v\n", err)
		return 2
	}
	logger := cfg.Logger("dump")

	outputs := make([]bytes.Buffer, len(opts.paths))
	failures := make([]error, len(opts.paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range opts.paths {
		g.Go(func() error {
			failures[i] = process(gctx, &outputs[i], logger, opts, path)
			return nil
		})
	}
	_ = g.Wait()

	code := 0
	for i, path := range opts.paths {
		_, _ = outputs[i].WriteTo(stdout)
		if err := failures[i]; err != nil {
			logger.Error("%s: %v", path, err)
			code = 1
		}
	}
	return code
}

func process(ctx context.Context, w io.Writer, logger *log.Logger, opts options, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	cat := catalog.New(path, catalog.WithLogger(logger.Named(path)))
	if err := cat.Open(ctx); err != nil {
		return err
	}
	defer cat.Close()

	switch opts.command {
	case "audit":
		_, err := dump.Audit(ctx, w, cat)
		return err
	default:
		return dump.Dump(ctx, w, cat, opts.selection)
	}
}
