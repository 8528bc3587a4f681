// Package main is the entry point for the quill editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ewagner/quill/internal/document"
	"github.com/ewagner/quill/internal/textbuf"
	"github.com/ewagner/quill/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	var doc *document.Document
	if opts.path != "" {
		d, err := document.Open(opts.path, opts.bufOpts...)
		if err != nil {
			// A missing file opens as a new document with that path.
			if !errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
			d = document.NewAt(opts.path, opts.bufOpts...)
		}
		doc = d
	} else {
		doc = document.New(opts.bufOpts...)
	}

	editor, err := tui.New(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	if err := editor.Run(); err != nil {
		if errors.Is(err, tui.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	path    string
	bufOpts []textbuf.Option
}

func parseFlags() options {
	var opts options
	var crlf bool
	var showVersion bool

	flag.BoolVar(&crlf, "crlf", false, "Use CRLF line endings for new content")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Quill - gap-buffer text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: quill [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("quill %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	if crlf {
		opts.bufOpts = append(opts.bufOpts, textbuf.WithCRLF())
	}
	if flag.NArg() > 0 {
		opts.path = flag.Arg(0)
	}
	return opts
}
