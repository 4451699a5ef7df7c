package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdtoc/internal/assets"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	output     string
	title      string
	minDepth   int
	maxDepth   int
	symbol     string
	page       bool
	style      string
	config     string
	initConfig bool
	quiet      bool
	verbose    bool
	version    bool

	// changed reports whether a named flag was explicitly set.
	changed func(name string) bool
}

const usageText = `usage: mdtoc [flags] <input.md> [input2.md ...]

Generates a navigable table of contents for each markdown input. By default
the anchored outline is written next to the source as <name>.toc.html; with
--page a complete HTML page is assembled instead, with the TOC injected and
every heading carrying an anchor and permalink.

Flags:
`

// parseFlags parses args (including the program name at args[0]) into
// cliFlags and the positional input paths.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("mdtoc", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fmt.Fprint(os.Stderr, fs.FlagUsages())
	}

	fs.StringVarP(&flags.output, "output", "o", "", "output file (single input) or directory (multiple inputs)")
	fs.StringVar(&flags.title, "title", "", "title rendered above the TOC")
	fs.IntVar(&flags.minDepth, "min-depth", 0, "shallowest heading level to include (1-6)")
	fs.IntVar(&flags.maxDepth, "max-depth", 0, "deepest heading level to include (1-6)")
	fs.StringVar(&flags.symbol, "symbol", "", "permalink symbol rendered next to headings")
	fs.BoolVar(&flags.page, "page", false, "assemble a full HTML page instead of a bare outline")
	fs.StringVar(&flags.style, "style", "", "embedded style name ("+strings.Join(assets.Names(), ", ")+") or CSS file path (page mode)")
	fs.StringVar(&flags.config, "config", "", "config name or path (YAML)")
	fs.BoolVar(&flags.initConfig, "init-config", false, "write a default mdtoc.yaml to the current directory and exit")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	// Record which flags were set so config merging can tell an explicit
	// zero from an absent flag.
	flags.changed = func(name string) bool { return fs.Changed(name) }

	return flags, fs.Args(), nil
}
