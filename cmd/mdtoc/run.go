package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mdtoc "github.com/alnah/go-mdtoc"
	"github.com/alnah/go-mdtoc/internal/assets"
	"github.com/alnah/go-mdtoc/internal/config"
	"github.com/alnah/go-mdtoc/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input files given")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadStyle        = errors.New("failed to read style file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrOutputConflict   = errors.New("output path conflict")
)

// defaultConfigFile is written by --init-config.
const defaultConfigFile = "mdtoc.yaml"

// settings is the merged view of config file and flags; flags win.
type settings struct {
	title     string
	minDepth  int
	maxDepth  int
	symbol    string
	page      bool
	style     string
	outputDir string
}

// run executes one CLI invocation end to end.
func run(flags *cliFlags, inputs []string, stdout, stderr io.Writer) error {
	if flags.initConfig {
		return writeDefaultConfig(stdout)
	}

	if len(inputs) == 0 {
		return ErrNoInput
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.Load(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	s := mergeSettings(flags, cfg)

	css, err := resolveStyle(s)
	if err != nil {
		return err
	}

	if flags.output != "" && len(inputs) == 1 && !looksLikeDirectory(flags.output) {
		// Single input with an explicit file target.
		return generateOne(flags, s, css, inputs[0], flags.output, stderr)
	}

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0o750); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	for _, input := range inputs {
		outPath, err := outputPathFor(input, s)
		if err != nil {
			return err
		}
		if err := generateOne(flags, s, css, input, outPath, stderr); err != nil {
			return err
		}
	}

	return nil
}

// generateOne reads one markdown file, runs the generator, and writes the
// result.
func generateOne(flags *cliFlags, s settings, css, inputPath, outputPath string, stderr io.Writer) error {
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	var opts []mdtoc.Option
	if s.symbol != "" {
		opts = append(opts, mdtoc.WithPermalinkSymbol(s.symbol))
	}
	if s.title != "" {
		opts = append(opts, mdtoc.WithTOCTitle(s.title))
	}
	gen := mdtoc.NewGenerator(opts...)

	result, err := gen.Generate(context.Background(), mdtoc.Input{
		Markdown: string(content),
		Depth:    &mdtoc.DepthRange{Min: s.minDepth, Max: s.maxDepth},
		CSS:      css,
		Page:     s.page,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	output := result.TOC
	if s.page {
		output = result.Page
	}

	if err := os.WriteFile(outputPath, []byte(output), 0o644); err != nil { // #nosec G306 -- rendered HTML is not sensitive
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.quiet {
		fmt.Fprintf(stderr, "Created %s\n", outputPath)
	}
	return nil
}

// mergeSettings overlays explicitly-set flags onto the config file values.
func mergeSettings(flags *cliFlags, cfg *config.Config) settings {
	s := settings{
		title:     cfg.TOC.Title,
		minDepth:  cfg.TOC.MinDepth,
		maxDepth:  cfg.TOC.MaxDepth,
		symbol:    cfg.TOC.PermalinkSymbol,
		page:      cfg.Page.Enabled,
		style:     cfg.Page.Style,
		outputDir: cfg.Output.DefaultDir,
	}

	if flags.changed("title") {
		s.title = flags.title
	}
	if flags.changed("min-depth") {
		s.minDepth = flags.minDepth
	}
	if flags.changed("max-depth") {
		s.maxDepth = flags.maxDepth
	}
	if flags.changed("symbol") {
		s.symbol = flags.symbol
	}
	if flags.changed("page") {
		s.page = flags.page
	}
	if flags.changed("style") {
		s.style = flags.style
	}
	if flags.output != "" {
		// An explicit single-file target never reaches outputPathFor, so
		// recording the raw flag here is safe for both shapes of -o.
		s.outputDir = flags.output
	}

	return s
}

// resolveStyle turns the style setting into CSS content.
// Names resolve against the embedded styles; anything that looks like a
// path is read from disk. Styles only apply in page mode, where an
// unconfigured style falls back to the embedded default.
func resolveStyle(s settings) (string, error) {
	if !s.page {
		return "", nil
	}

	style := s.style
	if style == "" {
		style = assets.DefaultStyleName
	}

	if strings.ContainsAny(style, "/\\") || strings.HasSuffix(style, ".css") {
		content, err := os.ReadFile(style) // #nosec G304 -- style path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadStyle, err)
		}
		return string(content), nil
	}

	return assets.LoadStyle(style)
}

// outputPathFor derives the output file path for one input.
func outputPathFor(input string, s settings) (string, error) {
	ext := ".toc.html"
	if s.page {
		ext = ".html"
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ext

	dir := s.outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	out := filepath.Join(dir, base)
	if sameFile(input, out) {
		return "", fmt.Errorf("%w: %s would overwrite its input", ErrOutputConflict, out)
	}
	return out, nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// writeDefaultConfig writes a default config file to the current directory.
// Refuses to overwrite an existing file.
func writeDefaultConfig(stdout io.Writer) error {
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrOutputConflict, defaultConfigFile)
	}

	data, err := yamlutil.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.WriteFile(defaultConfigFile, data, 0o644); err != nil { // #nosec G306 -- config template is not sensitive
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	fmt.Fprintf(stdout, "Created %s\n", defaultConfigFile)
	return nil
}

// isDirectory reports whether path exists and is a directory.
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// looksLikeDirectory reports whether path names a directory target: either
// it already exists as one, or it was written with a trailing separator.
// Directories named this way are created on demand before the batch loop.
func looksLikeDirectory(path string) bool {
	if isDirectory(path) {
		return true
	}
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator))
}

// sameFile reports whether two paths refer to the same cleaned location.
func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
