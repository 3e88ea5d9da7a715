// Package commands provides CLI command handlers for oasflat.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/docker/go-units"

	"github.com/erraggy/oasflat"
	"github.com/erraggy/oasflat/flatten"
	"github.com/erraggy/oasflat/internal/cliutil"
	"github.com/erraggy/oasflat/loader"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = loader.StdinSource

// LoadFlags are the document loading flags shared by every command that
// reads a specification.
type LoadFlags struct {
	Timeout  time.Duration
	MaxSize  string
	Insecure bool
	Debug    bool
}

// loaderOptions turns the shared flags into loader options.
func (f *LoadFlags) loaderOptions(logger flatten.Logger) ([]loader.Option, error) {
	opts := []loader.Option{
		loader.WithTimeout(f.Timeout),
		loader.WithInsecureSkipVerify(f.Insecure),
		loader.WithUserAgent(oasflat.UserAgent()),
		loader.WithLogger(logger),
	}
	if f.MaxSize != "" {
		n, err := units.RAMInBytes(f.MaxSize)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid max-size '%s': use a byte count such as 512k or 20MiB", f.MaxSize)
		}
		opts = append(opts, loader.WithMaxBytes(n))
	}
	return opts, nil
}

// NewLogger returns a text slog logger on stderr at debug level when debug is
// set, and a no-op logger otherwise.
func NewLogger(debug bool) flatten.Logger {
	if !debug {
		return flatten.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return flatten.NewSlogAdapter(slog.New(handler))
}

// loadSpec loads specPath, cancelling on interrupt.
func loadSpec(specPath string, flags *LoadFlags, logger flatten.Logger) (*loader.Document, error) {
	opts, err := flags.loaderOptions(logger)
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	doc, err := loader.Load(ctx, specPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", FormatSpecPath(specPath), err)
	}
	return doc, nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// OutputSpecHeader outputs the common specification header to stderr.
func OutputSpecHeader(specPath string, doc *loader.Document) {
	cliutil.Writef(os.Stderr, "oasflat version: %s\n", oasflat.Version())
	cliutil.Writef(os.Stderr, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(os.Stderr, "OAS Version: %s\n", doc.Version)
	cliutil.Writef(os.Stderr, "Source Size: %s\n", units.HumanSize(float64(doc.SizeBytes)))
	cliutil.Writef(os.Stderr, "Load Time: %v\n", doc.LoadTime)
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}
