package commands

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasflat/extract"
	"github.com/erraggy/oasflat/flatten"
	"github.com/erraggy/oasflat/internal/cliutil"
	"github.com/erraggy/oasflat/internal/fileutil"
	"github.com/erraggy/oasflat/internal/httputil"
	"github.com/erraggy/oasflat/loader"
	"github.com/erraggy/oasflat/operation"
	"github.com/erraggy/oasflat/report"
)

// FlattenFlags contains flags for the flatten command
type FlattenFlags struct {
	LoadFlags

	Path        string
	Method      string
	Ref         string
	Prefix      string
	Format      string
	Output      string
	OutDir      string
	BaseName    string
	All         bool
	Concurrency int
	Quiet       bool
}

// SetupFlattenFlags creates and configures a FlagSet for the flatten command.
// Returns the FlagSet and a FlattenFlags struct with bound flag variables.
func SetupFlattenFlags() (*flag.FlagSet, *FlattenFlags) {
	fs := flag.NewFlagSet("flatten", flag.ContinueOnError)
	flags := &FlattenFlags{}

	fs.StringVar(&flags.Path, "path", "", "path template of the operation (e.g. /pets/{id})")
	fs.StringVar(&flags.Method, "method", httputil.MethodPost, "HTTP method of the operation")
	fs.StringVar(&flags.Ref, "ref", "", "flatten a schema instead of an operation body: #/definitions/Pet or a schema name")
	fs.StringVar(&flags.Ref, "schema", "", "alias for --ref")
	fs.StringVar(&flags.Prefix, "prefix", "", "prefix prepended to every parameter path")
	fs.StringVar(&flags.Format, "format", string(report.FormatText), "output format: text, csv, markdown, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "write output to a file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write output to a file instead of stdout")
	fs.StringVar(&flags.OutDir, "out-dir", "", "also write <base-name>.md and <base-name>.csv to this directory")
	fs.StringVar(&flags.BaseName, "base-name", report.DefaultBaseName, "file name stem for --out-dir")
	fs.BoolVar(&flags.All, "all", false, "flatten every operation with a request body (requires --out-dir)")
	fs.IntVar(&flags.Concurrency, "concurrency", 0, "operations flattened in parallel with --all (default GOMAXPROCS)")
	fs.DurationVar(&flags.Timeout, "timeout", loader.DefaultTimeout, "timeout for fetching URL specs")
	fs.StringVar(&flags.MaxSize, "max-size", "", "largest document accepted, e.g. 20MiB (default 10MiB)")
	fs.BoolVar(&flags.Insecure, "insecure", false, "disable TLS certificate verification for URL specs")
	fs.BoolVar(&flags.Debug, "debug", false, "log reference resolution to stderr")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the records, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the records, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasflat flatten [flags] <file|url|->\n\n")
		cliutil.Writef(output, "Flatten the request body schema of an operation into dotted parameter paths.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oasflat flatten --path /pets openapi.yaml\n")
		cliutil.Writef(output, "  oasflat flatten --path /pets/{id} --method put --format csv -o pet.csv swagger.yaml\n")
		cliutil.Writef(output, "  oasflat flatten --schema Pet --prefix body openapi.yaml\n")
		cliutil.Writef(output, "  oasflat flatten --path /pets --out-dir docs openapi.yaml\n")
		cliutil.Writef(output, "  oasflat flatten --all --out-dir params openapi.yaml\n")
		cliutil.Writef(output, "  cat openapi.yaml | oasflat flatten -q --path /pets -\n")
		cliutil.Writef(output, "\nType Labels:\n")
		cliutil.Writef(output, "  Object (Name)      object reached through a reference to Name\n")
		cliutil.Writef(output, "  List[Name]         array whose items are a Name object\n")
		cliutil.Writef(output, "  String (Enum)      string restricted to an enum\n")
		cliutil.Writef(output, "  String (ISO 8601)  string with format date-time\n")
		cliutil.Writef(output, "  Float (Number)     number\n")
		cliutil.Writef(output, "  Array elements appear in paths as [...], e.g. items[...].sku\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Flattening successful (unresolved and circular references are warnings)\n")
		cliutil.Writef(output, "  1    The document or the selected operation could not be loaded\n")
	}

	return fs, flags
}

// HandleFlatten executes the flatten command
func HandleFlatten(args []string) error {
	fs, flags := SetupFlattenFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("flatten command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	format, err := report.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	if err := flags.validateTarget(); err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{specPath}); err != nil {
			return err
		}
	}

	logger := NewLogger(flags.Debug)
	doc, err := loadSpec(specPath, &flags.LoadFlags, logger)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "OpenAPI Schema Flattener\n")
		cliutil.Writef(os.Stderr, "========================\n\n")
		OutputSpecHeader(specPath, doc)
	}

	f := flatten.New(flatten.WithLogger(logger), flatten.WithPrefix(flags.Prefix))
	if flags.All {
		return flattenAll(doc, f, flags)
	}

	ex, err := extract.Run(doc.Data, extract.Target{Path: flags.Path, Method: flags.Method, Ref: flags.Ref}, f)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Target: %s\n", describeTarget(ex))
		cliutil.Writef(os.Stderr, "Parameters: %d\n\n", len(ex.Records))
	}
	printWarnings(ex, flags.Quiet)

	if flags.OutDir != "" {
		files, err := report.WriteFiles(flags.OutDir, flags.BaseName, ex.Records)
		if err != nil {
			return err
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "Wrote %s\n", files.Markdown)
			cliutil.Writef(os.Stderr, "Wrote %s\n\n", files.CSV)
		}
	}

	return writeRecords(ex.Records, format, flags)
}

func (f *FlattenFlags) validateTarget() error {
	if f.All {
		if f.Path != "" || f.Ref != "" {
			return fmt.Errorf("--all cannot be combined with --path or --ref")
		}
		if f.OutDir == "" {
			return fmt.Errorf("--all requires --out-dir")
		}
		return nil
	}
	if f.Path == "" && f.Ref == "" {
		return fmt.Errorf("either --path or --ref is required (or use --all)")
	}
	if f.Path != "" && f.Ref != "" {
		return fmt.Errorf("--path and --ref cannot be combined")
	}
	if f.Ref == "" && !httputil.IsMethod(operation.NormalizeMethod(f.Method)) {
		return fmt.Errorf("invalid method '%s'", f.Method)
	}
	return nil
}

// writeRecords renders records to --output, or to stdout.
func writeRecords(records []flatten.ParameterRecord, format report.Format, flags *FlattenFlags) error {
	if flags.Output == "" {
		if format == report.FormatText {
			report.WriteTable(os.Stdout, records, flags.Quiet)
			return nil
		}
		return report.Write(os.Stdout, records, format)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, records, format); err != nil {
		return err
	}
	if err := os.WriteFile(flags.Output, buf.Bytes(), fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Output written to: %s\n", flags.Output)
	}
	return nil
}

// flattenAll writes one file pair per operation with a request body, then
// prints a summary of what was written.
func flattenAll(doc *loader.Document, f *flatten.Flattener, flags *FlattenFlags) error {
	results, err := extract.All(context.Background(), doc.Data, f, flags.Concurrency)
	if err != nil {
		return err
	}

	headers := []string{"Method", "Path", "Parameters", "Files"}
	rows := make([][]string, 0, len(results))
	for _, ex := range results {
		printWarnings(ex, flags.Quiet)
		base := extract.BaseName(ex)
		if _, err := report.WriteFiles(flags.OutDir, base, ex.Records); err != nil {
			return err
		}
		rows = append(rows, []string{
			operation.DisplayMethod(ex.Method),
			ex.Path,
			fmt.Sprintf("%d", len(ex.Records)),
			filepath.Join(flags.OutDir, base) + ".{md,csv}",
		})
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Operations: %d\n\n", len(results))
	}
	report.RenderTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}

func describeTarget(ex *extract.Extraction) string {
	if ex.Ref != "" {
		return ex.Ref
	}
	return operation.DisplayMethod(ex.Method) + " " + ex.Path
}

// printWarnings reports unresolved and circular references on stderr.
func printWarnings(ex *extract.Extraction, quiet bool) {
	if quiet || len(ex.Warnings) == 0 {
		return
	}
	cliutil.Writef(os.Stderr, "Warnings for %s (%d):\n", describeTarget(ex), len(ex.Warnings))
	for _, w := range ex.Warnings {
		cliutil.Writef(os.Stderr, "  - %s\n", w)
	}
	cliutil.Writef(os.Stderr, "\n")
}
