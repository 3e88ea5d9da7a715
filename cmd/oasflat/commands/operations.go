package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasflat/internal/cliutil"
	"github.com/erraggy/oasflat/loader"
	"github.com/erraggy/oasflat/operation"
	"github.com/erraggy/oasflat/report"
)

// OperationsFlags contains flags for the operations command
type OperationsFlags struct {
	LoadFlags

	Format   string
	BodyOnly bool
	Quiet    bool
}

// SetupOperationsFlags creates and configures a FlagSet for the operations command.
// Returns the FlagSet and an OperationsFlags struct with bound flag variables.
func SetupOperationsFlags() (*flag.FlagSet, *OperationsFlags) {
	fs := flag.NewFlagSet("operations", flag.ContinueOnError)
	flags := &OperationsFlags{}

	fs.StringVar(&flags.Format, "format", string(report.FormatText), "output format: text, json, or yaml")
	fs.BoolVar(&flags.BodyOnly, "body-only", false, "only list operations with a request body")
	fs.DurationVar(&flags.Timeout, "timeout", loader.DefaultTimeout, "timeout for fetching URL specs")
	fs.StringVar(&flags.MaxSize, "max-size", "", "largest document accepted, e.g. 20MiB (default 10MiB)")
	fs.BoolVar(&flags.Insecure, "insecure", false, "disable TLS certificate verification for URL specs")
	fs.BoolVar(&flags.Debug, "debug", false, "log document loading to stderr")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headers")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headers")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasflat operations [flags] <file|url|->\n\n")
		cliutil.Writef(output, "List the operations of an OpenAPI specification and whether each has a request body.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  oasflat operations openapi.yaml\n")
		cliutil.Writef(output, "  oasflat operations --body-only --format json swagger.yaml\n")
		cliutil.Writef(output, "  oasflat operations -q openapi.yaml | cut -f1,2\n")
	}

	return fs, flags
}

// HandleOperations executes the operations command
func HandleOperations(args []string) error {
	fs, flags := SetupOperationsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("operations command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	format, err := report.ParseFormat(flags.Format)
	if err != nil {
		return err
	}
	switch format {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
	default:
		return fmt.Errorf("invalid format '%s'. Valid formats: text, json, yaml", flags.Format)
	}

	doc, err := loadSpec(specPath, &flags.LoadFlags, NewLogger(flags.Debug))
	if err != nil {
		return err
	}

	ops := selectOperations(operation.List(doc.Data), flags.BodyOnly)
	for i := range ops {
		ops[i].Method = operation.DisplayMethod(ops[i].Method)
	}

	if format != report.FormatText {
		return report.RenderDetail(os.Stdout, ops, format)
	}

	if !flags.Quiet {
		OutputSpecHeader(specPath, doc)
		cliutil.Writef(os.Stderr, "Operations: %d\n\n", len(ops))
	}
	report.RenderTable(os.Stdout, []string{"Method", "Path", "Operation ID", "Body"}, operationRows(ops), flags.Quiet)
	return nil
}

func selectOperations(ops []operation.Operation, bodyOnly bool) []operation.Operation {
	if !bodyOnly {
		return ops
	}
	selected := make([]operation.Operation, 0, len(ops))
	for _, op := range ops {
		if op.HasBody {
			selected = append(selected, op)
		}
	}
	return selected
}

func operationRows(ops []operation.Operation) [][]string {
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{op.Method, op.Path, op.OperationID, report.RequiredLabel(op.HasBody)})
	}
	return rows
}
