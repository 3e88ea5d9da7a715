package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasflat/internal/cliutil"
	"github.com/erraggy/oasflat/internal/mcpserver"
)

// HandleMCP starts the MCP server over stdio and blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: oasflat mcp\n\n")
		cliutil.Writef(output, "Start an MCP server over stdio exposing the flatten and list_operations tools.\n")
		cliutil.Writef(output, "Defaults are read from OASFLAT_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
