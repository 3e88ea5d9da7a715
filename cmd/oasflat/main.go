package main

import (
	"os"

	"github.com/agext/levenshtein"

	"github.com/erraggy/oasflat"
	"github.com/erraggy/oasflat/cmd/oasflat/commands"
	"github.com/erraggy/oasflat/internal/cliutil"
)

// commandNames lists the commands suggestCommand matches typos against.
var commandNames = []string{"flatten", "operations", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "oasflat v%s\n", oasflat.Version())
		cliutil.Writef(os.Stdout, "%s\n", oasflat.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "flatten":
		err = commands.HandleFlatten(os.Args[2:])
	case "operations":
		err = commands.HandleOperations(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		cliutil.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein.Distance(input, name, nil); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func printUsage() {
	cliutil.Writef(os.Stdout, `oasflat - OpenAPI Request Body Flattener

Usage:
  oasflat <command> [options]

Commands:
  flatten     Flatten an operation's request body into parameter paths
  operations  List the operations of a specification
  mcp         Start the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasflat flatten --path /pets openapi.yaml
  oasflat flatten --path /pets/{id} --method put --format markdown swagger.json
  oasflat flatten --schema Pet --out-dir docs openapi.yaml
  oasflat flatten --all --out-dir params https://example.com/api/openapi.yaml
  oasflat operations --body-only openapi.yaml
  cat openapi.yaml | oasflat flatten -q --path /pets -

Run 'oasflat <command> --help' for more information on a command.
`)
}
