package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/casekit"
	"github.com/erraggy/casekit/cmd/casekit/commands"
)

// commandHandlers maps each subcommand to its handler.
var commandHandlers = map[string]func([]string) error{
	"convert": commands.HandleConvert,
	"rekey":   commands.HandleRekey,
	"text":    commands.HandleText,
	"enumgen": commands.HandleEnumgen,
	"mcp":     commands.HandleMCP,
}

// commandNames lists every command for typo suggestions.
var commandNames = []string{"convert", "rekey", "text", "enumgen", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casekit %s\n", casekit.Version())
		fmt.Printf("commit: %s\n", casekit.Commit())
		fmt.Printf("built: %s\n", casekit.BuildTime())
		fmt.Printf("go: %s\n", casekit.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := commandHandlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		if !errors.Is(err, commands.ErrNoMatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when none is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`casekit - naming-convention tools

Usage:
  casekit <command> [options]

Commands:
  convert     Convert identifiers to camel, pascal, snake or upper-snake case
  rekey       Rename the keys of a YAML or JSON document
  text        Apply a text transform (slug, title, strip-tags, ...)
  enumgen     Generate name methods for a Go enum type
  mcp         Serve casekit tools over the Model Context Protocol
  version     Show version information
  help        Show this help message

Examples:
  casekit convert -s snake userId createdAt
  casekit rekey -s camel config.yaml -o config.camel.yaml
  casekit text -op slug "Hello, World!"
  casekit enumgen -type Color -trimprefix Color

Run 'casekit <command> --help' for more information on a command.`)
}
