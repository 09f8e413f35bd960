package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/erraggy/casekit/internal/cliutil"
	"github.com/erraggy/casekit/textutil"
	"golang.org/x/text/language"
)

// TextFlags contains flags for the text command
type TextFlags struct {
	Operation string
	Language  string
	Pattern   string
}

// textOperations lists the operations accepted by -op.
var textOperations = []string{"slug", "strip-tags", "normalize-spaces", "reverse", "capitalize-words", "title", "match"}

// SetupTextFlags creates and configures a FlagSet for the text command.
// Returns the FlagSet and a TextFlags struct with bound flag variables.
func SetupTextFlags() (*flag.FlagSet, *TextFlags) {
	fs := flag.NewFlagSet("text", flag.ContinueOnError)
	flags := &TextFlags{}

	fs.StringVar(&flags.Operation, "op", "", "operation: "+strings.Join(textOperations, ", ")+" (required)")
	fs.StringVar(&flags.Language, "lang", "", "BCP 47 language tag for title (e.g. nl, tr)")
	fs.StringVar(&flags.Pattern, "pattern", "", "regular expression for match")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casekit text -op <operation> [flags] <text>... | -\n\n")
		cliutil.Writef(fs.Output(), "Apply a text transform. Arguments are joined with spaces.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casekit text -op slug \"Hello, World!\"\n")
		cliutil.Writef(fs.Output(), "  casekit text -op title -lang nl ijsselmeer\n")
		cliutil.Writef(fs.Output(), "  casekit text -op match -pattern '^v[0-9]+' v2api\n")
		cliutil.Writef(fs.Output(), "  curl -s example.com | casekit text -op strip-tags -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Success (for match: the pattern matched)\n")
		cliutil.Writef(fs.Output(), "  1    Invalid arguments, or no match\n")
	}

	return fs, flags
}

// ErrNoMatch is returned by HandleText when a match operation finds nothing.
var ErrNoMatch = errors.New("no match")

// HandleText executes the text command
func HandleText(args []string) error {
	fs, flags := SetupTextFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if !slices.Contains(textOperations, flags.Operation) {
		fs.Usage()
		return fmt.Errorf("invalid operation '%s'. Valid operations: %s", flags.Operation, strings.Join(textOperations, ", "))
	}

	input, err := readTextInput(fs.Args())
	if err != nil {
		return err
	}

	var out string
	switch flags.Operation {
	case "slug":
		out = textutil.ToSlug(input)
	case "strip-tags":
		out = textutil.StripTags(input)
	case "normalize-spaces":
		out = textutil.NormalizeSpaces(input)
	case "reverse":
		out = textutil.Reverse(input)
	case "capitalize-words":
		out = textutil.CapitalizeWords(input)
	case "title":
		tag := language.Und
		if flags.Language != "" {
			if tag, err = language.Parse(flags.Language); err != nil {
				return fmt.Errorf("invalid language '%s': %w", flags.Language, err)
			}
		}
		out = textutil.ToTitleCase(input, tag)
	case "match":
		matches, err := textutil.FindMatches(input, flags.Pattern, -1)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return ErrNoMatch
		}
		cliutil.WriteLines(stdout, matches)
		return nil
	}

	cliutil.Writef(stdout, "%s\n", out)
	return nil
}

// readTextInput joins args with spaces, or reads all of stdin when the only
// argument is "-" or there are none.
func readTextInput(args []string) (string, error) {
	if len(args) > 0 && !slices.Equal(args, []string{StdinFilePath}) {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
