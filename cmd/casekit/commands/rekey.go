package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/casekit"
	"github.com/erraggy/casekit/casing"
	"github.com/erraggy/casekit/internal/cliutil"
	"github.com/erraggy/casekit/rekey"
)

// RekeyFlags contains flags for the rekey command
type RekeyFlags struct {
	Style    string
	Format   string
	SkipKeys []string
	MaxDepth int
	Strict   bool
	Output   string
	Quiet    bool
	Verbose  bool
}

// SetupRekeyFlags creates and configures a FlagSet for the rekey command.
// Returns the FlagSet and a RekeyFlags struct with bound flag variables.
func SetupRekeyFlags() (*flag.FlagSet, *RekeyFlags) {
	fs := flag.NewFlagSet("rekey", flag.ContinueOnError)
	flags := &RekeyFlags{}

	skip := func(value string) error {
		flags.SkipKeys = append(flags.SkipKeys, SplitList(value)...)
		return nil
	}

	fs.StringVar(&flags.Style, "s", "snake", "target key style: camel, pascal, snake, upper-snake")
	fs.StringVar(&flags.Style, "style", "snake", "target key style: camel, pascal, snake, upper-snake")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: same as input)")
	fs.Func("skip", "comma-separated keys never renamed (repeatable)", skip)
	fs.IntVar(&flags.MaxDepth, "max-depth", rekey.DefaultMaxDepth, "maximum mapping depth to rename")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on key collisions")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log rekey details to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casekit rekey [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Rename the keys of a YAML or JSON document to a naming style.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casekit rekey -s camel config.yaml -o config.camel.yaml\n")
		cliutil.Writef(fs.Output(), "  casekit rekey --skip '$ref' --format json openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  kubectl get pod x -o json | casekit rekey -q -s snake -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Key order, comments and values are preserved\n")
		cliutil.Writef(fs.Output(), "  - Colliding keys keep their original name unless --strict is set\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Keys renamed\n")
		cliutil.Writef(fs.Output(), "  1    Invalid input, or key collisions in --strict mode\n")
	}

	return fs, flags
}

// HandleRekey executes the rekey command
func HandleRekey(args []string) error {
	fs, flags := SetupRekeyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("rekey command requires exactly one file path or '-' for stdin")
	}
	inputPath := fs.Arg(0)

	style, err := casing.ParseStyle(flags.Style)
	if err != nil {
		return err
	}
	format, err := rekey.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	opts := []rekey.Option{
		rekey.WithStyle(style),
		rekey.WithOutputFormat(format),
		rekey.WithSkipKeys(flags.SkipKeys...),
		rekey.WithMaxDepth(flags.MaxDepth),
		rekey.WithStrict(flags.Strict),
		rekey.WithLogger(newLogger(flags.Verbose)),
	}
	if inputPath == StdinFilePath {
		opts = append(opts, rekey.WithReader(stdin))
	} else {
		opts = append(opts, rekey.WithFilePath(inputPath))
	}

	result, err := rekey.RekeyWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("rekeying %s: %w", FormatInputPath(inputPath), err)
	}

	if !flags.Quiet {
		cliutil.Writef(stderr, "casekit version: %s\n", casekit.Version())
		cliutil.Writef(stderr, "Document: %s (%s)\n", FormatInputPath(inputPath), result.SourceFormat)
		cliutil.Writef(stderr, "Keys: %d visited, %d renamed\n", result.KeysVisited, result.KeysRenamed)
		if result.DepthLimited > 0 {
			cliutil.Writef(stderr, "Depth limited: %d mapping(s) deeper than %d left unchanged\n", result.DepthLimited, flags.MaxDepth)
		}
		for _, c := range result.Collisions {
			cliutil.Warnf(stderr, "%s", c.Error())
		}
	}

	if flags.Output == "" {
		_, err := stdout.Write(result.Document)
		return err
	}

	if err := ValidateOutputPath(flags.Output, []string{inputPath}); err != nil {
		return err
	}
	if err := os.WriteFile(flags.Output, result.Document, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if !flags.Quiet {
		cliutil.Writef(stderr, "Output: %s\n", flags.Output)
	}
	return nil
}
