package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"slices"

	"github.com/erraggy/casekit/batch"
	"github.com/erraggy/casekit/casing"
	"github.com/erraggy/casekit/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Style       string
	Format      string
	Dedupe      bool
	Concurrency int
	Quiet       bool
	Verbose     bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Style, "s", "camel", "target style: camel, pascal, snake, upper-snake")
	fs.StringVar(&flags.Style, "style", "camel", "target style: camel, pascal, snake, upper-snake")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Dedupe, "dedupe", false, "drop repeated inputs")
	fs.IntVar(&flags.Concurrency, "concurrency", runtime.GOMAXPROCS(0), "maximum parallel conversions")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: do not report collisions")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: do not report collisions")
	fs.BoolVar(&flags.Verbose, "v", false, "log conversion details to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log conversion details to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casekit convert [flags] <name>... | -\n\n")
		cliutil.Writef(fs.Output(), "Convert identifiers to a naming style.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nStyles:\n")
		for _, s := range casing.Styles() {
			cliutil.Writef(fs.Output(), "  %-12s %s\n", s, casing.Convert("my variable name", s))
		}
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casekit convert -s snake userId createdAt\n")
		cliutil.Writef(fs.Output(), "  casekit convert --style PascalCase \"http server\"\n")
		cliutil.Writef(fs.Output(), "  cut -d, -f1 columns.csv | casekit convert -s upper-snake --dedupe -\n")
		cliutil.Writef(fs.Output(), "  casekit convert -s camel --format json first_name last_name\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' (or no arguments) to read one name per line from stdin\n")
		cliutil.Writef(fs.Output(), "  - Text output prints one converted name per line, in input order\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Invalid arguments or input\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	opts := []batch.Option{
		batch.WithStyleName(flags.Style),
		batch.WithDeduplicate(flags.Dedupe),
		batch.WithConcurrency(flags.Concurrency),
		batch.WithLogger(newLogger(flags.Verbose)),
	}
	names := fs.Args()
	if len(names) == 0 || slices.Equal(names, []string{StdinFilePath}) {
		opts = append(opts, batch.WithReader(stdin))
	} else {
		opts = append(opts, batch.WithInputs(names))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := batch.ConvertWithOptions(ctx, opts...)
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}

	cliutil.WriteLines(stdout, result.Outputs())
	if !flags.Quiet {
		reported := make(map[string]bool, len(result.Collisions))
		for _, item := range result.Items {
			sources, ok := result.Collisions[item.Output]
			if !ok || reported[item.Output] {
				continue
			}
			reported[item.Output] = true
			cliutil.Warnf(stderr, "%q is produced by %d inputs: %q", item.Output, len(sources), sources)
		}
	}
	return nil
}
