package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/casekit/casing"
	"github.com/erraggy/casekit/internal/cliutil"
	"github.com/erraggy/casekit/internal/enumgen"
)

// EnumgenFlags contains flags for the enumgen command
type EnumgenFlags struct {
	Type       string
	Styles     string
	TrimPrefix string
	Output     string
	Check      bool
}

// SetupEnumgenFlags creates and configures a FlagSet for the enumgen command.
// Returns the FlagSet and an EnumgenFlags struct with bound flag variables.
func SetupEnumgenFlags() (*flag.FlagSet, *EnumgenFlags) {
	fs := flag.NewFlagSet("enumgen", flag.ContinueOnError)
	flags := &EnumgenFlags{}

	fs.StringVar(&flags.Type, "type", "", "enum type name (required)")
	fs.StringVar(&flags.Styles, "styles", "", "comma-separated styles to generate (default: all)")
	fs.StringVar(&flags.TrimPrefix, "trimprefix", "", "prefix removed from constant names before conversion")
	fs.StringVar(&flags.Output, "o", "", "output file (default: <type>_names.go in the package directory)")
	fs.StringVar(&flags.Output, "output", "", "output file (default: <type>_names.go in the package directory)")
	fs.BoolVar(&flags.Check, "check", false, "compare with the existing file and fail if it is stale")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: casekit enumgen -type <name> [flags] [dir]\n\n")
		cliutil.Writef(fs.Output(), "Generate CamelName, PascalName, SnakeName and UpperSnakeName methods\n")
		cliutil.Writef(fs.Output(), "for the constants of an enum type. dir defaults to the current directory.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  casekit enumgen -type Color -trimprefix Color\n")
		cliutil.Writef(fs.Output(), "  casekit enumgen -type Level -styles snake,upper-snake ./internal/log\n")
		cliutil.Writef(fs.Output(), "\ngo:generate:\n")
		cliutil.Writef(fs.Output(), "  //go:generate casekit enumgen -type Color\n")
	}

	return fs, flags
}

// HandleEnumgen executes the enumgen command
func HandleEnumgen(args []string) error {
	fs, flags := SetupEnumgenFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Type == "" {
		fs.Usage()
		return fmt.Errorf("type name is required (use -type)")
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("enumgen command accepts at most one package directory")
	}
	dir := "."
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}

	var styles []casing.Style
	for _, name := range SplitList(flags.Styles) {
		style, err := casing.ParseStyle(name)
		if err != nil {
			return err
		}
		styles = append(styles, style)
	}

	e, err := enumgen.Load(dir, flags.Type)
	if err != nil {
		return err
	}
	e.TrimPrefix = flags.TrimPrefix

	src, err := enumgen.Render(e, styles)
	if err != nil {
		return err
	}

	outputPath := flags.Output
	if outputPath == "" {
		outputPath = filepath.Join(dir, enumgen.Filename(flags.Type))
	}

	if flags.Check {
		existing, err := os.ReadFile(outputPath)
		if err != nil {
			return fmt.Errorf("reading existing file: %w", err)
		}
		if string(existing) != string(src) {
			return fmt.Errorf("%s is stale; run 'casekit enumgen -type %s' to regenerate", outputPath, flags.Type)
		}
		cliutil.Writef(stdout, "%s is up to date\n", outputPath)
		return nil
	}

	if err := RejectSymlinkOutput(filepath.Clean(outputPath)); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	cliutil.Writef(stdout, "Generated %s\n", outputPath)
	return nil
}
