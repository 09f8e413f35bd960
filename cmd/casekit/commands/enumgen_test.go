package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupEnumgenFlags(t *testing.T) {
	fs, flags := SetupEnumgenFlags()

	if err := fs.Parse([]string{"-type", "Color", "-styles", "snake,camel", "-trimprefix", "Color", "-check", "./paint"}); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if flags.Type != "Color" || flags.Styles != "snake,camel" || flags.TrimPrefix != "Color" || !flags.Check {
		t.Errorf("unexpected flags: %+v", flags)
	}
	if fs.Arg(0) != "./paint" {
		t.Errorf("expected dir arg './paint', got '%s'", fs.Arg(0))
	}
}

func TestHandleEnumgen(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping package loading in short mode")
	}
	out, _ := captureOutput(t, "")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/paint\n\ngo 1.24\n")
	writeFile(t, filepath.Join(dir, "color.go"), "package paint\n\ntype Color int\n\nconst (\n\tColorDarkRed Color = iota\n\tColorLightBlue\n)\n")

	if err := HandleEnumgen([]string{"-type", "Color", "-styles", "snake", "-trimprefix", "Color", dir}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	generated := filepath.Join(dir, "color_names.go")
	data, err := os.ReadFile(generated)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `return "dark_red"`) || !strings.Contains(string(data), `return "light_blue"`) {
		t.Errorf("unexpected generated code:\n%s", data)
	}
	if !strings.Contains(out.String(), "Generated "+generated) {
		t.Errorf("unexpected output %q", out.String())
	}

	if err := HandleEnumgen([]string{"-type", "Color", "-styles", "snake", "-trimprefix", "Color", "-check", dir}); err != nil {
		t.Errorf("fresh file reported stale: %v", err)
	}
	if err := HandleEnumgen([]string{"-type", "Color", "-check", dir}); err == nil {
		t.Error("expected stale error when styles differ")
	}
}

func TestHandleEnumgen_ErrorPaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no type", []string{}},
		{"two dirs", []string{"-type", "Color", "a", "b"}},
		{"bad style", []string{"-type", "Color", "-styles", "kebab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t, "")
			if err := HandleEnumgen(tt.args); err == nil {
				t.Errorf("HandleEnumgen(%q) expected error", tt.args)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
