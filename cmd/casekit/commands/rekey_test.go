package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupRekeyFlags(t *testing.T) {
	fs, flags := SetupRekeyFlags()

	args := []string{"-s", "camel", "--format", "json", "--skip", "$ref,$id", "--skip", "x-extra", "--max-depth", "3", "--strict", "-o", "out.json", "in.yaml"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if flags.Style != "camel" {
		t.Errorf("expected Style 'camel', got '%s'", flags.Style)
	}
	if strings.Join(flags.SkipKeys, ",") != "$ref,$id,x-extra" {
		t.Errorf("expected three skip keys, got %q", flags.SkipKeys)
	}
	if flags.MaxDepth != 3 || !flags.Strict || flags.Output != "out.json" {
		t.Errorf("unexpected flags: %+v", flags)
	}
}

func TestHandleRekey_Stdin(t *testing.T) {
	out, errOut := captureOutput(t, "serviceName: api\nretryCount: 3\n")

	if err := HandleRekey([]string{"-s", "upper-snake", "-"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "SERVICE_NAME: api\nRETRY_COUNT: 3\n" {
		t.Errorf("unexpected document %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Keys: 2 visited, 2 renamed") {
		t.Errorf("expected summary on stderr, got %q", errOut.String())
	}
}

func TestHandleRekey_FileToFile(t *testing.T) {
	captureOutput(t, "")
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.yaml")
	if err := os.WriteFile(in, []byte(`{"$ref": "#/a", "itemName": "x"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleRekey([]string{"-q", "--skip", "$ref", "--format", "yaml", "-o", out, in}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "item_name: x") || !strings.Contains(string(data), "$ref:") {
		t.Errorf("unexpected document %q", data)
	}
}

func TestHandleRekey_CollisionWarning(t *testing.T) {
	_, errOut := captureOutput(t, `{"userId": 1, "user_id": 2}`)

	if err := HandleRekey([]string{"-"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut.String(), `Warning: key collision at $: "user_id" and "userId" both convert to "user_id"`) {
		t.Errorf("expected collision warning, got %q", errOut.String())
	}
}

func TestHandleRekey_ErrorPaths(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	if err := os.WriteFile(in, []byte("aB: 1\na_b: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"two args", []string{"a.yaml", "b.yaml"}},
		{"unknown style", []string{"-s", "kebab", in}},
		{"unknown format", []string{"--format", "toml", in}},
		{"zero depth", []string{"--max-depth", "0", in}},
		{"missing file", []string{filepath.Join(dir, "missing.yaml")}},
		{"strict collision", []string{"--strict", in}},
		{"overwrite input", []string{"-o", in, in}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t, "")
			if err := HandleRekey(tt.args); err == nil {
				t.Errorf("HandleRekey(%q) expected error", tt.args)
			}
		})
	}
}
