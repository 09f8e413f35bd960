package commands

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSetupConvertFlags(t *testing.T) {
	fs, flags := SetupConvertFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Style != "camel" {
			t.Errorf("expected Style 'camel' by default, got '%s'", flags.Style)
		}
		if flags.Format != FormatText {
			t.Errorf("expected Format 'text' by default, got '%s'", flags.Format)
		}
		if flags.Dedupe || flags.Quiet || flags.Verbose {
			t.Error("expected boolean flags to be false by default")
		}
		if flags.Concurrency <= 0 {
			t.Errorf("expected positive default concurrency, got %d", flags.Concurrency)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-s", "snake", "--format", "json", "--dedupe", "--concurrency", "2", "-q", "-v", "userId"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if flags.Style != "snake" {
			t.Errorf("expected Style 'snake', got '%s'", flags.Style)
		}
		if flags.Format != FormatJSON {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
		if !flags.Dedupe || !flags.Quiet || !flags.Verbose {
			t.Error("expected dedupe, quiet and verbose to be set")
		}
		if flags.Concurrency != 2 {
			t.Errorf("expected Concurrency 2, got %d", flags.Concurrency)
		}
		if fs.Arg(0) != "userId" {
			t.Errorf("expected arg 'userId', got '%s'", fs.Arg(0))
		}
	})
}

func TestHandleConvert_Args(t *testing.T) {
	out, _ := captureOutput(t, "")

	if err := HandleConvert([]string{"-s", "snake", "userId", "HTTPServer", "my variAb-le"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "user_id\nhttpserver\nmy_vari_ab_le\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestHandleConvert_Stdin(t *testing.T) {
	out, errOut := captureOutput(t, "first name\n\nfirstName\nlast-name\n")

	if err := HandleConvert([]string{"--style", "PascalCase", "-"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "FirstName\nFirstName\nLastName\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if !strings.Contains(errOut.String(), `"FirstName" is produced by 2 inputs`) {
		t.Errorf("expected collision warning, got %q", errOut.String())
	}
}

func TestHandleConvert_Quiet(t *testing.T) {
	_, errOut := captureOutput(t, "")

	if err := HandleConvert([]string{"-q", "-s", "snake", "a b", "aB"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("expected no diagnostics in quiet mode, got %q", errOut.String())
	}
}

func TestHandleConvert_JSON(t *testing.T) {
	out, _ := captureOutput(t, "")

	if err := HandleConvert([]string{"-s", "upper-snake", "--format", "json", "createdAt", "ID"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Style        string `json:"style"`
		ChangedCount int    `json:"changed_count"`
		Items        []struct {
			Input  string `json:"input"`
			Output string `json:"output"`
		} `json:"items"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid json output %q: %v", out.String(), err)
	}
	if got.Style != "upper-snake" {
		t.Errorf("style = %q, want upper-snake", got.Style)
	}
	if got.ChangedCount != 1 {
		t.Errorf("changed_count = %d, want 1", got.ChangedCount)
	}
	if len(got.Items) != 2 || got.Items[0].Output != "CREATED_AT" || got.Items[1].Output != "ID" {
		t.Errorf("unexpected items: %+v", got.Items)
	}
}

func TestHandleConvert_Help(t *testing.T) {
	if err := HandleConvert([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleConvert_ErrorPaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown style", []string{"-s", "kebab", "a"}},
		{"invalid format", []string{"--format", "xml", "a"}},
		{"zero concurrency", []string{"--concurrency", "0", "a"}},
		{"unknown flag", []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t, "")
			if err := HandleConvert(tt.args); err == nil {
				t.Errorf("HandleConvert(%q) expected error", tt.args)
			}
		})
	}
}
