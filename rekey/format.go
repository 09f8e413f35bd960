package rekey

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/erraggy/casekit/caseerrors"
)

// Format is a document serialization format.
type Format string

const (
	// FormatAuto writes the output in the format the input was read in.
	FormatAuto Format = ""
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. The empty string and "auto" yield FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, &caseerrors.ArgumentError{Name: "format", Message: "must be one of auto, json, yaml; got " + s}
	}
}

func (f Format) String() string {
	if f == FormatAuto {
		return "auto"
	}
	return string(f)
}

// detectFormatFromPath detects the format from a file extension
func detectFormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// detectFormatFromContent treats content starting with '{' or '[' as JSON
// and anything else as YAML.
func detectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}
