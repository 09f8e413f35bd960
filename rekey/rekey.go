package rekey

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/erraggy/casekit/batch"
	"github.com/erraggy/casekit/caseerrors"
	"github.com/erraggy/casekit/casing"
	"go.yaml.in/yaml/v4"
)

// mergeKey is the YAML merge key, which is never renamed.
const mergeKey = "<<"

// Result contains the outcome of a rekey operation
type Result struct {
	// Document is the serialized output document
	Document []byte
	// Format is the format Document is written in
	Format Format
	// SourceFormat is the detected input format
	SourceFormat Format
	// Documents is the number of YAML documents in the input
	Documents int
	// KeysVisited is the number of string keys considered for renaming
	KeysVisited int
	// KeysRenamed is the number of keys whose name changed
	KeysRenamed int
	// DepthLimited is the number of mappings left untouched by the depth limit
	DepthLimited int
	// Collisions lists keys kept under their original name because their
	// converted name was already taken
	Collisions []caseerrors.CollisionError
}

// HasCollisions reports whether any key collisions were found.
func (r *Result) HasCollisions() bool {
	return len(r.Collisions) > 0
}

// RekeyWithOptions renames the keys of a document using functional options.
//
// Example:
//
//	result, err := rekey.RekeyWithOptions(
//		rekey.WithContent(data),
//		rekey.WithStyle(casing.Camel),
//		rekey.WithOutputFormat(rekey.FormatJSON),
//	)
func RekeyWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	data, sourceFormat, err := cfg.load()
	if err != nil {
		return nil, err
	}

	docs, err := decodeDocuments(data)
	if err != nil {
		return nil, err
	}

	outputFormat := cfg.outputFormat
	if outputFormat == FormatAuto {
		outputFormat = sourceFormat
	}
	if outputFormat == FormatJSON && len(docs) > 1 {
		return nil, &caseerrors.ArgumentError{
			Name:    "format",
			Message: fmt.Sprintf("JSON output holds a single document, input has %d", len(docs)),
		}
	}

	result := &Result{
		Format:       outputFormat,
		SourceFormat: sourceFormat,
		Documents:    len(docs),
	}
	w := &walker{cfg: cfg, result: result, log: cfg.logger.With("style", cfg.style.String())}
	for _, doc := range docs {
		if err := w.walk(doc, "$", 0); err != nil {
			return nil, err
		}
	}

	switch outputFormat {
	case FormatJSON:
		result.Document, err = marshalJSON(docs[0])
	default:
		if sourceFormat == FormatJSON {
			for _, doc := range docs {
				clearFlowStyle(doc)
			}
		}
		result.Document, err = marshalYAML(docs)
	}
	if err != nil {
		return nil, fmt.Errorf("rekey: writing %s: %w", outputFormat, err)
	}

	w.log.Debug("rekeyed document",
		"documents", result.Documents,
		"visited", result.KeysVisited,
		"renamed", result.KeysRenamed,
		"collisions", len(result.Collisions),
		"depth_limited", result.DepthLimited,
	)
	return result, nil
}

// load reads the configured input and determines its format
func (cfg *rekeyConfig) load() ([]byte, Format, error) {
	var (
		data   []byte
		format Format
		err    error
	)
	switch {
	case cfg.filePath != nil:
		data, err = os.ReadFile(*cfg.filePath)
		if err != nil {
			return nil, FormatAuto, fmt.Errorf("rekey: failed to read file: %w", err)
		}
		format = detectFormatFromPath(*cfg.filePath)
	case cfg.reader != nil:
		data, err = io.ReadAll(cfg.reader)
		if err != nil {
			return nil, FormatAuto, fmt.Errorf("rekey: failed to read input: %w", err)
		}
	default:
		data = cfg.content
	}
	if format == FormatAuto {
		format = detectFormatFromContent(data)
	}
	return data, format, nil
}

// decodeDocuments decodes every document in data
func decodeDocuments(data []byte) ([]*yaml.Node, error) {
	var docs []*yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rekey: failed to parse document: %w", err)
		}
		docs = append(docs, &doc)
	}
	if len(docs) == 0 {
		return nil, &caseerrors.ArgumentError{Name: "content", Message: "document is empty"}
	}
	return docs, nil
}

// walker renames mapping keys in place while counting what it did.
type walker struct {
	cfg    *rekeyConfig
	result *Result
	log    batch.Logger
}

func (w *walker) walk(node *yaml.Node, path string, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := w.walk(child, path, depth); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			if err := w.walk(child, path+"["+strconv.Itoa(i)+"]", depth); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		if depth >= w.cfg.maxDepth {
			w.result.DepthLimited++
			w.log.Warn("mapping exceeds max depth, keys left unchanged", "path", path, "max_depth", w.cfg.maxDepth)
			return nil
		}
		return w.walkMapping(node, path, depth+1)
	}
	// Scalars have no keys and aliases point at nodes walked where they are anchored.
	return nil
}

func (w *walker) walkMapping(node *yaml.Node, path string, depth int) error {
	pairs := len(node.Content) / 2
	originals := make([]string, pairs)
	names := make([]string, pairs)
	// claimed maps a key name in the output to the original key that holds it
	claimed := make(map[string]string, pairs)

	// Keys that keep their spelling claim their names first so a renamed key
	// can never shadow them.
	for p := range pairs {
		key := node.Content[2*p]
		if !isRenamable(key) {
			continue
		}
		originals[p] = key.Value
		names[p] = w.targetName(key.Value)
		if names[p] == key.Value {
			claimed[key.Value] = key.Value
		}
	}

	for p := range pairs {
		key, original, name := node.Content[2*p], originals[p], names[p]
		if name != original {
			if existing, taken := claimed[name]; taken {
				collision := caseerrors.CollisionError{Path: path, Key: original, Existing: existing, Converted: name}
				if w.cfg.strict {
					return &collision
				}
				w.result.Collisions = append(w.result.Collisions, collision)
				w.log.Warn("key collision, keeping original name",
					"path", path, "key", original, "existing", existing, "converted", name)
				name = original
			} else {
				key.Value = name
				w.result.KeysRenamed++
			}
			claimed[name] = original
		}

		childPath := path
		if original != "" {
			childPath = path + "." + original
		}
		if err := w.walk(node.Content[2*p+1], childPath, depth); err != nil {
			return err
		}
	}
	return nil
}

// isRenamable reports whether a mapping key is a plain string key.
func isRenamable(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.ShortTag() == "!!str" && key.Value != mergeKey
}

// targetName returns the name key converts to. Skipped keys and keys that
// convert to nothing keep their name.
func (w *walker) targetName(key string) string {
	if _, skip := w.cfg.skipKeys[key]; skip {
		return key
	}
	w.result.KeysVisited++
	if converted := casing.Convert(key, w.cfg.style); converted != "" {
		return converted
	}
	return key
}

// clearFlowStyle drops the flow and quoting styles JSON input carries so
// the YAML encoder writes block style.
func clearFlowStyle(node *yaml.Node) {
	if node == nil {
		return
	}
	node.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, child := range node.Content {
		clearFlowStyle(child)
	}
}

func marshalYAML(docs []*yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	for i, doc := range docs {
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteString("---\n")
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}
