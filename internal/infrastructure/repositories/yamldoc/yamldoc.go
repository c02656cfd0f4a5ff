// Package yamldoc reads YAML files through the yaml.v3 node tree and edits them
// by splicing new scalars into the original bytes, so comments, blank lines,
// indentation and unrelated keys survive a rewrite untouched.
package yamldoc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	defaultFileMode = 0o644
	documentStart   = "---"
	nullTag         = "!!null"
	stringTag       = "!!str"
)

var (
	// ErrNotMapping is returned when a document or entry is not a YAML mapping.
	ErrNotMapping = errors.New("not a YAML mapping")
	// ErrUnsupportedScalar is returned for values that cannot be rewritten in place
	// (block scalars, multi-line or tagged scalars, nested collections).
	ErrUnsupportedScalar = errors.New("value cannot be rewritten in place")
)

// Document is a parsed YAML file plus the pending byte edits.
type Document struct {
	Path string
	Root *yaml.Node

	data       []byte
	lineStarts []int
	mode       os.FileMode
	edits      []edit
}

// edit replaces data[start:end] with text; start == end is an insertion.
type edit struct {
	start int
	end   int
	text  string
}

// Load parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mode := os.FileMode(defaultFileMode)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	var root yaml.Node
	if unmarshalErr := yaml.Unmarshal(data, &root); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, unmarshalErr)
	}

	return &Document{
		Path:       path,
		Root:       &root,
		data:       data,
		lineStarts: indexLines(data),
		mode:       mode,
	}, nil
}

// Content returns the top-level node of the document, or nil for an empty file.
func (d *Document) Content() *yaml.Node {
	if d.Root == nil || len(d.Root.Content) == 0 {
		return nil
	}
	return d.Root.Content[0]
}

// Mapping returns the top-level mapping of the document.
func (d *Document) Mapping() (*yaml.Node, error) {
	content := d.Content()
	if content == nil || content.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%q: %w", d.Path, ErrNotMapping)
	}
	return content, nil
}

// HasDocumentStart reports whether a "---" marker precedes the first content line.
// Comments and blank lines before it are allowed.
func (d *Document) HasDocumentStart() bool {
	for _, line := range strings.Split(string(d.data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed == documentStart || strings.HasPrefix(trimmed, documentStart+" ")
	}
	return false
}

// EnsureDocumentStart prepends a "---" line when the document has none.
func (d *Document) EnsureDocumentStart() {
	if d.HasDocumentStart() {
		return
	}
	d.addEdit(edit{start: 0, end: 0, text: documentStart + "\n"})
}

// Encode returns the original bytes with every pending edit applied.
func (d *Document) Encode() []byte {
	edits := make([]edit, len(d.edits))
	copy(edits, d.edits)
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start > edits[j].start })

	out := append([]byte(nil), d.data...)
	for _, e := range edits {
		out = append(out[:e.start], append([]byte(e.text), out[e.end:]...)...)
	}
	return out
}

// Save writes the edited document back to its path, keeping the file mode.
func (d *Document) Save() error {
	return os.WriteFile(d.Path, d.Encode(), d.mode)
}

// Keys returns the keys of a mapping node in document order.
func Keys(mapping *yaml.Node) []string {
	keys := make([]string, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	return keys
}

// Lookup returns the value node of key, or nil.
func Lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// String returns the scalar value of key; null or missing scalars read as "".
// The boolean reports whether the key exists.
func String(mapping *yaml.Node, key string) (string, bool) {
	node := Lookup(mapping, key)
	if node == nil {
		return "", false
	}
	if node.Kind != yaml.ScalarNode || node.ShortTag() == nullTag {
		return "", true
	}
	return node.Value, true
}

// SetString stores value under key of mapping as a string scalar. The original
// quoting style is kept when it still reads back as the same string. A non-empty
// comment replaces the rest of the line; otherwise an existing comment is kept.
// Missing keys are appended after the last line of the mapping.
func (d *Document) SetString(mapping *yaml.Node, key, value, comment string) error {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return ErrNotMapping
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		if keyNode.Value != key {
			continue
		}
		valueNode := mapping.Content[i+1]
		if err := d.replaceScalar(keyNode, valueNode, value, comment); err != nil {
			return fmt.Errorf("%q: %w", key, err)
		}
		valueNode.Tag = stringTag
		valueNode.Value = value
		return nil
	}

	if err := d.appendPair(mapping, key, value, comment); err != nil {
		return fmt.Errorf("%q: %w", key, err)
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: stringTag, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: stringTag, Value: value},
	)
	return nil
}

func (d *Document) replaceScalar(keyNode, valueNode *yaml.Node, value, comment string) error {
	if valueNode.Kind != yaml.ScalarNode || valueNode.Line == 0 ||
		valueNode.Style&(yaml.LiteralStyle|yaml.FoldedStyle|yaml.TaggedStyle) != 0 {
		return ErrUnsupportedScalar
	}

	rendered, err := renderScalar(value, valueNode.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle))
	if err != nil {
		return err
	}

	var start, end int
	if valueNode.ShortTag() == nullTag && valueNode.Value == "" {
		// "key:" with nothing after the colon
		keyStart, offsetErr := d.offset(keyNode.Line, keyNode.Column)
		if offsetErr != nil {
			return offsetErr
		}
		colon := bytes.IndexByte(d.data[keyStart:d.lineEnd(keyStart)], ':')
		if colon < 0 {
			return ErrUnsupportedScalar
		}
		start = keyStart + colon + 1
		end = start
		rendered = " " + rendered
	} else {
		start, end, err = d.scalarSpan(valueNode)
		if err != nil {
			return err
		}
	}

	if comment != "" {
		end = d.lineEnd(start)
		rendered += " " + formatComment(comment)
	}
	d.addEdit(edit{start: start, end: end, text: rendered})
	return nil
}

// scalarSpan returns the byte range of a single-line scalar as written in the file.
func (d *Document) scalarSpan(node *yaml.Node) (int, int, error) {
	start, err := d.offset(node.Line, node.Column)
	if err != nil {
		return 0, 0, err
	}
	lineEnd := d.lineEnd(start)

	end := -1
	switch {
	case node.Style&yaml.DoubleQuotedStyle != 0:
		for i := start + 1; i < lineEnd; i++ {
			if d.data[i] == '\\' {
				i++
				continue
			}
			if d.data[i] == '"' {
				end = i + 1
				break
			}
		}
	case node.Style&yaml.SingleQuotedStyle != 0:
		for i := start + 1; i < lineEnd; i++ {
			if d.data[i] != '\'' {
				continue
			}
			if i+1 < lineEnd && d.data[i+1] == '\'' {
				i++
				continue
			}
			end = i + 1
			break
		}
	default:
		if candidate := start + len(node.Value); candidate <= lineEnd &&
			string(d.data[start:candidate]) == node.Value {
			end = candidate
		}
	}

	if end < 0 {
		return 0, 0, ErrUnsupportedScalar
	}
	return start, end, nil
}

func (d *Document) appendPair(mapping *yaml.Node, key, value, comment string) error {
	last := lastLine(mapping)
	if last == 0 || mapping.Style&yaml.FlowStyle != 0 {
		return ErrUnsupportedScalar
	}

	renderedKey, err := renderScalar(key, 0)
	if err != nil {
		return err
	}
	renderedValue, err := renderScalar(value, 0)
	if err != nil {
		return err
	}

	indent := 0
	if len(mapping.Content) > 0 {
		indent = mapping.Content[0].Column - 1
	}
	line := strings.Repeat(" ", indent) + renderedKey + ": " + renderedValue
	if comment != "" {
		line += " " + formatComment(comment)
	}

	pos := len(d.data)
	if last < len(d.lineStarts) {
		pos = d.lineStarts[last]
	}
	text := line + "\n"
	if pos == len(d.data) && len(d.data) > 0 && d.data[len(d.data)-1] != '\n' {
		text = "\n" + text
	}
	d.addEdit(edit{start: pos, end: pos, text: text})
	return nil
}

// addEdit records e, replacing an earlier edit of the same range.
func (d *Document) addEdit(e edit) {
	for i := range d.edits {
		if d.edits[i].start == e.start && d.edits[i].end == e.end && e.start != e.end {
			d.edits[i] = e
			return
		}
	}
	d.edits = append(d.edits, e)
}

// offset converts a 1-based line and rune column into a byte offset.
func (d *Document) offset(line, column int) (int, error) {
	if line < 1 || line > len(d.lineStarts) || column < 1 {
		return 0, fmt.Errorf("position %d:%d out of range", line, column)
	}
	pos := d.lineStarts[line-1]
	for i := 1; i < column; i++ {
		if pos >= len(d.data) || d.data[pos] == '\n' {
			return 0, fmt.Errorf("position %d:%d out of range", line, column)
		}
		_, size := utf8.DecodeRune(d.data[pos:])
		pos += size
	}
	return pos, nil
}

// lineEnd returns the offset of the line terminator after pos, excluding any "\r".
func (d *Document) lineEnd(pos int) int {
	end := len(d.data)
	if idx := bytes.IndexByte(d.data[pos:], '\n'); idx >= 0 {
		end = pos + idx
	}
	if end > pos && d.data[end-1] == '\r' {
		end--
	}
	return end
}

func indexLines(data []byte) []int {
	starts := []int{0}
	for i, b := range data {
		if b == '\n' && i+1 < len(data) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func lastLine(node *yaml.Node) int {
	last := node.Line
	for _, child := range node.Content {
		if line := lastLine(child); line > last {
			last = line
		}
	}
	return last
}

// renderScalar formats value as a single-line YAML string scalar. yaml.v3 adds
// quotes whenever the plain form would resolve to another type.
func renderScalar(value string, style yaml.Style) (string, error) {
	out, err := yaml.Marshal(&yaml.Node{Kind: yaml.ScalarNode, Tag: stringTag, Value: value, Style: style})
	if err != nil {
		return "", err
	}
	rendered := strings.TrimSuffix(string(out), "\n")
	if strings.Contains(rendered, "\n") {
		return "", ErrUnsupportedScalar
	}
	return rendered, nil
}

func formatComment(comment string) string {
	if strings.HasPrefix(comment, "#") {
		return comment
	}
	return "# " + comment
}
