package document

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// SplitFrontMatter separates a leading YAML block fenced by "---" lines from
// the text that follows. Text without a fence, or whose fenced block is not
// a key/value mapping, yields nil metadata and the whole text as body.
func SplitFrontMatter(text string) (map[string]interface{}, string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimPrefix(text, "\ufeff")

	if !strings.HasPrefix(text, delimiter+"\n") {
		return nil, strings.TrimSpace(text), nil
	}

	rest := text[len(delimiter)+1:]
	var raw, body string
	switch {
	case strings.HasPrefix(rest, delimiter+"\n") || rest == delimiter:
		body = strings.TrimPrefix(rest, delimiter)
	default:
		end := strings.Index(rest, "\n"+delimiter+"\n")
		if end < 0 {
			if !strings.HasSuffix(rest, "\n"+delimiter) {
				// An opening fence alone is ordinary text
				return nil, strings.TrimSpace(text), nil
			}
			end = len(rest) - len(delimiter) - 1
		}
		raw = rest[:end]
		body = rest[min(end+len(delimiter)+2, len(rest)):]
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return nil, "", fmt.Errorf("failed to parse front matter: %w", err)
	}

	meta := map[string]interface{}{}
	if node.Kind == 0 {
		return meta, strings.TrimSpace(body), nil
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		// Markdown between two horizontal rules, not metadata
		return nil, strings.TrimSpace(text), nil
	}
	if err := node.Decode(&meta); err != nil {
		return nil, "", fmt.Errorf("failed to parse front matter: %w", err)
	}
	return meta, strings.TrimSpace(body), nil
}

// JoinFrontMatter renders meta as a fenced YAML block followed by body.
// Map keys are emitted in sorted order, so equal input gives equal output.
func JoinFrontMatter(meta map[string]interface{}, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}

	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}
