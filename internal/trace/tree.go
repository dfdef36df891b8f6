package trace

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/xcmtrace/internal/xcm"
	v2 "github.com/danmuck/xcmtrace/internal/xcm/v2"
	v3 "github.com/danmuck/xcmtrace/internal/xcm/v3"
	"gopkg.in/yaml.v3"
)

// Format selects how Write prints a message.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("trace: unknown format %q (supported: text, json, yaml)", raw)
}

// Document is the structured form of a trace.
type Document struct {
	Version      string `json:"version" yaml:"version"`
	Instructions []Node `json:"instructions" yaml:"instructions"`
}

// Node is one instruction. Operands holds the hex-encoded operand bytes of
// instructions that do not carry a nested sequence.
type Node struct {
	Tag      string `json:"tag" yaml:"tag"`
	Operands string `json:"operands,omitempty" yaml:"operands,omitempty"`
	Nested   []Node `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// Tree builds the structured form of m. Depth follows the decode depth
// limit the message was accepted under.
func Tree(m xcm.VersionedMessage) (Document, error) {
	doc := Document{Version: m.Version.String()}
	switch m.Version {
	case xcm.V2:
		doc.Instructions = nodes(m.V2, v2.Instruction.Tag, v2.Instruction.Children,
			func(i v2.Instruction) []byte { return i.Operands })
	case xcm.V3:
		doc.Instructions = nodes(m.V3, v3.Instruction.Tag, v3.Instruction.Children,
			func(i v3.Instruction) []byte { return i.Operands })
	default:
		return Document{}, fmt.Errorf("%w: %d", ErrUnknownVersion, m.Version)
	}
	return doc, nil
}

func nodes[S ~[]I, I any](seq S, tag func(I) string, children func(I) (S, bool), operands func(I) []byte) []Node {
	out := make([]Node, 0, len(seq))
	for _, inst := range seq {
		n := Node{Tag: tag(inst)}
		if nested, ok := children(inst); ok {
			n.Nested = nodes(nested, tag, children, operands)
		} else if raw := operands(inst); len(raw) > 0 {
			n.Operands = hex.EncodeToString(raw)
		}
		out = append(out, n)
	}
	return out
}

// Write prints m to w in the requested format, newline terminated.
func Write(w io.Writer, m xcm.VersionedMessage, format Format) error {
	switch format {
	case FormatText, "":
		line, err := Message(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, line)
		return err
	case FormatJSON:
		doc, err := Tree(m)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		doc, err := Tree(m)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("trace: unknown format %q", format)
}
