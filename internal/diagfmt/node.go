package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"gqlgrammar/internal/ast"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/text"
)

// NodeOutput is the serialisable shape of a parsed node, shared by the JSON,
// msgpack and tree formats.
type NodeOutput struct {
	Kind     string       `json:"kind" msgpack:"kind"`
	Name     string       `json:"name,omitempty" msgpack:"name,omitempty"`
	Value    string       `json:"value,omitempty" msgpack:"value,omitempty"`
	Span     *source.Span `json:"span,omitempty" msgpack:"span,omitempty"`
	Children []NodeOutput `json:"children,omitempty" msgpack:"children,omitempty"`
}

// BuildNodeOutput converts a node returned by parser.Parse. Both text
// policies are accepted.
func BuildNodeOutput(node any) (NodeOutput, error) {
	switch n := node.(type) {
	case ast.Value[text.Borrowed]:
		return valueOutput(n), nil
	case ast.Value[text.Owned]:
		return valueOutput(n), nil
	case ast.Type[text.Borrowed]:
		return typeOutput(n), nil
	case ast.Type[text.Owned]:
		return typeOutput(n), nil
	case []ast.Argument[text.Borrowed]:
		return argumentsOutput(n), nil
	case []ast.Argument[text.Owned]:
		return argumentsOutput(n), nil
	case []ast.Directive[text.Borrowed]:
		return directivesOutput(n), nil
	case []ast.Directive[text.Owned]:
		return directivesOutput(n), nil
	case string:
		return NodeOutput{Kind: "String", Value: n}, nil
	default:
		return NodeOutput{}, fmt.Errorf("unsupported node type %T", node)
	}
}

func valueOutput[T text.Text[T]](v ast.Value[T]) NodeOutput {
	out := NodeOutput{Kind: v.Kind().String()}
	switch v.Kind() {
	case ast.ValueVariable:
		name, _ := v.Variable()
		out.Name = string(name)
	case ast.ValueEnum:
		name, _ := v.Enum()
		out.Name = string(name)
	case ast.ValueString:
		s, _ := v.Str()
		out.Value = string(s)
	case ast.ValueList:
		items, _ := v.List()
		for _, item := range items {
			out.Children = append(out.Children, valueOutput(item))
		}
	case ast.ValueObject:
		obj, _ := v.Object()
		for name, fv := range obj.All() {
			out.Children = append(out.Children, NodeOutput{
				Kind:     "Field",
				Name:     string(name),
				Children: []NodeOutput{valueOutput(fv)},
			})
		}
	case ast.ValueNull:
	default:
		out.Value = v.String()
	}
	return out
}

func typeOutput[T text.Text[T]](t ast.Type[T]) NodeOutput {
	out := NodeOutput{Kind: t.Kind().String() + "Type"}
	if name, ok := t.Name(); ok {
		out.Name = string(name)
	}
	if elem, ok := t.Elem(); ok {
		out.Children = []NodeOutput{typeOutput(elem)}
	}
	return out
}

func argumentsOutput[T text.Text[T]](args []ast.Argument[T]) NodeOutput {
	out := NodeOutput{Kind: "Arguments"}
	for _, a := range args {
		out.Children = append(out.Children, argumentOutput(a))
	}
	return out
}

func argumentOutput[T text.Text[T]](a ast.Argument[T]) NodeOutput {
	return NodeOutput{
		Kind:     "Argument",
		Name:     string(a.Name),
		Children: []NodeOutput{valueOutput(a.Value)},
	}
}

func directivesOutput[T text.Text[T]](ds []ast.Directive[T]) NodeOutput {
	out := NodeOutput{Kind: "Directives"}
	for _, d := range ds {
		span := d.Span
		dn := NodeOutput{Kind: "Directive", Name: string(d.Name), Span: &span}
		for _, a := range d.Arguments {
			dn.Children = append(dn.Children, argumentOutput(a))
		}
		out.Children = append(out.Children, dn)
	}
	return out
}

// label is the one-line description used by the tree formats.
func (n NodeOutput) label(fs *source.FileSet) string {
	var sb strings.Builder
	sb.WriteString(n.Kind)
	if n.Name != "" {
		sb.WriteByte(' ')
		sb.WriteString(n.Name)
	}
	switch n.Kind {
	case "String":
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(n.Value))
	default:
		if n.Value != "" {
			sb.WriteByte(' ')
			sb.WriteString(n.Value)
		}
	}
	if n.Span != nil {
		sb.WriteString(" @ ")
		sb.WriteString(formatSpan(*n.Span, fs))
	}
	return sb.String()
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return span.String()
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// FormatNodePretty prints node as an indented tree.
func FormatNodePretty(w io.Writer, node any, fs *source.FileSet) error {
	out, err := BuildNodeOutput(node)
	if err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString(out.label(fs))
	sb.WriteByte('\n')
	writeIndented(&sb, out.Children, "", fs)
	_, err = io.WriteString(w, sb.String())
	return err
}

func writeIndented(sb *strings.Builder, children []NodeOutput, prefix string, fs *source.FileSet) {
	for i, c := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(c.label(fs))
		sb.WriteByte('\n')
		writeIndented(sb, c.Children, prefix+next, fs)
	}
}

// FormatNodeTree prints node as a top-down ASCII tree.
func FormatNodeTree(w io.Writer, node any, fs *source.FileSet) error {
	out, err := BuildNodeOutput(node)
	if err != nil {
		return err
	}
	block := renderTree(buildTreeNode(out, fs))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// FormatNodeJSON writes node as indented JSON.
func FormatNodeJSON(w io.Writer, node any) error {
	out, err := BuildNodeOutput(node)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatNodeMsgpack writes node as a single msgpack document.
func FormatNodeMsgpack(w io.Writer, node any) error {
	out, err := BuildNodeOutput(node)
	if err != nil {
		return err
	}
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encode node: %w", err)
	}
	return nil
}

// DecodeNodeMsgpack reads a document written by FormatNodeMsgpack.
func DecodeNodeMsgpack(r io.Reader) (NodeOutput, error) {
	var out NodeOutput
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return NodeOutput{}, fmt.Errorf("decode node: %w", err)
	}
	return out, nil
}
