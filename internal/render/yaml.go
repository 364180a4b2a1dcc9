package render

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/flarebyte/toy-robot/internal/robot"
)

const yamlFormat = "yaml"

// yamlRenderer buffers the transcript and writes a single document on Close:
//
//	commands: [entries...]
//	final: {placed, position}
type yamlRenderer struct {
	w       io.Writer
	entries []Entry
	final   robot.State
}

func newYAMLRenderer(w io.Writer, _ Options) Renderer {
	return &yamlRenderer{w: w}
}

func (r *yamlRenderer) Render(o robot.Outcome) error {
	r.entries = append(r.entries, NewEntry(len(r.entries)+1, o))
	r.final = o.State
	return nil
}

func (r *yamlRenderer) Close() error {
	b, err := MarshalTranscript(r.entries, r.final)
	if err != nil {
		return err
	}
	_, err = r.w.Write(b)
	return err
}

// MarshalTranscript returns YAML bytes with a fixed key order.
func MarshalTranscript(entries []Entry, final robot.State) ([]byte, error) {
	cmds := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range entries {
		cmds.Content = append(cmds.Content, entryNode(e))
	}
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, scalarNode("commands"), cmds)
	top.Content = append(top.Content, scalarNode("final"), stateNode(final))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func entryNode(e Entry) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k string, v any) {
		n.Content = append(n.Content, scalarNode(k), scalarFrom(v))
	}
	add("line", e.Line)
	add("command", e.Command)
	add("status", e.Status)
	if e.Kind != "" {
		add("kind", e.Kind)
	}
	if e.Output != "" {
		add("output", e.Output)
	}
	add("placed", e.Placed)
	if e.Position != nil {
		n.Content = append(n.Content, scalarNode("position"), positionNode(*e.Position))
	}
	return n
}

func stateNode(s robot.State) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	p, ok := s.Pose()
	n.Content = append(n.Content, scalarNode("placed"), scalarFrom(ok))
	if ok {
		pos := Position{X: p.X, Y: p.Y, Facing: p.Facing.String()}
		n.Content = append(n.Content, scalarNode("position"), positionNode(pos))
	}
	return n
}

func positionNode(p Position) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	n.Content = append(n.Content,
		scalarNode("x"), scalarFrom(p.X),
		scalarNode("y"), scalarFrom(p.Y),
		scalarNode("facing"), scalarFrom(p.Facing),
	)
	return n
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarFrom(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

func init() { Register(yamlFormat, newYAMLRenderer) }
