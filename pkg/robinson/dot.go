package robinson

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the decomposition tree.
//
// Node representation:
//   - Levels: labeled "p = <pivot>", ellipse shape
//   - Copoints: labeled "<anchor>: <members>", rounded box shape
//   - Unseparable blocks: dashed red box
//
// If labels[i] exists, element i+1 is shown as labels[i], otherwise by its
// id. Pass nil to use ids. The labels slice is not modified.
func (tr *Trace) ToDOT(labels []string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Decomposition {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if tr != nil {
		tr.writeDOTNode(&buf, 0, labels)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func (tr *Trace) writeDOTNode(buf *bytes.Buffer, id int, labels []string) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	fmt.Fprintf(buf, "  %s [label=%q, shape=ellipse];\n", nodeID, "p = "+elementName(tr.Pivot, labels))

	for _, cp := range tr.Copoints {
		label := elementName(cp.Anchor, labels) + ": " + sequenceName(cp.Members, labels)
		fmt.Fprintf(buf, "  n%d [label=%q, shape=box, style=\"filled,rounded\"];\n", next, label)
		fmt.Fprintf(buf, "  %s -> n%d [style=dotted];\n", nodeID, next)
		next++
	}
	for _, block := range tr.Unseparable {
		fmt.Fprintf(buf, "  n%d [label=%q, shape=box, style=\"filled,dashed\", color=\"#c0392b\"];\n", next, sequenceName(block, labels))
		fmt.Fprintf(buf, "  %s -> n%d [style=dashed];\n", nodeID, next)
		next++
	}
	for _, c := range tr.Children {
		fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, next)
		next = c.writeDOTNode(buf, next, labels)
	}

	return next
}

func elementName(id int, labels []string) string {
	if id-1 >= 0 && id-1 < len(labels) {
		return labels[id-1]
	}
	return fmt.Sprintf("%d", id)
}

func sequenceName(ids []int, labels []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = elementName(id, labels)
	}
	return "[" + strings.Join(names, " ") + "]"
}

// RenderSVG renders the decomposition tree as an SVG document.
//
// RenderSVG generates DOT via ToDOT and renders it with Graphviz. Errors are
// returned if Graphviz cannot initialize, the DOT is malformed, or rendering
// fails; all are wrapped with context.
func (tr *Trace) RenderSVG(labels []string) ([]byte, error) {
	dot := tr.ToDOT(labels)

	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
