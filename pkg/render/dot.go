package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mveltman/gridlock/pkg/grid"
)

// ToDOT converts a layout to Graphviz DOT format showing which items touch
// which. Items become box nodes labeled with their position and size; an
// undirected edge connects each pair of cell-adjacent items, and overlapping
// pairs get a red dashed edge so broken layouts stand out at a glance.
//
// The resulting DOT string can be rendered with [RenderDOTSVG] or [RenderDOTPNG].
func ToDOT(l grid.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, it := range l {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", it.ID, fmtNodeLabel(it, opts.ShowIDs))
	}

	buf.WriteString("\n")
	for i := range l {
		for j := i + 1; j < len(l); j++ {
			switch {
			case l[i].Overlaps(l[j]):
				fmt.Fprintf(&buf, "  %q -- %q [color=red, style=dashed];\n", l[i].ID, l[j].ID)
			case adjacent(l[i], l[j]):
				fmt.Fprintf(&buf, "  %q -- %q;\n", l[i].ID, l[j].ID)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtNodeLabel(it grid.Item, showID bool) string {
	pos := fmt.Sprintf("(%d,%d) %dx%d", it.X, it.Y, it.W, it.H)
	if !showID {
		return pos
	}
	return it.ID + "\n" + pos
}

// adjacent reports whether two non-overlapping items share an edge in cell
// space: their footprints touch but do not intersect.
func adjacent(a, b grid.Item) bool {
	touchX := a.X <= b.X+b.W && b.X <= a.X+a.W
	touchY := a.Y <= b.Y+b.H && b.Y <= a.Y+a.H
	return touchX && touchY
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using Graphviz.
func RenderDOTPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
