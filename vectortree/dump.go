package vectortree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/BarisAlbayrakIEEE/vectortree/vtree"
)

var (
	branchColor = color.New(color.FgCyan)
	leafColor   = color.New(color.FgGreen)
)

// Dump writes an indented structural diagram of p to w: one line per
// branch or leaf node, with its kind, occupancy, and (when T implements
// fmt.Stringer) the leaf's element values. Branch and leaf lines are
// colorized distinctly unless p's Config has Color false or
// github.com/fatih/color's global NoColor is set (by default, when standard
// output is not a terminal). w itself is not inspected.
func Dump[T any](w io.Writer, p *PSeq[T]) {
	if p.IsEmpty() {
		fmt.Fprintln(w, "(empty)")
		return
	}
	branch, leaf := branchColor, leafColor
	if !p.cfg.Color {
		branch, leaf = color.New(), color.New()
		branch.DisableColor()
		leaf.DisableColor()
	}
	vtree.Walk(p.tree, func(depth int, kind vtree.NodeKind, occupancy int, items []T) {
		indent := strings.Repeat("  ", depth)
		switch kind {
		case vtree.KindBranch:
			branch.Fprintf(w, "%sbranch[%d]\n", indent, occupancy)
		case vtree.KindLeaf:
			leaf.Fprintf(w, "%sleaf[%d]%s\n", indent, occupancy, formatItems(items))
		}
	})
}

// formatItems renders a leaf's elements if T implements fmt.Stringer, and
// is silent otherwise -- the dumper never assumes anything about T beyond
// what the engine itself requires.
func formatItems[T any](items []T) string {
	strs := make([]string, 0, len(items))
	for _, v := range items {
		s, ok := any(v).(fmt.Stringer)
		if !ok {
			return ""
		}
		strs = append(strs, s.String())
	}
	if len(strs) == 0 {
		return ""
	}
	return " " + strings.Join(strs, ",")
}
