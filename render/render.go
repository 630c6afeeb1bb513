// Package render draws grooved sticks and assembled layouts as two-line
// text diagrams. It is purely presentational: the groove semantics live in
// the notch and assembly packages.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/woodpuzzles/kumiki/assembly"
	"github.com/woodpuzzles/kumiki/notch"
)

const (
	topNotch    = "V"
	topFlat     = "‾"
	bottomNotch = "Λ"
	bottomFlat  = "_"
)

// A Renderer styles groove diagrams. Plain unstyled output comes from
// filling every field with lipgloss.NewStyle(); New returns the default
// color scheme.
type Renderer struct {
	Notch lipgloss.Style
	Flat  lipgloss.Style
	Label lipgloss.Style
}

// New returns a renderer with the default color scheme.
func New() *Renderer {
	return &Renderer{
		Notch: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Flat:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	}
}

// Stick draws the two-line groove diagram of an encoded pattern as seen
// under the given orientation: top row first, bottom row below it. The
// orientation is applied before drawing, so the diagram shows the stick as
// seated, not its canonical form.
func (r *Renderer) Stick(pattern int, o notch.Orientation) string {
	var top, bottom strings.Builder
	for i := 0; i < notch.RowLen; i++ {
		if notch.At(pattern, o, notch.RowLen+i) {
			top.WriteString(r.Notch.Render(topNotch))
		} else {
			top.WriteString(r.Flat.Render(topFlat))
		}
		if notch.At(pattern, o, i) {
			bottom.WriteString(r.Notch.Render(bottomNotch))
		} else {
			bottom.WriteString(r.Flat.Render(bottomFlat))
		}
	}
	return top.String() + "\n" + bottom.String()
}

// Assembly draws every layer of a decoded layout, topmost layer first so
// the output stacks the way the puzzle does.
func (r *Renderer) Assembly(inv assembly.Inventory, lay *assembly.Layout) string {
	var b strings.Builder
	layers := len(lay.Sticks) / assembly.PositionsPerLayer
	for l := layers - 1; l >= 0; l-- {
		b.WriteString(r.Label.Render(fmt.Sprintf("layer %d", l+1)))
		b.WriteByte('\n')
		for c := 0; c < assembly.PositionsPerLayer; c++ {
			p := l*assembly.PositionsPerLayer + c
			st := lay.Sticks[p]
			if st == nil {
				b.WriteString(fmt.Sprintf("  position %d: empty\n", p+1))
				continue
			}
			entry := inv[st.Entry]
			b.WriteString(fmt.Sprintf("  position %d: stick %d, %s, %d notches\n",
				p+1, entry.Pattern, st.Orientation, notch.Popcount(entry.Pattern)))
			for _, line := range strings.Split(r.Stick(entry.Pattern, st.Orientation), "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
	}
	return b.String()
}
