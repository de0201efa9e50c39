package diagram

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/guptarohit/asciigraph"
)

// PlotOptions controls the terminal plots
type PlotOptions struct {
	Width     int  // columns of the plot area, 0 picks 60
	Height    int  // rows of the plot area, 0 picks 12
	Precision uint // decimals on the y axis
}

func (o PlotOptions) withDefaults() PlotOptions {
	if o.Width <= 0 {
		o.Width = 60
	}
	if o.Height <= 0 {
		o.Height = 12
	}
	return o
}

// DrawASCIIDiagram plots one diagram of a solved beam, sampled evenly
// along its length
func DrawASCIIDiagram(title string, sections []beam.Section, length float64, opts PlotOptions) string {
	opts = opts.withDefaults()
	if len(sections) == 0 {
		return ""
	}

	ys := beam.Sample(sections, length, opts.Width)
	caption := fmt.Sprintf("%s, x = 0 .. %g", title, length)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(ys,
		asciigraph.Height(opts.Height),
		asciigraph.Precision(opts.Precision),
		asciigraph.Offset(3),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")
	return sb.String()
}

// DrawASCIIBeam plots the shear and moment diagrams of b
func DrawASCIIBeam(b *beam.Beam, opts PlotOptions) string {
	return DrawASCIIDiagram("SHEAR V(x)", b.Shear, b.Length, opts) +
		DrawASCIIDiagram("MOMENT M(x)", b.Moment, b.Length, opts)
}

// WriteSectionTable prints sections with their polynomials
func WriteSectionTable(out io.Writer, title string, sections []beam.Section, precision int) error {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tStart\tEnd\tPoint force\tPolynomial\n")
	fmt.Fprintf(w, "  ─\t─────\t───\t───────────\t──────────\n")
	for i, s := range sections {
		fmt.Fprintf(w, "  %d\t%.*f\t%.*f\t%.*f\t%s\n",
			i, precision, s.Start, precision, s.End, precision, s.PointForce, s.Polynomial)
	}
	return w.Flush()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := width(title)
	for _, line := range lines {
		if width(line) > maxLen {
			maxLen = width(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// width counts runes so boxes stay aligned around ² and ·
func width(s string) int {
	return len([]rune(s))
}

func pad(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
