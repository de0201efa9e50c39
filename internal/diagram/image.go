package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	shearColor  = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	momentColor = color.RGBA{R: 237, G: 149, B: 100, A: 150}
	edgeColor   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
)

// ImageFormats lists the extensions ExportDiagram understands
var ImageFormats = []string{".png", ".svg", ".pdf"}

// ExportDiagram draws one diagram as a filled outline over the beam axis.
// samples is the number of stations per section.
func ExportDiagram(title, unit string, sections []beam.Section, length float64, samples int, fill color.Color, filename string) error {
	if len(sections) == 0 {
		return fmt.Errorf("%s: nothing to plot", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = unit

	stations := beam.Stations(sections, samples)

	// close the outline on the axis so jumps at both ends are drawn
	outline := make(plotter.XYs, 0, len(stations)+2)
	outline = append(outline, plotter.XY{X: stations[0].X, Y: 0})
	for _, s := range stations {
		outline = append(outline, plotter.XY{X: s.X, Y: s.Y})
	}
	outline = append(outline, plotter.XY{X: stations[len(stations)-1].X, Y: 0})

	area, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	area.Color = fill
	area.LineStyle.Color = edgeColor
	area.LineStyle.Width = vg.Points(1.5)
	p.Add(area)

	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: length, Y: 0}})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(2)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	// section boundaries
	bounds := make(plotter.XYs, 0, len(sections))
	for _, s := range sections {
		bounds = append(bounds, plotter.XY{X: s.Start, Y: s.Polynomial.Eval(s.Start)})
	}
	marks, err := plotter.NewScatter(bounds)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = edgeColor
	marks.GlyphStyle.Radius = vg.Points(3)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	first, last := stations[0], stations[len(stations)-1]
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: first.X, Y: first.Y}, {X: last.X, Y: last.Y}},
		Labels: []string{fmt.Sprintf("%.3g", first.Y), fmt.Sprintf("%.3g", last.Y)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)
	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportBeamDiagrams writes the shear and moment diagrams of b next to
// filename as <name>_shear<ext> and <name>_moment<ext>. It returns the
// files written.
func ExportBeamDiagrams(b *beam.Beam, samples int, filename string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !isImageFormat(ext) {
		ext = ".png"
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	files := []string{base + "_shear" + ext, base + "_moment" + ext}
	if err := ExportDiagram("Shear Diagram", "V", b.Shear, b.Length, samples, shearColor, files[0]); err != nil {
		return nil, err
	}
	if err := ExportDiagram("Moment Diagram", "M", b.Moment, b.Length, samples, momentColor, files[1]); err != nil {
		return nil, err
	}
	return files, nil
}

func isImageFormat(ext string) bool {
	for _, f := range ImageFormats {
		if f == ext {
			return true
		}
	}
	return false
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if !isImageFormat(strings.ToLower(filepath.Ext(filename))) {
		filename += ".png"
	}
	return p.Save(width, height, filename)
}
