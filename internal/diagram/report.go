package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/beamio"
	"github.com/phpdave11/gofpdf"
)

// ReportOptions describes the PDF calculation report
type ReportOptions struct {
	Title     string
	Author    string
	Samples   int  // stations per section of the embedded plots
	Precision int  // decimals in tables
	Diagrams  bool // embed shear and moment plots
}

// ExportReport writes a PDF calculation report of a solved beam
func ExportReport(path string, in *beamio.Input, b *beam.Beam, opts ReportOptions) error {
	if opts.Title == "" {
		opts.Title = "Cantilever Shear and Moment"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(opts.Title, true)
	pdf.SetAuthor(opts.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in != nil && in.Name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Beam: %s", in.Name))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", opts.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	e := b.Extremes()
	heading(pdf, "Results")
	p := opts.Precision
	keyValues(pdf, [][2]string{
		{"Length", fmt.Sprintf("%.*f", p, b.Length)},
		{"Sections", fmt.Sprintf("%d", b.SectionCount())},
		{"Wall reaction force", fmt.Sprintf("%.*f", p, b.WallReactionForce)},
		{"Wall reaction moment", fmt.Sprintf("%.*f", p, b.WallReactionMoment)},
		{"Max |V|", fmt.Sprintf("%.*f at x = %.*f", p, e.Shear, p, e.ShearAt)},
		{"Max |M|", fmt.Sprintf("%.*f at x = %.*f", p, e.Moment, p, e.MomentAt)},
	})

	if in != nil {
		heading(pdf, "Loads")
		var rows [][]string
		for _, l := range in.PointLoads {
			rows = append(rows, []string{"point", fmt.Sprintf("%g", l.Distance), "", fmt.Sprintf("%g", l.Force)})
		}
		for _, l := range in.DistributedLoads {
			rows = append(rows, []string{"distributed", fmt.Sprintf("%g", l.Start), fmt.Sprintf("%g", l.End), l.Polynomial.String()})
		}
		table(pdf, []string{"Kind", "Start", "End", "Load"}, []float64{30, 30, 30, 90}, rows)
	}

	for _, t := range []struct {
		title    string
		sections []beam.Section
	}{
		{"Shear sections", b.Shear},
		{"Moment sections", b.Moment},
	} {
		heading(pdf, t.title)
		table(pdf, []string{"#", "Start", "End", "Point force", "Polynomial"}, []float64{10, 25, 25, 30, 90}, sectionRows(t.sections, p))
	}

	if opts.Diagrams {
		if err := embedDiagrams(pdf, b, opts.Samples); err != nil {
			return err
		}
	}

	return pdf.OutputFileAndClose(path)
}

func embedDiagrams(pdf *gofpdf.Fpdf, b *beam.Beam, samples int) error {
	dir, err := os.MkdirTemp("", "gosmd-report")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	files, err := ExportBeamDiagrams(b, samples, filepath.Join(dir, "diagram.png"))
	if err != nil {
		return err
	}
	pdf.AddPage()
	heading(pdf, "Diagrams")
	for _, file := range files {
		pdf.ImageOptions(file, pdf.GetX(), pdf.GetY(), 180, 0, true, gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
		pdf.Ln(4)
	}
	return pdf.Error()
}

func sectionRows(sections []beam.Section, precision int) [][]string {
	rows := make([][]string, len(sections))
	for i, s := range sections {
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.*f", precision, s.Start),
			fmt.Sprintf("%.*f", precision, s.End),
			fmt.Sprintf("%.*f", precision, s.PointForce),
			s.Polynomial.String(),
		}
	}
	return rows
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func keyValues(pdf *gofpdf.Fpdf, kv [][2]string) {
	for _, pair := range kv {
		pdf.CellFormat(60, 6, pair[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, pair[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func table(pdf *gofpdf.Fpdf, header []string, widths []float64, rows [][]string) {
	// core fonts are cp1252, polynomials carry · and superscripts
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			align := "R"
			if i == len(row)-1 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}
