package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/beamio"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

func testInput() *beamio.Input {
	return &beamio.Input{
		Name:   "example",
		Length: 1,
		PointLoads: []beam.PointLoad{
			{Distance: 0.5, Force: 2},
			{Distance: 1, Force: 1},
		},
		DistributedLoads: []beam.DistributedLoad{
			beam.Uniform(0, 0.5, 1),
			beam.LinearLoad(0.25, 0, 0.75, 2),
		},
	}
}

func testBeam(tst *testing.T) (*beamio.Input, *beam.Beam) {
	in := testInput()
	b, err := in.Solve()
	if err != nil {
		tst.Fatalf("Solve failed:\n%v", err)
	}
	return in, b
}

func Test_ascii01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ascii01. terminal plots and tables")

	_, b := testBeam(tst)
	out := DrawASCIIBeam(b, PlotOptions{Width: 40, Height: 8, Precision: 2})
	io.Pforan("%s", out)
	if !strings.Contains(out, "SHEAR V(x)") || !strings.Contains(out, "MOMENT M(x)") {
		tst.Errorf("captions missing:\n%s", out)
	}
	chk.String(tst, DrawASCIIDiagram("empty", nil, 1, PlotOptions{}), "")

	var buf bytes.Buffer
	if err := WriteSectionTable(&buf, "SHEAR", b.Shear, 3); err != nil {
		tst.Errorf("WriteSectionTable failed:\n%v", err)
		return
	}
	io.Pforan("%s", buf.String())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	chk.Int(tst, "table lines", len(lines), 4+b.SectionCount())
}

func Test_ascii02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ascii02. summary box")

	body := []string{"V = 3", "M = 2·x²"}
	box := DrawSummaryBox("RESULT", body)
	io.Pforan("%s", box)

	// top border, title, separator, body, bottom border
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	chk.Int(tst, "lines", len(lines), 4+len(body))
	for _, l := range lines[1:] {
		chk.Int(tst, "aligned", width(l), width(lines[0]))
	}
}

func Test_image01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("image01. shear and moment images")

	_, b := testBeam(tst)
	dir := tst.TempDir()
	for _, ext := range []string{".png", ".svg"} {
		files, err := ExportBeamDiagrams(b, 8, filepath.Join(dir, "out", "beam"+ext))
		if err != nil {
			tst.Errorf("ExportBeamDiagrams failed:\n%v", err)
			return
		}
		chk.Int(tst, "files", len(files), 2)
		chk.String(tst, filepath.Base(files[1]), "beam_moment"+ext)
		for _, f := range files {
			if st, err := os.Stat(f); err != nil || st.Size() == 0 {
				tst.Errorf("%s not written: %v", f, err)
			}
		}
	}

	files, err := ExportBeamDiagrams(b, 8, filepath.Join(dir, "plain"))
	if err != nil {
		tst.Errorf("ExportBeamDiagrams failed:\n%v", err)
		return
	}
	chk.String(tst, filepath.Base(files[0]), "plain_shear.png")
}

func Test_workbook01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("workbook01. results workbook")

	in, b := testBeam(tst)
	path := filepath.Join(tst.TempDir(), "results.xlsx")
	if err := ExportWorkbook(path, in, b, 4); err != nil {
		tst.Errorf("ExportWorkbook failed:\n%v", err)
		return
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		tst.Errorf("OpenFile failed:\n%v", err)
		return
	}
	defer f.Close()

	sheets := f.GetSheetList()
	chk.Strings(tst, "sheets", sheets, []string{SummarySheet, RawSheet, ShearSheet, MomentSheet, StationsSheet, beamio.LoadsSheet})

	rows, err := f.GetRows(ShearSheet)
	if err != nil {
		tst.Errorf("GetRows failed:\n%v", err)
		return
	}
	chk.Int(tst, "shear rows", len(rows), 1+b.SectionCount())

	rows, err = f.GetRows(StationsSheet)
	if err != nil {
		tst.Errorf("GetRows failed:\n%v", err)
		return
	}
	chk.Int(tst, "station rows", len(rows), 1+len(beam.Stations(b.Shear, 4)))

	// the loads sheet reads back as input
	back, err := beamio.LoadFromFile(path)
	if err != nil {
		tst.Errorf("LoadFromFile failed:\n%v", err)
		return
	}
	chk.Int(tst, "points", len(back.PointLoads), len(in.PointLoads))
	chk.Int(tst, "distributed", len(back.DistributedLoads), len(in.DistributedLoads))
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. pdf report")

	in, b := testBeam(tst)
	path := filepath.Join(tst.TempDir(), "report.pdf")
	err := ExportReport(path, in, b, ReportOptions{Author: "tester", Samples: 8, Precision: 3, Diagrams: true})
	if err != nil {
		tst.Errorf("ExportReport failed:\n%v", err)
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		tst.Errorf("ReadFile failed:\n%v", err)
		return
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		tst.Errorf("not a pdf")
	}
}
