package diagram

import (
	"fmt"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/beamio"
	"github.com/alexiusacademia/gosmd/internal/poly"
	"github.com/xuri/excelize/v2"
)

// Result workbook sheets
const (
	SummarySheet  = "Summary"
	RawSheet      = "Raw"
	ShearSheet    = "Shear"
	MomentSheet   = "Moment"
	StationsSheet = "Stations"
)

// ExportWorkbook saves the input loads, the section tables and sampled
// stations of a solved beam to an .xlsx file. The Loads sheet can be read
// back as input.
func ExportWorkbook(path string, in *beamio.Input, b *beam.Beam, samples int) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, in, b); err != nil {
		return err
	}

	tables := []struct {
		sheet    string
		sections []beam.Section
	}{
		{RawSheet, b.Raw},
		{ShearSheet, b.Shear},
		{MomentSheet, b.Moment},
	}
	for _, t := range tables {
		if _, err := f.NewSheet(t.sheet); err != nil {
			return err
		}
		if err := writeSections(f, t.sheet, t.sections); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(StationsSheet); err != nil {
		return err
	}
	if err := writeStations(f, b, samples); err != nil {
		return err
	}

	if in != nil {
		if _, err := f.NewSheet(beamio.LoadsSheet); err != nil {
			return err
		}
		if err := beamio.FillLoadsSheet(f, beamio.LoadsSheet, in); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeSummary(f *excelize.File, in *beamio.Input, b *beam.Beam) error {
	e := b.Extremes()
	name := ""
	if in != nil {
		name = in.Name
	}
	rows := [][]interface{}{
		{"Beam", name},
		{"Length", b.Length},
		{"Sections", b.SectionCount()},
		{"Wall reaction force", b.WallReactionForce},
		{"Wall reaction moment", b.WallReactionMoment},
		{"Max |V|", e.Shear, "at", e.ShearAt},
		{"Max |M|", e.Moment, "at", e.MomentAt},
	}
	return setRows(f, SummarySheet, 1, rows)
}

func writeSections(f *excelize.File, sheet string, sections []beam.Section) error {
	header := []interface{}{"#", "start", "end", "point force"}
	for i := 0; i < poly.Terms; i++ {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	rows := [][]interface{}{header}
	for i, s := range sections {
		row := []interface{}{i, s.Start, s.End, s.PointForce}
		for _, c := range s.Polynomial {
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	return setRows(f, sheet, 1, rows)
}

func writeStations(f *excelize.File, b *beam.Beam, samples int) error {
	shear := beam.Stations(b.Shear, samples)
	moment := beam.Stations(b.Moment, samples)

	rows := [][]interface{}{{"x", "V", "M"}}
	for i := range shear {
		rows = append(rows, []interface{}{shear[i].X, shear[i].Y, moment[i].Y})
	}
	return setRows(f, StationsSheet, 1, rows)
}

func setRows(f *excelize.File, sheet string, first int, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, first+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
