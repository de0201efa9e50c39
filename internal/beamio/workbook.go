package beamio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/poly"
	"github.com/xuri/excelize/v2"
)

// LoadsSheet is the sheet holding the beam and its loads
const LoadsSheet = "Loads"

// Row kinds of the loads sheet
const (
	KindBeam        = "B" // B, length, capacity
	KindPoint       = "P" // P, distance, force
	KindDistributed = "D" // D, start, end, c0, c1, ...
)

var loadsHeader = []interface{}{"kind", "a", "b", "c0", "c1", "c2", "c3"}

// ReadWorkbook reads the loads sheet of an .xlsx file, falling back to
// the first sheet. The first row is a header. Blank rows are skipped.
func ReadWorkbook(path string) (*Input, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := LoadsSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	in := &Input{}
	seenBeam := false
	for i := 1; i < len(rows); i++ {
		row := trimRow(rows[i])
		if len(row) == 0 {
			continue
		}
		if err := parseLoadRow(row, in, &seenBeam); err != nil {
			return nil, fmt.Errorf("%s: sheet %s row %d: %w", path, sheet, i+1, err)
		}
	}
	if !seenBeam {
		return nil, fmt.Errorf("%s: sheet %s has no %s row", path, sheet, KindBeam)
	}
	return in, nil
}

func parseLoadRow(row []string, in *Input, seenBeam *bool) error {
	kind := strings.ToUpper(strings.TrimSpace(row[0]))
	vals := make([]float64, len(row)-1)
	for j, cell := range row[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("bad number %q", cell)
		}
		vals[j] = v
	}

	switch kind {
	case KindBeam:
		if len(vals) < 1 {
			return fmt.Errorf("beam row needs a length")
		}
		in.Length = vals[0]
		if len(vals) > 1 && vals[1] != 0 {
			in.Capacity = int(vals[1])
		}
		*seenBeam = true
	case KindPoint:
		if len(vals) < 2 {
			return fmt.Errorf("point row needs distance and force")
		}
		in.PointLoads = append(in.PointLoads, beam.PointLoad{Distance: vals[0], Force: vals[1]})
	case KindDistributed:
		if len(vals) < 2 {
			return fmt.Errorf("distributed row needs start and end")
		}
		in.DistributedLoads = append(in.DistributedLoads, beam.DistributedLoad{
			Start:      vals[0],
			End:        vals[1],
			Polynomial: poly.FromSlice(vals[2:]),
		})
	default:
		return fmt.Errorf("unknown row kind %q", row[0])
	}
	return nil
}

// FillLoadsSheet writes the input into sheet, replacing its contents
func FillLoadsSheet(f *excelize.File, sheet string, in *Input) error {
	if err := f.SetSheetRow(sheet, "A1", &loadsHeader); err != nil {
		return err
	}

	beamRow := []interface{}{KindBeam, in.Length}
	if in.Capacity != 0 {
		beamRow = append(beamRow, in.Capacity)
	}
	rows := [][]interface{}{beamRow}
	for _, p := range in.PointLoads {
		rows = append(rows, []interface{}{KindPoint, p.Distance, p.Force})
	}
	for _, d := range in.DistributedLoads {
		row := []interface{}{KindDistributed, d.Start, d.End}
		for _, c := range d.Polynomial {
			row = append(row, c)
		}
		rows = append(rows, row)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// WriteWorkbook saves the input as a single sheet workbook
func WriteWorkbook(path string, in *Input) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), LoadsSheet); err != nil {
		return err
	}
	if err := FillLoadsSheet(f, LoadsSheet, in); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func trimRow(row []string) []string {
	for len(row) > 0 && strings.TrimSpace(row[len(row)-1]) == "" {
		row = row[:len(row)-1]
	}
	return row
}
