package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/beamio"
	"github.com/alexiusacademia/gosmd/internal/diagram"
	"github.com/alexiusacademia/gosmd/internal/version"
	"github.com/spf13/cobra"
)

var (
	solveFile     string
	solveLength   float64
	solveCapacity int
	solvePoints   []string
	solveDists    []string
	solveLinears  []string

	// Output options
	solveShowDiagram bool
	solveImageFile   string
	solveXLSXFile    string
	solveReportFile  string
	solveSaveFile    string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute shear and moment diagrams of a cantilever",
	Long: `Compute the wall reactions and the piecewise shear and moment
diagrams of a cantilever beam fixed at x = 0.

Loads are read from a file (-f) or given inline. Files ending in
.json or .xlsx are read as such; anything else uses the text format
shown by 'gosmd sample'. Use -f - to read text from stdin.

Inline load formats:
  --point  d:F              force F at distance d
  --dist   s:e:c0,c1,...    intensity c0 + c1·x + ... over [s, e]
  --linear x0:w0:x1:w1      intensity from w0 at x0 to w1 at x1

Positive forces act downward. x is measured from the wall.

Examples:
  gosmd solve -f beam.txt --diagram
  gosmd solve --length 4 --dist 0:4:3 --point 4:2
  gosmd solve -f beam.json -o out/beam.png --xlsx beam.xlsx --report beam.pdf`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Path to beam file (txt, json, xlsx or - for stdin)")
	solveCmd.Flags().Float64VarP(&solveLength, "length", "L", 0, "Beam length for inline loads")
	solveCmd.Flags().IntVarP(&solveCapacity, "capacity", "c", 0, "Maximum number of sections (default from config)")
	solveCmd.Flags().StringArrayVarP(&solvePoints, "point", "p", nil, "Point load d:F (repeatable)")
	solveCmd.Flags().StringArrayVarP(&solveDists, "dist", "d", nil, "Distributed load s:e:c0,c1,... (repeatable)")
	solveCmd.Flags().StringArrayVar(&solveLinears, "linear", nil, "Linear load x0:w0:x1:w1 (repeatable)")
	solveCmd.MarkFlagsMutuallyExclusive("file", "length")

	// Output options
	solveCmd.Flags().BoolVar(&solveShowDiagram, "diagram", false, "Show ASCII shear and moment plots")
	solveCmd.Flags().StringVarP(&solveImageFile, "output", "o", "", "Export diagrams to image files (png, svg, pdf)")
	solveCmd.Flags().StringVar(&solveXLSXFile, "xlsx", "", "Export results to an xlsx workbook")
	solveCmd.Flags().StringVar(&solveReportFile, "report", "", "Export a PDF calculation report")
	solveCmd.Flags().StringVar(&solveSaveFile, "save", "", "Save the loads in the text format")
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := solveInput(cmd)
	if err != nil {
		return err
	}
	logger.Printf("input: length=%g capacity=%d points=%d distributed=%d",
		in.Length, in.Capacity, len(in.PointLoads), len(in.DistributedLoads))

	b, err := in.Solve()
	if err != nil {
		return err
	}
	logger.Printf("solved: %d sections", b.SectionCount())

	printSolution(in, b)

	if solveShowDiagram {
		fmt.Print(diagram.DrawASCIIBeam(b, diagram.PlotOptions{Precision: uint(cfg.Precision)}))
		fmt.Println()
	}

	return exportSolution(in, b)
}

// solveInput reads the file or builds the input from inline flags. An
// explicit --capacity overrides the file, a file overrides the config.
func solveInput(cmd *cobra.Command) (*beamio.Input, error) {
	var (
		in  *beamio.Input
		err error
	)
	switch {
	case solveFile != "":
		in, err = beamio.LoadFromFile(solveFile)
		if err != nil {
			return nil, fmt.Errorf("loading beam: %w", err)
		}
		if in.Capacity == 0 {
			in.Capacity = cfg.Capacity
		}
	case cmd.Flags().Changed("length"):
		in, err = beamio.FromFlags(solveLength, cfg.Capacity, solvePoints, solveDists, solveLinears)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("provide a beam file with --file or a beam length with --length")
	}

	if cmd.Flags().Changed("capacity") {
		in.Capacity = solveCapacity
		if err := in.Validate(); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func printSolution(in *beamio.Input, b *beam.Beam) {
	p := cfg.Precision

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CANTILEVER SHEAR AND MOMENT DIAGRAMS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if in.Name != "" {
		fmt.Printf("  Beam: %s\n\n", in.Name)
	}

	fmt.Println("LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam length:\t%.*f\n", p, in.Length)
	for _, l := range in.PointLoads {
		fmt.Fprintf(w, "  Point load:\t%s\n", l)
	}
	for _, l := range in.DistributedLoads {
		fmt.Fprintf(w, "  Distributed load:\t%s\n", l)
	}
	w.Flush()
	fmt.Println()

	diagram.WriteSectionTable(os.Stdout, "SHEAR V(x)", b.Shear, p)
	fmt.Println()
	diagram.WriteSectionTable(os.Stdout, "MOMENT M(x)", b.Moment, p)
	fmt.Println()

	e := b.Extremes()
	fmt.Print(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("Sections:              %d", b.SectionCount()),
		fmt.Sprintf("Wall reaction force:   %.*f", p, b.WallReactionForce),
		fmt.Sprintf("Wall reaction moment:  %.*f", p, b.WallReactionMoment),
		fmt.Sprintf("Max |V|:               %.*f at x = %.*f", p, e.Shear, p, e.ShearAt),
		fmt.Sprintf("Max |M|:               %.*f at x = %.*f", p, e.Moment, p, e.MomentAt),
	}))
	fmt.Println()
}

func exportSolution(in *beamio.Input, b *beam.Beam) error {
	var written []string

	if solveImageFile != "" {
		files, err := diagram.ExportBeamDiagrams(b, cfg.Samples, solveImageFile)
		if err != nil {
			return fmt.Errorf("exporting diagrams: %w", err)
		}
		written = append(written, files...)
	}
	if solveXLSXFile != "" {
		if err := diagram.ExportWorkbook(solveXLSXFile, in, b, cfg.Samples); err != nil {
			return fmt.Errorf("exporting workbook: %w", err)
		}
		written = append(written, solveXLSXFile)
	}
	if solveReportFile != "" {
		opts := diagram.ReportOptions{
			Author:    version.Author,
			Samples:   cfg.Samples,
			Precision: cfg.Precision,
			Diagrams:  true,
		}
		if err := diagram.ExportReport(solveReportFile, in, b, opts); err != nil {
			return fmt.Errorf("exporting report: %w", err)
		}
		written = append(written, solveReportFile)
	}
	if solveSaveFile != "" {
		if err := saveText(solveSaveFile, in); err != nil {
			return fmt.Errorf("saving loads: %w", err)
		}
		written = append(written, solveSaveFile)
	}

	if len(written) > 0 {
		fmt.Printf("  Written: %s\n\n", strings.Join(written, ", "))
	}
	return nil
}

func saveText(path string, in *beamio.Input) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := beamio.Write(f, in); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
