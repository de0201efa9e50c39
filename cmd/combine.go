package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosmd/internal/diagram"
	"github.com/alexiusacademia/gosmd/internal/nscp"
	"github.com/alexiusacademia/gosmd/internal/poly"
	"github.com/spf13/cobra"
)

var (
	// Unfactored load case files
	caseDead       string
	caseLive       string
	caseRoof       string
	caseWind       string
	caseEarthquake string
	caseRain       string

	// Options
	combineCapacity int
	showAll         bool
	useSimplified   bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Solve factored load cases using NSCP load combinations",
	Long: `Solve a cantilever under every NSCP 2015 load combination.

Each load type is given as its own beam file holding the unfactored
loads of that type. All files must describe the same beam length.
The loads are factored per combination, merged and solved, and the
combination giving the largest |M| and |V| is reported. Alternates
such as "(Lr or R)" are listed as separate combinations (2a, 2b, ...).
The wall moment is also shown by superposition of the per-case wall
moments (Σ γ·M); for constant loads it equals the solved one.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  gosmd combine --dead dead.txt --live live.txt

  # With wind load
  gosmd combine --dead dead.txt --live live.txt --wind wind.json

  # Show all combinations
  gosmd combine --dead dead.txt --live live.txt --all`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	// Load case flags
	combineCmd.Flags().StringVarP(&caseDead, "dead", "D", "", "Beam file with dead loads")
	combineCmd.Flags().StringVarP(&caseLive, "live", "l", "", "Beam file with live loads")
	combineCmd.Flags().StringVarP(&caseRoof, "roof", "r", "", "Beam file with roof live loads")
	combineCmd.Flags().StringVarP(&caseWind, "wind", "w", "", "Beam file with wind loads")
	combineCmd.Flags().StringVarP(&caseEarthquake, "earthquake", "e", "", "Beam file with earthquake loads")
	combineCmd.Flags().StringVarP(&caseRain, "rain", "R", "", "Beam file with rain loads")

	// Options
	combineCmd.Flags().IntVarP(&combineCapacity, "capacity", "c", 0, "Maximum number of sections (default from config)")
	combineCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	combineCmd.Flags().BoolVarP(&useSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runCombine(cmd *cobra.Command, args []string) error {
	var (
		cases  nscp.LoadCases
		length float64
		first  string
	)

	files := []struct {
		label string
		path  string
		dst   *nscp.LoadCase
	}{
		{"Dead Load (D)", caseDead, &cases.Dead},
		{"Live Load (L)", caseLive, &cases.Live},
		{"Roof Live Load (Lr)", caseRoof, &cases.Roof},
		{"Wind Load (W)", caseWind, &cases.Wind},
		{"Earthquake Load (E)", caseEarthquake, &cases.Earthquake},
		{"Rain Load (R)", caseRain, &cases.Rain},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		in, err := loadFile(f.path)
		if err != nil {
			return err
		}
		if first == "" {
			length, first = in.Length, f.path
		} else if !poly.NearlyEqual(in.Length, length) {
			return fmt.Errorf("%s: beam length %g differs from %g in %s", f.path, in.Length, length, first)
		}
		*f.dst = nscp.LoadCase{Points: in.PointLoads, Distributed: in.DistributedLoads}
	}

	if first == "" || cases.Empty() {
		return fmt.Errorf("provide at least one load case file with loads; see 'gosmd combine --help'")
	}

	capacity := cfg.Capacity
	if combineCapacity > 0 {
		capacity = combineCapacity
	}

	// Select which combinations to use
	combinations := nscp.LoadCombinations
	if useSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	moments, err := nscp.WallMoments(length, capacity, cases)
	if err != nil {
		return err
	}
	results, err := nscp.SolveAll(context.Background(), length, capacity, cases, combinations)
	if err != nil {
		return err
	}
	logger.Printf("solved %d combinations", len(results))

	p := cfg.Precision

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 FACTORED SHEAR AND MOMENT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Print unfactored wall moments per case
	fmt.Println("UNFACTORED WALL MOMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam length:\t%.*f\n", p, length)
	for i, v := range []float64{moments.Dead, moments.Live, moments.Roof, moments.Wind, moments.Earthquake, moments.Rain} {
		if files[i].path != "" {
			fmt.Fprintf(w, "  %s:\t%.*f\t%s\n", files[i].label, p, v, files[i].path)
		}
	}
	w.Flush()
	fmt.Println()

	gm, gv := nscp.Governing(results)

	if showAll {
		// Show all combinations
		fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tWall M\tΣ γ·M\tMax |V|\tMax |M|\n")
		fmt.Fprintf(w, "  ─\t───────────\t──────\t─────\t───────\t───────\n")

		for i, r := range results {
			marker := ""
			if i == gm {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.*f\t%.*f\t%.*f\t%.*f%s\n", r.Combination.ID, r.Combination.Description,
				p, r.Beam.WallReactionMoment, p, r.Combination.CalculateFactoredMoment(moments),
				p, r.Extremes.Shear, p, r.Extremes.Moment, marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	m, v := results[gm], results[gv]
	wallMu, wallCombo := nscp.CalculateGoverningMoment(moments, combinations)
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("GOVERNING COMBINATIONS", []string{
		fmt.Sprintf("Moment: %s (%s)", m.Combination.ID, m.Combination.Description),
		fmt.Sprintf("  Mu = %.*f at x = %.*f", p, m.Extremes.Moment, p, m.Extremes.MomentAt),
		fmt.Sprintf("Shear:  %s (%s)", v.Combination.ID, v.Combination.Description),
		fmt.Sprintf("  Vu = %.*f at x = %.*f", p, v.Extremes.Shear, p, v.Extremes.ShearAt),
		fmt.Sprintf("Wall:   %s (%s)", wallCombo.ID, wallCombo.Description),
		fmt.Sprintf("  Σ γ·M = %.*f", p, wallMu),
	}))
	fmt.Println()
	return nil
}
