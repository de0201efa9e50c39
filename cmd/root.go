package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexiusacademia/gosmd/internal/config"
	"github.com/alexiusacademia/gosmd/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile string
	verbose bool

	cfg    = config.Default()
	logger = log.New(io.Discard, "gosmd: ", log.Ltime|log.Lmicroseconds)
)

var rootCmd = &cobra.Command{
	Use:   "gosmd",
	Short: "Cantilever Shear and Moment Diagram Tool",
	Long: `gosmd - Go Shear and Moment Diagrams

A CLI tool that computes the internal shear and bending moment
diagrams of a cantilever beam fixed at x = 0.

Loads may be:
  - Point loads at any distance from the wall
  - Distributed loads whose intensity is a polynomial in x
    (uniform, linear, parabolic, cubic), possibly overlapping

Results are exact piecewise polynomials per beam section, with the
wall reaction force and moment, and can be exported as images,
workbooks or PDF reports. Factored load combinations follow
NSCP 2015 Section 203.3.

Defaults may be set in a .env file or the environment:
  GOSMD_CAPACITY   maximum sections per beam
  GOSMD_SAMPLES    stations per section in plots and tables
  GOSMD_PRECISION  decimals in printed tables`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetOutput(os.Stderr)
		}

		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		logger.Printf("config: capacity=%d samples=%d precision=%d", cfg.Capacity, cfg.Samples, cfg.Precision)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosmd v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Shear and Moment Diagrams                            ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the shear and moment diagrams of cantilever beams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Point loads and overlapping polynomial distributed loads")
		fmt.Println("    • Wall reaction force and moment")
		fmt.Println("    • Piecewise shear and moment polynomials per section")
		fmt.Println("    • Terminal plots, PNG/SVG/PDF diagrams, xlsx and PDF reports")
		fmt.Println("    • Factored load cases using NSCP load combinations")
		fmt.Println()
		fmt.Println("  Use 'gosmd --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Read defaults from this env file instead of .env")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace solver steps to stderr")
}
