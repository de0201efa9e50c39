package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gosmd/internal/config"
	"github.com/cpmech/gosl/chk"
)

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. configured capacity fills files without one")

	saved, savedFile := cfg, solveFile
	defer func() { cfg, solveFile = saved, savedFile }()

	dir := tst.TempDir()
	cfg = config.Default()
	cfg.Capacity = 3

	solveFile = filepath.Join(dir, "beam.txt")
	if err := os.WriteFile(solveFile, []byte("#B\n1.0\n#PF\n0.5 1\n1 1\n"), 0644); err != nil {
		tst.Fatal(err)
	}
	in, err := solveInput(solveCmd)
	if err != nil {
		tst.Errorf("solveInput failed:\n%v", err)
		return
	}
	chk.Int(tst, "capacity from config", in.Capacity, 3)

	// sections start at 0, 0.5 and 1
	b, err := in.Solve()
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Int(tst, "sections", b.SectionCount(), 3)

	// a capacity in the file wins over the config
	if err := os.WriteFile(solveFile, []byte("#B\n1.0 8\n#PF\n0.5 1\n"), 0644); err != nil {
		tst.Fatal(err)
	}
	in, err = solveInput(solveCmd)
	if err != nil {
		tst.Errorf("solveInput failed:\n%v", err)
		return
	}
	chk.Int(tst, "capacity from file", in.Capacity, 8)
}
