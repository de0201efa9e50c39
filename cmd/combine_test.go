package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosmd/internal/config"
	"github.com/cpmech/gosl/chk"
)

// captureStdout runs f with os.Stdout redirected and returns what it printed
func captureStdout(tst *testing.T, f func() error) string {
	r, w, err := os.Pipe()
	if err != nil {
		tst.Fatal(err)
	}
	stdout := os.Stdout
	os.Stdout = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	ferr := f()
	os.Stdout = stdout
	w.Close()
	out := <-done
	if ferr != nil {
		tst.Fatalf("command failed:\n%v", ferr)
	}
	return out
}

func Test_combine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combine01. solved and superposed wall moments")

	saved := cfg
	savedDead, savedLive, savedAll := caseDead, caseLive, showAll
	defer func() {
		cfg = saved
		caseDead, caseLive, showAll = savedDead, savedLive, savedAll
	}()
	cfg = config.Default()
	cfg.Precision = 2

	dir := tst.TempDir()
	caseDead = filepath.Join(dir, "dead.txt")
	caseLive = filepath.Join(dir, "live.txt")
	if err := os.WriteFile(caseDead, []byte("#B\n4\n#DF\n0 4 [3]\n"), 0644); err != nil {
		tst.Fatal(err)
	}
	if err := os.WriteFile(caseLive, []byte("#B\n4\n#PF\n4 2\n"), 0644); err != nil {
		tst.Fatal(err)
	}
	showAll = true

	out := captureStdout(tst, func() error { return runCombine(combineCmd, nil) })

	// 1.2D + 1.6L: wall moment 1.2(-24) + 1.6(-8) both ways
	var row string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "2a ") {
			row = line
		}
	}
	if strings.Count(row, "-41.60") != 2 {
		tst.Errorf("combination 2a should show -41.60 solved and superposed:\n%s", out)
	}
	if !strings.Contains(out, "Σ γ·M = -41.60") {
		tst.Errorf("governing wall moment missing:\n%s", out)
	}
}
