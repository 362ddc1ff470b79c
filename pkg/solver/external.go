package solver

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lukpank/go-glpk/glpk"

	ilperrors "github.com/matzehuels/lineorder/pkg/errors"
	"github.com/matzehuels/lineorder/pkg/ilp"
)

// preSolveExternal writes prob as MPS, runs cfg.ExternalCommand against it,
// parses the resulting solution file, and fixes every column it recognizes
// to the integer part of the reported value. A failure at any step is
// returned to the caller, who falls back to an unfixed in-process solve.
func preSolveExternal(ctx context.Context, prob *glpk.Prob, p *ilp.Problem, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	inPath := filepath.Join(os.TempDir(), "lineorder-"+uuid.NewString()+".mps")
	outPath := filepath.Join(os.TempDir(), "lineorder-"+uuid.NewString()+".sol")
	defer os.Remove(inPath)
	defer os.Remove(outPath)

	if err := prob.WriteMPS(glpk.MPS_FILE, nil, inPath); err != nil {
		return ilperrors.Wrap(ilperrors.ErrCodeIO, err, "writing MPS to %s", inPath)
	}

	cmd := substitutePlaceholders(cfg.ExternalCommand, inPath, outPath, runtime.NumCPU())
	if err := runShell(ctx, cmd); err != nil {
		return ilperrors.Wrap(ilperrors.ErrCodeSolver, err, "external solver command failed: %s", cmd)
	}

	fixed, err := parseSolutionFile(outPath)
	if err != nil {
		return ilperrors.Wrap(ilperrors.ErrCodeIO, err, "parsing external solution at %s", outPath)
	}

	for name, val := range fixed {
		col := prob.FindCol(name)
		if col == 0 {
			continue
		}
		fv := float64(val)
		prob.SetColBnds(col, glpk.FX, fv, fv)
	}
	return nil
}

// substitutePlaceholders fills {INPUT}/{OUTPUT}/{THREADS} in template.
func substitutePlaceholders(template, input, output string, threads int) string {
	cmd := strings.ReplaceAll(template, "{INPUT}", input)
	cmd = strings.ReplaceAll(cmd, "{OUTPUT}", output)
	cmd = strings.ReplaceAll(cmd, "{THREADS}", strconv.Itoa(threads))
	return cmd
}

// runShell runs cmd through the platform shell so command templates may use
// pipes, redirection, or multiple arguments freely.
func runShell(ctx context.Context, cmd string) error {
	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	out, err := c.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// parseSolutionFile reads the external solver's solution file: free-form
// whitespace-separated lines, first line is a header and skipped, each
// subsequent line is "[<index>] <name> <value>" with the leading index
// optional. Values are truncated toward zero.
func parseSolutionFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fixed := make(map[string]int)
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		// The leading integer index is optional; if the first field isn't
		// numeric, treat it as the variable name instead.
		name := fields[0]
		rest := fields[1:]
		if _, err := strconv.Atoi(fields[0]); err == nil && len(fields) >= 3 {
			name = fields[1]
			rest = fields[2:]
		}
		if len(rest) == 0 {
			continue
		}
		value, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			continue
		}
		fixed[name] = int(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fixed, nil
}
