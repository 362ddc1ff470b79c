package solver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSolutionFormatsObjectiveAndSortedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution.txt")
	result := &Result{
		Objective: 4.5,
		Status:    StatusOptimal,
		Values: map[string]float64{
			"x_B_2_0": 1,
			"x_A_1_0": 0,
		},
	}

	if err := WriteSolution(path, result); err != nil {
		t.Fatalf("WriteSolution: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read solution file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "objective 4.500000" {
		t.Fatalf("line 0 = %q, want objective line", lines[0])
	}
	if lines[1] != "x_A_1_0 0.000000" || lines[2] != "x_B_2_0 1.000000" {
		t.Fatalf("value lines not sorted by name: %v", lines[1:])
	}
}
