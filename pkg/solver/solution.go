package solver

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	ilperrors "github.com/matzehuels/lineorder/pkg/errors"
)

// WriteSolution dumps result to path in a plain line-oriented format
// mirroring GLPK's own MIP solution report: the objective value on the
// first line, then one "<column name> <value>" line per column, sorted by
// name for a stable diff-friendly dump.
func WriteSolution(path string, result *Result) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "objective %.6f\n", result.Objective)

	names := make([]string, 0, len(result.Values))
	for name := range result.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&buf, "%s %.6f\n", name, result.Values[name])
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return ilperrors.Wrap(ilperrors.ErrCodeIO, err, "writing solution dump to %s", path)
	}
	return nil
}
