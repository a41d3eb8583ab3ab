package dataset

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/takara-ml/boostio/fileio"
	"github.com/takara-ml/boostio/pkg/errors"
)

// Suffixes for the sibling files probed next to every source.
const (
	weightSuffix = ".weight"
	querySuffix  = ".query"
)

// AuxColumn is an optional per-row auxiliary vector read from a sibling
// file. Present distinguishes "file absent, use defaults" from a file that
// was actually read; callers never see a nil sentinel.
type AuxColumn struct {
	Values  []float64
	Present bool
}

// readWeightColumn probes <path>.weight and reads one weight per row.
// An absent or empty file yields an Absent column, which the merge turns
// into the default weight of 1.0 per row. A non-empty file whose line
// count differs from the source's row count is a format error.
func readWeightColumn(path string, rows int) (AuxColumn, error) {
	weightPath := path + weightSuffix
	if !fileio.Exists(weightPath) {
		return AuxColumn{}, nil
	}
	values, err := readNumericColumn(weightPath)
	if err != nil {
		return AuxColumn{}, err
	}
	if len(values) == 0 {
		return AuxColumn{}, nil
	}
	if len(values) != rows {
		return AuxColumn{}, errors.NewFormatErrorf(weightPath, 0, 0,
			"weight count %d does not match %d data rows", len(values), rows)
	}
	return AuxColumn{Values: values, Present: true}, nil
}

// readQueryColumn probes <path>.query and reads query-group run-lengths.
// The run-lengths must sum to the source's row count. An absent file
// contributes no group entries.
func readQueryColumn(path string, rows int) ([]int32, error) {
	queryPath := path + querySuffix
	if !fileio.Exists(queryPath) {
		return nil, nil
	}
	values, err := readNumericColumn(queryPath)
	if err != nil {
		return nil, err
	}
	groups := make([]int32, 0, len(values))
	total := 0
	for i, v := range values {
		n := int(v)
		if float64(n) != v || n <= 0 {
			return nil, errors.NewFormatErrorf(queryPath, i+1, 1,
				"query run-length must be a positive integer, got %v", v)
		}
		groups = append(groups, int32(n))
		total += n
	}
	if total != rows {
		return nil, errors.NewFormatErrorf(queryPath, 0, 0,
			"query run-lengths sum to %d, want %d data rows", total, rows)
	}
	return groups, nil
}

// readNumericColumn reads a plain-text file with one numeric value per
// line, skipping blank lines.
func readNumericColumn(path string) ([]float64, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var values []float64
	scanner := bufio.NewScanner(rc)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, errors.NewFormatErrorf(path, lineNo, 1,
				"cannot parse %q as a number", line)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError("read", path, err)
	}
	return values, nil
}
