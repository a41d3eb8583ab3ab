package dataset

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/takara-ml/boostio/fileio"
	"github.com/takara-ml/boostio/pkg/errors"
)

const fieldDelimiter = ","

// Header lines with tens of thousands of columns exceed bufio's default
// 64KB token size, so scanners get a large ceiling.
const maxLineSize = 64 * 1024 * 1024

// segment holds everything parsed from one source file: its rows and the
// auxiliary vectors read from the source's sibling files. Segments are
// merged in source order after all sources are read.
type segment struct {
	rows     int
	labels   []float64
	features []float64 // rows * featureCount, row-major
	weight   AuxColumn
	groups   []int32
}

// establishSchema reads only the first line of the first source to fix the
// expected field count for the whole load, and the column names when a
// header is present.
func establishSchema(path string, hasHeader bool) (fieldCount int, header []string, err error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, fieldDelimiter)
		if len(fields) < 2 {
			return 0, nil, errors.NewFormatError(path, 1, 0,
				"need at least a label column and one feature column")
		}
		if hasHeader {
			return len(fields), fields, nil
		}
		return len(fields), nil, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, errors.NewIOError("read", path, err)
	}
	return 0, nil, errors.Wrap(errors.ErrEmptySource, path)
}

// parseSource reads one source file into a segment, validating every row
// against the established field count. skipHeader is true only for the
// first source of a load with a header.
func parseSource(path string, fieldCount int, skipHeader bool) (*segment, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	seg := &segment{}
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNo := 0
	headerPending := skipHeader
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if headerPending {
			headerPending = false
			continue
		}
		fields := strings.Split(line, fieldDelimiter)
		if len(fields) != fieldCount {
			return nil, errors.NewFormatErrorf(path, lineNo, 0,
				"expected %d fields, got %d", fieldCount, len(fields))
		}
		for col, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.NewFormatErrorf(path, lineNo, col+1,
					"cannot parse %q as a number", field)
			}
			if col == 0 {
				seg.labels = append(seg.labels, v)
			} else {
				seg.features = append(seg.features, v)
			}
		}
		seg.rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError("read", path, err)
	}
	if seg.rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptySource, path)
	}
	return seg, nil
}
