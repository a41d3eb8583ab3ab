package errors

import (
	"os"
	"strings"
	"testing"
)

func TestIOErrorMessage(t *testing.T) {
	err := NewIOError("open", "/data/train.csv", os.ErrNotExist)

	var ioErr *IOError
	if !As(err, &ioErr) {
		t.Fatalf("expected IOError in chain, got %T", err)
	}
	if ioErr.Path != "/data/train.csv" {
		t.Errorf("path = %q, want /data/train.csv", ioErr.Path)
	}
	if !Is(err, os.ErrNotExist) {
		t.Error("IOError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "/data/train.csv") {
		t.Errorf("message %q should name the path", err.Error())
	}
}

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with column",
			err:  NewFormatError("train.csv", 3, 7, "cannot parse field"),
			want: "boostio: train.csv:3: column 7: cannot parse field",
		},
		{
			name: "line only",
			err:  NewFormatErrorf("train.csv", 5, 0, "expected %d fields, got %d", 4, 3),
			want: "boostio: train.csv:5: expected 4 fields, got 3",
		},
		{
			name: "file only",
			err:  NewFormatError("train.csv.weight", 0, 0, "weight count 2 does not match 4 rows"),
			want: "boostio: train.csv.weight: weight count 2 does not match 4 rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			var fmtErr *FormatError
			if !As(tt.err, &fmtErr) {
				t.Fatalf("expected FormatError in chain")
			}
		})
	}
}

func TestStackTraceAttached(t *testing.T) {
	err := NewFormatError("x.csv", 1, 1, "bad field")
	if len(GetSafeDetails(err)) == 0 {
		t.Error("constructor should attach a stack trace")
	}
}
