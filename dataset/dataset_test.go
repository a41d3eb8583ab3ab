package dataset

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestConstructValidatesBundle(t *testing.T) {
	good := &Raw{
		Features: mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
		Labels:   []float64{1, 0},
		Weights:  []float64{1, 1},
	}
	if _, err := Construct(good, DefaultOptions()); err != nil {
		t.Fatalf("Construct failed on a consistent bundle: %v", err)
	}

	tests := []struct {
		name string
		raw  *Raw
	}{
		{
			name: "label length mismatch",
			raw: &Raw{
				Features: mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
				Labels:   []float64{1},
				Weights:  []float64{1, 1},
			},
		},
		{
			name: "weight length mismatch",
			raw: &Raw{
				Features: mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
				Labels:   []float64{1, 0},
				Weights:  []float64{1},
			},
		},
		{
			name: "group run-lengths do not cover rows",
			raw: &Raw{
				Features: mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
				Labels:   []float64{1, 0},
				Weights:  []float64{1, 1},
				Groups:   []int32{3},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Construct(tt.raw, DefaultOptions()); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestFileDatasetCachesHandle(t *testing.T) {
	path := writeFile(t, t.TempDir(), "train.csv", fourRows)

	fd := NewFileDataset(path, map[string]interface{}{"min_data": 1})
	first, err := fd.Construct()
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	second, err := fd.Construct()
	if err != nil {
		t.Fatalf("second Construct failed: %v", err)
	}
	if first != second {
		t.Error("repeated Construct should return the same handle")
	}
}

type countingConstructor struct {
	calls int
}

func (c *countingConstructor) Construct(raw *Raw, opts Options) (*Dataset, error) {
	c.calls++
	return DefaultConstructor.Construct(raw, opts)
}

func TestFileDatasetCustomConstructor(t *testing.T) {
	path := writeFile(t, t.TempDir(), "train.csv", fourRows)

	cc := &countingConstructor{}
	fd := NewFileDataset(path, nil).WithConstructor(cc)
	if _, err := fd.Construct(); err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	if _, err := fd.Construct(); err != nil {
		t.Fatalf("second Construct failed: %v", err)
	}
	if cc.calls != 1 {
		t.Errorf("constructor called %d times, want 1", cc.calls)
	}
}

func TestFeatureNamesWithoutHeader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "train.csv", fourRows)

	ds, err := NewFileDataset(path, nil).Construct()
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	if names := ds.FeatureNames(); names != nil {
		t.Errorf("FeatureNames() = %v, want nil without a header", names)
	}
}
