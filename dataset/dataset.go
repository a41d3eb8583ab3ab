package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/takara-ml/boostio/pkg/errors"
)

// Raw is the merged output of loading: everything a boosting engine needs
// to build its internal dataset representation. Header is nil when the
// load had no header row.
type Raw struct {
	Features *mat.Dense
	Labels   []float64
	Weights  []float64
	Groups   []int32
	Header   []string
}

// NumRow returns the number of data rows in the bundle.
func (r *Raw) NumRow() int {
	rows, _ := r.Features.Dims()
	return rows
}

// Dataset is the constructed dataset handle surfaced to callers. Its
// accessors mirror the engine's dataset API; slices are returned directly
// and must not be mutated.
type Dataset struct {
	features     *mat.Dense
	labels       []float64
	weights      []float64
	groups       []int32
	featureNames []string

	minData      int
	minDataInBin int
}

// NewDataset builds a Dataset handle directly from engine-produced
// vectors. Constructor implementations outside this package use it to
// return their results; lengths are the caller's responsibility.
func NewDataset(features *mat.Dense, labels, weights []float64, groups []int32, featureNames []string) *Dataset {
	return &Dataset{
		features:     features,
		labels:       labels,
		weights:      weights,
		groups:       groups,
		featureNames: featureNames,
	}
}

// NumFeature returns the number of feature columns.
func (d *Dataset) NumFeature() int {
	_, cols := d.features.Dims()
	return cols
}

// NumRow returns the number of data rows.
func (d *Dataset) NumRow() int {
	rows, _ := d.features.Dims()
	return rows
}

// GetLabel returns the label vector, one entry per row.
func (d *Dataset) GetLabel() []float64 {
	return d.labels
}

// GetWeight returns the sample-weight vector, one entry per row.
func (d *Dataset) GetWeight() []float64 {
	return d.weights
}

// GetGroup returns the query-group run-lengths. Empty when no source
// supplied a query file.
func (d *Dataset) GetGroup() []int32 {
	return d.groups
}

// FeatureNames returns the header's feature column names (the header minus
// the label column), or nil when the dataset was loaded without a header.
func (d *Dataset) FeatureNames() []string {
	return d.featureNames
}

// Features returns the feature matrix.
func (d *Dataset) Features() *mat.Dense {
	return d.features
}

// MinData returns the pass-through min_data parameter the dataset was
// constructed with.
func (d *Dataset) MinData() int {
	return d.minData
}

// MinDataInBin returns the pass-through min_data_in_bin parameter the
// dataset was constructed with.
func (d *Dataset) MinDataInBin() int {
	return d.minDataInBin
}

// Constructor turns a Raw bundle into a Dataset. The in-memory default is
// used unless the caller supplies an engine-backed implementation.
type Constructor interface {
	Construct(raw *Raw, opts Options) (*Dataset, error)
}

// memConstructor is the default Constructor: it validates the bundle's
// internal consistency and wraps it without binning or any other engine
// work. MinData and MinDataInBin are recorded for the engine but not
// interpreted here.
type memConstructor struct{}

func (memConstructor) Construct(raw *Raw, opts Options) (*Dataset, error) {
	rows := raw.NumRow()
	if len(raw.Labels) != rows {
		return nil, errors.Newf("boostio: construct: %d labels for %d rows", len(raw.Labels), rows)
	}
	if len(raw.Weights) != rows {
		return nil, errors.Newf("boostio: construct: %d weights for %d rows", len(raw.Weights), rows)
	}
	groupTotal := 0
	for _, g := range raw.Groups {
		groupTotal += int(g)
	}
	if len(raw.Groups) > 0 && groupTotal != rows {
		return nil, errors.Newf("boostio: construct: group run-lengths cover %d of %d rows", groupTotal, rows)
	}

	var featureNames []string
	if len(raw.Header) > 1 {
		featureNames = raw.Header[1:]
	}
	return &Dataset{
		features:     raw.Features,
		labels:       raw.Labels,
		weights:      raw.Weights,
		groups:       raw.Groups,
		featureNames: featureNames,
		minData:      opts.MinData,
		minDataInBin: opts.MinDataInBin,
	}, nil
}

// DefaultConstructor is the in-memory Constructor.
var DefaultConstructor Constructor = memConstructor{}

// Construct builds a Dataset from a Raw bundle using the default
// Constructor.
func Construct(raw *Raw, opts Options) (*Dataset, error) {
	return DefaultConstructor.Construct(raw, opts)
}

// FileDataset is a lazy dataset handle built from a path list and a
// binding-style parameter map. Nothing is read until Construct is called;
// the constructed Dataset is cached.
type FileDataset struct {
	pathSpec    string
	params      map[string]interface{}
	constructor Constructor
	ds          *Dataset
}

// NewFileDataset creates a lazy dataset handle for a comma-joined path
// list. params may be nil.
func NewFileDataset(pathSpec string, params map[string]interface{}) *FileDataset {
	return &FileDataset{
		pathSpec:    pathSpec,
		params:      params,
		constructor: DefaultConstructor,
	}
}

// WithConstructor replaces the Constructor used by Construct.
func (f *FileDataset) WithConstructor(c Constructor) *FileDataset {
	f.constructor = c
	return f
}

// Construct loads the files and builds the Dataset. Repeated calls return
// the same handle.
func (f *FileDataset) Construct() (*Dataset, error) {
	if f.ds != nil {
		return f.ds, nil
	}
	opts, err := OptionsFromParams(f.params)
	if err != nil {
		return nil, err
	}
	raw, err := Load(f.pathSpec, opts)
	if err != nil {
		return nil, err
	}
	ds, err := f.constructor.Construct(raw, opts)
	if err != nil {
		return nil, err
	}
	f.ds = ds
	return ds, nil
}
