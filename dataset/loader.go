package dataset

import (
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/takara-ml/boostio/fileio"
	"github.com/takara-ml/boostio/pkg/errors"
	"github.com/takara-ml/boostio/pkg/log"
)

// Load reads a comma-joined path list into a merged Raw bundle. Each path
// in the list is one source file; repeating a path repeats its rows (and
// re-reads its sibling files) once per occurrence.
func Load(pathSpec string, opts Options) (*Raw, error) {
	return LoadSources(fileio.SplitList(pathSpec), opts)
}

// LoadSources reads the given source files in order and merges them into
// one Raw bundle. Any unreadable file or structural problem aborts the
// whole load; no partial result is returned.
func LoadSources(paths []string, opts Options) (*Raw, error) {
	if len(paths) == 0 {
		return nil, errors.WithStack(errors.ErrNoSources)
	}
	logger := log.GetLogger()
	start := time.Now()

	fieldCount, header, err := establishSchema(paths[0], opts.HasHeader)
	if err != nil {
		return nil, err
	}

	segments := make([]*segment, len(paths))
	loadOne := func(i int) error {
		seg, err := parseSource(paths[i], fieldCount, i == 0 && opts.HasHeader)
		if err != nil {
			return err
		}
		if seg.weight, err = readWeightColumn(paths[i], seg.rows); err != nil {
			return err
		}
		if seg.groups, err = readQueryColumn(paths[i], seg.rows); err != nil {
			return err
		}
		segments[i] = seg
		logger.Debug("source parsed",
			log.PathKey, paths[i],
			log.RowsKey, seg.rows,
			log.GroupsKey, len(seg.groups),
		)
		return nil
	}

	if opts.NumThreads > 1 {
		var g errgroup.Group
		g.SetLimit(opts.NumThreads)
		for i := range paths {
			i := i
			g.Go(func() error { return loadOne(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range paths {
			if err := loadOne(i); err != nil {
				return nil, err
			}
		}
	}

	raw := mergeSegments(segments, fieldCount-1, header)
	logger.Info("sources merged",
		log.SourcesKey, len(paths),
		log.RowsKey, len(raw.Labels),
		log.FeaturesKey, fieldCount-1,
		log.GroupsKey, len(raw.Groups),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return raw, nil
}

// mergeSegments concatenates per-source segments, in source order, into
// one Raw bundle. Sources without a weight file contribute the default
// weight of 1.0 per row; sources without a query file contribute no group
// entries.
func mergeSegments(segments []*segment, featureCount int, header []string) *Raw {
	totalRows := 0
	totalGroups := 0
	for _, seg := range segments {
		totalRows += seg.rows
		totalGroups += len(seg.groups)
	}

	features := make([]float64, 0, totalRows*featureCount)
	labels := make([]float64, 0, totalRows)
	weights := make([]float64, 0, totalRows)
	groups := make([]int32, 0, totalGroups)
	for _, seg := range segments {
		features = append(features, seg.features...)
		labels = append(labels, seg.labels...)
		if seg.weight.Present {
			weights = append(weights, seg.weight.Values...)
		} else {
			for i := 0; i < seg.rows; i++ {
				weights = append(weights, 1.0)
			}
		}
		groups = append(groups, seg.groups...)
	}

	return &Raw{
		Features: mat.NewDense(totalRows, featureCount, features),
		Labels:   labels,
		Weights:  weights,
		Groups:   groups,
		Header:   header,
	}
}
