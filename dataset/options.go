package dataset

import (
	"strconv"
	"strings"

	"github.com/takara-ml/boostio/pkg/errors"
)

// Options controls dataset loading. MinData and MinDataInBin are not
// interpreted by the loader itself; they are carried through to the
// Constructor for the engine to consume.
type Options struct {
	// HasHeader marks the first row of the first source as column names.
	// Sources after the first never contain a header.
	HasHeader bool

	// MinData is the engine's minimum row count per leaf (pass-through).
	MinData int

	// MinDataInBin is the engine's minimum row count per histogram bin
	// (pass-through).
	MinDataInBin int

	// NumThreads > 1 parses source files concurrently. Row order in the
	// result is identical to sequential loading.
	NumThreads int
}

// DefaultOptions returns the engine-compatible defaults.
func DefaultOptions() Options {
	return Options{
		MinData:      20,
		MinDataInBin: 3,
		NumThreads:   1,
	}
}

// Parameter aliases, following the naming conventions of the Python
// binding. Every alias resolves to one canonical key.
var paramAliases = map[string]string{
	"has_header":        "has_header",
	"header":            "has_header",
	"has_headers":       "has_header",
	"min_data":          "min_data",
	"min_data_in_leaf":  "min_data",
	"min_child_samples": "min_data",
	"min_data_in_bin":   "min_data_in_bin",
	"num_threads":       "num_threads",
	"num_thread":        "num_threads",
	"nthread":           "num_threads",
	"n_jobs":            "num_threads",
}

// OptionsFromParams builds Options from a loosely-typed parameter map as
// passed by binding-style callers. Unknown keys are ignored so that engine
// parameters can travel in the same map; known keys with values of the
// wrong type fail.
func OptionsFromParams(params map[string]interface{}) (Options, error) {
	opts := DefaultOptions()
	for key, value := range params {
		canonical, known := paramAliases[strings.ToLower(key)]
		if !known {
			continue
		}
		switch canonical {
		case "has_header":
			b, err := coerceBool(value)
			if err != nil {
				return Options{}, errors.Wrapf(err, "parameter %q", key)
			}
			opts.HasHeader = b
		case "min_data":
			n, err := coerceInt(value)
			if err != nil {
				return Options{}, errors.Wrapf(err, "parameter %q", key)
			}
			opts.MinData = n
		case "min_data_in_bin":
			n, err := coerceInt(value)
			if err != nil {
				return Options{}, errors.Wrapf(err, "parameter %q", key)
			}
			opts.MinDataInBin = n
		case "num_threads":
			n, err := coerceInt(value)
			if err != nil {
				return Options{}, errors.Wrapf(err, "parameter %q", key)
			}
			opts.NumThreads = n
		}
	}
	return opts, nil
}

func coerceBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return false, errors.Newf("cannot parse %q as bool", v)
		}
		return b, nil
	default:
		return false, errors.Newf("cannot use %T as bool", value)
	}
}

func coerceInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, errors.Newf("cannot use non-integral %v as int", v)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, errors.Newf("cannot parse %q as int", v)
		}
		return n, nil
	default:
		return 0, errors.Newf("cannot use %T as int", value)
	}
}
