// Package dataset loads LightGBM-style delimited text files into an
// in-memory dataset ready for construction by a boosting engine.
//
// A path may name several files joined by commas; their rows are
// concatenated in order into one logical dataset. The first column of every
// row is the label, the remaining columns are features. Each source file
// may carry optional sibling files discovered by suffix convention:
// <path>.weight supplies one sample weight per row, and <path>.query
// supplies query-group run-lengths for ranking objectives.
//
// # Basic usage
//
//	raw, err := dataset.Load("train.csv", dataset.Options{HasHeader: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ds, err := dataset.Construct(raw, dataset.Options{HasHeader: true})
//
// # Binding-style usage
//
// The FileDataset wrapper mirrors the Python binding's flow of building a
// dataset handle from a path and a parameter map:
//
//	ds, err := dataset.NewFileDataset("a.csv,b.csv", map[string]interface{}{
//	    "has_header":      false,
//	    "min_data":        1,
//	    "min_data_in_bin": 1,
//	}).Construct()
//	ds.NumFeature()
//	ds.GetLabel()
package dataset
