package dataset

import "testing"

func TestOptionsFromParamsAliases(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]interface{}
		want   Options
	}{
		{
			name:   "canonical names",
			params: map[string]interface{}{"has_header": true, "min_data": 1, "min_data_in_bin": 1},
			want:   Options{HasHeader: true, MinData: 1, MinDataInBin: 1, NumThreads: 1},
		},
		{
			name:   "aliases",
			params: map[string]interface{}{"header": true, "min_data_in_leaf": 5, "n_jobs": 4},
			want:   Options{HasHeader: true, MinData: 5, MinDataInBin: 3, NumThreads: 4},
		},
		{
			name:   "string and float coercion",
			params: map[string]interface{}{"has_header": "true", "min_data": float64(2), "min_data_in_bin": "7"},
			want:   Options{HasHeader: true, MinData: 2, MinDataInBin: 7, NumThreads: 1},
		},
		{
			name:   "unknown keys pass through silently",
			params: map[string]interface{}{"objective": "lambdarank", "learning_rate": 0.1},
			want:   DefaultOptions(),
		},
		{
			name:   "nil map",
			params: nil,
			want:   DefaultOptions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OptionsFromParams(tt.params)
			if err != nil {
				t.Fatalf("OptionsFromParams failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("OptionsFromParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptionsFromParamsBadValues(t *testing.T) {
	bad := []map[string]interface{}{
		{"has_header": "maybe"},
		{"min_data": "lots"},
		{"min_data_in_bin": 1.5},
		{"num_threads": []int{1}},
	}
	for _, params := range bad {
		if _, err := OptionsFromParams(params); err == nil {
			t.Errorf("expected error for params %v", params)
		}
	}
}
