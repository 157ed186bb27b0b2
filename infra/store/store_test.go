package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

func sampleSets() []model.AlphaResultSet {
	return []model.AlphaResultSet{{
		Alpha: 0.6,
		Results: []model.ConfigurationResult{
			{Configuration: model.Dimensions{L: 1, H: 2, W: 3}, PhoC: 3.1054476190476192, PhiC: 1e-7},
			{Configuration: model.Dimensions{L: 100, H: 8, W: 100}, PhoC: 0.1 + 0.2, PhiC: 12},
		},
	}}
}

func TestRawResultsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw", "raw-model-results.json")
	require.NoError(t, SaveRawResults(path, sampleSets()))

	got, err := LoadRawResults(path)
	require.NoError(t, err)
	assert.Equal(t, sampleSets(), got)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"configuration": [`)
	assert.Contains(t, string(b), `"pho_c": 3.1054476190476192`)
}

func TestReadRawResultsPythonLayout(t *testing.T) {
	data := `[{"alpha": 0.5, "results": [{"configuration": [6, 5, 16], "pho_c": 10, "phi_c": 2.5}]}]`
	sets, err := ReadRawResults(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, model.Dimensions{L: 6, H: 5, W: 16}, sets[0].Results[0].Configuration)
	assert.Equal(t, 10.0, sets[0].Results[0].PhoC)
}

func TestReadRawResultsMalformed(t *testing.T) {
	cases := map[string]string{
		"truncated":     `[{"alpha": 0.5, "results": [`,
		"short config":  `[{"alpha": 0.5, "results": [{"configuration": [6, 5], "pho_c": 1, "phi_c": 1}]}]`,
		"string number": `[{"alpha": "0.5", "results": []}]`,
		"unknown field": `[{"alpha": 0.5, "rows": []}]`,
		"null":          `null`,
		"second value":  `[] []`,
		"extra bracket": `[]]`,
		"trailing text": `[] x`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadRawResults(strings.NewReader(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSerialization), "got %v", err)
		})
	}
}

func TestLoadRawResultsMissing(t *testing.T) {
	_, err := LoadRawResults(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrSerialization)
}

func sampleReport() []model.ReportEntry {
	return []model.ReportEntry{{
		Alpha:      0.5,
		OptimumPho: model.Optimum{Config: model.Dimensions{L: 7, H: 5, W: 16}, Value: 5},
		OptimumPhi: model.Optimum{Config: model.Dimensions{L: 6, H: 5, W: 16}, Value: 3.25},
	}}
}

func TestWriteReportSortedKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport()))
	out := buf.String()
	alpha := strings.Index(out, `"alpha"`)
	phi := strings.Index(out, `"optimum phi-c"`)
	pho := strings.Index(out, `"optimum pho-c"`)
	assert.True(t, alpha < phi && phi < pho, "keys not sorted:\n%s", out)
	assert.Less(t, strings.Index(out, `"config"`), strings.Index(out, `"value"`))

	back, err := ReadReport(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), back)
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReportCSV(&buf, sampleReport()))
	want := "alpha,metric,L,H,W,value\n0.5,pho_c,7,5,16,5\n0.5,phi_c,6,5,16,3.25\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReportYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, SaveReportYAML(path, sampleReport()))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, "alpha: 0.5")
	assert.Contains(t, out, "optimum pho-c:")
	assert.Contains(t, out, "value: 3.25")
}
