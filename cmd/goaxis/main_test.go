package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const gridDefinition = `name: grid
distances: [0, 5000, 5000]
angles: [0, 0, 0]
labels: [west, "", east]
length: 3000
placement:
  x: 1000
`

// execute runs the CLI in an isolated home and working directory
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func workspace(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)
	for name, content := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	}
}

func TestGenerateTable(t *testing.T) {
	workspace(t, map[string]string{"grid.yaml": gridDefinition})

	out, err := execute(t, "generate", "grid.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Axis system: grid (grid.yaml)")
	assert.Contains(t, out, "(1000.000, 0.000, 0.000)")
	assert.Contains(t, out, "(11000.000, 3000.000, 0.000)")
	assert.Contains(t, out, "west")
	assert.Contains(t, out, "east")
}

func TestGenerateYAML(t *testing.T) {
	workspace(t, map[string]string{"grid.yaml": gridDefinition})

	out, err := execute(t, "generate", "--local", "--format", "yaml", "grid.yaml")
	require.NoError(t, err)

	var got []systemRows
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	want := []systemRows{{
		Name:   "grid",
		Source: "grid.yaml",
		Segments: []segmentRow{
			{Axis: 0, Number: "1", Label: "west", Start: [3]float64{0, 0, 0}, End: [3]float64{0, 3000, 0}},
			{Axis: 1, Number: "2", Start: [3]float64{5000, 0, 0}, End: [3]float64{5000, 3000, 0}},
			{Axis: 2, Number: "3", Label: "east", Start: [3]float64{10000, 0, 0}, End: [3]float64{10000, 3000, 0}},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generate yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateLimitedSharesAxisNumber(t *testing.T) {
	workspace(t, map[string]string{"grid.yaml": gridDefinition + "limit: 500\n"})

	out, err := execute(t, "generate", "--format", "yaml", "grid.yaml")
	require.NoError(t, err)

	var got []systemRows
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	require.Len(t, got[0].Segments, 6)
	assert.Equal(t, "2", got[0].Segments[2].Number)
	assert.Equal(t, "2", got[0].Segments[3].Number)
}

func TestGeneratePattern(t *testing.T) {
	workspace(t, map[string]string{
		"plans/a/first.yaml":  gridDefinition,
		"plans/b/second.toml": "distances = [0, 2000]\nangles = [0, 0]\n",
		"plans/notes.txt":     "ignored",
	})

	out, err := execute(t, "generate", "plans/**/*")
	require.NoError(t, err)
	assert.Contains(t, out, "Axis system: grid")
	assert.Contains(t, out, "Axis system: second")
	assert.NotContains(t, out, "notes")
}

func TestGenerateErrors(t *testing.T) {
	workspace(t, map[string]string{"grid.yaml": gridDefinition, "bad.yaml": "distance: [1]\n"})

	_, err := execute(t, "generate", "--format", "csv", "grid.yaml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "generate", "bad.yaml")
	assert.Error(t, err)

	_, err = execute(t, "generate", "missing/*.yaml")
	assert.ErrorContains(t, err, "no files match")
}

func TestLabel(t *testing.T) {
	workspace(t, nil)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"label", "-n", "3"}, "1\n2\n3\n"},
		{"roman with start", []string{"label", "-n", "4", "-s", "roman", "--start", "3"}, "III\nIV\nV\nVI\n"},
		{"padded", []string{"label", "-n", "2", "-s", "001,002,003"}, "001\n002\n"},
		{"custom", []string{"label", "-n", "2", "--custom", "X"}, "X\nX\n"},
		{"none", []string{"label", "-n", "0"}, ""},
		{"alpha alias", []string{"label", "-n", "2", "-s", "alpha"}, "A\nB\n"},
		{"huge start", []string{"label", "-n", "3", "-s", "A,B,C", "--start", "9223372036854775807"}, "IG\nIH\nSS\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, err := execute(t, "label", "-s", "greek")
	assert.Error(t, err)
}

func TestLabelUsesConfigFile(t *testing.T) {
	workspace(t, map[string]string{"custom.yaml": "axis:\n  numbering: \"A,B,C\"\n  start_number: 2\n"})

	out, err := execute(t, "--config", "custom.yaml", "label", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "B\nC\n", out)
}

func TestLabelUsesProjectConfig(t *testing.T) {
	workspace(t, map[string]string{"goaxis.yaml": "axis:\n  numbering: \"a,b,c\"\n"})

	out, err := execute(t, "label", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestInfo(t *testing.T) {
	workspace(t, map[string]string{"grid.yaml": gridDefinition})

	out, err := execute(t, "info", "--grid", "grid.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Name: grid")
	assert.Contains(t, out, "Count: 3")
	assert.Contains(t, out, "Span: 10000.000 mm")
	assert.Contains(t, out, "Numbering: 1,2,3 (1 .. 3)")
	assert.Contains(t, out, "2: (10000.000, 0.000, 0.000)")
}

func TestPlot(t *testing.T) {
	workspace(t, map[string]string{"grid.yaml": gridDefinition})

	out, err := execute(t, "plot", "grid.yaml", "--width", "320", "--height", "240")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote grid.png (320x240)")

	data, err := os.ReadFile("grid.png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestNewThenGenerate(t *testing.T) {
	workspace(t, nil)

	out, err := execute(t, "new", "hall.toml", "-n", "4", "-d", "2500")
	require.NoError(t, err)
	assert.Contains(t, out, "Created hall.toml with 4 axes")

	_, err = execute(t, "new", "hall.toml")
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "info", "hall.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "Count: 4")
	assert.Contains(t, out, "Span: 7500.000 mm")

	_, err = execute(t, "new", "hall.json")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	workspace(t, nil)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "numbering:")
	assert.Contains(t, out, "1,2,3")

	out, err = execute(t, "config", "init")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.FileExists(t, path)
}

func TestVersionAndLogFlags(t *testing.T) {
	workspace(t, nil)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "goaxis version "))

	_, err = execute(t, "--log-level", "loud", "version")
	assert.Error(t, err)

	_, err = execute(t, "--log-format", "xml", "version")
	assert.Error(t, err)

	_, err = execute(t, "--log-format", "json", "--log-level", "debug", "version")
	assert.NoError(t, err)
}
