package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarKotE/shapes"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { shapes.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDiskText(t *testing.T) {
	out, _, err := run(t, "disk", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "kind:      disk")
	assert.Contains(t, out, "radius:    1")
	assert.Contains(t, out, "area:      3.141593")
}

func TestDiskTextGrouping(t *testing.T) {
	out, _, err := run(t, "--digits", "2", "disk", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "31,415.93")
}

func TestDiskNegativeRadius(t *testing.T) {
	_, _, err := run(t, "disk", "--", "-1")
	require.ErrorIs(t, err, shapes.ErrInvalidArgument)

	var argErr *shapes.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "radius", argErr.Arg)
}

func TestDiskPrecision(t *testing.T) {
	out, _, err := run(t, "--precision", "32", "disk", "1e20")
	require.NoError(t, err)
	assert.Contains(t, out, "not representable in 32-bit floating point")

	out, _, err = run(t, "--precision", "64", "disk", "1e20")
	require.NoError(t, err)
	assert.NotContains(t, out, "not representable")
}

func TestDiskInfiniteRadiusJSON(t *testing.T) {
	out, _, err := run(t, "--format", "json", "disk", "inf")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "disk", got["kind"])
	assert.Equal(t, "+Inf", got["radius"])
	assert.Nil(t, got["area"])
}

func TestTriangleText(t *testing.T) {
	out, _, err := run(t, "triangle", "3", "4", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "right triangle")
	assert.Contains(t, out, "sides:     3, 4, 5")
	assert.Contains(t, out, "6.000000")
}

func TestTriangleJSON(t *testing.T) {
	out, _, err := run(t, "--format", "json", "triangle", "4", "2", "3")
	require.NoError(t, err)

	var got struct {
		Kind      string    `json:"kind"`
		Precision int       `json:"precision"`
		Sides     []float64 `json:"sides"`
		Area      *float64  `json:"area"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "triangle", got.Kind)
	assert.Equal(t, 64, got.Precision)
	assert.Equal(t, []float64{4, 2, 3}, got.Sides)
	require.NotNil(t, got.Area)
	assert.Equal(t, 2.9047375096555625, *got.Area)
}

func TestTriangleJSONFloat32(t *testing.T) {
	out, _, err := run(t, "--precision", "32", "--format", "json", "triangle", "1.07", "2.14", "2.39259")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "right triangle"`)
	assert.Contains(t, out, `1.07,`)
}

func TestTriangleImpossible(t *testing.T) {
	_, _, err := run(t, "triangle", "5", "4", "10")
	require.ErrorIs(t, err, shapes.ErrImpossibleShape)
}

func TestTriangleArgCount(t *testing.T) {
	_, _, err := run(t, "triangle", "3", "4")
	assert.Error(t, err)
}

func TestParseError(t *testing.T) {
	_, _, err := run(t, "triangle", "3", "four", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse b "four"`)
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"precision", []string{"--precision", "16", "disk", "1"}, "--precision"},
		{"format", []string{"--format", "yaml", "disk", "1"}, "--format"},
		{"lang", []string{"--lang", "not a tag", "disk", "1"}, "--lang"},
		{"digits", []string{"--digits", "-1", "disk", "1"}, "--digits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVerboseLogsRejection(t *testing.T) {
	_, stderr, err := run(t, "--verbose", "triangle", "5", "4", "10")
	require.Error(t, err)
	assert.Contains(t, stderr, "shape rejected")
}

func TestNumberMarshalJSON(t *testing.T) {
	b, err := json.Marshal([]number{
		{value: 1.5, bits: 64},
		{value: float64(float32(0.1)), bits: 32},
	})
	require.NoError(t, err)
	assert.Equal(t, `[1.5,0.1]`, string(b))
}
