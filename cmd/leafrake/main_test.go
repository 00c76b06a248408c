package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leafrake/config"
)

const lineGarden = `
problem {
  rows            = [[2, 0, 3, 0]]
  depot           = [0, 3]
  max_cluster     = 5
  rake_batch      = 10
  transport_batch = 20
}
solve {
  anneal {
    iterations = 50
    seed       = 3
  }
}
`

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "garden.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cmd := newRootCommand(&out, &logs)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), logs.String(), err
}

func TestSolve_Greedy(t *testing.T) {
	out, logs, err := execute(t, "solve", "--config", writeConfig(t, lineGarden))
	require.NoError(t, err)

	assert.Contains(t, out, "cost: rake=0.000 walk=6.000 transport=8.000 total=14.000")
	assert.Contains(t, out, "clusters: 2")
	assert.Contains(t, out, "hub (0,0) cells=2 leaves=2")
	assert.Contains(t, out, "  H←H←\n")
	assert.Contains(t, logs, "problem loaded")
}

func TestSolve_AnnealOverride(t *testing.T) {
	out, logs, err := execute(t, "solve", "-c", writeConfig(t, lineGarden),
		"--algorithm", "anneal", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: ")
	assert.Contains(t, logs, `"msg":"anneal finished"`)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve")
	assert.ErrorContains(t, err, "--config is required")

	_, _, err = execute(t, "solve", "-c", writeConfig(t, lineGarden), "--algorithm", "genetic")
	assert.ErrorContains(t, err, "genetic")

	_, _, err = execute(t, "solve", "-c", filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)

	_, _, err = execute(t, "--log-format", "xml", "version")
	assert.ErrorContains(t, err, "log-format")
}

func TestSolveOptions_Validate(t *testing.T) {
	o := &solveOptions{ConfigPath: "garden.hcl"}
	require.NoError(t, o.Validate())
	assert.Nil(t, o.override)

	o.Algorithm = "anneal"
	require.NoError(t, o.Validate())
	require.NotNil(t, o.override)
	assert.Equal(t, config.Anneal, *o.override)

	o = &solveOptions{Algorithm: "genetic"}
	err := o.Validate()
	assert.ErrorContains(t, err, "--config is required")
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Nil(t, o.override)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "leafrake dev\n", out)
}
