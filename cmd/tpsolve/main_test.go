package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProblem(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_Transport(t *testing.T) {
	path := writeProblem(t, `
kind: transport
method: nwc
supplies: [20, 30, 10]
demands: [10, 25, 25]
costs: [[2, 3, 1], [5, 4, 8], [7, 6, 9]]
`)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-f", path, "-method", "vogel"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	var got struct {
		Method    string  `json:"method"`
		TotalCost float64 `json:"totalCost"`
		Dummy     string  `json:"dummy"`
		Steps     []struct {
			StepIndex   int    `json:"stepIndex"`
			Description string `json:"description"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "vogel", got.Method)
	assert.Equal(t, 225.0, got.TotalCost)
	assert.Equal(t, "none", got.Dummy)
	require.Len(t, got.Steps, 5)
	assert.Equal(t, 1, got.Steps[0].StepIndex)
	assert.Contains(t, got.Steps[0].Description, "Largest penalty 7 on column 3.")

	assert.Contains(t, stderr.String(), "solved")
	assert.Contains(t, stderr.String(), "totalCost=225")
	assert.NotContains(t, stderr.String(), "level=debug")
}

func TestRun_AssignmentVerbose(t *testing.T) {
	path := writeProblem(t, "kind: assignment\ncosts: [[4, 2, 8], [4, 3, 7], [3, 1, 6]]\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "-f", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	var got struct {
		Method      string `json:"method"`
		Assignments []struct {
			Row, Col int
		} `json:"assignments"`
		TotalCost float64 `json:"totalCost"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "hungarian", got.Method)
	assert.Equal(t, 12.0, got.TotalCost)
	assert.Len(t, got.Assignments, 3)
	assert.Contains(t, stderr.String(), "level=debug")
}

func TestRun_Plot(t *testing.T) {
	path := writeProblem(t, "kind: transport\nsupplies: [5]\ndemands: [5]\ncosts: [[3]]\n")
	plotPath := filepath.Join(t.TempDir(), "cost.svg")

	var stdout, stderr bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-f", path, "-plot", plotPath}, &stdout, &stderr), stderr.String())

	info, err := os.Stat(plotPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, stderr.String(), "cost plot written")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run(nil, &stdout, &stderr), "missing -f")
	assert.Equal(t, exitOK, run([]string{"-h"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run([]string{"-f", filepath.Join(t.TempDir(), "none.yaml")}, &stdout, &stderr))

	bad := writeProblem(t, "kind: transport\nsupplies: [1]\ndemands: [1, 2]\ncosts: [[1]]\n")
	stderr.Reset()
	assert.Equal(t, exitSolve, run([]string{"-f", bad}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "dimension mismatch")

	method := writeProblem(t, "kind: assignment\nmethod: vogel\ncosts: [[1]]\n")
	assert.Equal(t, exitUsage, run([]string{"-f", method}, &stdout, &stderr))

	assert.Empty(t, stdout.String(), "nothing is printed on failure")
}
