// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twopointers/core"
)

// run executes the CLI with args and returns what it wrote.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(envOutput, "")
	t.Setenv(envLogLevel, "")

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestSubcommands_JSON(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"Pair", []string{"pair", "[2, 7, 11, 15]", "--target", "9"}, `{"found":true,"left":0,"right":1}`},
		{"PairMissing", []string{"pair", "1,2,4", "--target", "8"}, `{"found":false,"left":0,"right":0}`},
		{"Palindrome", []string{"palindrome", "A man, a plan, a canal: Panama"}, `{"palindrome":true}`},
		{"Container", []string{"container", "1,8,6,2,5,4,8,3,7"}, `{"area":49,"left":1,"right":8}`},
		{"Water", []string{"water", "[0,1,0,2,1,0,1,3,2,1,2,1]"}, `{"volume":6}`},
		{"Triplets", []string{"triplets", "[-1, 0, 1, 2, -1, -4]"}, `{"triplets":[[-1,-1,2],[-1,0,1]]}`},
		{"Partition", []string{"partition", "[9,1,8,2,7,3]", "--pivot", "5"}, `{"boundary":3,"sequence":[3,1,2,8,7,9]}`},
		{"PartitionThreeWay", []string{"partition", "[2,0,2,1,1,0]", "--pivot", "1", "--three-way"}, `{"boundary":2,"sequence":[0,0,1,1,2,2]}`},
		{"Compact", []string{"compact", "1,1,2,2,2,3"}, `{"count":3,"unique":[1,2,3]}`},
		{"CompactAtMost", []string{"compact", "[1,1,1,2]", "--at-most", "2"}, `{"count":3,"unique":[1,1,2]}`},
		{"Zeros", []string{"zeros", "[0,1,0,3,12]"}, `{"sequence":[1,3,12,0,0]}`},
		{"Filter", []string{"filter", "[3,2,2,3]", "--value", "3"}, `{"length":2,"sequence":[2,2]}`},
		{"Window", []string{"window", "eceba", "--k", "2"}, `{"length":3,"start":0,"end":3}`},
		{"WindowUnique", []string{"window", "pwwkew", "--unique"}, `{"length":3,"start":0,"end":0}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, out)
		})
	}
}

func TestSubcommands_InvalidArgument(t *testing.T) {
	cases := [][]string{
		{"container", "[4]"},
		{"container", ""},
		{"window", "abc", "--k=-1"},
		{"compact", "[1,1]", "--at-most", "0"},
		{"gen", "ints", "--n=-1"},
		{"gen", "ints", "--lo", "5", "--hi", "1"},
		{"gen", "bogus"},
		{"water", "[1, two]"},
		{"pair", "[1, 2", "--target", "3"},
	}
	for _, args := range cases {
		_, stderr, err := run(t, args...)
		assert.ErrorIs(t, err, core.ErrInvalidArgument, "args %v", args)
		assert.Contains(t, stderr, "Error:", "args %v", args)
	}
}

func TestBadSequence(t *testing.T) {
	_, _, err := run(t, "water", "[1, two]")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "parse sequence")
}

func TestGenFullWidthRange(t *testing.T) {
	var (
		out string
		err error
	)
	require.NotPanics(t, func() {
		out, _, err = run(t, "gen", "ints", "--n", "3", "--lo", "-9223372036854775808", "--hi", "9223372036854775807")
	})
	require.NoError(t, err)

	var res genResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "ints", res.Kind)
	assert.Len(t, res.Sequence, 3)
}

func TestYAMLOutput(t *testing.T) {
	out, _, err := run(t, "window", "eceba", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "length: 3\nstart: 0\nend: 3\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twoptr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\nlog_level: debug\n"), 0o600))

	out, stderr, err := run(t, "--config", path, "water", "3,0,3")
	require.NoError(t, err)
	assert.Equal(t, "volume: 3\n", out)
	assert.Contains(t, stderr, "config resolved")

	// Flags win over the file.
	out, _, err = run(t, "--config", path, "--output", "json", "water", "3,0,3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"volume":3}`, out)
}

func TestConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twoptr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0o600))

	_, _, err := run(t, "--config", path, "water", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "water", "1")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "--log-level", "loud", "water", "1")
	assert.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	var out, errOut bytes.Buffer
	t.Setenv(envOutput, "yaml")
	t.Setenv(envLogLevel, "")
	root := newRootCmd(&out, &errOut)
	root.SetArgs([]string{"palindrome", "abba"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "palindrome: true\n", out.String())
}

func TestGen(t *testing.T) {
	out, _, err := run(t, "gen", "sorted", "--n", "8", "--seed", "3", "--lo", "-5", "--hi", "5")
	require.NoError(t, err)

	var res genResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "sorted", res.Kind)
	assert.Len(t, res.Sequence, 8)
	assert.True(t, sort.IntsAreSorted(res.Sequence))

	again, _, err := run(t, "gen", "sorted", "--n", "8", "--seed", "3", "--lo", "-5", "--hi", "5")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed must reproduce the fixture")

	out, _, err = run(t, "gen", "palindrome", "--n", "5", "--alphabet", "xy")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Text, 5)
}

func TestParseNumbers(t *testing.T) {
	got, err := parseNumbers("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = parseNumbers(" 1, 2.5 ,-3 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, got)

	got, err = parseNumbers("[]")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = parseNumbers("[a, b]")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "json", cfg.Output)

	cfg.LogLevel = "trace"
	assert.Error(t, cfg.Validate())
}
