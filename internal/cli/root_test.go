package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-edit/storage"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := createRootCommand(context.Background(), &Input{}, "test")
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func tempSet(t *testing.T) string {
	return filepath.Join(t.TempDir(), "graphs.txt")
}

func TestGenerateAndCluster(t *testing.T) {
	set := tempSet(t)
	out, err := run(t, "generate", "k4", "--set", set, "--kind", "complete", "-n", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "k4: order=4 edges=6")

	out, err = run(t, "cluster", "k4", "--set", set, "-s", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "objective=3 proven=true")
	assert.Contains(t, out, ":k4-result: 4")
}

func TestSpanningSaveAs(t *testing.T) {
	set := tempSet(t)
	_, err := run(t, "generate", "w6", "--set", set, "--kind", "wheel", "-n", "6")
	require.NoError(t, err)

	out, err := run(t, "spanning", "w6", "--set", set, "-k", "2", "--maxflow", "dinic", "--save-as", "w6-k2")
	require.NoError(t, err)
	assert.Contains(t, out, "objective=6 proven=true")

	s, err := storage.Open(set)
	require.NoError(t, err)
	assert.Equal(t, []string{"w6", "w6-k2"}, s.Names())
	g, err := s.Get("w6-k2")
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
}

func TestConnectivity(t *testing.T) {
	set := tempSet(t)
	_, err := run(t, "generate", "k4", "--set", set, "--kind", "complete", "-n", "4")
	require.NoError(t, err)
	out, err := run(t, "connectivity", "k4", "--set", set)
	require.NoError(t, err)
	assert.Equal(t, "k4: order=4 edges=6 vertex=3 edge=3\n", out)
}

func TestList(t *testing.T) {
	set := tempSet(t)
	_, err := run(t, "generate", "r", "--set", set, "--kind", "random-connected",
		"-n", "6", "-m", "9", "-k", "2", "--weights", "1:5", "--seed", "4")
	require.NoError(t, err)
	out, err := run(t, "list", "--set", set)
	require.NoError(t, err)
	assert.Equal(t, "r\t6\t9\tundirected\n", out)
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	set := filepath.Join(dir, "graphs.txt")
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
set: `+set+`
maxflow: dinic
budget:
  max_steps: 1
  time_limit: 30s
spanning:
  strategy: weighted
  connectivity: vertex
`), 0o600))

	_, err := run(t, "generate", "k6", "-c", cfgPath, "--kind", "complete", "-n", "6")
	require.NoError(t, err)

	out, err := run(t, "spanning", "k6", "-c", cfgPath, "-k", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "proven=false")
	assert.Contains(t, out, "reason=steps")

	out, err = run(t, "spanning", "k6", "-c", cfgPath, "-k", "2", "--max-steps", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "objective=6 proven=true")
}

func TestConfigUnknownField(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("colour: blue\n"), 0o600))
	_, err := loadRunConfig(cfgPath)
	require.Error(t, err)
}

func TestUnknownChoices(t *testing.T) {
	set := tempSet(t)
	_, err := run(t, "generate", "k4", "--set", set, "--kind", "complete", "-n", "4")
	require.NoError(t, err)

	_, err = run(t, "spanning", "k4", "--set", set, "--strategy", "fastest")
	assert.ErrorContains(t, err, "unknown strategy")
	_, err = run(t, "connectivity", "k4", "--set", set, "--maxflow", "push-relabel")
	assert.ErrorContains(t, err, "unknown max-flow")
	_, err = run(t, "list", "--set", set, "--backend", "tree")
	assert.ErrorContains(t, err, "unknown backend")
	_, err = run(t, "generate", "x", "--set", set, "--kind", "petersen")
	assert.ErrorContains(t, err, "unknown kind")
	_, err = run(t, "cluster", "missing", "--set", set)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestParseWeights(t *testing.T) {
	for _, bad := range []string{"", "5", "a:3", "3:b", "4:1"} {
		_, err := parseWeights(bad)
		assert.Error(t, err, bad)
	}
	fn, err := parseWeights("-2:-2")
	require.NoError(t, err)
	assert.Equal(t, int64(-2), fn(nil))
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "json", true)
	log.WithField("x", 1).Debug("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
