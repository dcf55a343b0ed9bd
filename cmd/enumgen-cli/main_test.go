package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-enumgen/pkg/runconfig"
)

const testConfig = `game: Timespinner
options:
  death_link: all
others: minimum
ignore:
  - quick_seed
---
game: Aquaria
options:
  aggression: all
`

// parseTestFlags mirrors the subset of run()'s flag surface that
// mergeConfig consults, so Changed() reflects the given command line.
func parseTestFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("enumgen-cli-test", pflag.ContinueOnError)
	flags.StringP("dir", "d", runconfig.DefaultDir, "")
	flags.StringSliceP("ignore", "i", nil, "")
	flags.String("others", "", "")
	flags.IntP("splits", "s", runconfig.DefaultSplits, "")
	flags.CountP("verbose", "v", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	return path
}

func TestMergeConfigFlagsOverrideFileEntities(t *testing.T) {
	path := writeTestConfig(t)
	flags := parseTestFlags(t, "--others", "random", "--ignore", "trap_percentage")

	cfg, err := mergeConfig(flags, path, runconfig.DefaultDir, nil,
		[]string{"trap_percentage"}, nil, "random", runconfig.DefaultSplits, "", 1, false)
	require.NoError(t, err)

	require.Len(t, cfg.Entities, 2)
	for _, ec := range cfg.Entities {
		assert.Equal(t, "random", ec.Others, "entity %s", ec.Entity)
		assert.Equal(t, []string{"trap_percentage"}, ec.Ignore, "entity %s", ec.Entity)
	}
}

func TestMergeConfigKeepsFileValuesWithoutFlags(t *testing.T) {
	path := writeTestConfig(t)
	flags := parseTestFlags(t)

	cfg, err := mergeConfig(flags, path, runconfig.DefaultDir, nil,
		nil, nil, "", runconfig.DefaultSplits, "", 1, false)
	require.NoError(t, err)

	require.Len(t, cfg.Entities, 2)
	assert.Equal(t, "minimum", cfg.Entities[0].Others)
	assert.Equal(t, []string{"quick_seed"}, cfg.Entities[0].Ignore)
	assert.Empty(t, cfg.Entities[1].Others)
	assert.Empty(t, cfg.Entities[1].Ignore)
}

func TestMergeConfigGamesReplaceFileEntities(t *testing.T) {
	path := writeTestConfig(t)
	flags := parseTestFlags(t, "--others", "maximum")

	cfg, err := mergeConfig(flags, path, runconfig.DefaultDir,
		[]string{"Ocarina of Time"}, nil, []string{"logic_rules=all", "traps=3"},
		"maximum", runconfig.DefaultSplits, "", 1, false)
	require.NoError(t, err)

	require.Len(t, cfg.Entities, 1)
	ec := cfg.Entities[0]
	assert.Equal(t, "Ocarina of Time", ec.Entity)
	assert.Equal(t, "maximum", ec.Others)
	assert.Equal(t, "all", ec.Options["logic_rules"])
	assert.Equal(t, "3", ec.Options["traps"])
}

func TestMergeConfigFlagPrecedenceOverDefaults(t *testing.T) {
	flags := parseTestFlags(t, "--dir", "out", "--splits", "5", "-vv")

	cfg, err := mergeConfig(flags, "", "out", []string{"Timespinner"},
		nil, nil, "", 5, "doc.json", 2, true)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Dir)
	assert.Equal(t, 5, cfg.Splits)
	assert.Equal(t, 2, cfg.Verbose)
	assert.True(t, cfg.Yes)
	assert.Equal(t, "doc.json", cfg.Source)
}
