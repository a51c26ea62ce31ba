package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	require.NoError(t, c.Validate())
	require.Equal(t, 100, c.NumGames)
	require.Equal(t, 3, c.MaxDepth)
	require.Equal(t, 8, c.BoardSize)
	require.True(t, c.StrictNoPassTerminal())
	require.Len(t, c.Experiments, 6)

	e, ok := c.Experiment("composite-vs-random")
	require.True(t, ok)
	require.True(t, e.AgainstRandom())
	e, ok = c.Experiment("composite-vs-weighted")
	require.True(t, ok)
	require.False(t, e.AgainstRandom())
	_, ok = c.Experiment("missing")
	require.False(t, ok)

	c.Experiments[0].Name = "changed"
	require.Equal(t, "material-vs-random", DefaultConfig().Experiments[0].Name)
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "experiments.yaml", `
games: 10
max_depth: 2
rules: standard
experiments:
  - name: c-vs-a
    agent: c
    opponent: a
`)

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 10, c.NumGames)
		require.Equal(t, 2, c.MaxDepth)
		require.Equal(t, 8, c.BoardSize, "Default")
		require.False(t, c.StrictNoPassTerminal())
		require.Equal(t, []Experiment{{Name: "c-vs-a", Agent: "c", Opponent: "a"}}, c.Experiments)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "experiments.yaml", "board_size: 7\n")

		_, err := Load(path)

		var invalid *InvalidConfig
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "experiments.yaml", "games: [\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})
}

func TestInitConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	t.Run("defaults without a file", func(t *testing.T) {
		c, err := InitConfig()

		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), *c)
	})

	t.Run("reads the xdg file", func(t *testing.T) {
		writeFile(t, home, "reversi/experiments.yaml", "games: 5\n")

		c, err := InitConfig()

		require.NoError(t, err)
		require.Equal(t, 5, c.NumGames)
	})

	t.Run("save round trip", func(t *testing.T) {
		c := DefaultConfig()
		c.Seed = 42
		require.NoError(t, c.Save())

		loaded, err := InitConfig()

		require.NoError(t, err)
		require.Equal(t, c, *loaded)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"no games", func(c *Config) { c.NumGames = 0 }},
		{"no depth", func(c *Config) { c.MaxDepth = 0 }},
		{"odd board", func(c *Config) { c.BoardSize = 9 }},
		{"tiny board", func(c *Config) { c.BoardSize = 2 }},
		{"unknown rules", func(c *Config) { c.Rules = "tournament" }},
		{"negative opening", func(c *Config) { c.RandomOpening = -1 }},
		{"no goroutines", func(c *Config) { c.Goroutines = 0 }},
		{"no experiments", func(c *Config) { c.Experiments = nil }},
		{"unnamed experiment", func(c *Config) { c.Experiments[0].Name = "" }},
		{"duplicate experiment", func(c *Config) { c.Experiments[1].Name = c.Experiments[0].Name }},
		{"unknown agent", func(c *Config) { c.Experiments[0].Agent = "mobility" }},
		{"unknown opponent", func(c *Config) { c.Experiments[3].Opponent = "mobility" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)

			err := c.Validate()

			var invalid *InvalidConfig
			require.ErrorAs(t, err, &invalid)
			require.Contains(t, err.Error(), "Config error")
		})
	}
}
