package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cdpdoc"
	main "github.com/fwojciec/cdpdoc/cmd/cdpdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"ask", "classify", "import", "status", "history", "chat"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(main.YAMLLoader),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_Defaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}), kong.Configuration(main.YAMLLoader))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"classify", "q"})
	require.NoError(t, err)

	assert.Equal(t, "subword", cli.Embedder)
	assert.InDelta(t, 0.5, cli.Threshold, 1e-9)
	assert.Equal(t, 20, cli.Candidates)
	assert.Equal(t, 5, cli.Limit)
	assert.False(t, cli.Verbose)
	assert.NoError(t, cli.Validate())
}

func TestCLI_RejectsUnknownEmbedder(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}), kong.Configuration(main.YAMLLoader))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--embedder", "openai", "classify", "q"})

	require.Error(t, err)
}

func TestCLI_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cli  main.CLI
	}{
		{"threshold above one", main.CLI{Threshold: 1.5, Candidates: 20, Limit: 5}},
		{"negative threshold", main.CLI{Threshold: -0.1, Candidates: 20, Limit: 5}},
		{"zero candidates", main.CLI{Threshold: 0.5, Candidates: 0, Limit: 5}},
		{"zero limit", main.CLI{Threshold: 0.5, Candidates: 20, Limit: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cli.Validate()
			assert.Equal(t, cdpdoc.EINVALID, cdpdoc.ErrorCode(err))
		})
	}
}

func TestYAMLLoader(t *testing.T) {
	t.Parallel()

	t.Run("config file sets flags", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cdpdoc.yaml")
		config := "data-dir: /srv/cdp-docs\nembedder: gemini\nthreshold: 0.42\nlimit: 3\nverbose: true\n"
		require.NoError(t, os.WriteFile(path, []byte(config), 0644))

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}), kong.Configuration(main.YAMLLoader))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"--config", path, "status"})
		require.NoError(t, err)

		assert.Equal(t, "/srv/cdp-docs", cli.DataDir)
		assert.Equal(t, "gemini", cli.Embedder)
		assert.InDelta(t, 0.42, cli.Threshold, 1e-9)
		assert.Equal(t, 3, cli.Limit)
		assert.True(t, cli.Verbose)
		assert.Equal(t, 20, cli.Candidates)
	})

	t.Run("flags override config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cdpdoc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("limit: 3\n"), 0644))

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}), kong.Configuration(main.YAMLLoader))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"--config", path, "--limit", "7", "status"})
		require.NoError(t, err)

		assert.Equal(t, 7, cli.Limit)
	})

	t.Run("empty file is valid", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAMLLoader(bytes.NewReader(nil))

		require.NoError(t, err)
	})

	t.Run("invalid YAML is an error", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAMLLoader(bytes.NewReader([]byte("limit: [unclosed")))

		require.Error(t, err)
	})
}
