package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/hanfei1991/queuelab/pkg/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "queuectl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	require.NoError(t, cfg.Load(nil))
	require.Equal(t, "queue", cfg.DefaultKind)
	require.Equal(t, 5, cfg.Capacity)
	require.True(t, cfg.AutoRender)

	var decoded Config
	_, err := toml.Decode(SampleConfig, &decoded)
	require.NoError(t, err)
	cfg.ConfigFile = ""
	require.Equal(t, *cfg, decoded)
}

func TestLoadFileWithFlagOverride(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
default-kind = "circular"
capacity = 8
log-level = "info"
`)
	cfg := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(fs)
	kinds := fs.StringSlice("kinds", nil, "flag owned by a sub command")
	require.NoError(t, fs.Parse([]string{"--config", path, "--capacity", "3", "--kinds", "queue,deque"}))

	require.NoError(t, cfg.Load(fs))
	require.Equal(t, "circular", cfg.DefaultKind)
	require.Equal(t, 3, cfg.Capacity)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, path, cfg.ConfigFile)
	require.Equal(t, []string{"queue", "deque"}, *kinds)

	out, err := cfg.Toml()
	require.NoError(t, err)
	require.Contains(t, out, `default-kind = "circular"`)
	require.Contains(t, cfg.String(), `"capacity":3`)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		content string
		match   func(error) bool
		msg     string
	}{
		{
			content: "unknown-item = 1\n",
			match:   errors.ErrConfigUnknownItem.Equal,
			msg:     ".*unknown config items: unknown-item",
		},
		{
			content: "capacity = 0\n",
			match:   errors.ErrConfigInvalidValue.Equal,
			msg:     ".*invalid config value capacity: 0",
		},
		{
			content: "capacity = 9000000000000000000\n",
			match:   errors.ErrConfigInvalidValue.Equal,
			msg:     ".*invalid config value capacity: 9000000000000000000",
		},
		{
			content: "log-format = \"xml\"\n",
			match:   errors.ErrConfigInvalidValue.Equal,
			msg:     ".*invalid config value log-format: xml",
		},
		{
			content: "capacity = ",
			msg:     ".*decode config file failed.*",
		},
	}
	for _, tc := range testCases {
		cfg := NewConfig()
		cfg.ConfigFile = writeConfigFile(t, tc.content)
		err := cfg.Load(nil)
		require.Error(t, err)
		if tc.match != nil {
			require.True(t, tc.match(err), err.Error())
		}
		require.Regexp(t, tc.msg, err.Error())
	}
}
