package filename_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/University4Industry/filename-sanitizer/pkg/filename"
	"github.com/University4Industry/filename-sanitizer/pkg/logger"
)

var configEnvVars = []string{
	"FILENAME_SANITIZER_PASSES",
	"FILENAME_SANITIZER_ENCODE_HIGH",
	"FILENAME_SANITIZER_LOG_LEVEL",
	"FILENAME_SANITIZER_LOG_FORMAT",
}

// clearConfigEnv unsets the config variables for the duration of the test.
// t.Setenv registers the cleanup that restores the original state, including
// anything a .env file loads later.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := filename.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filename.DefaultPasses(), cfg.Passes)
	require.NotNil(t, cfg.EncodeHigh)
	assert.True(t, *cfg.EncodeHigh)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, logger.FormatJSON, cfg.LogFormat)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FILENAME_SANITIZER_PASSES", "illegal, Markup")
	t.Setenv("FILENAME_SANITIZER_ENCODE_HIGH", "false")
	t.Setenv("FILENAME_SANITIZER_LOG_LEVEL", "debug")
	t.Setenv("FILENAME_SANITIZER_LOG_FORMAT", "text")

	cfg, err := filename.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []filename.Pass{filename.PassIllegal, filename.PassMarkup}, cfg.Passes)
	require.NotNil(t, cfg.EncodeHigh)
	assert.False(t, *cfg.EncodeHigh)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, logger.FormatText, cfg.LogFormat)
}

func TestLoadConfig_FromFile(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := filename.LoadConfig("testdata/.env.policy")
	require.NoError(t, err)

	assert.Equal(t, []filename.Pass{filename.PassMarkup, filename.PassIllegal}, cfg.Passes)
	require.NotNil(t, cfg.EncodeHigh)
	assert.False(t, *cfg.EncodeHigh)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, logger.FormatText, cfg.LogFormat)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FILENAME_SANITIZER_PASSES", "risky")

	cfg, err := filename.LoadConfig("testdata/.env.policy")
	require.NoError(t, err)

	assert.Equal(t, []filename.Pass{filename.PassRisky}, cfg.Passes)
	require.NotNil(t, cfg.EncodeHigh)
	assert.False(t, *cfg.EncodeHigh)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := filename.LoadConfig("testdata/does_not_exist.env")
	require.ErrorIs(t, err, filename.ErrLoadingEnv)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown pass", key: "FILENAME_SANITIZER_PASSES", value: "markup,php"},
		{name: "invalid bool", key: "FILENAME_SANITIZER_ENCODE_HIGH", value: "maybe"},
		{name: "invalid level", key: "FILENAME_SANITIZER_LOG_LEVEL", value: "loud"},
		{name: "invalid format", key: "FILENAME_SANITIZER_LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := filename.LoadConfig()
			require.ErrorIs(t, err, filename.ErrParsingConfig)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	encodeHigh := true
	cfg := filename.Config{
		Passes:     []filename.Pass{filename.PassIllegal},
		EncodeHigh: &encodeHigh,
		LogLevel:   slog.LevelDebug,
		LogFormat:  logger.FormatText,
	}

	s := filename.NewFromConfig("a<b>:c", cfg, logger.WithOutput(buf))
	assert.Equal(t, "abc", s.Apply().Filename())

	out := buf.String()
	assert.Contains(t, out, "pass=illegal")
	assert.Contains(t, out, "component=filename")
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	t.Run("zero config keeps defaults", func(t *testing.T) {
		t.Parallel()

		opts := filename.Config{}.Options(logger.WithOutput(&bytes.Buffer{}))
		out := filename.New("x<b>y</b>é?", opts...).Apply().Filename()
		assert.Equal(t, "x &#233;", out)
	})

	t.Run("encode high disabled", func(t *testing.T) {
		t.Parallel()

		encodeHigh := false
		cfg := filename.Config{
			Passes:     []filename.Pass{filename.PassRisky},
			EncodeHigh: &encodeHigh,
			LogFormat:  logger.FormatJSON,
		}
		out := filename.NewFromConfig("café`", cfg, logger.WithOutput(&bytes.Buffer{})).Apply().Filename()
		assert.Equal(t, "café", out)
	})
}
