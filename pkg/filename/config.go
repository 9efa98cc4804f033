package filename

import (
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/University4Industry/filename-sanitizer/pkg/logger"
)

// Config describes a sanitization policy read from the environment.
// Zero fields keep the Sanitizer defaults, so a hand-built Config only
// needs the fields it changes.
type Config struct {
	Passes     []Pass        `env:"FILENAME_SANITIZER_PASSES" envSeparator:"," envDefault:"markup,risky,illegal"`
	EncodeHigh *bool         `env:"FILENAME_SANITIZER_ENCODE_HIGH" envDefault:"true"`
	LogLevel   slog.Level    `env:"FILENAME_SANITIZER_LOG_LEVEL" envDefault:"info"`
	LogFormat  logger.Format `env:"FILENAME_SANITIZER_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig loads the given .env files, or the default .env if present when
// none are given, then parses Config from the environment. Variables already
// set in the process take precedence over .env files.
func LoadConfig(paths ...string) (Config, error) {
	if len(paths) == 0 {
		// The default .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(paths...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnv, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Options converts the config into Sanitizer options. Extra logger options
// are applied after the configured level and format.
func (c Config) Options(logOpts ...logger.Option) []Option {
	opts := []logger.Option{
		logger.WithLevel(c.LogLevel),
		logger.WithAttr(logger.Component("filename")),
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(c.LogFormat))
	}
	opts = append(opts, logOpts...)

	options := []Option{
		WithLogger(logger.New(opts...)),
		WithPasses(c.Passes...),
	}
	if c.EncodeHigh != nil {
		options = append(options, WithHighCharacterEncoding(*c.EncodeHigh))
	}
	return options
}

// NewFromConfig returns a Sanitizer holding name configured by cfg.
func NewFromConfig(name string, cfg Config, logOpts ...logger.Option) *Sanitizer {
	return New(name, cfg.Options(logOpts...)...)
}
