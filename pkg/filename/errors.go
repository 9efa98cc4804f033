package filename

import "errors"

var (
	// ErrInvalidEncoding is returned when a value is not valid UTF-8 and
	// therefore cannot be escaped.
	ErrInvalidEncoding = errors.New("filename is not valid UTF-8")

	// ErrUnknownPass is returned when a pass name is not recognised.
	ErrUnknownPass = errors.New("unknown sanitization pass")

	// ErrLoadingEnv is returned when a requested .env file cannot be loaded.
	ErrLoadingEnv = errors.New("failed to load env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
