package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Pass records the sanitization pass name under the key "pass".
func Pass(name string) slog.Attr {
	return slog.String("pass", name)
}

// Length records a byte length under the given key.
func Length(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Removed records how many bytes a pass dropped under the key "removed".
// Negative values mean the pass grew the value (escaping).
func Removed(n int) slog.Attr {
	return slog.Int("removed", n)
}
