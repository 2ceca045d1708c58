// Package sl holds shared slog attributes
package sl

import "log/slog"

// Err returns a slog.Attr with the error message
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Key returns a slog.Attr naming a composite storage key
func Key(name string) slog.Attr {
	return slog.String("key", name)
}
