package storage

import (
	"log/slog"

	"github.com/8thgencore/webstore/internal/backend/cookie"
)

// DefaultDelimiter separates field and key in composite keys
const DefaultDelimiter = "."

// DefaultLocalPath is the database used by the Local kind when no path is given
const DefaultLocalPath = "webstore.db"

// Options configure a Storage at construction time
type Options struct {
	Encode     bool
	EncryptKey string
	Delimiter  string
	LocalPath  string
	Document   *cookie.Document
	Logger     *slog.Logger
}

// Option mutates Options
type Option func(*Options)

func newDefaultOptions() *Options {
	return &Options{
		Encode:    true,
		Delimiter: DefaultDelimiter,
		LocalPath: DefaultLocalPath,
	}
}

// WithEncode enables or disables percent-encoding of stored payloads
func WithEncode(encode bool) Option {
	return func(opts *Options) {
		opts.Encode = encode
	}
}

// WithEncryptKey sets the encryption passphrase. An empty passphrase disables encryption.
func WithEncryptKey(passphrase string) Option {
	return func(opts *Options) {
		opts.EncryptKey = passphrase
	}
}

// WithDelimiter sets the field delimiter. An empty delimiter is ignored.
func WithDelimiter(delimiter string) Option {
	return func(opts *Options) {
		if delimiter != "" {
			opts.Delimiter = delimiter
		}
	}
}

// WithLocalPath sets the database file used by the Local kind
func WithLocalPath(path string) Option {
	return func(opts *Options) {
		opts.LocalPath = path
	}
}

// WithDocument sets the cookie document used by the Cookie kind
func WithDocument(doc *cookie.Document) Option {
	return func(opts *Options) {
		opts.Document = doc
	}
}

// WithLogger sets the logger used for debug tracing of operations
func WithLogger(log *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = log
	}
}
