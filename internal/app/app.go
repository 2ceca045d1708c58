package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/8thgencore/webstore/internal/backend"
	"github.com/8thgencore/webstore/internal/backend/cookie"
	"github.com/8thgencore/webstore/internal/compute"
	"github.com/8thgencore/webstore/internal/config"
	"github.com/8thgencore/webstore/internal/storage"
	"github.com/8thgencore/webstore/pkg/logger"
	"github.com/8thgencore/webstore/pkg/logger/sl"
)

// App represents the main application
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *storage.Storage
	handler *compute.Handler
}

// New creates a new instance of the application
func New(cfg *config.Config) (*App, error) {
	// Initialize logger
	log := logger.New(cfg.Env, cfg.Logging)

	kind, err := backend.ParseKind(cfg.Storage.Kind)
	if err != nil {
		return nil, err
	}

	opts := []storage.Option{
		storage.WithLogger(log),
		storage.WithEncode(!cfg.Storage.DisableEncoding),
		storage.WithEncryptKey(cfg.Storage.EncryptKey),
		storage.WithDelimiter(cfg.Storage.Delimiter),
	}

	switch kind {
	case backend.Local:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.LocalPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		opts = append(opts, storage.WithLocalPath(cfg.Storage.LocalPath))
	case backend.Cookie:
		doc := cookie.NewDocument()
		if cfg.Storage.Cookie != "" {
			if err := doc.Load(cfg.Storage.Cookie); err != nil {
				return nil, fmt.Errorf("failed to load cookies: %w", err)
			}
		}
		opts = append(opts, storage.WithDocument(doc))
	}

	// Initialize storage facade
	store, err := storage.New(kind, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", kind, err)
	}

	// Initialize command handler
	handler := compute.NewHandler(log, store)

	return &App{
		cfg:     cfg,
		log:     log,
		store:   store,
		handler: handler,
	}, nil
}

// Storage returns the storage facade
func (a *App) Storage() *storage.Storage {
	return a.store
}

// Exec runs a single command
func (a *App) Exec(cmdType string, args ...string) (string, error) {
	return a.handler.Execute(compute.Command{Type: cmdType, Args: args})
}

// Run reads commands from in until EOF or "exit" and writes responses to out
func (a *App) Run(in io.Reader, out io.Writer) error {
	a.log.Info("Starting webstore", "env", a.cfg.Env, "storage", a.store.Kind())
	fmt.Fprintln(out, "Type 'help' or '?' for available commands, 'exit' to quit.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" {
			a.log.Info("Exiting webstore")
			return nil
		}

		response, err := a.handler.Handle(input)
		if err != nil {
			a.log.Debug("Command failed", sl.Err(err))
			fmt.Fprintf(out, "ERROR: %s\n", err)
			continue
		}
		fmt.Fprintln(out, response)
	}
}

// Close releases the shared Local databases
func (a *App) Close() error {
	if err := storage.CloseLocal(); err != nil && !errors.Is(err, backend.ErrClosed) {
		return err
	}
	return nil
}
