package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/8thgencore/webstore/internal/backend"
	"github.com/8thgencore/webstore/internal/backend/cookie"
	"github.com/8thgencore/webstore/internal/backend/local"
	"github.com/8thgencore/webstore/internal/backend/memory"
)

// Local stores are shared by every facade that names the same path
var (
	localsMu sync.Mutex
	locals   = make(map[string]*local.Store)
)

func openBackend(kind backend.Kind, opts *Options) (backend.Backend, error) {
	switch kind {
	case backend.Session:
		return memory.Session(), nil
	case backend.Local:
		return openLocal(opts.LocalPath)
	case backend.Memory:
		return memory.New(), nil
	case backend.Cookie:
		return cookie.New(opts.Document), nil
	}

	return nil, fmt.Errorf("%w: %q", backend.ErrUnknownKind, kind)
}

func openLocal(path string) (*local.Store, error) {
	if path != ":memory:" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		path = abs
	}

	localsMu.Lock()
	defer localsMu.Unlock()

	if s, ok := locals[path]; ok {
		return s, nil
	}

	s, err := local.Open(path)
	if err != nil {
		return nil, err
	}
	locals[path] = s

	return s, nil
}

// CloseLocal closes every shared Local database. Facades using them fail
// with backend.ErrClosed afterwards.
func CloseLocal() error {
	localsMu.Lock()
	defer localsMu.Unlock()

	var errs []error
	for path, s := range locals {
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", path, err))
		}
		delete(locals, path)
	}

	return errors.Join(errs...)
}
