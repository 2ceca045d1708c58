package compute

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/8thgencore/webstore/internal/storage"
)

// Store is the part of the storage facade the handler drives
type Store interface {
	SetItem(field, key string, value any, expiry *time.Time) error
	Item(field, key string) (storage.Item, bool, error)
	RemoveItem(field, key string) error
	GetItems(field string) (map[string]storage.Item, error)
	RemoveItems(field string) error
	SetEncryptKey(passphrase string)
	SetEncode(encode bool)
	SetDelimiter(delimiter string)
}

// Handler is a struct that handles commands
type Handler struct {
	log   *slog.Logger
	store Store
	now   func() time.Time
}

// NewHandler creates a new Handler
func NewHandler(log *slog.Logger, store Store) *Handler {
	return &Handler{log: log, store: store, now: time.Now}
}

// Handle parses and executes a command line
func (h *Handler) Handle(input string) (string, error) {
	cmd, err := ParseCommand(input)
	if err != nil {
		return "", err
	}

	return h.Execute(cmd)
}

// Execute runs a parsed command
func (h *Handler) Execute(cmd Command) (string, error) {
	if err := ValidateCommand(cmd); err != nil {
		return "", err
	}

	// Args of SECRET are never logged
	if cmd.Type == CommandSecret {
		h.log.Debug("Handling command", "type", cmd.Type)
	} else {
		h.log.Debug("Handling command", "type", cmd.Type, "args", cmd.Args)
	}

	switch cmd.Type {
	case CommandSet:
		return h.set(cmd.Args)

	case CommandGet:
		item, ok, err := h.store.Item(cmd.Args[0], cmd.Args[1])
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrKeyNotFound
		}
		return string(item.Value), nil

	case CommandDel:
		if err := h.store.RemoveItem(cmd.Args[0], cmd.Args[1]); err != nil {
			return "", err
		}
		return ResponseOK, nil

	case CommandItems:
		items, err := h.store.GetItems(cmd.Args[0])
		if err != nil {
			return "", err
		}
		return formatItems(items), nil

	case CommandClear:
		if err := h.store.RemoveItems(cmd.Args[0]); err != nil {
			return "", err
		}
		return ResponseOK, nil

	case CommandSecret:
		passphrase := ""
		if len(cmd.Args) == 1 {
			passphrase = cmd.Args[0]
		}
		h.store.SetEncryptKey(passphrase)
		return ResponseOK, nil

	case CommandEncode:
		encode, err := parseSwitch(cmd.Args[0])
		if err != nil {
			return "", err
		}
		h.store.SetEncode(encode)
		return ResponseOK, nil

	case CommandDelim:
		h.store.SetDelimiter(cmd.Args[0])
		return ResponseOK, nil

	case CommandHelp, CommandHelpAlt:
		return HelpMessage, nil
	}

	return "", ErrUnknownCommand
}

func (h *Handler) set(args []string) (string, error) {
	var expiry *time.Time
	if len(args) == 4 {
		ttl, err := time.ParseDuration(args[3])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTTL, args[3])
		}
		at := h.now().Add(ttl)
		expiry = &at
	}

	if err := h.store.SetItem(args[0], args[1], parseValue(args[2]), expiry); err != nil {
		return "", err
	}

	return ResponseOK, nil
}

// parseValue keeps valid JSON as is and treats anything else as a string
func parseValue(s string) any {
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	return s
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidSwitch, s)
	}
	return v, nil
}

func formatItems(items map[string]storage.Item) string {
	if len(items) == 0 {
		return ResponseEmpty
	}

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		item := items[k]
		fmt.Fprintf(&b, "%s = %s", k, item.Value)
		if item.Expiry != nil {
			fmt.Fprintf(&b, " (expires %s)", item.Expiry.UTC().Format(time.RFC3339))
		}
	}

	return b.String()
}
