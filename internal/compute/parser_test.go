package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantCmd Command
		wantErr error
	}{
		{
			name:    "Empty command",
			input:   "",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "Command without arguments",
			input:   "GET",
			wantErr: ErrInvalidFormat,
		},
		{
			name:  "Valid GET command",
			input: "GET user key1",
			wantCmd: Command{
				Type: "GET",
				Args: []string{"user", "key1"},
			},
		},
		{
			name:  "Lowercase command",
			input: "get user key1",
			wantCmd: Command{
				Type: "GET",
				Args: []string{"user", "key1"},
			},
		},
		{
			name:  "Valid SET command",
			input: "SET user key1 value1",
			wantCmd: Command{
				Type: "SET",
				Args: []string{"user", "key1", "value1"},
			},
		},
		{
			name:  "SET command with ttl",
			input: "SET user key1 value1 1h",
			wantCmd: Command{
				Type: "SET",
				Args: []string{"user", "key1", "value1", "1h"},
			},
		},
		{
			name:    "Invalid SET command",
			input:   "SET user key1",
			wantErr: ErrInvalidSetFormat,
		},
		{
			name:    "SET command with extra arguments",
			input:   "SET user key1 value1 1h extra",
			wantErr: ErrInvalidSetFormat,
		},
		{
			name:  "Valid DEL command",
			input: "DEL user key1",
			wantCmd: Command{
				Type: "DEL",
				Args: []string{"user", "key1"},
			},
		},
		{
			name:  "Valid ITEMS command",
			input: "ITEMS user",
			wantCmd: Command{
				Type: "ITEMS",
				Args: []string{"user"},
			},
		},
		{
			name:  "SECRET without passphrase",
			input: "SECRET",
			wantCmd: Command{
				Type: "SECRET",
				Args: []string{},
			},
		},
		{
			name:  "HELP command",
			input: "help",
			wantCmd: Command{
				Type: "HELP",
				Args: []string{},
			},
		},
		{
			name:    "Unknown command",
			input:   "UNKNOWN key1",
			wantErr: ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCmd, cmd)
		})
	}
}
