package compute

import (
	"strings"
)

// Command is a parsed command line
type Command struct {
	Type string
	Args []string
}

// ParseCommand parses a command line into a Command
func ParseCommand(input string) (Command, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return Command{}, ErrInvalidFormat
	}

	cmd := Command{
		Type: strings.ToUpper(parts[0]),
		Args: parts[1:],
	}

	if err := ValidateCommand(cmd); err != nil {
		return Command{}, err
	}

	return cmd, nil
}

// ValidateCommand checks the argument count of cmd
func ValidateCommand(cmd Command) error {
	switch cmd.Type {
	case CommandSet:
		if len(cmd.Args) < 3 || len(cmd.Args) > 4 {
			return ErrInvalidSetFormat
		}
	case CommandGet, CommandDel:
		if len(cmd.Args) != 2 {
			return ErrInvalidFormat
		}
	case CommandItems, CommandClear, CommandEncode, CommandDelim:
		if len(cmd.Args) != 1 {
			return ErrInvalidFormat
		}
	case CommandSecret:
		// Without an argument encryption is turned off
		if len(cmd.Args) > 1 {
			return ErrInvalidFormat
		}
	case CommandHelp, CommandHelpAlt:
		// No arguments needed
	default:
		return ErrUnknownCommand
	}

	return nil
}
