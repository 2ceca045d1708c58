package main

import (
	"fmt"
	"os"
	"time"

	"github.com/8thgencore/webstore/internal/app"
	"github.com/8thgencore/webstore/internal/compute"
	"github.com/8thgencore/webstore/internal/config"
	"github.com/alecthomas/kong"
)

// CLI is the command line of webstore
type CLI struct {
	Config    string `help:"Path to YAML config file." type:"path" short:"c"`
	Kind      string `help:"Storage kind: Session, Local, Memory or Cookie." short:"k"`
	Secret    string `help:"Encryption passphrase."`
	Raw       bool   `help:"Store raw JSON instead of percent-encoded JSON."`
	Delimiter string `help:"Field delimiter." short:"d"`
	Local     string `help:"Database file used by Local storage." type:"path"`

	Set   SetCmd   `cmd:"" help:"Store a value."`
	Get   GetCmd   `cmd:"" help:"Print a value."`
	Del   DelCmd   `cmd:"" help:"Remove a value."`
	Items ItemsCmd `cmd:"" help:"Print every value of a field."`
	Clear ClearCmd `cmd:"" help:"Remove every value of a field."`
	Shell ShellCmd `cmd:"" default:"1" help:"Start an interactive shell (default)."`
}

// SetCmd stores a value
type SetCmd struct {
	Field string        `arg:"" help:"Field the key belongs to."`
	Key   string        `arg:"" help:"Key within the field."`
	Value string        `arg:"" help:"JSON value; anything that is not JSON is stored as a string."`
	TTL   time.Duration `help:"Expire after this duration (negative values expire immediately)."`
}

// Run executes the command
func (c *SetCmd) Run(a *app.App) error {
	args := []string{c.Field, c.Key, c.Value}
	if c.TTL != 0 {
		args = append(args, c.TTL.String())
	}
	return printResult(a.Exec(compute.CommandSet, args...))
}

// GetCmd prints a value
type GetCmd struct {
	Field string `arg:""`
	Key   string `arg:""`
}

// Run executes the command
func (c *GetCmd) Run(a *app.App) error {
	return printResult(a.Exec(compute.CommandGet, c.Field, c.Key))
}

// DelCmd removes a value
type DelCmd struct {
	Field string `arg:""`
	Key   string `arg:""`
}

// Run executes the command
func (c *DelCmd) Run(a *app.App) error {
	return printResult(a.Exec(compute.CommandDel, c.Field, c.Key))
}

// ItemsCmd prints every value of a field
type ItemsCmd struct {
	Field string `arg:""`
}

// Run executes the command
func (c *ItemsCmd) Run(a *app.App) error {
	return printResult(a.Exec(compute.CommandItems, c.Field))
}

// ClearCmd removes every value of a field
type ClearCmd struct {
	Field string `arg:""`
}

// Run executes the command
func (c *ClearCmd) Run(a *app.App) error {
	return printResult(a.Exec(compute.CommandClear, c.Field))
}

// ShellCmd starts the interactive shell
type ShellCmd struct{}

// Run executes the command
func (c *ShellCmd) Run(a *app.App) error {
	return a.Run(os.Stdin, os.Stdout)
}

func printResult(result string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// apply lets flags override the loaded configuration
func (c *CLI) apply(cfg *config.Config) {
	if c.Kind != "" {
		cfg.Storage.Kind = c.Kind
	}
	if c.Secret != "" {
		cfg.Storage.EncryptKey = c.Secret
	}
	if c.Raw {
		cfg.Storage.DisableEncoding = true
	}
	if c.Delimiter != "" {
		cfg.Storage.Delimiter = c.Delimiter
	}
	if c.Local != "" {
		cfg.Storage.LocalPath = c.Local
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("webstore"),
		kong.Description("Namespaced key-value storage with optional encoding and encryption."),
		kong.UsageOnError(),
	)

	// Load configuration
	cfg, err := config.NewConfig(cli.Config)
	ctx.FatalIfErrorf(err)
	cli.apply(cfg)

	// Create application
	application, err := app.New(cfg)
	ctx.FatalIfErrorf(err)

	// Run the selected command
	err = ctx.Run(application)
	if closeErr := application.Close(); err == nil {
		err = closeErr
	}
	ctx.FatalIfErrorf(err)
}
