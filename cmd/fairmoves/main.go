package main

import (
	"errors"

	"github.com/alecthomas/kong"

	"github.com/lox/fairmoves/internal/session"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"warn"`
	Debug    bool   `help:"Enable debug logging (overrides --log-level)"`
	NoColor  bool   `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play a round against the computer (default)"`
	Table   TableCmd         `cmd:"" help:"Print who beats whom for a list of moves"`
	Verify  VerifyCmd        `cmd:"" help:"Check a revealed key against a published HMAC"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fairmoves"),
		kong.Description("Provably fair rock-paper-scissors with any odd number of moves"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	if errors.Is(err, session.ErrExit) {
		ctx.Exit(1)
	}
	ctx.FatalIfErrorf(err)
}
