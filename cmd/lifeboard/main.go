package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

const version = "1.0.0"

type Globals struct {
	EnvFile string `help:"Dotenv file to load before reading the environment." default:".env" type:"path"`
	DBPath  string `help:"SQLite database path. Overrides DB_PATH." type:"path"`
}

var CLI struct {
	Globals

	Version       kong.VersionFlag `help:"Print version and exit."`
	Serve         ServeCmd         `cmd:"" help:"Run the HTTP API." default:"1"`
	ResetPassword ResetPasswordCmd `cmd:"" help:"Reset a user's password."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lifeboard"),
		kong.Description("Personal life management API"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&CLI.Globals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
