package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "matchctl",
		Usage: "Operator utility for the agrimatch matching engine",
		Commands: []*cli.Command{
			regionsCmd,
			distanceCmd,
			sweepCmd,
			migrateCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
