package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

// Version задаётся при сборке через ldflags
var Version = "dev"

func main() {
	app := &cli.Command{
		Name:    "orderctl",
		Version: Version,
		Usage:   "admin client for the storefront orders API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "orders REST API base URL",
				Aliases: []string{"a"},
				Sources: cli.EnvVars("ORDERCTL_ADDR"),
				Value:   "http://localhost:8080",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "timeout for a single command",
				Aliases: []string{"t"},
				Value:   10 * time.Second,
			},
		},
		Commands: []*cli.Command{
			getCmd,
			listCmd,
			actionsCmd,
			statusCmd,
			paymentCmd,
			createCmd,
			healthCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
