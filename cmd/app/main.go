package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/tiwaz/internal"
	pkgconfig "github.com/starford/tiwaz/pkg/config"
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tiwaz.yaml"
	}
	return filepath.Join(dir, "tiwaz", "config.yaml")
}

// newApp loads configuration and assembles the application. An explicitly
// given config file must exist; the default location is optional.
func newApp(cmd *cli.Command) (*internal.App, error) {
	cfg := internal.NewDefaultConfig()
	configPath := cmd.String("config")

	if cmd.IsSet("config") {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return internal.New(
		internal.WithConfig(cfg),
		internal.WithWorkdir(cmd.String("directory")),
	)
}

func main() {
	cmd := &cli.Command{
		Name:                  "tiwaz",
		Usage:                 "Pick a Makefile target with a fuzzy finder and run it in a floating terminal",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.config/tiwaz/config.yaml",
				Value:       defaultConfigPath(),
				Sources:     cli.EnvVars("TIWAZ_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "directory",
				Aliases: []string{"C"},
				Usage:   "Directory the Makefile search starts from",
				Value:   ".",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show targets in a fuzzy picker and run the selection",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "picker",
						Usage: "Force a picker backend (fzf, sk) instead of auto-detection",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := newApp(cmd)
					if err != nil {
						return err
					}
					return app.Show(ctx, cmd.String("picker"))
				},
			},
			{
				Name:  "list",
				Usage: "Print the target list to stdout",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Keep running and re-print when the Makefile changes",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := newApp(cmd)
					if err != nil {
						return err
					}
					return app.List(ctx, cmd.Bool("watch"))
				},
			},
			{
				Name:      "run",
				Usage:     "Run a named target directly, without the picker",
				ArgsUsage: "<target>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := newApp(cmd)
					if err != nil {
						return err
					}
					return app.Run(ctx, cmd.Args().First())
				},
				ShellComplete: func(ctx context.Context, cmd *cli.Command) {
					app, err := newApp(cmd)
					if err != nil {
						return
					}
					for _, name := range app.TargetNames() {
						fmt.Println(name)
					}
				},
			},
			{
				Name:      "init",
				Usage:     "Print the keybinding snippet for a shell (bash, zsh, fish)",
				ArgsUsage: "<shell>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := newApp(cmd)
					if err != nil {
						return err
					}
					return app.InitShell(cmd.Args().First())
				},
			},
			{
				Name:  "mcp",
				Usage: "Serve Makefile targets over the Model Context Protocol on stdio",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					app, err := newApp(cmd)
					if err != nil {
						return err
					}
					return app.ServeMCP(ctx)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
