package configure

import (
	"fmt"

	"github.com/artuross/exprcalc/internal/commands/configure/config"
	"github.com/artuross/exprcalc/internal/settings"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "configure",
		Usage: "Writes the settings file used by the REPL.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-file",
				Usage: "Destination path for the settings file. Defaults to the user config directory.",
			},
			&cli.StringFlag{
				Name:  "prompt",
				Usage: "Prompt shown before every program.",
				Value: settings.DefaultPrompt,
			},
			&cli.StringFlag{
				Name:  "continuation-prompt",
				Usage: "Prompt shown while a program is not complete.",
				Value: settings.DefaultContinuationPrompt,
			},
			&cli.StringFlag{
				Name:  "history-file",
				Usage: "Path of the REPL history file. Defaults to ~/.exprcalc_history.",
			},
			&cli.StringFlag{
				Name:  "repl-log-level",
				Usage: "Log level of the REPL when neither --log-level nor EXPRCALC_LOG_LEVEL is set.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	cfg, err := config.Read(cliCtx, settings.DefaultPath)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	config.Print(cliCtx.App.Writer, cfg)

	if err := settings.Save(cfg.Path, &cfg.Settings); err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	return nil
}
