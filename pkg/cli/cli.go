package cli

import (
	"context"

	"ghroast/pkg/cli/config"
	"ghroast/pkg/utils/errutil"
	"ghroast/pkg/utils/logging"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		sentryCfg config.Sentry
	)

	app := &cli.Command{
		Name:  "ghroast",
		Usage: "Roast GitHub repositories by comparing README claims against evidence",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("GHROAST_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("GHROAST_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Sources:     cli.EnvVars("GHROAST_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		}, sentryCfg.Flags()),
		Commands: []*cli.Command{
			roastCommand(),
			examplesCommand(),
			setupCommand(),
			randomCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// A local .env can supply GITHUB_TOKEN / GHROAST_API_KEY
			_ = godotenv.Load()

			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		errutil.HandleError(context.Background(), "fatal error", err)
		return err
	}

	return nil
}
