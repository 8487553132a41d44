package config

import (
	"log/slog"

	"ghroast/pkg/domain/types"
	"ghroast/pkg/infra/ghrepo"

	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token types.GitHubToken `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (optional, raises API rate limits)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITHUB_TOKEN", "GHROAST_GITHUB_TOKEN"),
		},
	}
}

func (x GitHub) New() *ghrepo.Client {
	return ghrepo.New(x.token)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
	)
}
