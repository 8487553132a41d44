package cli

import (
	"context"
	"strings"

	"ghroast/pkg/cli/config"
	"ghroast/pkg/domain/model"
	"ghroast/pkg/infra"
	"ghroast/pkg/usecase"
	"ghroast/pkg/utils/logging"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func roastCommand() *cli.Command {
	var (
		githubCfg  config.GitHub
		backendCfg config.Backend
		spicy      bool
		quick      bool
		output     string
	)

	return &cli.Command{
		Name:      "roast",
		Aliases:   []string{"r"},
		Usage:     "Analyze a repository and roast its README claims",
		ArgsUsage: "[owner/repo | github.com/owner/repo | https://github.com/owner/repo]",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "spicy",
				Usage:       "Extra spicy roasts",
				Destination: &spicy,
			},
			&cli.BoolFlag{
				Name:        "quick",
				Usage:       "Quick roast without AI (offline mode)",
				Destination: &quick,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Save the roast to a file",
				Destination: &output,
			},
		}, githubCfg.Flags(), backendCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			ref, err := resolveRepoRef(c.Args().First())
			if err != nil {
				return err
			}

			return runRoast(ctx, ref, &githubCfg, &backendCfg, spicy, quick, output)
		},
	}
}

// resolveRepoRef parses the repository reference argument. When no argument
// is given the owner/repo is auto-detected from the origin remote of the
// current working directory.
func resolveRepoRef(arg string) (*model.RepoRef, error) {
	if arg != "" {
		return model.ParseRepoRef(arg)
	}
	return detectRepoFromGit()
}

func detectRepoFromGit() (*model.RepoRef, error) {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return nil, goerr.Wrap(err, "no repository reference given and the current directory is not a git repository")
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return nil, goerr.New("no remote URL found")
	}

	// SSH format (git@github.com:owner/repo.git) or HTTPS format
	// (https://github.com/owner/repo.git)
	url := remote.Config().URLs[0]
	if strings.HasPrefix(url, "git@github.com:") {
		url = "github.com/" + strings.TrimPrefix(url, "git@github.com:")
	}

	ref, err := model.ParseRepoRef(url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return ref, nil
}

func runRoast(ctx context.Context, ref *model.RepoRef, githubCfg *config.GitHub, backendCfg *config.Backend, spicy, quick bool, output string) error {
	_, ctx = logging.CtxRequestID(ctx)

	logging.From(ctx).Info("starting roast",
		"repo", ref.FullName(),
		"github", githubCfg,
		"backend", backendCfg,
		"spicy", spicy,
		"quick", quick,
	)

	clientOpts := []infra.Option{
		infra.WithRepoHosting(githubCfg.New()),
	}
	if !quick {
		generator, err := backendCfg.New(ctx)
		if err != nil {
			return err
		}
		clientOpts = append(clientOpts, infra.WithTextGenerator(generator))
	}

	uc := usecase.New(infra.New(clientOpts...))

	printHeader()
	printStep("Analyzing repository...")

	report, err := uc.Analyze(ctx, ref)
	if err != nil {
		return err
	}

	printFound(report)

	var roast string
	if quick {
		printStep("Generating quick roast (offline mode)...")
		roast = usecase.QuickRoast(report)
	} else {
		label := ""
		if spicy {
			label = "spicy "
		}
		printStep("Generating " + label + "roast with " + string(backendCfg.Model()) + "...")

		roast, err = uc.GenerateRoast(ctx, report, spicy)
		if err != nil {
			printBackendHints()
			return err
		}
	}

	renderRoast(roast)
	printFooter()

	if output != "" {
		if err := writeOutput(output, roast); err != nil {
			return err
		}
		printStep("Saved to: " + output)
	}

	return nil
}
