package ghrepo

import (
	"context"
	"net/http"
	"time"

	"ghroast/pkg/domain/interfaces"
	"ghroast/pkg/domain/model"
	"ghroast/pkg/domain/types"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// Client reads public repository metadata via the GitHub REST API. A token
// is optional; anonymous access works with a lower rate limit.
type Client struct {
	gh *github.Client
}

var _ interfaces.RepoHosting = (*Client)(nil)

func New(token types.GitHubToken) *Client {
	if token == "" {
		return &Client{gh: github.NewClient(nil)}
	}
	return &Client{gh: github.NewTokenClient(context.Background(), string(token))}
}

func (x *Client) GetRepository(ctx context.Context, owner, name string) (*model.RepoMetadata, error) {
	repo, _, err := x.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner), goerr.V("repo", name))
	}

	return &model.RepoMetadata{
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		Watchers:      repo.GetSubscribersCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		Language:      repo.GetLanguage(),
		DefaultBranch: repo.GetDefaultBranch(),
		CreatedAt:     repo.GetCreatedAt().Time,
		UpdatedAt:     repo.GetUpdatedAt().Time,
		PushedAt:      repo.GetPushedAt().Time,
		Size:          repo.GetSize(),
		License:       repo.GetLicense().GetName(),
	}, nil
}

func (x *Client) GetReadme(ctx context.Context, owner, name string) (string, error) {
	readme, _, err := x.gh.Repositories.GetReadme(ctx, owner, name, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get readme")
	}

	content, err := readme.GetContent()
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode readme")
	}

	return content, nil
}

func (x *Client) GetFileContent(ctx context.Context, owner, name, path string) (string, error) {
	file, _, _, err := x.gh.Repositories.GetContents(ctx, owner, name, path, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get file content", goerr.V("path", path))
	}
	if file == nil {
		return "", goerr.New("path is not a file", goerr.V("path", path))
	}

	content, err := file.GetContent()
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode file content", goerr.V("path", path))
	}

	return content, nil
}

func (x *Client) PathExists(ctx context.Context, owner, name, path string) (bool, error) {
	_, _, resp, err := x.gh.Repositories.GetContents(ctx, owner, name, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to probe path", goerr.V("path", path))
	}
	return true, nil
}

func (x *Client) ListRootEntries(ctx context.Context, owner, name string) ([]model.RepoEntry, error) {
	_, dir, _, err := x.gh.Repositories.GetContents(ctx, owner, name, "", nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repository root")
	}

	entries := make([]model.RepoEntry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, model.RepoEntry{
			Name:  item.GetName(),
			IsDir: item.GetType() == "dir",
		})
	}

	return entries, nil
}

func (x *Client) ListTreePaths(ctx context.Context, owner, name, ref string) ([]string, error) {
	tree, _, err := x.gh.Git.GetTree(ctx, owner, name, ref, true)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get git tree", goerr.V("ref", ref))
	}

	paths := make([]string, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		paths = append(paths, entry.GetPath())
	}

	return paths, nil
}

func (x *Client) ListLanguages(ctx context.Context, owner, name string) (map[string]int, error) {
	languages, _, err := x.gh.Repositories.ListLanguages(ctx, owner, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list languages")
	}
	return languages, nil
}

// CountCommitsSince counts commits with a timestamp at or after since. With
// one item per page, the last page number equals the total commit count.
func (x *Client) CountCommitsSince(ctx context.Context, owner, name string, since time.Time) (int, error) {
	commits, resp, err := x.gh.Repositories.ListCommits(ctx, owner, name, &github.CommitsListOptions{
		Since:       since,
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list commits")
	}

	if resp.LastPage > 0 {
		return resp.LastPage, nil
	}
	return len(commits), nil
}

func (x *Client) CountClosedIssues(ctx context.Context, owner, name string) (int, error) {
	issues, resp, err := x.gh.Issues.ListByRepo(ctx, owner, name, &github.IssueListByRepoOptions{
		State:       "closed",
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list closed issues")
	}

	if resp.LastPage > 0 {
		return resp.LastPage, nil
	}
	return len(issues), nil
}
