package model

import (
	"regexp"
	"strings"
	"time"

	"ghroast/pkg/domain/types"

	"github.com/m-mizutani/goerr/v2"
)

// RepoRef identifies a GitHub repository. Immutable after ParseRepoRef.
type RepoRef struct {
	Owner string
	Name  string
}

var ptnGitHubPath = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// ParseRepoRef parses a repository reference. Accepted forms:
//   - https://github.com/owner/repo
//   - github.com/owner/repo
//   - owner/repo
func ParseRepoRef(ref string) (*RepoRef, error) {
	ref = strings.TrimRight(strings.TrimSpace(ref), "/")

	if strings.Contains(ref, "github.com") {
		if m := ptnGitHubPath.FindStringSubmatch(ref); m != nil {
			return &RepoRef{
				Owner: m[1],
				Name:  strings.TrimSuffix(m[2], ".git"),
			}, nil
		}
	} else {
		parts := strings.Split(ref, "/")
		if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
			return &RepoRef{
				Owner: parts[0],
				Name:  strings.TrimSuffix(parts[1], ".git"),
			}, nil
		}
	}

	return nil, goerr.Wrap(types.ErrInvalidRepoRef, "unsupported reference format", goerr.V("ref", ref))
}

func (x *RepoRef) FullName() string {
	return x.Owner + "/" + x.Name
}

func (x *RepoRef) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidRepoRef, "owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidRepoRef, "repository name is empty")
	}
	return nil
}

// RepoMetadata is the top-level repository record fetched from the hosting
// platform. Failure to fetch it is the only fatal condition in an analysis.
type RepoMetadata struct {
	FullName      string
	Description   string
	Stars         int
	Forks         int
	Watchers      int
	OpenIssues    int
	Language      string
	DefaultBranch string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PushedAt      time.Time
	Size          int
	License       string
}

// RepoEntry is a single entry of a repository directory listing
type RepoEntry struct {
	Name  string
	IsDir bool
}
