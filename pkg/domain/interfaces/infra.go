package interfaces

import (
	"context"
	"time"

	"ghroast/pkg/domain/model"
)

// RepoHosting is a read-only handle to the repository hosting platform.
// GetRepository failure is fatal for an analysis; every other method backs a
// best-effort probe and its error degrades into a default value.
type RepoHosting interface {
	GetRepository(ctx context.Context, owner, name string) (*model.RepoMetadata, error)
	GetReadme(ctx context.Context, owner, name string) (string, error)
	GetFileContent(ctx context.Context, owner, name, path string) (string, error)
	PathExists(ctx context.Context, owner, name, path string) (bool, error)
	ListRootEntries(ctx context.Context, owner, name string) ([]model.RepoEntry, error)
	ListTreePaths(ctx context.Context, owner, name, ref string) ([]string, error)
	ListLanguages(ctx context.Context, owner, name string) (map[string]int, error)
	CountCommitsSince(ctx context.Context, owner, name string, since time.Time) (int, error)
	CountClosedIssues(ctx context.Context, owner, name string) (int, error)
}

// TextGenerator sends a persona instruction and a prompt to a
// text-generation backend and returns the raw response text.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}
