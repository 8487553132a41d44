package usecase

import (
	"context"
	"strings"
	"time"

	"ghroast/pkg/domain/model"
	"ghroast/pkg/domain/types"
	"ghroast/pkg/utils/logging"

	"github.com/m-mizutani/goerr/v2"
)

const commitWindow = 90 * 24 * time.Hour

var (
	testKeywords = []string{
		"test", "tests", "__tests__", "spec", "specs",
		"test_", "_test.py", ".test.js", ".spec.js", "_test.go",
	}
	benchmarkKeywords = []string{"benchmark", "bench"}
	docKeywords       = []string{"docs", "documentation", "doc", "wiki"}

	ciPaths = []string{
		".github/workflows",
		".travis.yml",
		".circleci",
		"Jenkinsfile",
		".gitlab-ci.yml",
		"azure-pipelines.yml",
	}
)

// Analyze gathers all evidence about a repository and returns an immutable
// report. Only the initial repository lookup is fatal; every sub-probe fails
// closed into a safe default so partial API outages or permission gaps do
// not abort the analysis.
func (x *UseCase) Analyze(ctx context.Context, ref *model.RepoRef) (*model.Report, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	hosting := x.clients.RepoHosting()

	meta, err := hosting.GetRepository(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, goerr.Wrap(types.ErrRepoInaccessible, err.Error(), goerr.V("repo", ref.FullName()))
	}

	logging.From(ctx).Info("analyzing repository",
		"repo", meta.FullName,
		"stars", meta.Stars,
		"language", meta.Language,
	)

	readme := trace(ctx, "readme", x.probeReadme(ctx, ref))
	deps := trace(ctx, "dependencies", x.probeDependencies(ctx, ref))
	hasTests := trace(ctx, "tests", x.probeTests(ctx, ref, meta.DefaultBranch))
	hasBenchmarks := trace(ctx, "benchmarks", x.probeRootKeywords(ctx, ref, benchmarkKeywords))
	hasCI := trace(ctx, "ci", x.probeCI(ctx, ref))
	hasDocs := trace(ctx, "docs", x.probeRootKeywords(ctx, ref, docKeywords))
	commits := trace(ctx, "commits", x.probeCommitActivity(ctx, ref))
	issues := trace(ctx, "issues", x.probeIssueStats(ctx, ref, meta.OpenIssues))
	languages := trace(ctx, "languages", x.probeLanguages(ctx, ref))

	report := &model.Report{
		Repo:        *ref,
		FullName:    meta.FullName,
		Description: meta.Description,
		Stars:       meta.Stars,
		Forks:       meta.Forks,
		Watchers:    meta.Watchers,
		OpenIssues:  meta.OpenIssues,
		Language:    meta.Language,
		CreatedAt:   meta.CreatedAt,
		UpdatedAt:   meta.UpdatedAt,
		PushedAt:    meta.PushedAt,
		Size:        meta.Size,
		License:     meta.License,

		Readme:       readme.Value,
		Claims:       model.ExtractClaims(readme.Value),
		Languages:    languages.Value,
		Dependencies: deps.Value,

		HasTests:      hasTests.Value,
		HasBenchmarks: hasBenchmarks.Value,
		HasCI:         hasCI.Value,
		HasDocs:       hasDocs.Value,

		Commits: commits.Value,
		Issues:  issues.Value,
	}

	// Coverage reports are never parsed; 0 means "no tests at all"
	if !report.HasTests {
		zero := 0
		report.TestCoverage = &zero
	}

	return report, nil
}

// trace logs degraded probes and passes the probe value through
func trace[T any](ctx context.Context, name string, probe model.Probe[T]) model.Probe[T] {
	if probe.Degraded {
		logging.From(ctx).Warn("evidence probe degraded",
			"probe", name,
			"reason", probe.Reason,
		)
	}
	return probe
}

func (x *UseCase) probeReadme(ctx context.Context, ref *model.RepoRef) model.Probe[string] {
	content, err := x.clients.RepoHosting().GetReadme(ctx, ref.Owner, ref.Name)
	if err != nil {
		return model.ProbeDegraded("", err.Error())
	}
	return model.ProbeOK(content)
}

// probeDependencies probes well-known manifest files in a fixed priority
// order and stops at the first one found. A manifest that exists but cannot
// be parsed is treated as not found.
func (x *UseCase) probeDependencies(ctx context.Context, ref *model.RepoRef) model.Probe[model.Dependencies] {
	hosting := x.clients.RepoHosting()

	for _, probe := range model.ManifestProbes {
		content, err := hosting.GetFileContent(ctx, ref.Owner, ref.Name, probe.Path)
		if err != nil {
			continue
		}

		deps, err := model.ParseManifest(probe.Kind, content)
		if err != nil {
			logging.From(ctx).Debug("skipping unparsable manifest",
				"path", probe.Path,
				"error", err,
			)
			continue
		}

		return model.ProbeOK(*deps)
	}

	return model.ProbeOK(model.Dependencies{})
}

func (x *UseCase) probeTests(ctx context.Context, ref *model.RepoRef, branch string) model.Probe[bool] {
	if branch == "" {
		return model.ProbeDegraded(false, "default branch is unknown")
	}

	paths, err := x.clients.RepoHosting().ListTreePaths(ctx, ref.Owner, ref.Name, branch)
	if err != nil {
		return model.ProbeDegraded(false, err.Error())
	}

	for _, path := range paths {
		for _, segment := range strings.Split(strings.ToLower(path), "/") {
			for _, keyword := range testKeywords {
				if strings.Contains(segment, keyword) {
					return model.ProbeOK(true)
				}
			}
		}
	}

	return model.ProbeOK(false)
}

// probeRootKeywords is a shallow presence check against the repository root
func (x *UseCase) probeRootKeywords(ctx context.Context, ref *model.RepoRef, keywords []string) model.Probe[bool] {
	entries, err := x.clients.RepoHosting().ListRootEntries(ctx, ref.Owner, ref.Name)
	if err != nil {
		return model.ProbeDegraded(false, err.Error())
	}

	for _, entry := range entries {
		name := strings.ToLower(entry.Name)
		for _, keyword := range keywords {
			if strings.Contains(name, keyword) {
				return model.ProbeOK(true)
			}
		}
	}

	return model.ProbeOK(false)
}

func (x *UseCase) probeCI(ctx context.Context, ref *model.RepoRef) model.Probe[bool] {
	hosting := x.clients.RepoHosting()

	var lastErr error
	for _, path := range ciPaths {
		exists, err := hosting.PathExists(ctx, ref.Owner, ref.Name, path)
		if err != nil {
			lastErr = err
			continue
		}
		if exists {
			return model.ProbeOK(true)
		}
	}

	if lastErr != nil {
		return model.ProbeDegraded(false, lastErr.Error())
	}
	return model.ProbeOK(false)
}

func (x *UseCase) probeCommitActivity(ctx context.Context, ref *model.RepoRef) model.Probe[model.CommitActivity] {
	since := logging.CtxTime(ctx).Add(-commitWindow)

	count, err := x.clients.RepoHosting().CountCommitsSince(ctx, ref.Owner, ref.Name, since)
	if err != nil {
		return model.ProbeDegraded(model.NewCommitActivity(0), err.Error())
	}

	return model.ProbeOK(model.NewCommitActivity(count))
}

func (x *UseCase) probeIssueStats(ctx context.Context, ref *model.RepoRef, open int) model.Probe[model.IssueStats] {
	closed, err := x.clients.RepoHosting().CountClosedIssues(ctx, ref.Owner, ref.Name)
	if err != nil {
		return model.ProbeDegraded(model.NewIssueStats(0, 0), err.Error())
	}

	return model.ProbeOK(model.NewIssueStats(open, closed))
}

func (x *UseCase) probeLanguages(ctx context.Context, ref *model.RepoRef) model.Probe[map[string]int] {
	languages, err := x.clients.RepoHosting().ListLanguages(ctx, ref.Owner, ref.Name)
	if err != nil {
		return model.ProbeDegraded[map[string]int](nil, err.Error())
	}
	return model.ProbeOK(languages)
}
