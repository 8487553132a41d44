package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"ghroast/pkg/domain/model"
	"ghroast/pkg/usecase"
	"ghroast/pkg/utils/logging"

	"github.com/m-mizutani/gt"
)

func fixedClock(t *testing.T, at time.Time) context.Context {
	t.Helper()
	return logging.CtxWithTime(context.Background(), func() time.Time { return at })
}

func baseReport() *model.Report {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.Report{
		Repo:        model.RepoRef{Owner: "acme", Name: "demo"},
		FullName:    "acme/demo",
		Description: "A demo project",
		Stars:       1234,
		CreatedAt:   created,
		UpdatedAt:   created.AddDate(0, 0, 10),
		PushedAt:    created.AddDate(0, 0, 10),
		Dependencies: model.Dependencies{
			Kind:  model.ManifestNPM,
			Count: 12,
		},
		HasTests: true,
		Commits:  model.NewCommitActivity(26),
		Issues:   model.NewIssueStats(5, 15),
		License:  "MIT",
	}
}

func TestBuildRoastPrompt(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)

	t.Run("evidence fields appear verbatim", func(t *testing.T) {
		report := baseReport()
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.S(t, prompt).Contains("REPOSITORY: acme/demo")
		gt.S(t, prompt).Contains("STARS: 1234")
		gt.S(t, prompt).Contains("DESCRIPTION: A demo project")
		gt.S(t, prompt).Contains("Dependencies: 12 (npm)")
		gt.S(t, prompt).Contains("Has Tests: true")
		gt.S(t, prompt).Contains("Issue Close Rate: 75.0%")
		gt.S(t, prompt).Contains("License: MIT")
	})

	t.Run("young repo is marked fresh", func(t *testing.T) {
		report := baseReport()
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.S(t, prompt).Contains("Age: 10 days old (fresh!)")
	})

	t.Run("age in months for sub-year repos", func(t *testing.T) {
		report := baseReport()
		report.UpdatedAt = report.CreatedAt.AddDate(0, 0, 90)
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.S(t, prompt).Contains("Age: 3 months old")
	})

	t.Run("age in years truncates", func(t *testing.T) {
		report := baseReport()
		report.UpdatedAt = report.CreatedAt.AddDate(0, 0, 400)
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.S(t, prompt).Contains("Age: 1 years old")
	})

	t.Run("last commit recency buckets", func(t *testing.T) {
		report := baseReport()

		report.PushedAt = now
		gt.S(t, usecase.BuildRoastPrompt(fixedClock(t, now), report, false)).
			Contains("Last Commit: today")

		report.PushedAt = now.Add(-25 * time.Hour)
		gt.S(t, usecase.BuildRoastPrompt(fixedClock(t, now), report, false)).
			Contains("Last Commit: yesterday")

		report.PushedAt = now.AddDate(0, 0, -5)
		gt.S(t, usecase.BuildRoastPrompt(fixedClock(t, now), report, false)).
			Contains("Last Commit: 5 days ago")

		report.PushedAt = now.AddDate(0, 0, -60)
		gt.S(t, usecase.BuildRoastPrompt(fixedClock(t, now), report, false)).
			Contains("Last Commit: 2 months ago")

		report.PushedAt = now.AddDate(-2, 0, -10)
		gt.S(t, usecase.BuildRoastPrompt(fixedClock(t, now), report, false)).
			Contains("Last Commit: 2 years ago")
	})

	t.Run("missing fields get placeholders", func(t *testing.T) {
		report := baseReport()
		report.Description = ""
		report.License = ""
		report.Dependencies.Kind = model.ManifestNone
		report.TestCoverage = nil
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.S(t, prompt).Contains("DESCRIPTION: No description")
		gt.S(t, prompt).Contains("License: No license")
		gt.S(t, prompt).Contains("(unknown)")
		gt.S(t, prompt).Contains("Test Coverage: Unknown")
	})

	t.Run("zero coverage pointer still renders Unknown", func(t *testing.T) {
		report := baseReport()
		zero := 0
		report.TestCoverage = &zero
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.S(t, prompt).Contains("Test Coverage: Unknown")
	})

	t.Run("claims listing is capped at ten", func(t *testing.T) {
		report := baseReport()
		for i := 0; i < 15; i++ {
			report.Claims = append(report.Claims, model.Claim{
				Category: model.ClaimModern,
				Text:     "modern",
				Count:    1,
			})
		}
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.V(t, strings.Count(prompt, `- MODERN: "modern"`)).Equal(10)
	})

	t.Run("no claims renders the empty marker", func(t *testing.T) {
		report := baseReport()
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.S(t, prompt).Contains("- No specific claims detected in README")
		gt.S(t, prompt).Contains("- No specific claims to verify")
	})

	t.Run("claims to verify lines follow the claimed categories", func(t *testing.T) {
		report := baseReport()
		report.Claims = model.ExtractClaims("blazingly fast, lightweight and production ready. easy to use.")
		report.Dependencies.Count = 42
		prompt := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		gt.S(t, prompt).Contains("- Performance claims: Has benchmarks = false")
		gt.S(t, prompt).Contains("- Lightweight claims: 42 dependencies")
		gt.S(t, prompt).Contains("- Production ready claims: Tests = true, CI = false")
		gt.S(t, prompt).Contains("- Simplicity claims: Dependency count = 42")
	})

	t.Run("spicy mode appends the addition", func(t *testing.T) {
		report := baseReport()
		plain := usecase.BuildRoastPrompt(fixedClock(t, now), report, false)
		spicy := usecase.BuildRoastPrompt(fixedClock(t, now), report, true)
		gt.S(t, plain).NotContains("SPICY MODE ACTIVATED")
		gt.S(t, spicy).Contains("SPICY MODE ACTIVATED")
		gt.True(t, strings.HasPrefix(spicy, plain))
	})
}
