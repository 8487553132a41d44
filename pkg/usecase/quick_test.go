package usecase_test

import (
	"strings"
	"testing"

	"ghroast/pkg/domain/model"
	"ghroast/pkg/usecase"

	"github.com/m-mizutani/gt"
)

func TestQuickRoast(t *testing.T) {
	t.Run("performance claim without benchmarks costs 20", func(t *testing.T) {
		report := &model.Report{
			FullName:      "acme/speedy",
			Claims:        model.ExtractClaims("lightning fast parser"),
			HasBenchmarks: false,
			HasTests:      true,
		}
		out := usecase.QuickRoast(report)
		gt.S(t, out).Contains(`❌ CLAIM: "lightning fast"`)
		gt.S(t, out).Contains("No benchmarks found")
		gt.S(t, out).Contains(`"Trust me bro" - The Benchmark`)
		gt.S(t, out).Contains("TRUTH SCORE: 80/100")
		gt.S(t, out).Contains("VERDICT: Mostly True")
	})

	t.Run("no mismatches forces a 95 and the honest verdict", func(t *testing.T) {
		report := &model.Report{
			FullName: "acme/quiet",
			Claims:   nil,
			HasTests: true,
		}
		out := usecase.QuickRoast(report)
		gt.S(t, out).Contains("✅ No obvious lies detected. Surprisingly honest!")
		gt.S(t, out).Contains("TRUTH SCORE: 95/100")
		gt.S(t, out).Contains("VERDICT: Honest AF")
	})

	t.Run("performance plus lightweight mismatch lands in marketing spin", func(t *testing.T) {
		readme := "Blazingly fast! Blazingly fast! Blazingly fast! And zero dependencies."
		report := &model.Report{
			FullName:      "acme/hype",
			Claims:        model.ExtractClaims(readme),
			HasBenchmarks: false,
			HasTests:      true,
			Dependencies:  model.Dependencies{Kind: model.ManifestNPM, Count: 120},
		}
		out := usecase.QuickRoast(report)
		gt.S(t, out).Contains("120 dependencies")
		gt.S(t, out).Contains("'zero dependencies' is a state of mind, not a dependency count")
		gt.S(t, out).Contains("TRUTH SCORE: 65/100")
		gt.S(t, out).Contains("VERDICT: Marketing Spin")
	})

	t.Run("production claim without tests costs 25", func(t *testing.T) {
		report := &model.Report{
			FullName: "acme/prod",
			Claims:   model.ExtractClaims("battle tested in production"),
			HasTests: false,
		}
		out := usecase.QuickRoast(report)
		gt.S(t, out).Contains("No tests detected")
		gt.S(t, out).Contains("Production ready for chaos engineering")
		gt.S(t, out).Contains("TRUTH SCORE: 75/100")
	})

	t.Run("all three rules stack", func(t *testing.T) {
		readme := "blazingly fast, lightweight, production ready"
		report := &model.Report{
			FullName:     "acme/everything",
			Claims:       model.ExtractClaims(readme),
			Dependencies: model.Dependencies{Count: 99},
		}
		out := usecase.QuickRoast(report)
		gt.V(t, strings.Count(out, "❌ CLAIM:")).Equal(3)
		gt.S(t, out).Contains("TRUTH SCORE: 40/100")
		gt.S(t, out).Contains("VERDICT: Creative Liberties")
	})

	t.Run("lightweight claim with few dependencies does not fire", func(t *testing.T) {
		report := &model.Report{
			FullName:     "acme/actually-tiny",
			Claims:       model.ExtractClaims("a lightweight helper"),
			Dependencies: model.Dependencies{Count: 3},
			HasTests:     true,
		}
		out := usecase.QuickRoast(report)
		gt.S(t, out).Contains("TRUTH SCORE: 95/100")
	})
}

func TestVerdict(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, usecase.VerdictHonest},
		{90, usecase.VerdictHonest},
		{89, usecase.VerdictMostly},
		{70, usecase.VerdictMostly},
		{69, usecase.VerdictSpin},
		{50, usecase.VerdictSpin},
		{49, usecase.VerdictLiberties},
		{30, usecase.VerdictLiberties},
		{29, usecase.VerdictFiction},
		{0, usecase.VerdictFiction},
	}
	for _, tc := range cases {
		gt.V(t, usecase.Verdict(tc.score)).Equal(tc.want)
	}
}
