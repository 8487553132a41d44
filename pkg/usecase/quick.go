package usecase

import (
	"fmt"
	"strings"

	"ghroast/pkg/domain/model"
)

// Verdict labels mapped from the final truth score
const (
	VerdictHonest    = "Honest AF"
	VerdictMostly    = "Mostly True"
	VerdictSpin      = "Marketing Spin"
	VerdictLiberties = "Creative Liberties"
	VerdictFiction   = "README Fiction"
)

type mismatch struct {
	claim    string
	evidence string
	roast    string
}

// QuickRoast produces a rule-based roast without any text-generation
// backend. Three independent rules each fire at most once; when none fire
// the score is forced to 95 so the output reads "nearly perfect" rather
// than flawless.
func QuickRoast(report *model.Report) string {
	var mismatches []mismatch
	score := 100

	if claim := model.FirstClaim(report.Claims, model.ClaimPerformance); claim != nil && !report.HasBenchmarks {
		mismatches = append(mismatches, mismatch{
			claim:    claim.Text,
			evidence: "No benchmarks found",
			roast:    `"Trust me bro" - The Benchmark`,
		})
		score -= 20
	}

	if claim := model.FirstClaim(report.Claims, model.ClaimLightweight); claim != nil && report.Dependencies.Count > 50 {
		mismatches = append(mismatches, mismatch{
			claim:    claim.Text,
			evidence: fmt.Sprintf("%d dependencies", report.Dependencies.Count),
			roast:    fmt.Sprintf("'%s' is a state of mind, not a dependency count", claim.Text),
		})
		score -= 15
	}

	if claim := model.FirstClaim(report.Claims, model.ClaimProduction); claim != nil && !report.HasTests {
		mismatches = append(mismatches, mismatch{
			claim:    claim.Text,
			evidence: "No tests detected",
			roast:    "Production ready for chaos engineering",
		})
		score -= 25
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n📊 Repository: %s\n", report.FullName)
	fmt.Fprintf(&b, "⭐ Stars: %d\n\n", report.Stars)

	if len(mismatches) > 0 {
		for _, m := range mismatches {
			fmt.Fprintf(&b, "❌ CLAIM: \"%s\"\n", m.claim)
			fmt.Fprintf(&b, "   EVIDENCE: %s\n", m.evidence)
			fmt.Fprintf(&b, "   ROAST: %s\n\n", m.roast)
		}
	} else {
		b.WriteString("✅ No obvious lies detected. Surprisingly honest!\n\n")
		score = 95
	}

	separator := strings.Repeat("━", 33)
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "TRUTH SCORE: %d/100\n", score)
	fmt.Fprintf(&b, "VERDICT: %s\n", Verdict(score))
	fmt.Fprintf(&b, "%s\n", separator)

	return b.String()
}

// Verdict maps a truth score to its label
func Verdict(score int) string {
	switch {
	case score >= 90:
		return VerdictHonest
	case score >= 70:
		return VerdictMostly
	case score >= 50:
		return VerdictSpin
	case score >= 30:
		return VerdictLiberties
	default:
		return VerdictFiction
	}
}
