package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ghroast/pkg/domain/model"
	"ghroast/pkg/utils/logging"
)

// RoasterSystemPrompt is the fixed persona instruction sent with every
// generation request.
const RoasterSystemPrompt = `You are the GitHub Truth Engine, a witty AI code critic with a sharp sense of humor.

Your mission: Compare what GitHub repos CLAIM in their READMEs versus what they ACTUALLY deliver.

PERSONALITY:
- Sarcastic but fair, like a senior developer who's seen every framework war
- Evidence-based (never make things up - roast based on actual data)
- Funny but not cruel (roast the code/claims, not the developers personally)
- Use developer humor, memes, and programming culture references
- Be quotable and memorable

ROASTING TARGETS (with examples):
1. Performance claims without proof
   - "Blazingly fast" with zero benchmarks -> "Trust me bro: The Benchmark"
   - "10x faster" with no comparison -> "10x faster than what? A potato?"

2. Dependency inflation
   - "Zero dependencies" with 100+ packages -> "Zero dependencies* (*terms and conditions apply)"
   - "Lightweight" with massive node_modules -> "Lightweight like a Boeing 747"

3. Production readiness theater
   - "Production ready" with 30% test coverage -> "Production ready for your nightmares"
   - "Battle tested" from 2 weeks ago -> "The battle lasted 15 minutes"

4. Simplicity lies
   - "Just works" with 47 setup steps -> "Just works (PhD required)"
   - "Easy setup" with complex config -> "Easy for time travelers"

5. Maintenance promises
   - "Actively maintained" with last commit 2 years ago -> "Active like my gym membership"
   - "Growing community" with 3 contributors -> "Growing pains included"

FORMAT YOUR RESPONSE:
For each major claim, provide:
CLAIM: [exact quote from README]
EVIDENCE: [what you actually found in the data]
ROAST: [your witty one-liner]

Then end with:
TRUTH SCORE: [0-100, where 100 is perfectly honest]
VERDICT: [Creative category name]
SPICIEST TAKE: [Your most memorable roast]

SCORING GUIDE:
90-100: Honest AF (rare unicorn)
70-89: Mostly True (refreshingly honest)
50-69: Marketing Spin (standard GitHub fare)
30-49: Creative Liberties (stretching it)
0-29: README Fiction (pure fantasy)

REMEMBER:
- Be funny, not mean
- Roast with love (we're all trying to build cool stuff)
- If something is actually good, say so
- The best roasts are unexpected and clever
- Make developers laugh while making them think
`

const analysisTemplate = `Analyze this GitHub repository and generate a roast:

REPOSITORY: %s
STARS: %d
DESCRIPTION: %s

README CLAIMS DETECTED:
%s
ACTUAL EVIDENCE:
- Dependencies: %d (%s)
- Has Tests: %t
- Test Coverage: %s
- Has Benchmarks: %t
- Has CI/CD: %t
- Has Documentation: %t
- Last Commit: %s
- Commit Activity (90 days): %d commits
- Open Issues: %d
- Issue Close Rate: %.1f%%
- Age: %s
- License: %s

SPECIFIC CLAIMS TO VERIFY:
%s

Generate a witty, sarcastic but fair roast. Focus on the gap between claims and reality.
Be creative with your roasts - make them memorable and quotable.
If the repo is actually honest and well-maintained, acknowledge that too.
`

const spicyModeAddition = `
SPICY MODE ACTIVATED

Turn up the heat! Be extra sarcastic and witty, but still fair.
Reference developer culture, memes, and inside jokes.
Make this roast legendary.
`

// maxClaimsInPrompt caps the claims listing so a keyword-stuffed README
// cannot blow up the prompt.
const maxClaimsInPrompt = 10

// BuildRoastPrompt merges the evidence report into the analysis template.
// Pure string composition; the current time is taken from the context clock
// so tests stay deterministic.
func BuildRoastPrompt(ctx context.Context, report *model.Report, spicy bool) string {
	description := report.Description
	if description == "" {
		description = "No description"
	}

	depType := string(report.Dependencies.Kind)
	if depType == "" {
		depType = "unknown"
	}

	coverage := "Unknown"
	if report.TestCoverage != nil && *report.TestCoverage != 0 {
		coverage = fmt.Sprintf("%d%%", *report.TestCoverage)
	}

	license := report.License
	if license == "" {
		license = "No license"
	}

	prompt := fmt.Sprintf(analysisTemplate,
		report.FullName,
		report.Stars,
		description,
		formatClaims(report.Claims),
		report.Dependencies.Count,
		depType,
		report.HasTests,
		coverage,
		report.HasBenchmarks,
		report.HasCI,
		report.HasDocs,
		recencyBucket(logging.CtxTime(ctx), report.PushedAt),
		report.Commits.Last90Days,
		report.OpenIssues,
		report.Issues.CloseRate,
		ageBucket(report.CreatedAt, report.UpdatedAt),
		license,
		formatClaimsToVerify(report),
	)

	if spicy {
		prompt += "\n" + spicyModeAddition
	}

	return prompt
}

func formatClaims(claims []model.Claim) string {
	if len(claims) == 0 {
		return "- No specific claims detected in README\n"
	}

	var b strings.Builder
	for i, claim := range claims {
		if i >= maxClaimsInPrompt {
			break
		}
		fmt.Fprintf(&b, "- %s: \"%s\" (mentioned %dx)\n",
			strings.ToUpper(string(claim.Category)), claim.Text, claim.Count)
	}
	return b.String()
}

// formatClaimsToVerify names, per claimed category, the evidence fields that
// would confirm or refute it.
func formatClaimsToVerify(report *model.Report) string {
	var lines []string

	if model.HasClaim(report.Claims, model.ClaimPerformance) {
		lines = append(lines, fmt.Sprintf("- Performance claims: Has benchmarks = %t", report.HasBenchmarks))
	}
	if model.HasClaim(report.Claims, model.ClaimLightweight) {
		lines = append(lines, fmt.Sprintf("- Lightweight claims: %d dependencies", report.Dependencies.Count))
	}
	if model.HasClaim(report.Claims, model.ClaimProduction) {
		lines = append(lines, fmt.Sprintf("- Production ready claims: Tests = %t, CI = %t", report.HasTests, report.HasCI))
	}
	if model.HasClaim(report.Claims, model.ClaimSimplicity) {
		lines = append(lines, fmt.Sprintf("- Simplicity claims: Dependency count = %d", report.Dependencies.Count))
	}

	if len(lines) == 0 {
		return "- No specific claims to verify"
	}
	return strings.Join(lines, "\n")
}

// ageBucket renders the gap between creation and last update. Integer
// division truncates: a 400 day gap is "1 years old".
func ageBucket(created, updated time.Time) string {
	days := int(updated.Sub(created).Hours() / 24)
	switch {
	case days < 30:
		return fmt.Sprintf("%d days old (fresh!)", days)
	case days < 365:
		return fmt.Sprintf("%d months old", days/30)
	default:
		return fmt.Sprintf("%d years old", days/365)
	}
}

func recencyBucket(now, pushed time.Time) string {
	days := int(now.Sub(pushed).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}
