package model

import (
	"regexp"
	"strings"
)

type ClaimCategory string

const (
	ClaimPerformance   ClaimCategory = "performance"
	ClaimSimplicity    ClaimCategory = "simplicity"
	ClaimProduction    ClaimCategory = "production"
	ClaimLightweight   ClaimCategory = "lightweight"
	ClaimModern        ClaimCategory = "modern"
	ClaimComprehensive ClaimCategory = "comprehensive"
)

// Claim is a marketing phrase detected in a README, tagged with its
// category. Text is the first match of one pattern, Count the total number
// of matches of that pattern.
type Claim struct {
	Category ClaimCategory `json:"category"`
	Text     string        `json:"text"`
	Count    int           `json:"count"`
}

type claimMatcher struct {
	category ClaimCategory
	patterns []*regexp.Regexp
}

// claimTaxonomy is fixed process-wide configuration. Order matters: claims
// are emitted in category declaration order, then pattern order.
var claimTaxonomy = []claimMatcher{
	{ClaimPerformance, compilePatterns(
		`blazingly?\s+fast`, `\d+x\s+faster`, `lightning\s+fast`,
		`extremely\s+fast`, `super\s+fast`, `optimized`,
		`high\s+performance`, `performant`, `blazing`,
	)},
	{ClaimSimplicity, compilePatterns(
		`simple`, `easy`, `straightforward`, `just\s+\w+`,
		`zero\s+config`, `no\s+setup`, `quick\s+start`,
		`minimal\s+setup`, `plug\s+and\s+play`,
	)},
	{ClaimProduction, compilePatterns(
		`production\s+ready`, `battle\s+tested`, `enterprise\s+grade`,
		`stable`, `reliable`, `proven`, `mature`,
		`industry\s+standard`,
	)},
	{ClaimLightweight, compilePatterns(
		`lightweight`, `minimal`, `tiny`, `small\s+footprint`,
		`zero\s+dependencies`, `no\s+dependencies`,
		`minimal\s+dependencies`,
	)},
	{ClaimModern, compilePatterns(
		`modern`, `cutting\s+edge`, `next\s+generation`,
		`future\s+proof`, `state\s+of\s+the\s+art`,
	)},
	{ClaimComprehensive, compilePatterns(
		`complete`, `full\s+featured`, `comprehensive`,
		`all\s+in\s+one`, `everything\s+you\s+need`,
	)},
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}

// ExtractClaims scans a document against the claim taxonomy. Each pattern
// with at least one match yields exactly one Claim. Patterns are evaluated
// independently, so one document can contribute several claims within a
// category. Pure function: empty input yields nil.
func ExtractClaims(doc string) []Claim {
	if doc == "" {
		return nil
	}

	lowered := strings.ToLower(doc)

	var claims []Claim
	for _, matcher := range claimTaxonomy {
		for _, ptn := range matcher.patterns {
			matches := ptn.FindAllString(lowered, -1)
			if len(matches) == 0 {
				continue
			}
			claims = append(claims, Claim{
				Category: matcher.category,
				Text:     matches[0],
				Count:    len(matches),
			})
		}
	}

	return claims
}

// HasClaim reports whether at least one claim of the category exists
func HasClaim(claims []Claim, category ClaimCategory) bool {
	return FirstClaim(claims, category) != nil
}

// FirstClaim returns the first claim of the category, or nil
func FirstClaim(claims []Claim, category ClaimCategory) *Claim {
	for i := range claims {
		if claims[i].Category == category {
			return &claims[i]
		}
	}
	return nil
}
