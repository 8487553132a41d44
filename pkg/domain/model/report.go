package model

import (
	"math"
	"time"
)

// Probe is the outcome of a best-effort evidence sub-probe. A degraded probe
// carries a safe default value and the reason it could not run, so callers
// can tell "probe ran and found nothing" apart from "probe could not run".
type Probe[T any] struct {
	Value    T
	Degraded bool
	Reason   string
}

func ProbeOK[T any](value T) Probe[T] {
	return Probe[T]{Value: value}
}

func ProbeDegraded[T any](fallback T, reason string) Probe[T] {
	return Probe[T]{Value: fallback, Degraded: true, Reason: reason}
}

// CommitActivity summarizes commits over the trailing 90 day window
type CommitActivity struct {
	Last90Days int
	AvgPerWeek float64
	IsActive   bool
}

func NewCommitActivity(count int) CommitActivity {
	return CommitActivity{
		Last90Days: count,
		AvgPerWeek: round1(float64(count) / 13),
		IsActive:   count > 0,
	}
}

// IssueStats summarizes issue open/close counts. CloseRate is a percentage
// rounded to one decimal, 0 when no issues exist at all.
type IssueStats struct {
	Open      int
	Closed    int
	Total     int
	CloseRate float64
}

func NewIssueStats(open, closed int) IssueStats {
	stats := IssueStats{
		Open:   open,
		Closed: closed,
		Total:  open + closed,
	}
	if stats.Total > 0 {
		stats.CloseRate = round1(float64(closed) / float64(stats.Total) * 100)
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Report is the full evidence record for one repository. Constructed once
// per invocation and never mutated afterwards.
type Report struct {
	Repo        RepoRef
	FullName    string
	Description string
	Stars       int
	Forks       int
	Watchers    int
	OpenIssues  int
	Language    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PushedAt    time.Time
	Size        int

	Readme       string
	Claims       []Claim
	Languages    map[string]int
	Dependencies Dependencies

	HasTests      bool
	HasBenchmarks bool
	HasCI         bool
	HasDocs       bool

	// TestCoverage is 0 when no tests were detected and nil otherwise;
	// coverage reports are never actually parsed.
	TestCoverage *int

	Commits CommitActivity
	Issues  IssueStats
	License string
}
