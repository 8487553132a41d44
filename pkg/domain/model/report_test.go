package model_test

import (
	"testing"

	"ghroast/pkg/domain/model"

	"github.com/m-mizutani/gt"
)

func TestCommitActivity(t *testing.T) {
	t.Run("average per week over 13 weeks, rounded to one decimal", func(t *testing.T) {
		activity := model.NewCommitActivity(26)
		gt.V(t, activity.Last90Days).Equal(26)
		gt.V(t, activity.AvgPerWeek).Equal(2.0)
		gt.True(t, activity.IsActive)
	})

	t.Run("uneven count rounds", func(t *testing.T) {
		activity := model.NewCommitActivity(10)
		gt.V(t, activity.AvgPerWeek).Equal(0.8)
	})

	t.Run("zero commits is inactive", func(t *testing.T) {
		activity := model.NewCommitActivity(0)
		gt.V(t, activity.AvgPerWeek).Equal(0.0)
		gt.False(t, activity.IsActive)
	})
}

func TestIssueStats(t *testing.T) {
	t.Run("close rate is a percentage rounded to one decimal", func(t *testing.T) {
		stats := model.NewIssueStats(1, 2)
		gt.V(t, stats.Total).Equal(3)
		gt.V(t, stats.CloseRate).Equal(66.7)
	})

	t.Run("no issues at all means zero close rate", func(t *testing.T) {
		stats := model.NewIssueStats(0, 0)
		gt.V(t, stats.Total).Equal(0)
		gt.V(t, stats.CloseRate).Equal(0.0)
	})

	t.Run("all closed", func(t *testing.T) {
		stats := model.NewIssueStats(0, 10)
		gt.V(t, stats.CloseRate).Equal(100.0)
	})
}

func TestProbe(t *testing.T) {
	t.Run("ok probe carries the value", func(t *testing.T) {
		p := model.ProbeOK(42)
		gt.V(t, p.Value).Equal(42)
		gt.False(t, p.Degraded)
	})

	t.Run("degraded probe carries fallback and reason", func(t *testing.T) {
		p := model.ProbeDegraded("", "tree listing failed")
		gt.True(t, p.Degraded)
		gt.V(t, p.Reason).Equal("tree listing failed")
		gt.V(t, p.Value).Equal("")
	})
}
