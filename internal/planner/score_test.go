package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rnwolfe/planr/internal/task"
)

func TestUrgency_Tiers(t *testing.T) {
	tests := []struct {
		name string
		days int
		ok   bool
		want int
	}{
		{"no due date", 0, false, 1},
		{"overdue", -5, true, 9},
		{"overdue by one", -1, true, 9},
		{"today", 0, true, 8},
		{"tomorrow", 1, true, 7},
		{"two days", 2, true, 6},
		{"three days", 3, true, 6},
		{"four days", 4, true, 4},
		{"a week", 7, true, 4},
		{"eight days", 8, true, 3},
		{"two weeks", 14, true, 3},
		{"far out", 15, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Urgency(tt.days, tt.ok))
		})
	}
}

func TestUrgency_Monotonic(t *testing.T) {
	for d := -30; d < 60; d++ {
		assert.GreaterOrEqual(t, Urgency(d, true), Urgency(d+1, true), "day %d vs %d", d, d+1)
	}
}

func TestEffortWeight(t *testing.T) {
	assert.Equal(t, 3, EffortWeight(task.Hard))
	assert.Equal(t, 2, EffortWeight(task.Medium))
	assert.Equal(t, 1, EffortWeight(task.Easy))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"read", "ch", "3", "notes_v2"}, tokenize("  Read ch.3 -- notes_v2!"))
	assert.Empty(t, tokenize("!!!"))
}

func TestSimilarityBoosts(t *testing.T) {
	boosts := SimilarityBoosts([]string{
		"Physics project",
		"History project",
		"Math project",
		"Call dentist",
	})

	// "project" appears 3 times: min(3-1, 2) * 0.4 = 0.8.
	assert.InDelta(t, 0.8, boosts[0], 1e-9)
	assert.InDelta(t, 0.8, boosts[1], 1e-9)
	assert.InDelta(t, 0.8, boosts[2], 1e-9)
	assert.Zero(t, boosts[3])
}

func TestSimilarityBoosts_PairAndMultipleTokens(t *testing.T) {
	boosts := SimilarityBoosts([]string{
		"essay draft",
		"Essay DRAFT review",
		"unrelated",
	})

	// essay and draft each appear twice: 2 * (1 * 0.4).
	assert.InDelta(t, 0.8, boosts[0], 1e-9)
	assert.InDelta(t, 0.8, boosts[1], 1e-9)
	assert.Zero(t, boosts[2])
}

func TestSimilarityBoosts_CappedPerToken(t *testing.T) {
	titles := make([]string, 10)
	for i := range titles {
		titles[i] = "project"
	}
	for _, b := range SimilarityBoosts(titles) {
		assert.InDelta(t, 0.8, b, 1e-9)
	}
}

func TestSimilarityBoosts_Empty(t *testing.T) {
	assert.Empty(t, SimilarityBoosts(nil))
}

func TestReason(t *testing.T) {
	tests := []struct {
		days int
		ok   bool
		d    task.Difficulty
		want string
	}{
		{0, false, task.Easy, "No due date · Quick win"},
		{-3, true, task.Hard, "Overdue by 3d · High effort"},
		{0, true, task.Medium, "Due today · Medium effort"},
		{1, true, task.Easy, "Due tomorrow · Quick win"},
		{2, true, task.Hard, "Due in 2d · High effort"},
		{7, true, task.Hard, "Due in 7d · High effort"},
		{8, true, task.Medium, "Medium effort"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Reason(tt.days, tt.ok, tt.d))
	}
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeSection, ParseMode("Section"))
	assert.Equal(t, ModePlanner, ParseMode("planner"))
	assert.Equal(t, ModePlanner, ParseMode(""))
	assert.Equal(t, "section", ModeSection.String())
	assert.Equal(t, "planner", ModePlanner.String())
}
