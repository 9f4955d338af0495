package planner

import (
	"strings"

	"github.com/rnwolfe/planr/internal/task"
)

// Energy describes the kind of attention a task needs.
type Energy string

const (
	EnergyDeep    Energy = "deep"
	EnergyShallow Energy = "shallow"
)

// Base durations in minutes.
const (
	baseHardMinutes   = 90
	baseMediumMinutes = 45
	baseEasyMinutes   = 20
)

// keywordBonuses are matched by plain substring containment on the lowercased
// title, so "projects" and "laboratory" both match. Order only affects
// iteration; every matching entry adds its bonus.
var keywordBonuses = []struct {
	keyword string
	minutes int
}{
	{"essay", 30},
	{"project", 40},
	{"research", 25},
	{"study", 15},
	{"quiz", 10},
	{"exam", 40},
	{"lab", 25},
	{"report", 25},
}

// Estimate returns the expected duration of a task and its energy category.
// Unknown difficulties are treated as medium.
func Estimate(d task.Difficulty, title string) (int, Energy) {
	minutes := baseMediumMinutes
	energy := EnergyDeep
	switch d {
	case task.Hard:
		minutes = baseHardMinutes
	case task.Easy:
		minutes = baseEasyMinutes
		energy = EnergyShallow
	}

	lower := strings.ToLower(title)
	for _, kb := range keywordBonuses {
		if strings.Contains(lower, kb.keyword) {
			minutes += kb.minutes
		}
	}
	return minutes, energy
}
