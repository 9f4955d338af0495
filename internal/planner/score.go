package planner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rnwolfe/planr/internal/task"
)

// Mode selects which terms make up a task's score.
type Mode int

const (
	// ModePlanner scores urgency + effort + similarity boost.
	ModePlanner Mode = iota
	// ModeSection scores urgency + effort only.
	ModeSection
)

func (m Mode) String() string {
	if m == ModeSection {
		return "section"
	}
	return "planner"
}

// ParseMode maps a config value to a Mode. Anything but "section" is ModePlanner.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "section") {
		return ModeSection
	}
	return ModePlanner
}

// Urgency maps a day offset to its urgency tier. ok=false means no due date.
func Urgency(days int, ok bool) int {
	switch {
	case !ok:
		return 1
	case days < 0:
		return 9
	case days == 0:
		return 8
	case days == 1:
		return 7
	case days <= 3:
		return 6
	case days <= 7:
		return 4
	case days <= 14:
		return 3
	default:
		return 1
	}
}

// EffortWeight is the score contribution of a difficulty rating.
func EffortWeight(d task.Difficulty) int {
	switch d {
	case task.Hard:
		return 3
	case task.Easy:
		return 1
	default:
		return 2
	}
}

const (
	similarityStep    = 0.4
	similarityPerWord = 2 // max repeats credited per token
)

var nonWord = regexp.MustCompile(`\W+`)

// tokenize lowercases a title and splits it on runs of non-word characters.
func tokenize(title string) []string {
	parts := nonWord.Split(strings.ToLower(title), -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SimilarityBoosts returns one boost per title, rewarding vocabulary shared
// with the rest of the list. Every token occurrence counts toward the global
// frequency; each of a title's tokens with frequency f > 1 adds
// min(f-1, 2) * 0.4.
func SimilarityBoosts(titles []string) []float64 {
	tokens := make([][]string, len(titles))
	freq := map[string]int{}
	for i, title := range titles {
		tokens[i] = tokenize(title)
		for _, tok := range tokens[i] {
			freq[tok]++
		}
	}

	boosts := make([]float64, len(titles))
	for i, toks := range tokens {
		for _, tok := range toks {
			if f := freq[tok]; f > 1 {
				boosts[i] += float64(min(f-1, similarityPerWord)) * similarityStep
			}
		}
	}
	return boosts
}

// Reason builds the display justification for a task's rank.
func Reason(days int, ok bool, d task.Difficulty) string {
	var parts []string
	switch {
	case !ok:
		parts = append(parts, "No due date")
	case days < 0:
		parts = append(parts, fmt.Sprintf("Overdue by %dd", -days))
	case days == 0:
		parts = append(parts, "Due today")
	case days == 1:
		parts = append(parts, "Due tomorrow")
	case days <= 7:
		parts = append(parts, fmt.Sprintf("Due in %dd", days))
	}

	switch d {
	case task.Hard:
		parts = append(parts, "High effort")
	case task.Easy:
		parts = append(parts, "Quick win")
	default:
		parts = append(parts, "Medium effort")
	}
	return strings.Join(parts, " · ")
}
