package planner

// ScheduleConfig bounds the greedy daily schedule.
type ScheduleConfig struct {
	Budget   int // minutes available for the day
	SlotCap  int // longest single slot
	MaxSlots int
}

// DefaultScheduleConfig returns the standard 180-minute day of at most six
// slots, none longer than 90 minutes.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{Budget: 180, SlotCap: 90, MaxSlots: 6}
}

// ScheduleSlot is one task's block in the daily schedule.
type ScheduleSlot struct {
	TaskID  int    `json:"task_id"`
	Title   string `json:"title"`
	Minutes int    `json:"minutes"`
	Energy  Energy `json:"energy"`
}

// BuildSchedule greedily packs ranked tasks into the day's budget and returns
// the slots with their total minutes.
//
// The first slot is always admitted. Afterwards a slot that does not fit the
// remaining budget ends the schedule; so does reaching MaxSlots or using the
// budget up exactly.
func BuildSchedule(ranked []PlannedTask, cfg ScheduleConfig) ([]ScheduleSlot, int) {
	slots := []ScheduleSlot{}
	remaining := cfg.Budget
	total := 0

	for _, p := range ranked {
		if len(slots) >= cfg.MaxSlots {
			break
		}
		minutes := min(p.EstimatedMinutes, cfg.SlotCap)
		if minutes > remaining && len(slots) > 0 {
			break
		}

		slots = append(slots, ScheduleSlot{
			TaskID:  p.ID,
			Title:   p.Title,
			Minutes: minutes,
			Energy:  p.Energy,
		})
		total += minutes
		remaining -= minutes
		if remaining <= 0 {
			break
		}
	}
	return slots, total
}
