package tips

import (
	"strings"
	"testing"
	"time"
)

func TestAll_NonEmpty(t *testing.T) {
	if len(All()) == 0 {
		t.Fatal("All() returned no tips")
	}
	for i, tip := range All() {
		if strings.TrimSpace(tip) == "" {
			t.Errorf("All()[%d] is blank", i)
		}
	}
}

func TestDaily_StableWithinDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	night := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	if Daily(morning) != Daily(night) {
		t.Error("Daily() changed within the same day")
	}
}

func TestDaily_Rotates(t *testing.T) {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if Daily(day) == Daily(day.AddDate(0, 0, 1)) {
		t.Error("Daily() did not rotate to the next tip")
	}
}
