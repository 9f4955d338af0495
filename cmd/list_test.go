package cmd

import (
	"strings"
	"testing"

	"github.com/rnwolfe/planr/internal/task"
)

func seedList(t *testing.T) {
	t.Helper()
	addTask(t, "Pay rent", task.Easy, "2026-03-08")
	addTask(t, "Essay", task.Hard, "+5")
	addTask(t, "Call mom", task.Easy, "")
	captureStdout(t, func() {
		if err := runDone(nil, []string{"3"}); err != nil {
			t.Fatal(err)
		}
	})
}

func TestRunList_Default(t *testing.T) {
	configTestEnv(t)
	seedList(t)

	out := captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Fatalf("runList: %v", err)
		}
	})
	if !strings.Contains(out, "Pay rent") || !strings.Contains(out, "Essay") {
		t.Errorf("open tasks missing:\n%s", out)
	}
	if strings.Contains(out, "Call mom") {
		t.Errorf("completed task listed without --done:\n%s", out)
	}
	if !strings.Contains(out, "overdue 2d") {
		t.Errorf("overdue tag missing:\n%s", out)
	}
	if strings.Index(out, "Pay rent") > strings.Index(out, "Essay") {
		t.Error("list should keep insertion order")
	}
}

func TestRunList_Filters(t *testing.T) {
	configTestEnv(t)
	seedList(t)

	listDone = true
	out := captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Fatal(err)
		}
	})
	if !strings.Contains(out, "Call mom") {
		t.Errorf("--done should include completed tasks:\n%s", out)
	}

	resetFlags(t)
	listOverdue = true
	out = captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Fatal(err)
		}
	})
	if !strings.Contains(out, "Pay rent") || strings.Contains(out, "Essay") {
		t.Errorf("--overdue output:\n%s", out)
	}

	resetFlags(t)
	if err := listDifficulty.Set("hard"); err != nil {
		t.Fatal(err)
	}
	out = captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Fatal(err)
		}
	})
	if !strings.Contains(out, "Essay") || strings.Contains(out, "Pay rent") {
		t.Errorf("--difficulty output:\n%s", out)
	}

	resetFlags(t)
	listQuery = "nothing like this"
	out = captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Fatal(err)
		}
	})
	if !strings.Contains(out, "No tasks match") {
		t.Errorf("empty result message missing:\n%s", out)
	}
}

func TestRunList_NegativeWithin(t *testing.T) {
	configTestEnv(t)
	listWithin = -1
	if err := runList(nil, nil); err == nil {
		t.Error("expected error for negative --within")
	}
}
