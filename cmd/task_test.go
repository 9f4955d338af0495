package cmd

import (
	"strings"
	"testing"

	"github.com/rnwolfe/planr/internal/store"
	"github.com/rnwolfe/planr/internal/task"
)

// loadTask reads a task straight from the store the commands write to.
func loadTask(t *testing.T, id int) *task.Task {
	t.Helper()
	db, err := store.Open(nil)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer db.Close()
	tk, err := task.NewStore(db.Conn()).Get(id)
	if err != nil {
		t.Fatalf("Get(%d): %v", id, err)
	}
	return tk
}

func TestRunAdd(t *testing.T) {
	configTestEnv(t)

	addDifficulty.reset(task.Hard)
	addDue = "+3"
	addNotes = "chapter 2"
	out := captureStdout(t, func() {
		if err := runAdd(nil, []string{"Write", "history", "essay"}); err != nil {
			t.Fatalf("runAdd: %v", err)
		}
	})

	if !strings.Contains(out, `#1 "Write history essay"`) {
		t.Errorf("output missing task line: %q", out)
	}
	// hard 90 + essay 30
	if !strings.Contains(out, "~120 min deep") || !strings.Contains(out, "due 2026-03-13") {
		t.Errorf("output missing estimate or due date: %q", out)
	}

	tk := loadTask(t, 1)
	if tk.Title != "Write history essay" || tk.Difficulty != task.Hard || tk.DueDate != "2026-03-13" || tk.Notes != "chapter 2" {
		t.Errorf("stored task = %+v", tk)
	}
}

func TestRunAdd_InvalidDue(t *testing.T) {
	configTestEnv(t)
	addDue = "someday"
	if err := runAdd(nil, []string{"Anything"}); err == nil {
		t.Fatal("expected error for invalid due date")
	}
}

func TestRunDoneReopen(t *testing.T) {
	configTestEnv(t)
	addTask(t, "Buy milk", task.Easy, "")

	captureStdout(t, func() {
		if err := runDone(nil, []string{"#1"}); err != nil {
			t.Fatalf("runDone: %v", err)
		}
	})
	if tk := loadTask(t, 1); !tk.Completed || tk.CompletedAt == nil {
		t.Errorf("task not completed: %+v", tk)
	}

	captureStdout(t, func() {
		if err := runReopen(nil, []string{"1"}); err != nil {
			t.Fatalf("runReopen: %v", err)
		}
	})
	if tk := loadTask(t, 1); tk.Completed {
		t.Error("task still completed after reopen")
	}
}

func TestRunDone_ReportsMissingIDs(t *testing.T) {
	configTestEnv(t)
	addTask(t, "Buy milk", task.Easy, "")

	var err error
	out := captureStdout(t, func() {
		err = runDone(nil, []string{"1", "42"})
	})
	if err == nil || !strings.Contains(err.Error(), "#42") {
		t.Fatalf("runDone error = %v, want mention of #42", err)
	}
	if !strings.Contains(out, "Completed #1") {
		t.Errorf("existing task should still complete: %q", out)
	}
}

func TestRunRm(t *testing.T) {
	configTestEnv(t)
	addTask(t, "Temporary", task.Medium, "")

	captureStdout(t, func() {
		if err := runRm(nil, []string{"1"}); err != nil {
			t.Fatalf("runRm: %v", err)
		}
	})
	if err := runRm(nil, []string{"1"}); err == nil {
		t.Error("second delete should fail")
	}
}

func TestRunEdit(t *testing.T) {
	configTestEnv(t)
	addTask(t, "Read", task.Medium, "+1")

	flags := editCmd.Flags()
	for name, val := range map[string]string{"title": "Read chapter 4", "difficulty": "easy", "notes": "pages 80-110"} {
		if err := flags.Set(name, val); err != nil {
			t.Fatalf("Set %s: %v", name, err)
		}
	}
	if err := flags.Set("no-due", "true"); err != nil {
		t.Fatal(err)
	}

	captureStdout(t, func() {
		if err := runEdit(editCmd, []string{"1"}); err != nil {
			t.Fatalf("runEdit: %v", err)
		}
	})

	tk := loadTask(t, 1)
	if tk.Title != "Read chapter 4" || tk.Difficulty != task.Easy || tk.Notes != "pages 80-110" || tk.HasDue() {
		t.Errorf("edited task = %+v", tk)
	}
}

func TestRunEdit_Due(t *testing.T) {
	configTestEnv(t)
	addTask(t, "Read", task.Medium, "")

	if err := editCmd.Flags().Set("due", "tomorrow"); err != nil {
		t.Fatal(err)
	}
	captureStdout(t, func() {
		if err := runEdit(editCmd, []string{"1"}); err != nil {
			t.Fatalf("runEdit: %v", err)
		}
	})
	if tk := loadTask(t, 1); tk.DueDate != "2026-03-11" {
		t.Errorf("DueDate = %q, want 2026-03-11", tk.DueDate)
	}
}

func TestRunEdit_NothingToChange(t *testing.T) {
	configTestEnv(t)
	addTask(t, "Read", task.Medium, "")
	err := runEdit(editCmd, []string{"1"})
	if err == nil || !strings.Contains(err.Error(), "nothing to change") {
		t.Errorf("runEdit error = %v", err)
	}
}

func TestRunShow(t *testing.T) {
	configTestEnv(t)
	addDifficulty.reset(task.Hard)
	addDue = "today"
	addNotes = "bring goggles"
	captureStdout(t, func() {
		if err := runAdd(nil, []string{"Chem lab"}); err != nil {
			t.Fatal(err)
		}
	})

	out := captureStdout(t, func() {
		if err := runShow(nil, []string{"1"}); err != nil {
			t.Fatalf("runShow: %v", err)
		}
	})
	for _, want := range []string{"#1 Chem lab", "2026-03-10", "today", "115 min", "bring goggles", "open"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestRunShow_NotFound(t *testing.T) {
	configTestEnv(t)
	if err := runShow(nil, []string{"9"}); err == nil {
		t.Error("expected not found error")
	}
}
