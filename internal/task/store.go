package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a task id does not exist.
var ErrNotFound = errors.New("task not found")

// Store handles task persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new task store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectColumns = `SELECT id, title, notes, difficulty, due_date, completed, created_at, updated_at, completed_at FROM tasks`

// Add creates a new task and returns its ID.
// due must already be canonical YYYY-MM-DD text (see ParseDue) or empty.
func (s *Store) Add(title, notes string, difficulty Difficulty, due string) (int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, errors.New("task title cannot be empty")
	}
	if difficulty == "" {
		difficulty = Medium
	}
	if _, err := ParseDifficulty(string(difficulty)); err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		`INSERT INTO tasks (title, notes, difficulty, due_date) VALUES (?, ?, ?, ?)`,
		title, notes, string(difficulty), nullableDue(due),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting task: %w", err)
	}

	id, _ := res.LastInsertId()
	return int(id), nil
}

// TaskEdit describes a partial update. Nil fields are left unchanged.
type TaskEdit struct {
	Title      *string
	Notes      *string
	Difficulty *Difficulty
	DueDate    *string
	// ClearDue removes the due date; it wins over DueDate.
	ClearDue bool
}

// Edit applies a partial update to a task.
func (s *Store) Edit(id int, e TaskEdit) error {
	sets := []string{}
	args := []any{}

	if e.Title != nil {
		title := strings.TrimSpace(*e.Title)
		if title == "" {
			return errors.New("task title cannot be empty")
		}
		sets = append(sets, "title = ?")
		args = append(args, title)
	}
	if e.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *e.Notes)
	}
	if e.Difficulty != nil {
		if _, err := ParseDifficulty(string(*e.Difficulty)); err != nil {
			return err
		}
		sets = append(sets, "difficulty = ?")
		args = append(args, string(*e.Difficulty))
	}
	switch {
	case e.ClearDue:
		sets = append(sets, "due_date = NULL")
	case e.DueDate != nil:
		sets = append(sets, "due_date = ?")
		args = append(args, nullableDue(*e.DueDate))
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
	return s.execOne(id, query, args...)
}

// Complete marks a task as done.
func (s *Store) Complete(id int) error {
	return s.execOne(id,
		`UPDATE tasks SET completed = 1, completed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		id,
	)
}

// Reopen marks a completed task as open again.
func (s *Store) Reopen(id int) error {
	return s.execOne(id,
		`UPDATE tasks SET completed = 0, completed_at = NULL, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		id,
	)
}

// Delete removes a task.
func (s *Store) Delete(id int) error {
	return s.execOne(id, `DELETE FROM tasks WHERE id = ?`, id)
}

// execOne runs a statement that must touch exactly one row.
func (s *Store) execOne(id int, query string, args ...any) error {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}
	return nil
}

// Get returns a single task by ID.
func (s *Store) Get(id int) (*Task, error) {
	row := s.db.QueryRow(selectColumns+` WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading task #%d: %w", id, err)
	}
	return &t, nil
}

// ListOptions configures which tasks List returns.
type ListOptions struct {
	// IncludeCompleted adds completed tasks to the result.
	IncludeCompleted bool
	// Overdue keeps only tasks due before Today.
	Overdue bool
	// WithinDays keeps only tasks due on or before Today+WithinDays (overdue included).
	// Zero disables the filter.
	WithinDays int
	// Difficulty keeps only tasks with this rating. Empty means any.
	Difficulty Difficulty
	// Query is a case-insensitive substring match against title and notes.
	Query string
	// Today is the reference day for the date filters. Zero means time.Now().
	Today time.Time
}

// List returns tasks matching opts in insertion order.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Task, error) {
	var conditions []string
	var args []any

	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	todayStr := today.Format(DateLayout)

	if !opts.IncludeCompleted {
		conditions = append(conditions, "completed = 0")
	}
	if opts.Overdue {
		conditions = append(conditions, "due_date IS NOT NULL AND due_date < ?")
		args = append(args, todayStr)
	}
	if opts.WithinDays > 0 {
		conditions = append(conditions, "due_date IS NOT NULL AND due_date <= ?")
		args = append(args, today.AddDate(0, 0, opts.WithinDays).Format(DateLayout))
	}
	if opts.Difficulty != "" {
		conditions = append(conditions, "difficulty = ?")
		args = append(args, string(opts.Difficulty))
	}
	if q := strings.TrimSpace(opts.Query); q != "" {
		conditions = append(conditions, "(LOWER(title) LIKE ? OR LOWER(notes) LIKE ?)")
		pattern := "%" + strings.ToLower(q) + "%"
		args = append(args, pattern, pattern)
	}

	query := selectColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListOpenTasks returns every non-completed task in insertion order.
func (s *Store) ListOpenTasks(ctx context.Context) ([]Task, error) {
	return s.List(ctx, ListOptions{})
}

// ListTasks returns the full task snapshot, completed tasks included.
// The planner reads this and does its own open-task filtering.
func (s *Store) ListTasks(ctx context.Context) ([]Task, error) {
	return s.List(ctx, ListOptions{IncludeCompleted: true})
}

// Count returns the number of open, total, and overdue tasks relative to today.
func (s *Store) Count(today time.Time) (open int, total int, overdue int, err error) {
	err = s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN completed = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 0 AND due_date IS NOT NULL AND due_date < ? THEN 1 ELSE 0 END), 0)
		FROM tasks`,
		today.Format(DateLayout),
	).Scan(&total, &open, &overdue)
	return
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(r rowScanner) (Task, error) {
	var t Task
	var completedInt int
	var difficulty string
	var due sql.NullString
	var created, updated, completedAt sql.NullTime

	if err := r.Scan(&t.ID, &t.Title, &t.Notes, &difficulty, &due, &completedInt, &created, &updated, &completedAt); err != nil {
		return Task{}, err
	}

	t.Difficulty = Difficulty(difficulty)
	t.Completed = completedInt == 1
	if due.Valid {
		t.DueDate = due.String
	}
	if created.Valid {
		t.CreatedAt = created.Time
	}
	if updated.Valid {
		t.UpdatedAt = updated.Time
	}
	if completedAt.Valid {
		ts := completedAt.Time
		t.CompletedAt = &ts
	}
	return t, nil
}

func nullableDue(due string) any {
	if strings.TrimSpace(due) == "" {
		return nil
	}
	return due
}
