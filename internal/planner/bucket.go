package planner

import "github.com/rnwolfe/planr/internal/task"

// Bucket is one of the four thematic groupings of ranked tasks.
type Bucket int

const (
	BucketCritical Bucket = iota
	BucketDeepFocus
	BucketQuickWins
	BucketCatchUp
)

func (b Bucket) String() string {
	switch b {
	case BucketCritical:
		return "critical"
	case BucketDeepFocus:
		return "deepFocus"
	case BucketQuickWins:
		return "quickWins"
	case BucketCatchUp:
		return "catchUp"
	default:
		return "unknown"
	}
}

// Title is the section heading for the bucket.
func (b Bucket) Title() string {
	switch b {
	case BucketCritical:
		return "Critical path"
	case BucketDeepFocus:
		return "Deep focus"
	case BucketQuickWins:
		return "Quick wins"
	case BucketCatchUp:
		return "Catch up"
	default:
		return ""
	}
}

// Hint is the one-line guidance shown under the section heading.
func (b Bucket) Hint() string {
	switch b {
	case BucketCritical:
		return "Your highest-impact tasks right now."
	case BucketDeepFocus:
		return "Block uninterrupted time for these."
	case BucketQuickWins:
		return "Knock these out between bigger blocks."
	case BucketCatchUp:
		return "Overdue items worth clearing."
	default:
		return ""
	}
}

// MarshalText renders the bucket by name in JSON output.
func (b Bucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Section is a non-empty bucket ready for display.
type Section struct {
	Bucket Bucket        `json:"bucket"`
	Title  string        `json:"title"`
	Hint   string        `json:"hint"`
	Tasks  []PlannedTask `json:"tasks"`
}

// Predicate decides whether a ranked task may join a bucket.
type Predicate func(PlannedTask) bool

// UsedSet records task ids already claimed by a bucket.
type UsedSet map[int]struct{}

// Has reports whether id has been claimed.
func (u UsedSet) Has(id int) bool {
	_, ok := u[id]
	return ok
}

// Pick walks ranked in order and takes up to capacity unclaimed tasks that
// satisfy pred, marking them in used. A nil pred accepts every task.
func Pick(ranked []PlannedTask, used UsedSet, capacity int, pred Predicate) []PlannedTask {
	var picked []PlannedTask
	for _, p := range ranked {
		if len(picked) >= capacity {
			break
		}
		if used.Has(p.ID) {
			continue
		}
		if pred != nil && !pred(p) {
			continue
		}
		used[p.ID] = struct{}{}
		picked = append(picked, p)
	}
	return picked
}

type bucketRule struct {
	bucket   Bucket
	capacity int
	pred     Predicate
}

// bucketRules run in this order; earlier buckets get first pick.
var bucketRules = []bucketRule{
	{BucketCritical, 3, nil},
	{BucketDeepFocus, 2, func(p PlannedTask) bool { return p.Difficulty != task.Easy }},
	{BucketQuickWins, 3, func(p PlannedTask) bool { return p.Difficulty == task.Easy }},
	{BucketCatchUp, 2, PlannedTask.Overdue},
}

// Capacity returns the maximum size of a bucket.
func (b Bucket) Capacity() int {
	for _, r := range bucketRules {
		if r.bucket == b {
			return r.capacity
		}
	}
	return 0
}

// Partition assigns ranked tasks to buckets, each task to at most one.
// Buckets that end up empty are left out of the result.
func Partition(ranked []PlannedTask) []Section {
	used := UsedSet{}
	sections := []Section{}
	for _, r := range bucketRules {
		picked := Pick(ranked, used, r.capacity, r.pred)
		if len(picked) == 0 {
			continue
		}
		sections = append(sections, Section{
			Bucket: r.bucket,
			Title:  r.bucket.Title(),
			Hint:   r.bucket.Hint(),
			Tasks:  picked,
		})
	}
	return sections
}
