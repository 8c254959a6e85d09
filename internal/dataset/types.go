package dataset

import "time"

// #region types

// RunRecord is one scan run's bookkeeping row.
type RunRecord struct {
	RunID        string
	FragmentFQN  string
	DescribeJSON string
	Seed         int64
	State        string
	Completed    bool
	StartedAt    time.Time
	FinishedAt   time.Time
}

// RunEvent is one lifecycle entry in a run's event log.
type RunEvent struct {
	RunID     string
	Event     string
	Detail    string
	CreatedAt time.Time
}

// #endregion types
