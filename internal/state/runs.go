package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/miyabi-dev/miyabi/pkg/models"
)

// Run records one orchestration of a work item.
type Run struct {
	// ID is the unique identifier of the run.
	ID string `json:"id"`
	// IssueNumber is the external issue reference, if any.
	IssueNumber *int64 `json:"issue_number,omitempty"`
	// Title is the work item title.
	Title string `json:"title"`
	// Status is the final work item status.
	Status models.WorkItemStatus `json:"status"`
	// TaskCount is how many tasks the plan contained.
	TaskCount int `json:"task_count"`
	// SucceededCount is how many task outcomes reported success.
	SucceededCount int `json:"succeeded_count"`
	// StartedAt is when orchestration began.
	StartedAt time.Time `json:"started_at"`
	// FinishedAt is when orchestration ended, if it has.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// RecordRun inserts a run into the history.
func (db *DB) RecordRun(r Run) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	var finishedAt any
	if r.FinishedAt != nil {
		finishedAt = r.FinishedAt.UTC().Format(time.RFC3339)
	}

	_, err := db.conn.Exec(`
		INSERT INTO runs (id, issue_number, title, status, task_count, succeeded_count, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.IssueNumber, r.Title, string(r.Status), r.TaskCount, r.SucceededCount,
		r.StartedAt.UTC().Format(time.RFC3339), finishedAt)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows, err := db.conn.Query(`
		SELECT id, issue_number, title, status, task_count, succeeded_count, started_at, finished_at
		FROM runs ORDER BY started_at DESC, id LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			issue      sql.NullInt64
			status     string
			startedAt  string
			finishedAt sql.NullString
		)
		if err := rows.Scan(&r.ID, &issue, &r.Title, &status, &r.TaskCount,
			&r.SucceededCount, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if issue.Valid {
			n := issue.Int64
			r.IssueNumber = &n
		}
		r.Status = models.WorkItemStatus(status)
		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			r.StartedAt = t
		}
		if finishedAt.Valid {
			if t, err := time.Parse(time.RFC3339, finishedAt.String); err == nil {
				r.FinishedAt = &t
			}
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
