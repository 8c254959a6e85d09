// Package dataset persists scan runs to SQLite: the description document
// and resolved seed per run, axis coordinates and result values per point,
// and a lifecycle event log. It is the storage counterpart of the in-memory
// sinks; the engine itself never reads the database back.
package dataset

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mhollis/gridscan/internal/describe"
	"github.com/mhollis/gridscan/internal/scan"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS scan_runs (
	run_id        TEXT PRIMARY KEY,
	fragment_fqn  TEXT NOT NULL,
	describe_json TEXT NOT NULL,
	document_json TEXT,
	seed          INTEGER NOT NULL,
	state         TEXT NOT NULL,
	completed     INTEGER NOT NULL DEFAULT 0,
	started_at    TEXT NOT NULL,
	finished_at   TEXT
);

CREATE TABLE IF NOT EXISTS scan_points (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	point_index   INTEGER NOT NULL,
	axis_index    INTEGER NOT NULL,
	value         REAL NOT NULL,
	UNIQUE (run_id, point_index, axis_index),
	FOREIGN KEY (run_id) REFERENCES scan_runs(run_id)
);

CREATE TABLE IF NOT EXISTS scan_results (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	point_index   INTEGER NOT NULL,
	channel       TEXT NOT NULL,
	value         REAL NOT NULL,
	UNIQUE (run_id, point_index, channel),
	FOREIGN KEY (run_id) REFERENCES scan_runs(run_id)
);

CREATE TABLE IF NOT EXISTS run_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	event         TEXT NOT NULL,
	detail        TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES scan_runs(run_id)
);
`
// #endregion schema

// #region store-struct
// Store manages persisted scan runs in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region begin-run
// BeginRun registers a new run with its description document and returns
// its record. The seed stored is the one from the document, which is the
// seed iteration uses. doc, when non-nil, is the declarative scan document
// persisted alongside so the run can later be replayed or exported.
func (s *Store) BeginRun(desc *describe.ScanDescription, doc *scan.Document) (RunRecord, error) {
	descJSON, err := json.Marshal(desc)
	if err != nil {
		return RunRecord{}, fmt.Errorf("marshal description: %w", err)
	}
	var docPtr interface{}
	if doc != nil {
		docJSON, err := json.Marshal(doc)
		if err != nil {
			return RunRecord{}, fmt.Errorf("marshal scan document: %w", err)
		}
		docPtr = string(docJSON)
	}
	rec := RunRecord{
		RunID:        uuid.New().String(),
		FragmentFQN:  desc.FragmentFQN,
		DescribeJSON: string(descJSON),
		Seed:         desc.Seed,
		State:        "running",
		StartedAt:    time.Now().UTC(),
	}
	_, err = s.db.Exec(
		`INSERT INTO scan_runs (run_id, fragment_fqn, describe_json, document_json, seed, state, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.FragmentFQN, rec.DescribeJSON, docPtr, rec.Seed, rec.State,
		rec.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}
// #endregion begin-run

// #region finish-run
// FinishRun records a run's terminal state. completed is only true when the
// point list was exhausted, never on cancellation.
func (s *Store) FinishRun(runID, state string, completed bool) error {
	done := 0
	if completed {
		done = 1
	}
	res, err := s.db.Exec(
		`UPDATE scan_runs SET state = ?, completed = ?, finished_at = ? WHERE run_id = ?`,
		state, done, time.Now().UTC().Format(time.RFC3339Nano), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}
// #endregion finish-run

// #region append-point
// AppendPoint stores one completed point: its axis coordinates and the
// result values it produced, in a single transaction so a point is either
// fully persisted or absent.
func (s *Store) AppendPoint(runID string, index int, axisValues []float64, results map[string]float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for axis, v := range axisValues {
		_, err = tx.Exec(
			`INSERT INTO scan_points (run_id, point_index, axis_index, value) VALUES (?, ?, ?, ?)`,
			runID, index, axis, v,
		)
		if err != nil {
			return fmt.Errorf("insert point: %w", err)
		}
	}
	for channel, v := range results {
		_, err = tx.Exec(
			`INSERT INTO scan_results (run_id, point_index, channel, value) VALUES (?, ?, ?, ?)`,
			runID, index, channel, v,
		)
		if err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
	}
	return tx.Commit()
}
// #endregion append-point

// #region get-run
// GetRun retrieves a run record by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var completed int
	var startedStr string
	var finishedStr sql.NullString
	err := s.db.QueryRow(
		`SELECT run_id, fragment_fqn, describe_json, seed, state, completed, started_at, finished_at
		 FROM scan_runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &rec.FragmentFQN, &rec.DescribeJSON, &rec.Seed, &rec.State,
		&completed, &startedStr, &finishedStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	rec.Completed = completed != 0
	rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	if finishedStr.Valid {
		rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedStr.String)
	}
	return rec, nil
}
// #endregion get-run

// #region list-runs
// ListRuns returns the most recent runs.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, fragment_fqn, describe_json, seed, state, completed, started_at, finished_at
		 FROM scan_runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var completed int
		var startedStr string
		var finishedStr sql.NullString
		if err := rows.Scan(&rec.RunID, &rec.FragmentFQN, &rec.DescribeJSON, &rec.Seed,
			&rec.State, &completed, &startedStr, &finishedStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.Completed = completed != 0
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		if finishedStr.Valid {
			rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedStr.String)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-runs

// #region read-back
// AxisValues returns one axis's coordinates for a run in point order.
func (s *Store) AxisValues(runID string, axis int) ([]float64, error) {
	rows, err := s.db.Query(
		`SELECT value FROM scan_points WHERE run_id = ? AND axis_index = ? ORDER BY point_index`,
		runID, axis,
	)
	if err != nil {
		return nil, fmt.Errorf("axis values: %w", err)
	}
	defer rows.Close()
	return scanValues(rows)
}

// ChannelValues returns one result channel's values for a run in point
// order. Points with a missing result for the channel are simply absent.
func (s *Store) ChannelValues(runID, channel string) ([]float64, error) {
	rows, err := s.db.Query(
		`SELECT value FROM scan_results WHERE run_id = ? AND channel = ? ORDER BY point_index`,
		runID, channel,
	)
	if err != nil {
		return nil, fmt.Errorf("channel values: %w", err)
	}
	defer rows.Close()
	return scanValues(rows)
}

// Document returns the declarative scan document persisted for a run, or
// an error when the run was started without one.
func (s *Store) Document(runID string) (*scan.Document, error) {
	var docJSON sql.NullString
	err := s.db.QueryRow(
		`SELECT document_json FROM scan_runs WHERE run_id = ?`, runID,
	).Scan(&docJSON)
	if err != nil {
		return nil, fmt.Errorf("get document for %s: %w", runID, err)
	}
	if !docJSON.Valid {
		return nil, fmt.Errorf("run %s has no scan document", runID)
	}
	var d scan.Document
	if err := json.Unmarshal([]byte(docJSON.String), &d); err != nil {
		return nil, fmt.Errorf("parse document for %s: %w", runID, err)
	}
	return &d, nil
}

// Channels lists the result channels a run recorded values for.
func (s *Store) Channels(runID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT channel FROM scan_results WHERE run_id = ? ORDER BY channel`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// PointCount returns how many points have been persisted for a run.
func (s *Store) PointCount(runID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT point_index) FROM scan_points WHERE run_id = ?`, runID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("point count: %w", err)
	}
	return n, nil
}

func scanValues(rows *sql.Rows) ([]float64, error) {
	var values []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
// #endregion read-back

// #region run-log
// LogEvent appends one lifecycle entry to a run's event log.
func (s *Store) LogEvent(runID, event, detail string) error {
	_, err := s.db.Exec(
		`INSERT INTO run_log (run_id, event, detail, created_at) VALUES (?, ?, ?, ?)`,
		runID, event, nullIfEmpty(detail), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

// Events returns a run's event log in insertion order.
func (s *Store) Events(runID string) ([]RunEvent, error) {
	rows, err := s.db.Query(
		`SELECT run_id, event, detail, created_at FROM run_log WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []RunEvent
	for rows.Next() {
		var ev RunEvent
		var detail sql.NullString
		var createdStr string
		if err := rows.Scan(&ev.RunID, &ev.Event, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if detail.Valid {
			ev.Detail = detail.String
		}
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		events = append(events, ev)
	}
	return events, rows.Err()
}
// #endregion run-log

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
