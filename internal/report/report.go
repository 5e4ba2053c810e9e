// Package report persists run results in a SQLite database.
//
// Two drivers are supported behind the same interface:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): mattn/go-sqlite3
//
// Use Open() instead of sql.Open() to ensure the correct driver is used.
package report

import (
	"database/sql"
	"time"

	"github.com/FocuswithJustin/TanzilLens/core/anomaly"
	tlerrors "github.com/FocuswithJustin/TanzilLens/core/errors"
)

// DriverName returns the SQL driver name in use.
func DriverName() string {
	return driverName
}

// DriverType returns "purego" for modernc.org/sqlite, "cgo" for
// mattn/go-sqlite3.
func DriverType() string {
	return driverType
}

// IsCGO reports whether the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Info describes the SQLite driver configuration.
type Info struct {
	DriverName string `json:"driver_name"`
	DriverType string `json:"driver_type"`
	IsCGO      bool   `json:"is_cgo"`
	Package    string `json:"package"`
}

// GetInfo returns the current SQLite configuration.
func GetInfo() Info {
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
	}
}

// Run is one analysis run's identity row.
type Run struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	CorpusPath string    `json:"corpus_path"`
	SHA256     string    `json:"sha256"`
	BLAKE3     string    `json:"blake3"`
	Verses     int       `json:"verses"`
	Tokens     int       `json:"tokens"`
}

// Finding is one non-anomaly result row (pattern detections, derived
// scalars) tagged with a free-form kind.
type Finding struct {
	Kind    string `json:"kind"`
	Context string `json:"context"`
	Detail  string `json:"detail"`
}

// Store is a SQLite-backed results database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	corpus_path TEXT NOT NULL,
	sha256      TEXT NOT NULL,
	blake3      TEXT NOT NULL,
	verses      INTEGER NOT NULL,
	tokens      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS anomalies (
	run_id    TEXT NOT NULL REFERENCES runs(id),
	feature   TEXT NOT NULL,
	key       TEXT NOT NULL,
	context   TEXT NOT NULL,
	count     INTEGER NOT NULL,
	mean      REAL NOT NULL,
	stdev     REAL NOT NULL,
	z_score   REAL NOT NULL,
	direction TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS findings (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	kind    TEXT NOT NULL,
	context TEXT NOT NULL,
	detail  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_anomalies_run ON anomalies(run_id);
CREATE INDEX IF NOT EXISTS idx_findings_run ON findings(run_id);
`

// Open opens (creating if needed) the results database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, tlerrors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, tlerrors.NewIO("migrate", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts the run identity row.
func (s *Store) SaveRun(run Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, created_at, corpus_path, sha256, blake3, verses, tokens)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(time.RFC3339), run.CorpusPath,
		run.SHA256, run.BLAKE3, run.Verses, run.Tokens)
	return tlerrors.Wrap(err, "save run")
}

// Runs returns every stored run, newest first.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, corpus_path, sha256, blake3, verses, tokens
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, tlerrors.Wrap(err, "list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &created, &r.CorpusPath,
			&r.SHA256, &r.BLAKE3, &r.Verses, &r.Tokens); err != nil {
			return nil, tlerrors.Wrap(err, "scan run")
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SaveAnomalies inserts the run's anomaly events in one transaction.
func (s *Store) SaveAnomalies(runID string, events []anomaly.Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return tlerrors.Wrap(err, "save anomalies")
	}
	stmt, err := tx.Prepare(
		`INSERT INTO anomalies (run_id, feature, key, context, count, mean, stdev, z_score, direction)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return tlerrors.Wrap(err, "save anomalies")
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(runID, ev.Feature, ev.Key, ev.Context,
			ev.Count, ev.Mean, ev.Stdev, ev.Z, string(ev.Direction)); err != nil {
			tx.Rollback()
			return tlerrors.Wrap(err, "save anomalies")
		}
	}
	return tlerrors.Wrap(tx.Commit(), "save anomalies")
}

// Anomalies returns the run's anomaly events in insertion order.
func (s *Store) Anomalies(runID string) ([]anomaly.Event, error) {
	rows, err := s.db.Query(
		`SELECT feature, key, context, count, mean, stdev, z_score, direction
		 FROM anomalies WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, tlerrors.Wrap(err, "list anomalies")
	}
	defer rows.Close()

	var events []anomaly.Event
	for rows.Next() {
		var ev anomaly.Event
		var direction string
		if err := rows.Scan(&ev.Feature, &ev.Key, &ev.Context,
			&ev.Count, &ev.Mean, &ev.Stdev, &ev.Z, &direction); err != nil {
			return nil, tlerrors.Wrap(err, "scan anomaly")
		}
		ev.Direction = anomaly.Direction(direction)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// SaveFindings inserts the run's pattern findings in one transaction.
func (s *Store) SaveFindings(runID string, findings []Finding) error {
	if len(findings) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return tlerrors.Wrap(err, "save findings")
	}
	stmt, err := tx.Prepare(
		`INSERT INTO findings (run_id, kind, context, detail) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return tlerrors.Wrap(err, "save findings")
	}
	defer stmt.Close()

	for _, f := range findings {
		if _, err := stmt.Exec(runID, f.Kind, f.Context, f.Detail); err != nil {
			tx.Rollback()
			return tlerrors.Wrap(err, "save findings")
		}
	}
	return tlerrors.Wrap(tx.Commit(), "save findings")
}

// Findings returns the run's findings, optionally filtered by kind. An empty
// kind returns everything.
func (s *Store) Findings(runID, kind string) ([]Finding, error) {
	query := `SELECT kind, context, detail FROM findings WHERE run_id = ?`
	args := []any{runID}
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, tlerrors.Wrap(err, "list findings")
	}
	defer rows.Close()

	var findings []Finding
	for rows.Next() {
		var f Finding
		if err := rows.Scan(&f.Kind, &f.Context, &f.Detail); err != nil {
			return nil, tlerrors.Wrap(err, "scan finding")
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}
