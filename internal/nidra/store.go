package nidra

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"cogcore/internal/types"
)

// Store is the daemon's sole persistence seam (spec §4.5: "every state
// transition writes the full row; every heartbeat writes only the
// heartbeat timestamp"). The daemon is the only writer; every other
// subsystem (supervisor, scans) reads through the daemon, never the
// store directly.
type Store interface {
	Load() (types.Row, bool, error)
	SaveFull(row types.Row) error
	SaveHeartbeat(ts int64) error
}

// MemStore is an in-memory Store used by tests and by callers that
// don't need the daemon to survive a restart.
type MemStore struct {
	row    types.Row
	exists bool
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Load() (types.Row, bool, error) {
	return s.row, s.exists, nil
}

func (s *MemStore) SaveFull(row types.Row) error {
	s.row = row
	s.exists = true
	return nil
}

func (s *MemStore) SaveHeartbeat(ts int64) error {
	s.row.LastHeartbeat = ts
	s.exists = true
	return nil
}

// SQLStore persists the singleton daemon row in a SQLite table shaped
// `id INTEGER PRIMARY KEY CHECK (id = 1)`, the pattern the rest of the
// corpus uses for single-row configuration/state tables.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (creating if necessary) a SQLite database at path
// and ensures the nidra_row table exists.
func OpenSQLStore(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("nidra: open store: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS nidra_row (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	state TEXT NOT NULL,
	last_state_change INTEGER NOT NULL,
	last_heartbeat INTEGER NOT NULL,
	last_consolidation_start INTEGER NOT NULL,
	last_consolidation_end INTEGER NOT NULL,
	consolidation_phase TEXT NOT NULL DEFAULT '',
	consolidation_progress REAL NOT NULL DEFAULT 0,
	updated_at INTEGER NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("nidra: create schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// CheckIntegrity runs SQLite's built-in integrity check, the
// best-effort diagnostic the supervisor's self-heal step calls before
// restarting a crashed daemon (spec §4.6).
func (s *SQLStore) CheckIntegrity() error {
	var result string
	if err := s.db.QueryRow(`PRAGMA integrity_check`).Scan(&result); err != nil {
		return fmt.Errorf("nidra: integrity check: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("nidra: integrity check reported: %s", result)
	}
	return nil
}

func (s *SQLStore) Load() (types.Row, bool, error) {
	row := s.db.QueryRow(`SELECT state, last_state_change, last_heartbeat,
		last_consolidation_start, last_consolidation_end,
		consolidation_phase, consolidation_progress, updated_at
		FROM nidra_row WHERE id = 1`)

	var r types.Row
	var state string
	err := row.Scan(&state, &r.LastStateChange, &r.LastHeartbeat,
		&r.LastConsolidationStart, &r.LastConsolidationEnd,
		&r.ConsolidationPhase, &r.ConsolidationProgress, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return types.Row{}, false, nil
	}
	if err != nil {
		return types.Row{}, false, fmt.Errorf("nidra: load row: %w", err)
	}
	r.State = types.NidraState(state)
	return r, true, nil
}

func (s *SQLStore) SaveFull(row types.Row) error {
	_, err := s.db.Exec(`INSERT INTO nidra_row
		(id, state, last_state_change, last_heartbeat, last_consolidation_start,
		 last_consolidation_end, consolidation_phase, consolidation_progress, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state=excluded.state,
			last_state_change=excluded.last_state_change,
			last_heartbeat=excluded.last_heartbeat,
			last_consolidation_start=excluded.last_consolidation_start,
			last_consolidation_end=excluded.last_consolidation_end,
			consolidation_phase=excluded.consolidation_phase,
			consolidation_progress=excluded.consolidation_progress,
			updated_at=excluded.updated_at`,
		string(row.State), row.LastStateChange, row.LastHeartbeat,
		row.LastConsolidationStart, row.LastConsolidationEnd,
		row.ConsolidationPhase, row.ConsolidationProgress, row.UpdatedAt)
	if err != nil {
		return fmt.Errorf("nidra: save full row: %w", err)
	}
	return nil
}

func (s *SQLStore) SaveHeartbeat(ts int64) error {
	_, err := s.db.Exec(`UPDATE nidra_row SET last_heartbeat = ? WHERE id = 1`, ts)
	if err != nil {
		return fmt.Errorf("nidra: save heartbeat: %w", err)
	}
	return nil
}
