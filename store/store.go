// Package store persists widget scroll positions in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/gogpu/cyclemenu"
)

const schema = `
CREATE TABLE IF NOT EXISTS positions (
	widget_id     TEXT PRIMARY KEY,
	position      INTEGER,
	angle_offset  REAL NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS position_history (
	entry_id      TEXT PRIMARY KEY,
	widget_id     TEXT NOT NULL,
	position      INTEGER,
	angle_offset  REAL NOT NULL,
	saved_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS position_history_widget
	ON position_history (widget_id, saved_at);
`

// Entry is one saved position.
type Entry struct {
	ID       string
	WidgetID string
	cyclemenu.PersistedPosition
	SavedAt time.Time
}

// Store keeps the last position per widget id plus a history of saves.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens a SQLite database and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save records p as the current position of widgetID and appends it to the
// history. NoPosition is stored as NULL.
func (s *Store) Save(widgetID string, p cyclemenu.PersistedPosition) (Entry, error) {
	e := Entry{
		ID:                uuid.New().String(),
		WidgetID:          widgetID,
		PersistedPosition: p,
		SavedAt:           s.now().UTC(),
	}
	var pos sql.NullInt64
	if p.Position != cyclemenu.NoPosition {
		pos = sql.NullInt64{Int64: int64(p.Position), Valid: true}
	}
	at := e.SavedAt.Format(time.RFC3339Nano)

	tx, err := s.db.Begin()
	if err != nil {
		return Entry{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO positions (widget_id, position, angle_offset, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(widget_id) DO UPDATE SET
			position = excluded.position,
			angle_offset = excluded.angle_offset,
			updated_at = excluded.updated_at`,
		widgetID, pos, p.AngleOffset, at,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("upsert position: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO position_history (entry_id, widget_id, position, angle_offset, saved_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, widgetID, pos, p.AngleOffset, at,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("commit: %w", err)
	}
	return e, nil
}

// Load returns the current position of widgetID. ok is false when nothing
// was saved; the returned position is then NoPosition.
func (s *Store) Load(widgetID string) (p cyclemenu.PersistedPosition, ok bool, err error) {
	var pos sql.NullInt64
	err = s.db.QueryRow(
		`SELECT position, angle_offset FROM positions WHERE widget_id = ?`, widgetID,
	).Scan(&pos, &p.AngleOffset)
	if errors.Is(err, sql.ErrNoRows) {
		return cyclemenu.PersistedPosition{Position: cyclemenu.NoPosition}, false, nil
	}
	if err != nil {
		return cyclemenu.PersistedPosition{}, false, fmt.Errorf("load position %s: %w", widgetID, err)
	}
	p.Position = cyclemenu.NoPosition
	if pos.Valid {
		p.Position = int(pos.Int64)
	}
	return p, true, nil
}

// History returns up to limit saves of widgetID, newest first.
func (s *Store) History(widgetID string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT entry_id, position, angle_offset, saved_at FROM position_history
		 WHERE widget_id = ? ORDER BY saved_at DESC, rowid DESC LIMIT ?`,
		widgetID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e := Entry{WidgetID: widgetID}
		var pos sql.NullInt64
		var at string
		if err := rows.Scan(&e.ID, &pos, &e.AngleOffset, &at); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Position = cyclemenu.NoPosition
		if pos.Valid {
			e.Position = int(pos.Int64)
		}
		e.SavedAt, _ = time.Parse(time.RFC3339Nano, at)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Listener returns a state-save listener writing to widgetID. Save errors
// go to onErr, which may be nil.
func (s *Store) Listener(widgetID string, onErr func(error)) cyclemenu.StateSaveListener {
	return cyclemenu.StateSaveFunc(func(position int, angleOffset float64) {
		_, err := s.Save(widgetID, cyclemenu.PersistedPosition{Position: position, AngleOffset: angleOffset})
		if err != nil && onErr != nil {
			onErr(err)
		}
	})
}

// Restore loads the position of widgetID into w. It reports whether a
// position was found.
func (s *Store) Restore(w *cyclemenu.Widget, widgetID string) (bool, error) {
	p, ok, err := s.Load(widgetID)
	if err != nil || !ok {
		return false, err
	}
	w.SetCurrentPosition(p.Position)
	w.SetCurrentItemsAngleOffset(p.AngleOffset)
	return true, nil
}
