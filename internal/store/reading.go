package store

import (
	"database/sql"
	"errors"
	"time"
)

// Reading is a card the user confirmed, optionally annotated with the
// interpreter's text.
type Reading struct {
	ID             string
	SessionID      string
	CardIndex      int
	CardName       string
	Gesture        string // the confirming gesture, "swipe-up" or "fist"
	Interpretation string
	CreatedAt      time.Time
}

// ReadingRepository provides CRUD operations for readings.
type ReadingRepository struct {
	db *sql.DB
}

// Readings returns the reading repository for this store.
func (s *Store) Readings() *ReadingRepository {
	return &ReadingRepository{db: s.db}
}

// Create inserts a new reading into the database.
func (r *ReadingRepository) Create(rd *Reading) error {
	if rd.CreatedAt.IsZero() {
		rd.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO readings (id, session_id, card_index, card_name, gesture, interpretation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rd.ID, rd.SessionID, rd.CardIndex, rd.CardName, rd.Gesture, rd.Interpretation, rd.CreatedAt,
	)
	return err
}

// SetInterpretation attaches interpreter output to an existing reading.
func (r *ReadingRepository) SetInterpretation(id, text string) error {
	result, err := r.db.Exec(
		`UPDATE readings SET interpretation = ? WHERE id = ?`,
		text, id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves a reading by its ID.
func (r *ReadingRepository) GetByID(id string) (*Reading, error) {
	rd := &Reading{}

	err := r.db.QueryRow(
		`SELECT id, session_id, card_index, card_name, gesture, interpretation, created_at
		 FROM readings WHERE id = ?`,
		id,
	).Scan(&rd.ID, &rd.SessionID, &rd.CardIndex, &rd.CardName, &rd.Gesture, &rd.Interpretation, &rd.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rd, nil
}

// List retrieves all readings, newest first.
func (r *ReadingRepository) List() ([]*Reading, error) {
	return r.list(`SELECT id, session_id, card_index, card_name, gesture, interpretation, created_at
		 FROM readings ORDER BY created_at DESC`)
}

// ListBySession retrieves the readings confirmed during one session.
func (r *ReadingRepository) ListBySession(sessionID string) ([]*Reading, error) {
	return r.list(`SELECT id, session_id, card_index, card_name, gesture, interpretation, created_at
		 FROM readings WHERE session_id = ? ORDER BY created_at`, sessionID)
}

func (r *ReadingRepository) list(query string, args ...any) ([]*Reading, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []*Reading
	for rows.Next() {
		rd := &Reading{}
		if err := rows.Scan(&rd.ID, &rd.SessionID, &rd.CardIndex, &rd.CardName,
			&rd.Gesture, &rd.Interpretation, &rd.CreatedAt); err != nil {
			return nil, err
		}
		readings = append(readings, rd)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return readings, nil
}

// Delete removes a reading by its ID.
func (r *ReadingRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM readings WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
