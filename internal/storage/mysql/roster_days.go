package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nurse-roster/internal/roster"
	"nurse-roster/internal/storage"
)

// GetShiftsInRange returns the raw stored payloads keyed by yyyy-MM-dd.
// Payloads are not decoded here: old rows hold a bare shift string.
func (s *Storage) GetShiftsInRange(ctx context.Context, nurseID int64, from, to time.Time) (map[string]json.RawMessage, error) {
	const op = "storage.mysql.GetShiftsInRange"

	query := `
		SELECT day, payload
		FROM roster_days
		WHERE nurse_id = ? AND day BETWEEN ? AND ?
		ORDER BY day ASC
	`

	rows, err := s.db.QueryContext(ctx, query, nurseID, roster.DateKey(from), roster.DateKey(to))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	days := make(map[string]json.RawMessage)
	for rows.Next() {
		var (
			day     time.Time
			payload []byte
		)
		if err := rows.Scan(&day, &payload); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		days[roster.DateKey(day)] = payload
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return days, nil
}

func (s *Storage) GetDay(ctx context.Context, nurseID int64, day time.Time) (json.RawMessage, error) {
	const op = "storage.mysql.GetDay"

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM roster_days WHERE nurse_id = ? AND day = ?`,
		nurseID, roster.DateKey(day),
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: day %s: %w", op, roster.DateKey(day), storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payload, nil
}

// SaveDay всегда пишет запись в новом объектном формате.
func (s *Storage) SaveDay(ctx context.Context, nurseID int64, day time.Time, rec roster.DayRecord) error {
	const op = "storage.mysql.SaveDay"

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: marshal day record: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO roster_days (nurse_id, day, payload)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			payload = VALUES(payload),
			updated_at = CURRENT_TIMESTAMP
	`, nurseID, roster.DateKey(day), string(payload))
	if err != nil {
		if mysqlErrorNumber(err) == errForeignKeyChild {
			return fmt.Errorf("%s: nurse id=%d: %w", op, nurseID, storage.ErrNurseNotFound)
		}
		return fmt.Errorf("%s: day %s: %w", op, roster.DateKey(day), err)
	}

	return nil
}

func (s *Storage) DeleteDay(ctx context.Context, nurseID int64, day time.Time) error {
	const op = "storage.mysql.DeleteDay"

	_, err := s.db.ExecContext(ctx, `DELETE FROM roster_days WHERE nurse_id = ? AND day = ?`, nurseID, roster.DateKey(day))
	if err != nil {
		return fmt.Errorf("%s: day %s: %w", op, roster.DateKey(day), err)
	}

	return nil
}
