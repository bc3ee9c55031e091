package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nurse-roster/internal/storage"
)

func (s *Storage) GetNurse(ctx context.Context, id int64) (*storage.Nurse, error) {
	const op = "storage.mysql.GetNurse"

	query := "SELECT id, name, employee_no, ward, `rank`, is_active FROM nurses WHERE id = ?"

	nurse := &storage.Nurse{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&nurse.ID,
		&nurse.Name,
		&nurse.EmployeeNo,
		&nurse.Ward,
		&nurse.Rank,
		&nurse.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: nurse id=%d: %w", op, id, storage.ErrNurseNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return nurse, nil
}

func (s *Storage) GetAllNurses(ctx context.Context) ([]storage.Nurse, error) {
	const op = "storage.mysql.GetAllNurses"

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, employee_no, ward, `rank`, is_active FROM nurses ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	nurses := []storage.Nurse{}
	for rows.Next() {
		var n storage.Nurse
		if err := rows.Scan(&n.ID, &n.Name, &n.EmployeeNo, &n.Ward, &n.Rank, &n.IsActive); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		nurses = append(nurses, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return nurses, nil
}

func (s *Storage) CreateNurse(ctx context.Context, n storage.Nurse) (int64, error) {
	const op = "storage.mysql.CreateNurse"

	stmt := "INSERT INTO nurses (name, employee_no, ward, `rank`, is_active) VALUES (?, ?, ?, ?, ?)"

	res, err := s.db.ExecContext(ctx, stmt, n.Name, n.EmployeeNo, n.Ward, n.Rank, n.IsActive)
	if err != nil {
		if mysqlErrorNumber(err) == errDuplicateEntry {
			return 0, fmt.Errorf("%s: employee_no=%q: %w", op, n.EmployeeNo, storage.ErrDuplicate)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateNurses(ctx context.Context, nurses []storage.Nurse) error {
	const op = "storage.mysql.UpdateNurses"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "UPDATE nurses SET name = ?, employee_no = ?, ward = ?, `rank` = ?, is_active = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, n := range nurses {
		if _, err := stmt.ExecContext(ctx, n.Name, n.EmployeeNo, n.Ward, n.Rank, n.IsActive, n.ID); err != nil {
			if mysqlErrorNumber(err) == errDuplicateEntry {
				return fmt.Errorf("%s: employee_no=%q: %w", op, n.EmployeeNo, storage.ErrDuplicate)
			}
			return fmt.Errorf("%s: nurse id=%d: %w", op, n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
