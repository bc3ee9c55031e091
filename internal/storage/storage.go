package storage

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNurseNotFound = errors.New("nurse not found")
	ErrDuplicate     = errors.New("already exists")
)
