package params

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"nurse-roster/internal/roster"
)

var ErrMissingNurseID = errors.New("missing required query parameter 'nurse_id'")

func NurseID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("nurse_id")
	if raw == "" {
		return 0, ErrMissingNurseID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid nurse_id %q", raw)
	}

	return id, nil
}

// RefDate читает ?date=yyyy-MM-dd, без параметра - сегодня.
func RefDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return roster.DateOnly(time.Now()), nil
	}

	d, err := roster.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-MM-dd", raw)
	}

	return d, nil
}
