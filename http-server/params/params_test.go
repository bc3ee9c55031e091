package params

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNurseID(t *testing.T) {
	id, err := NurseID(httptest.NewRequest(http.MethodGet, "/?nurse_id=12", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = NurseID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrMissingNurseID)

	for _, bad := range []string{"abc", "0", "-3"} {
		_, err = NurseID(httptest.NewRequest(http.MethodGet, "/?nurse_id="+bad, nil))
		assert.Error(t, err, bad)
	}
}

func TestRefDate(t *testing.T) {
	d, err := RefDate(httptest.NewRequest(http.MethodGet, "/?date=2026-11-05", nil))
	require.NoError(t, err)
	assert.Equal(t, "2026-11-05", d.Format("2006-01-02"))

	d, err = RefDate(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), d.Format("2006-01-02"))

	_, err = RefDate(httptest.NewRequest(http.MethodGet, "/?date=05.11.2026", nil))
	assert.Error(t, err)
}
