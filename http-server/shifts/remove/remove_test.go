package remove

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"nurse-roster/internal/roster"
	"nurse-roster/internal/service/shift-entry"
)

type MockShiftRemover struct {
	mock.Mock
}

func (m *MockShiftRemover) RemoveShift(ctx context.Context, nurseID int64, date string, code roster.ShiftCode) (roster.DayRecord, error) {
	args := m.Called(ctx, nurseID, date, code)
	return args.Get(0).(roster.DayRecord), args.Error(1)
}

func (m *MockShiftRemover) ClearDay(ctx context.Context, nurseID int64, date string) error {
	args := m.Called(ctx, nurseID, date)
	return args.Error(0)
}

func TestRemoveShift_OneCode(t *testing.T) {
	remover := new(MockShiftRemover)
	remover.On("RemoveShift", mock.Anything, int64(5), "2026-11-02", roster.OTEvening).
		Return(roster.DayRecord{Shifts: []roster.ShiftCode{roster.Morning}}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/shifts?nurse_id=5&date=2026-11-02&code=OTE", nil)
	rr := httptest.NewRecorder()
	RemoveShift(slog.Default(), remover, time.Second).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"valid":true`)
	assert.Contains(t, rr.Body.String(), `"M"`)
	assert.NotContains(t, rr.Body.String(), `"OTE"`)
	remover.AssertExpectations(t)
	remover.AssertNotCalled(t, "ClearDay")
}

func TestRemoveShift_ClearsDayWithoutCode(t *testing.T) {
	remover := new(MockShiftRemover)
	remover.On("ClearDay", mock.Anything, int64(5), "2026-11-02").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/shifts?nurse_id=5&date=2026-11-02", nil)
	rr := httptest.NewRecorder()
	RemoveShift(slog.Default(), remover, time.Second).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	remover.AssertExpectations(t)
	remover.AssertNotCalled(t, "RemoveShift")
}

func TestRemoveShift_MissingDate(t *testing.T) {
	remover := new(MockShiftRemover)

	req := httptest.NewRequest(http.MethodDelete, "/api/shifts?nurse_id=5", nil)
	rr := httptest.NewRecorder()
	RemoveShift(slog.Default(), remover, time.Second).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "date")
}

// Тест: ошибка проверки на удалении отдаётся так же, как на записи - 422 и JSON для UI
func TestRemoveShift_InvalidDateIsRejectedAsJSON(t *testing.T) {
	remover := new(MockShiftRemover)
	remover.On("ClearDay", mock.Anything, int64(5), "2026-13-40").
		Return(&shift_entry.ValidationError{Message: `Invalid date "2026-13-40", expected yyyy-MM-dd`})

	req := httptest.NewRequest(http.MethodDelete, "/api/shifts?nurse_id=5&date=2026-13-40", nil)
	rr := httptest.NewRecorder()
	RemoveShift(slog.Default(), remover, time.Second).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"valid":false,"message":"Invalid date \"2026-13-40\", expected yyyy-MM-dd"}`, rr.Body.String())
}

func TestRemoveShift_StorageError(t *testing.T) {
	remover := new(MockShiftRemover)
	remover.On("RemoveShift", mock.Anything, int64(5), "2026-11-02", roster.Morning).
		Return(roster.DayRecord{}, assert.AnError)

	req := httptest.NewRequest(http.MethodDelete, "/api/shifts?nurse_id=5&date=2026-11-02&code=M", nil)
	rr := httptest.NewRecorder()
	RemoveShift(slog.Default(), remover, time.Second).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
