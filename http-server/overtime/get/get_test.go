package get

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nurse-roster/internal/roster"
	"nurse-roster/internal/service/overtime"
	"nurse-roster/internal/storage"
)

type MockReportProvider struct {
	mock.Mock
}

func (m *MockReportProvider) MonthlyReport(ctx context.Context, nurseID int64, ref time.Time) (*overtime.Summary, error) {
	args := m.Called(ctx, nurseID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*overtime.Summary), args.Error(1)
}

type reportResponse struct {
	Nurse        storage.Nurse       `json:"nurse"`
	StartDate    string              `json:"startDate"`
	EndDate      string              `json:"endDate"`
	Weeks        []roster.WeekBucket `json:"weeks"`
	MonthlyStats roster.Stats        `json:"monthlyStats"`
}

func TestGetMonthlyOvertime_Success(t *testing.T) {
	ref := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	report := roster.Calculate(roster.ShiftsMap{
		"2026-11-02": {Shifts: []roster.ShiftCode{roster.Morning, roster.OTEvening}},
	}, ref)

	reports := new(MockReportProvider)
	reports.On("MonthlyReport", mock.Anything, int64(2), ref).Return(&overtime.Summary{
		Nurse:  &storage.Nurse{ID: 2, Name: "Mei Tan"},
		Report: report,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/overtime?nurse_id=2&date=2026-11-10", nil)
	rr := httptest.NewRecorder()
	GetMonthlyOvertime(slog.Default(), reports, time.Second).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp reportResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, "Mei Tan", resp.Nurse.Name)
	assert.Equal(t, "2026-11-01", resp.StartDate)
	assert.Equal(t, "2026-11-28", resp.EndDate)
	assert.Len(t, resp.Weeks, 4)
	assert.Equal(t, roster.Stats{Box1: 6, Box2: 6, Box3: 12, Box4: 0}, resp.MonthlyStats)

	reports.AssertExpectations(t)
}

func TestGetMonthlyOvertime_NurseNotFound(t *testing.T) {
	reports := new(MockReportProvider)
	reports.On("MonthlyReport", mock.Anything, int64(404), mock.Anything).
		Return(nil, fmt.Errorf("service.overtime.MonthlyReport: %w", storage.ErrNurseNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/overtime?nurse_id=404", nil)
	rr := httptest.NewRecorder()
	GetMonthlyOvertime(slog.Default(), reports, time.Second).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetMonthlyOvertime_BadParams(t *testing.T) {
	reports := new(MockReportProvider)

	for _, target := range []string{
		"/api/overtime",
		"/api/overtime?nurse_id=abc",
		"/api/overtime?nurse_id=2&date=2026/11/10",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		GetMonthlyOvertime(slog.Default(), reports, time.Second).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}

	reports.AssertNotCalled(t, "MonthlyReport")
}

func TestGetMonthlyOvertime_ServiceError(t *testing.T) {
	reports := new(MockReportProvider)
	reports.On("MonthlyReport", mock.Anything, int64(2), mock.Anything).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/overtime?nurse_id=2", nil)
	rr := httptest.NewRecorder()
	GetMonthlyOvertime(slog.Default(), reports, time.Second).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
