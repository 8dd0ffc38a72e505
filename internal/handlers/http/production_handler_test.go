package http

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shopfloor-tracker/internal/middleware"
	mysqlrepo "shopfloor-tracker/internal/repositories/mysql"
	"shopfloor-tracker/internal/util"
)

type stubStore struct {
	rows  []mysqlrepo.EntryRow
	err   error
	lastF mysqlrepo.EntryFilter
	byID  map[int64]mysqlrepo.EntryRow
}

func (s *stubStore) ListEntries(ctx context.Context, f mysqlrepo.EntryFilter) ([]mysqlrepo.EntryRow, error) {
	s.lastF = f
	return s.rows, s.err
}

func (s *stubStore) GetEntry(ctx context.Context, id int64) (mysqlrepo.EntryRow, error) {
	if e, ok := s.byID[id]; ok {
		return e, nil
	}
	return mysqlrepo.EntryRow{}, mysqlrepo.ErrNotFound
}

type stubCustomers struct{ list []mysqlrepo.CustomerComponent }

func (s stubCustomers) ListCustomers(ctx context.Context) ([]mysqlrepo.CustomerComponent, error) {
	return s.list, nil
}

func nstr(v string) sql.NullString { return sql.NullString{String: v, Valid: v != ""} }

func row(id int64, machine, component, cycle, handling, setting, idle, start, end string, qty int) mysqlrepo.EntryRow {
	return mysqlrepo.EntryRow{
		ID:            id,
		EntryDate:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Machine:       machine,
		CustomerName:  nstr("Acme"),
		ComponentName: component,
		Qty:           qty,
		CycleTime:     nstr(cycle),
		HandlingTime:  nstr(handling),
		SettingTime:   nstr(setting),
		IdleTime:      nstr(idle),
		StartTime:     nstr(start),
		EndTime:       nstr(end),
	}
}

func newTestHandler(store *stubStore) *ProductionHandler {
	return &ProductionHandler{
		Store:     store,
		Refs:      stubCustomers{list: []mysqlrepo.CustomerComponent{{CustomerName: "Acme", ComponentName: "Flange"}}},
		Log:       zap.NewNop(),
		Clock:     util.FixedClock{T: time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC)},
		RangeDays: 30,
	}
}

func sampleRows() []mysqlrepo.EntryRow {
	return []mysqlrepo.EntryRow{
		row(1, "TC-1", "Flange", "00:00:10", "00:00:05", "00:05:00", "00:30:00", "08:00:AM", "04:30:PM", 5),
		row(2, "VMC", "Shaft", "00:02:30", "00:00:30", "00:15:00", "01:15:00", "08:00:PM", "08:00:AM", 20),
	}
}

func TestEntries_DefaultRangeAndDecoration(t *testing.T) {
	store := &stubStore{rows: sampleRows()}
	h := newTestHandler(store)

	rec := httptest.NewRecorder()
	h.Entries(rec, httptest.NewRequest(http.MethodGet, "/api/entries?machine=TC-1,%20VMC", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, store.lastF.Start)
	require.NotNil(t, store.lastF.End)
	assert.Equal(t, "2025-05-31", store.lastF.Start.Format(dateLayout))
	assert.Equal(t, "2025-07-01", store.lastF.End.Format(dateLayout))
	assert.Equal(t, []string{"TC-1", "VMC"}, store.lastF.Machines)

	var body entriesResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "00:06:15", body.Records[0].TotalProductionHr)
	assert.Equal(t, "08:00:00", body.Records[0].TotalWorkingHrs)
	assert.Equal(t, "01:15:00", body.Records[1].TotalProductionHr)
	assert.Equal(t, "10:45:00", body.Records[1].TotalWorkingHrs)
	assert.Equal(t, "01:45:00", body.IdleTime)
	assert.Equal(t, "18:45:00", body.WorkingTime)
}

func TestEntries_BadDates(t *testing.T) {
	h := newTestHandler(&stubStore{})

	rec := httptest.NewRecorder()
	h.Entries(rec, httptest.NewRequest(http.MethodGet, "/api/entries?startDate=2025-13-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Entries(rec, httptest.NewRequest(http.MethodGet, "/api/entries?startDate=2025-06-10&endDate=2025-06-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntries_RepoMissingOrFailing(t *testing.T) {
	h := &ProductionHandler{}
	rec := httptest.NewRecorder()
	h.Entries(rec, httptest.NewRequest(http.MethodGet, "/api/entries", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h = newTestHandler(&stubStore{err: assert.AnError})
	rec = httptest.NewRecorder()
	h.Entries(rec, httptest.NewRequest(http.MethodGet, "/api/entries", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "db_error")
}

func TestDashboard(t *testing.T) {
	h := newTestHandler(&stubStore{rows: sampleRows()})

	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard?startDate=2025-06-01&endDate=2025-06-30", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-01", body["startDate"])
	assert.Equal(t, float64(2), body["totalProducts"])
	assert.Equal(t, "1hr 21mins 15sec", body["productionHrs"])
	assert.Equal(t, "18hr 45mins", body["workingHrs"])
	assert.Equal(t, "1hr 45mins", body["idleHrs"])
	machines := body["machines"].([]any)
	require.Len(t, machines, 2)
	assert.Equal(t, "TC-1", machines[0].(map[string]any)["machine"])

	rec = httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard?component=Shaft", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["totalProducts"])
}

func TestExport(t *testing.T) {
	h := newTestHandler(&stubStore{rows: sampleRows()})

	rec := httptest.NewRecorder()
	h.Export(rec, httptest.NewRequest(http.MethodGet, "/api/entries/export", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "dashboard_production_data_2025-06-30.csv")

	lines, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, exportHeader, lines[0])
	assert.Equal(t, "TC-1", lines[1][3])
	assert.Equal(t, "00:06:15", lines[1][16])
	assert.Equal(t, "08:00:00", lines[1][17])
}

func TestCustomers(t *testing.T) {
	h := newTestHandler(&stubStore{})
	rec := httptest.NewRecorder()
	h.Customers(rec, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customers":[{"customerName":"Acme","componentName":"Flange"}]}`, rec.Body.String())
}

func TestEntryByID(t *testing.T) {
	store := &stubStore{byID: map[int64]mysqlrepo.EntryRow{1: sampleRows()[0]}}
	h := newTestHandler(store)
	r := chi.NewRouter()
	r.Get("/admin/entries/{id}", h.EntryByID)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/entries/1", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"totalProductionHr":"00:06:15"`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/entries/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/entries/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReconcileHandler(t *testing.T) {
	rows := sampleRows()
	rows = append(rows, row(3, "TC-2", "Pin", "1:5", "", "", "", "08:00", "16:00", 1))
	h := newTestHandler(&stubStore{rows: rows})

	rec := httptest.NewRecorder()
	h.Reconcile(rec, httptest.NewRequest(http.MethodGet, "/admin/reconcile", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Checked int `json:"checked"`
		Issues  []struct {
			ID     string `json:"id"`
			Reason string `json:"reason"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Checked)
	require.Len(t, body.Issues, 2)
	assert.Equal(t, "3", body.Issues[0].ID)
	assert.Equal(t, "malformed_duration", body.Issues[0].Reason)
	assert.Equal(t, "working_time_not_computable", body.Issues[1].Reason)
}

func TestCalcRollupHandler(t *testing.T) {
	payload := `{"records":[
		{"machineName":"TC-1","componentName":"Flange","cycleTime":"00:00:10","handlingTime":"00:00:05",
		 "qty":3,"additionalQty":2,"settingTime":"00:05:00","idleTime":"00:30:00",
		 "startTime":"08:00:AM","endTime":"04:30:PM"},
		{"machine":"TC-1","componentName":"Shaft","cycleTime":"00:02:30","handlingTime":"00:00:30",
		 "qty":20,"settingTime":"00:15:00","idleTime":"01:15:00","totalWorkingHr":"10:00:00"},
		{"machine":"VMC","componentName":"Pin","settingTime":"09:00:00"}
	],"machine":"TC-1"}`

	rec := httptest.NewRecorder()
	CalcRollupHandler(rec, httptest.NewRequest(http.MethodPost, "/api/calc/rollup", strings.NewReader(payload)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body calcResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	require.NotNil(t, body.Rollup)
	assert.Equal(t, "01:21:15", body.Rollup.MachineTotalTime)
	assert.Equal(t, "00:06:15", body.Rollup.ComponentWiseMachiHrObj["Flange"])
	assert.Equal(t, "1hr 21mins 15sec", body.Display)
	assert.Equal(t, "01:45:00", body.IdleTime)
	assert.Equal(t, "18:00:00", body.WorkingTime)
	assert.Nil(t, body.Records)

	work := strings.Replace(payload, `"machine":"TC-1"}`, `"workMode":true}`, 1)
	rec = httptest.NewRecorder()
	CalcRollupHandler(rec, httptest.NewRequest(http.MethodPost, "/api/calc/rollup", strings.NewReader(work)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = calcResp{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Rollup)
	require.Len(t, body.Records, 3)
	assert.Equal(t, "10:00:00", body.Records[1].TotalWorkingHrs)
	assert.Equal(t, "09:00:00", body.Records[2].TotalProductionHr)

	rec = httptest.NewRecorder()
	CalcRollupHandler(rec, httptest.NewRequest(http.MethodPost, "/api/calc/rollup", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	h := LoginHandler{User: "supervisor", PassHash: string(hash), Secret: "k", TTL: time.Hour}

	body, _ := json.Marshal(loginReq{Username: "supervisor", Password: "s3cret"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out loginResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	claims, err := middleware.ParseToken("k", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "supervisor", claims.User)
	assert.Equal(t, "admin", claims.Role)

	body, _ = json.Marshal(loginReq{Username: "supervisor", Password: "wrong"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	LoginHandler{}.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthReadyMetrics(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	(&ProductionHandler{}).ReadyHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	newTestHandler(&stubStore{}).ReadyHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	MetricsHandler(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "app_up 1")
	assert.Contains(t, rec.Body.String(), "shopfloor_dashboards_built_total")
}

func TestReadyHandler_ReportsStoreAndRefs(t *testing.T) {
	h := &ProductionHandler{Store: &stubStore{}}

	rec := httptest.NewRecorder()
	h.ReadyHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","repos":{"production":true,"reference":false}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Customers(rec, httptest.NewRequest(http.MethodGet, "/api/customers", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
