// internal/handlers/http/production_handler.go
// Endpoint entri produksi & dashboard (data dari MySQL, agregasi via timecalc)

package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	mysqlrepo "shopfloor-tracker/internal/repositories/mysql"
	"shopfloor-tracker/internal/services"
	"shopfloor-tracker/internal/timecalc"
	"shopfloor-tracker/internal/util"
)

const dateLayout = "2006-01-02"

// EntryStore adalah subset ProductionRepo yang dipakai handler.
type EntryStore interface {
	ListEntries(ctx context.Context, f mysqlrepo.EntryFilter) ([]mysqlrepo.EntryRow, error)
	GetEntry(ctx context.Context, id int64) (mysqlrepo.EntryRow, error)
}

type CustomerLister interface {
	ListCustomers(ctx context.Context) ([]mysqlrepo.CustomerComponent, error)
}

type ProductionHandler struct {
	Store     EntryStore
	Refs      CustomerLister
	Log       *zap.Logger
	Clock     util.Clock
	RangeDays int
}

type entriesResp struct {
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Count       int               `json:"count"`
	IdleTime    string            `json:"idleTime"`
	WorkingTime string            `json:"workingTime"`
	Records     []timecalc.Record `json:"records"`
}

// Entries: GET /api/entries?startDate=&endDate=&machine=TC-1,VMC
// Mengembalikan record yang sudah didekorasi (totalProductionHr, totalWorkingHrs).
func (h *ProductionHandler) Entries(w http.ResponseWriter, r *http.Request) {
	recs, start, end, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	decorated := timecalc.DecorateRecords(recs)
	util.WriteJSON(w, http.StatusOK, entriesResp{
		StartDate:   start,
		EndDate:     end,
		Count:       len(decorated),
		IdleTime:    timecalc.AggregateIdleTime(decorated),
		WorkingTime: timecalc.AggregateWorkingTime(decorated),
		Records:     decorated,
	})
}

type dashboardResp struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	services.DashboardSummary
}

// Dashboard: GET /api/dashboard?startDate=&endDate=&machine=&customer=&component=&search=
func (h *ProductionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	recs, start, end, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	h.logIssues(r, recs)

	q := r.URL.Query()
	f := services.Filter{
		Search:    strings.TrimSpace(q.Get("search")),
		Customer:  strings.TrimSpace(q.Get("customer")),
		Component: strings.TrimSpace(q.Get("component")),
	}
	sum := services.BuildDashboard(recs, f)
	dashboardsBuilt.Add(1)

	util.WriteJSON(w, http.StatusOK, dashboardResp{StartDate: start, EndDate: end, DashboardSummary: sum})
}

// Customers: GET /api/customers
func (h *ProductionHandler) Customers(w http.ResponseWriter, r *http.Request) {
	if h.Refs == nil {
		util.WriteError(w, http.StatusServiceUnavailable, util.Unavailable("reference repo not configured"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 6*time.Second)
	defer cancel()

	list, err := h.Refs.ListCustomers(ctx)
	if err != nil {
		h.log().Error("list customers", zap.Error(err))
		util.WriteError(w, http.StatusInternalServerError, util.Internal("db_error"))
		return
	}
	if list == nil {
		list = []mysqlrepo.CustomerComponent{}
	}
	util.WriteJSON(w, http.StatusOK, map[string]any{"customers": list})
}

// EntryByID: GET /admin/entries/{id} (chi)
func (h *ProductionHandler) EntryByID(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		util.WriteError(w, http.StatusServiceUnavailable, util.Unavailable("production repo not configured"))
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		util.WriteError(w, http.StatusBadRequest, util.BadInput("invalid id"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 6*time.Second)
	defer cancel()

	row, err := h.Store.GetEntry(ctx, id)
	if errors.Is(err, mysqlrepo.ErrNotFound) {
		util.WriteError(w, http.StatusNotFound, util.NotFound("entry "+strconv.FormatInt(id, 10)))
		return
	}
	if err != nil {
		h.log().Error("get entry", zap.Int64("id", id), zap.Error(err))
		util.WriteError(w, http.StatusInternalServerError, util.Internal("db_error"))
		return
	}
	rec := timecalc.DecorateRecords([]timecalc.Record{row.Raw().Normalize()})[0]
	util.WriteJSON(w, http.StatusOK, map[string]any{
		"record": rec,
		"issues": services.Reconcile([]timecalc.Record{rec}),
	})
}

// Reconcile: GET /admin/reconcile?startDate=&endDate=
func (h *ProductionHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	recs, start, end, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	issues := services.Reconcile(recs)
	if issues == nil {
		issues = []services.DataIssue{}
	}
	util.WriteJSON(w, http.StatusOK, map[string]any{
		"startDate": start,
		"endDate":   end,
		"checked":   len(recs),
		"issues":    issues,
	})
}

// loadRecords membaca filter tanggal/mesin dari query lalu memuat record ternormalisasi.
// endDate inklusif; default rentang = RangeDays hari terakhir.
func (h *ProductionHandler) loadRecords(w http.ResponseWriter, r *http.Request) ([]timecalc.Record, string, string, bool) {
	if h.Store == nil {
		util.WriteError(w, http.StatusServiceUnavailable, util.Unavailable("production repo not configured"))
		return nil, "", "", false
	}
	q := r.URL.Query()
	startStr := strings.TrimSpace(q.Get("startDate"))
	endStr := strings.TrimSpace(q.Get("endDate"))

	if startStr == "" && endStr == "" {
		now := h.now()
		days := h.RangeDays
		if days <= 0 {
			days = 30
		}
		endStr = now.Format(dateLayout)
		startStr = now.AddDate(0, 0, -days).Format(dateLayout)
	}

	f := mysqlrepo.EntryFilter{Machines: splitList(q.Get("machine"))}
	if startStr != "" {
		t, err := time.Parse(dateLayout, startStr)
		if err != nil {
			util.WriteError(w, http.StatusBadRequest, util.BadInput("startDate must be YYYY-MM-DD"))
			return nil, "", "", false
		}
		f.Start = &t
	}
	if endStr != "" {
		t, err := time.Parse(dateLayout, endStr)
		if err != nil {
			util.WriteError(w, http.StatusBadRequest, util.BadInput("endDate must be YYYY-MM-DD"))
			return nil, "", "", false
		}
		excl := t.AddDate(0, 0, 1)
		f.End = &excl
	}
	if f.Start != nil && f.End != nil && !f.Start.Before(*f.End) {
		util.WriteError(w, http.StatusBadRequest, util.BadInput("startDate must not be after endDate"))
		return nil, "", "", false
	}
	if v := q.Get("limit"); v != "" {
		if n, _ := strconv.Atoi(v); n > 0 {
			f.Limit = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, err := h.Store.ListEntries(ctx, f)
	if err != nil {
		h.log().Error("list entries", zap.String("start", startStr), zap.String("end", endStr), zap.Error(err))
		util.WriteError(w, http.StatusInternalServerError, util.Internal("db_error"))
		return nil, "", "", false
	}
	return mysqlrepo.Records(rows), startStr, endStr, true
}

func (h *ProductionHandler) logIssues(r *http.Request, recs []timecalc.Record) {
	issues := services.Reconcile(recs)
	if len(issues) == 0 {
		return
	}
	dataIssues.Add(int64(len(issues)))
	h.log().Warn("data quality issues in production entries",
		zap.Int("records", len(recs)),
		zap.Int("issues", len(issues)),
		zap.Any("first", issues[0]),
		zap.String("path", r.URL.Path),
	)
}

func (h *ProductionHandler) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock.Now()
}

func (h *ProductionHandler) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
