// internal/handlers/http/calc_handler.go
// POST /api/calc/rollup: agregasi record yang dikirim klien (tanpa DB)

package http

import (
	"encoding/json"
	"net/http"

	"shopfloor-tracker/internal/services"
	"shopfloor-tracker/internal/timecalc"
	"shopfloor-tracker/internal/util"
)

const maxCalcBody = 8 << 20

type calcReq struct {
	Records  []timecalc.RawRecord `json:"records"`
	WorkMode bool                 `json:"workMode"`
	Machine  string               `json:"machine,omitempty"`
}

type calcResp struct {
	Count       int                     `json:"count"`
	Rollup      *timecalc.MachineRollup `json:"rollup,omitempty"`
	Records     []timecalc.Record       `json:"records,omitempty"`
	Display     string                  `json:"display,omitempty"`
	IdleTime    string                  `json:"idleTime"`
	WorkingTime string                  `json:"workingTime"`
	Efficiency  float64                 `json:"efficiency"`
	Issues      []services.DataIssue    `json:"issues,omitempty"`
}

func CalcRollupHandler(w http.ResponseWriter, r *http.Request) {
	var in calcReq
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCalcBody))
	if err := dec.Decode(&in); err != nil {
		util.WriteError(w, http.StatusBadRequest, util.BadInput("invalid json: "+err.Error()))
		return
	}

	recs := timecalc.NormalizeAll(in.Records)
	if in.Machine != "" {
		recs = services.ApplyFilter(recs, services.Filter{Machine: in.Machine})
	}

	agg := timecalc.AggregateMachineHours(recs, in.WorkMode)
	decorated := agg.Records
	if decorated == nil {
		decorated = timecalc.DecorateRecords(recs)
	}
	out := calcResp{
		Count:       len(recs),
		Rollup:      agg.Rollup,
		Records:     agg.Records,
		IdleTime:    timecalc.AggregateIdleTime(recs),
		WorkingTime: timecalc.AggregateWorkingTime(decorated),
		Issues:      services.Reconcile(recs),
	}
	if agg.Rollup != nil {
		out.Display = timecalc.FormatDurationDisplay(agg.Rollup.MachineTotalTime)
		out.Efficiency = timecalc.Efficiency(agg.Rollup.MachineTotalTime, out.WorkingTime)
	}
	util.WriteJSON(w, http.StatusOK, out)
}
