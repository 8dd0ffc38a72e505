// internal/handlers/http/export_handler.go
// Export entri produksi (sudah didekorasi) ke CSV

package http

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"shopfloor-tracker/internal/timecalc"
)

var exportHeader = []string{
	"Date", "Component Name", "Customer Name", "Machine Name", "Operator Name", "Shift",
	"Qty", "Additional Qty", "Opn", "Program No",
	"Setting Time (HH:MM:SS)", "Cycle Time (HH:MM:SS)", "Handling Time (HH:MM:SS)", "Idle Time (HH:MM:SS)",
	"Start Time", "End Time", "Total Production Hr", "Working Hours", "Remarks",
}

// Export: GET /api/entries/export?startDate=&endDate=&machine=
func (h *ProductionHandler) Export(w http.ResponseWriter, r *http.Request) {
	recs, _, _, ok := h.loadRecords(w, r)
	if !ok {
		return
	}
	decorated := timecalc.DecorateRecords(recs)

	name := fmt.Sprintf("dashboard_production_data_%s.csv", h.now().Format(dateLayout))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)

	if err := WriteCSV(w, decorated); err != nil {
		h.log().Error("write csv export", zap.Error(err))
	}
}

// WriteCSV menulis record sebagai CSV dengan header kolom export dashboard.
func WriteCSV(out io.Writer, recs []timecalc.Record) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range recs {
		idle := r.IdleTime
		if idle == "" {
			idle = timecalc.Zero
		}
		row := []string{
			r.Date, r.ComponentName, r.CustomerName, r.Machine, r.OperatorName, r.Shift,
			strconv.Itoa(r.Qty), strconv.Itoa(r.AdditionalQty), r.Opn, r.ProgNo,
			r.SettingTime, r.CycleTime, r.HandlingTime, idle,
			r.StartTime, r.EndTime, r.TotalProductionHr, r.TotalWorkingHrs, r.Remarks,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
