// internal/services/reconcile_service.go
// Rekonsiliasi kualitas data: field durasi/jam yang formatnya tidak valid

package services

import (
	"strings"

	"shopfloor-tracker/internal/timecalc"
)

type DataIssue struct {
	ID     string `json:"id,omitempty"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// Reconcile menandai record yang akan diam-diam dihitung nol oleh engine.
// Field kosong tidak dianggap masalah (memang boleh tidak diisi).
func Reconcile(records []timecalc.Record) []DataIssue {
	var out []DataIssue
	for _, r := range records {
		durations := []struct{ name, val string }{
			{"cycleTime", r.CycleTime},
			{"handlingTime", r.HandlingTime},
			{"settingTime", r.SettingTime},
			{"idleTime", r.IdleTime},
		}
		for _, d := range durations {
			if d.val != "" && !timecalc.IsWellFormedDuration(strings.TrimSpace(d.val)) {
				out = append(out, DataIssue{ID: r.ID, Field: d.name, Value: d.val, Reason: "malformed_duration"})
			}
		}

		if r.TotalWorkingHrs != "" && !timecalc.IsZero(r.TotalWorkingHrs) {
			continue
		}
		if _, ok := timecalc.ElapsedShiftDuration(r.StartTime, r.EndTime); !ok {
			out = append(out, DataIssue{
				ID: r.ID, Field: "startTime/endTime", Value: r.StartTime + " - " + r.EndTime,
				Reason: "working_time_not_computable",
			})
			continue
		}
		for _, tv := range []struct{ name, val string }{{"startTime", r.StartTime}, {"endTime", r.EndTime}} {
			if !timecalc.IsWellFormedTimeOfDay(tv.val) {
				out = append(out, DataIssue{ID: r.ID, Field: tv.name, Value: tv.val, Reason: "malformed_time_of_day"})
			}
		}
	}
	return out
}
