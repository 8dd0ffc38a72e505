// internal/services/breakdown_service.go
// Breakdown jam produksi/kerja/idle per shift dan per operator

package services

import (
	"sort"

	"shopfloor-tracker/internal/timecalc"
)

type Breakdown struct {
	Key           string `json:"key"`
	Entries       int    `json:"entries"`
	ProductionHrs string `json:"productionHrs"`
	WorkingHrs    string `json:"workingHrs"`
	IdleHrs       string `json:"idleHrs"`
}

// SummarizeShifts mengelompokkan record yang sudah didekorasi berdasarkan shift.
func SummarizeShifts(decorated []timecalc.Record) []Breakdown {
	return summarize(decorated, func(r timecalc.Record) string { return r.Shift })
}

// SummarizeOperators mengelompokkan record yang sudah didekorasi berdasarkan operator.
func SummarizeOperators(decorated []timecalc.Record) []Breakdown {
	return summarize(decorated, func(r timecalc.Record) string { return r.OperatorName })
}

// summarize: key kosong dilewati; hasil diurutkan berdasarkan key.
func summarize(decorated []timecalc.Record, key func(timecalc.Record) string) []Breakdown {
	agg := map[string]Breakdown{}
	for _, r := range decorated {
		k := key(r)
		if k == "" {
			continue
		}
		it, ok := agg[k]
		if !ok {
			it = Breakdown{Key: k, ProductionHrs: timecalc.Zero, WorkingHrs: timecalc.Zero, IdleHrs: timecalc.Zero}
		}
		it.Entries++
		it.ProductionHrs = timecalc.AddDurations(it.ProductionHrs, r.TotalProductionHr)
		it.WorkingHrs = timecalc.AddDurations(it.WorkingHrs, r.TotalWorkingHrs)
		it.IdleHrs = timecalc.AddDurations(it.IdleHrs, r.IdleTime)
		agg[k] = it
	}
	out := make([]Breakdown, 0, len(agg))
	for _, v := range agg {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
