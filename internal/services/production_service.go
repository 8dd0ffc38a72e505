// internal/services/production_service.go
// Layanan produksi: ringkasan dashboard (jam produksi/kerja/idle per mesin & komponen)

package services

import (
	"math"
	"sort"
	"strings"

	"shopfloor-tracker/internal/timecalc"
)

// UnknownMachine dipakai untuk record tanpa nama mesin.
const UnknownMachine = "Unknown"

// Filter diterapkan sebelum agregasi. Search case-insensitive (substring),
// field lain exact match.
type Filter struct {
	Search    string `json:"search,omitempty"`
	Customer  string `json:"customer,omitempty"`
	Component string `json:"component,omitempty"`
	Machine   string `json:"machine,omitempty"`
}

type MachineStat struct {
	Machine       string  `json:"machine"`
	ChartLabel    string  `json:"chartLabel"`
	ProductionHrs string  `json:"productionHrs"`
	WorkingHrs    string  `json:"workingHrs"`
	IdleHrs       string  `json:"idleHrs"`
	Qty           int     `json:"qty"`
	ProductionDec float64 `json:"productionDecimal"`
	WorkingDec    float64 `json:"workingDecimal"`
	IdleDec       float64 `json:"idleDecimal"`
	Efficiency    float64 `json:"efficiency"`
	// Display "Xhr Ymins Zsec" dari machineTotalTime.
	ProdTime string `json:"prodTime"`
}

type DashboardSummary struct {
	TotalProducts int `json:"totalProducts"`

	ProductionHrs string `json:"productionHrs"` // "Xhr Ymins Zsec"
	WorkingHrs    string `json:"workingHrs"`    // "Xhr Ymins"
	IdleHrs       string `json:"idleHrs"`       // "Xhr Ymins"

	ProductionTotal string `json:"productionTotal"` // HH:MM:SS
	WorkingTotal    string `json:"workingTotal"`
	IdleTotal       string `json:"idleTotal"`

	ProductionDec float64 `json:"productionDecimal"`
	WorkingDec    float64 `json:"workingDecimal"`
	IdleDec       float64 `json:"idleDecimal"`
	Efficiency    float64 `json:"efficiency"`

	Machines       []MachineStat     `json:"machines"`
	ComponentHours map[string]string `json:"componentHours"`
	Shifts         []Breakdown       `json:"shifts"`
	Operators      []Breakdown       `json:"operators"`
	IdleOutliers   []IdleOutlier     `json:"idleOutliers,omitempty"`
}

// ApplyFilter mengembalikan record yang lolos filter (urutan dipertahankan).
func ApplyFilter(records []timecalc.Record, f Filter) []timecalc.Record {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]timecalc.Record, 0, len(records))
	for _, r := range records {
		if f.Customer != "" && r.CustomerName != f.Customer {
			continue
		}
		if f.Component != "" && r.ComponentName != f.Component {
			continue
		}
		if f.Machine != "" && r.Machine != f.Machine {
			continue
		}
		if q != "" && !matchesSearch(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r timecalc.Record, q string) bool {
	for _, s := range []string{r.CustomerName, r.ComponentName, r.Machine, r.OperatorName} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// BuildDashboard menghitung ringkasan dashboard dari record mentah (belum didekorasi).
func BuildDashboard(records []timecalc.Record, f Filter) DashboardSummary {
	filtered := ApplyFilter(records, f)
	for i := range filtered {
		if filtered[i].Machine == "" {
			filtered[i].Machine = UnknownMachine
		}
	}
	decorated := timecalc.DecorateRecords(filtered)

	out := DashboardSummary{
		TotalProducts:   len(filtered),
		ProductionTotal: timecalc.Zero,
		ComponentHours:  make(map[string]string),
	}

	keys, groups := timecalc.GroupByMachine(decorated)
	sort.Strings(keys)
	for _, m := range keys {
		group := groups[m]
		rollup := timecalc.RollupMachineHours(group)
		out.ProductionTotal = timecalc.AddDurations(out.ProductionTotal, rollup.MachineTotalTime)

		for comp, d := range rollup.ComponentWiseMachiHrObj {
			acc, ok := out.ComponentHours[comp]
			if !ok {
				acc = timecalc.Zero
			}
			out.ComponentHours[comp] = timecalc.AddDurations(acc, d)
		}

		out.Machines = append(out.Machines, machineStat(m, rollup, group))
	}

	out.WorkingTotal = timecalc.AggregateWorkingTime(decorated)
	out.IdleTotal = timecalc.AggregateIdleTime(decorated)

	out.ProductionHrs = timecalc.FormatDurationDisplay(out.ProductionTotal)
	out.WorkingHrs = timecalc.FormatHoursMinutes(out.WorkingTotal)
	out.IdleHrs = timecalc.FormatHoursMinutes(out.IdleTotal)

	out.ProductionDec = round2(timecalc.DurationToDecimalHours(out.ProductionTotal))
	out.WorkingDec = round2(timecalc.DurationToDecimalHours(out.WorkingTotal))
	out.IdleDec = round2(timecalc.DurationToDecimalHours(out.IdleTotal))
	out.Efficiency = round2(timecalc.Efficiency(out.ProductionTotal, out.WorkingTotal))

	out.Shifts = SummarizeShifts(decorated)
	out.Operators = SummarizeOperators(decorated)
	out.IdleOutliers = IdleOutliers(decorated, DefaultIdleZ)
	return out
}

func machineStat(machine string, rollup timecalc.MachineRollup, group []timecalc.Record) MachineStat {
	st := MachineStat{
		Machine:       machine,
		ChartLabel:    ChartLabel(machine),
		ProductionHrs: rollup.MachineTotalTime,
		WorkingHrs:    timecalc.AggregateWorkingTime(group),
		IdleHrs:       timecalc.AggregateIdleTime(group),
		ProdTime:      timecalc.FormatDurationDisplay(rollup.MachineTotalTime),
	}
	for _, r := range group {
		st.Qty += r.Qty
	}
	st.ProductionDec = round2(timecalc.DurationToDecimalHours(st.ProductionHrs))
	st.WorkingDec = round2(timecalc.DurationToDecimalHours(st.WorkingHrs))
	st.IdleDec = round2(timecalc.DurationToDecimalHours(st.IdleHrs))
	st.Efficiency = round2(timecalc.Efficiency(st.ProductionHrs, st.WorkingHrs))
	return st
}

// ChartLabel: "TC-1" -> "TC1". Hanya untuk label chart; grouping tetap exact.
func ChartLabel(machine string) string {
	return strings.ToUpper(strings.ReplaceAll(machine, "-", ""))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
