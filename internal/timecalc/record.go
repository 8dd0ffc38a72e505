// internal/timecalc/record.go
// Bentuk record produksi yang dibaca oleh engine agregasi

package timecalc

import "strings"

// Record adalah entri produksi kanonik. Durasi dan jam disimpan sebagai string
// apa adanya dari layer persistence; engine tidak pernah memvalidasinya.
type Record struct {
	ID            string `json:"_id,omitempty"`
	Date          string `json:"date,omitempty"`
	OperatorName  string `json:"operatorName,omitempty"`
	Shift         string `json:"shift,omitempty"`
	Machine       string `json:"machine"`
	CustomerName  string `json:"customerName,omitempty"`
	ComponentName string `json:"componentName"`
	Opn           string `json:"opn,omitempty"`
	ProgNo        string `json:"progNo,omitempty"`

	Qty           int `json:"qty"`
	AdditionalQty int `json:"additionalQty,omitempty"`

	CycleTime    string `json:"cycleTime"`
	HandlingTime string `json:"handlingTime"`
	SettingTime  string `json:"settingTime"`
	IdleTime     string `json:"idleTime"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`

	// Field turunan (ditulis oleh DecorateRecords).
	TotalProductionHr string `json:"totalProductionHr,omitempty"`
	TotalWorkingHrs   string `json:"totalWorkingHrs,omitempty"`

	Remarks string `json:"remarks,omitempty"`
}

// EffectiveQty = qty + additionalQty.
func (r Record) EffectiveQty() int {
	return r.Qty + r.AdditionalQty
}

// RawRecord menerima payload longgar dari sumber eksternal (nama field ganda).
type RawRecord struct {
	ID            string `json:"_id,omitempty"`
	Date          string `json:"date,omitempty"`
	OperatorName  string `json:"operatorName,omitempty"`
	Shift         string `json:"shift,omitempty"`
	Machine       string `json:"machine,omitempty"`
	MachineName   string `json:"machineName,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	ComponentName string `json:"componentName,omitempty"`
	Opn           string `json:"opn,omitempty"`
	ProgNo        string `json:"progNo,omitempty"`

	Qty           int `json:"qty"`
	AdditionalQty int `json:"additionalQty,omitempty"`

	CycleTime    string `json:"cycleTime,omitempty"`
	HandlingTime string `json:"handlingTime,omitempty"`
	SettingTime  string `json:"settingTime,omitempty"`
	IdleTime     string `json:"idleTime,omitempty"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`

	TotalProductionHr string `json:"totalProductionHr,omitempty"`
	TotalWorkingHrs   string `json:"totalWorkingHrs,omitempty"`
	TotalWorkingHr    string `json:"totalWorkingHr,omitempty"`

	Remarks string `json:"remarks,omitempty"`
}

// Normalize menyelesaikan alias field (machine/machineName, totalWorkingHrs/totalWorkingHr)
// sekali di boundary, supaya agregasi tidak perlu fallback di mana-mana.
func (raw RawRecord) Normalize() Record {
	machine := raw.Machine
	if machine == "" {
		machine = raw.MachineName
	}
	working := strings.TrimSpace(raw.TotalWorkingHrs)
	if working == "" {
		working = strings.TrimSpace(raw.TotalWorkingHr)
	}
	qty, add := raw.Qty, raw.AdditionalQty
	if qty < 0 {
		qty = 0
	}
	if add < 0 {
		add = 0
	}
	return Record{
		ID:                raw.ID,
		Date:              raw.Date,
		OperatorName:      raw.OperatorName,
		Shift:             raw.Shift,
		Machine:           machine,
		CustomerName:      raw.CustomerName,
		ComponentName:     raw.ComponentName,
		Opn:               raw.Opn,
		ProgNo:            raw.ProgNo,
		Qty:               qty,
		AdditionalQty:     add,
		CycleTime:         raw.CycleTime,
		HandlingTime:      raw.HandlingTime,
		SettingTime:       raw.SettingTime,
		IdleTime:          raw.IdleTime,
		StartTime:         raw.StartTime,
		EndTime:           raw.EndTime,
		TotalProductionHr: raw.TotalProductionHr,
		TotalWorkingHrs:   working,
		Remarks:           raw.Remarks,
	}
}

// NormalizeAll menormalisasi slice RawRecord.
func NormalizeAll(raws []RawRecord) []Record {
	out := make([]Record, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.Normalize())
	}
	return out
}
