// internal/timecalc/rollup.go
// Rollup jam mesin, per komponen, idle & kerja

package timecalc

// MachineRollup adalah total jam produksi untuk satu set record (biasanya satu mesin).
type MachineRollup struct {
	MachineTotalTime        string            `json:"machineTotalTime"`
	ComponentWiseMachiHrObj map[string]string `json:"componentWiseMachiHrObj"`
}

// Aggregate adalah hasil AggregateMachineHours; hanya salah satu field terisi
// tergantung workMode.
type Aggregate struct {
	Rollup  *MachineRollup `json:"rollup,omitempty"`
	Records []Record       `json:"records,omitempty"`
}

// AggregateMachineHours: workMode=true mengembalikan record yang sudah didekorasi,
// workMode=false mengembalikan rollup total & per komponen.
func AggregateMachineHours(records []Record, workMode bool) Aggregate {
	if workMode {
		return Aggregate{Records: DecorateRecords(records)}
	}
	r := RollupMachineHours(records)
	return Aggregate{Rollup: &r}
}

// RollupMachineHours menjumlahkan DeriveProductionTime seluruh record dan per componentName.
// Key komponen dipakai apa adanya (case-sensitive, tanpa trim).
func RollupMachineHours(records []Record) MachineRollup {
	out := MachineRollup{
		MachineTotalTime:        Zero,
		ComponentWiseMachiHrObj: make(map[string]string),
	}
	for _, r := range records {
		t := DeriveProductionTime(r)
		out.MachineTotalTime = AddDurations(out.MachineTotalTime, t)

		acc, ok := out.ComponentWiseMachiHrObj[r.ComponentName]
		if !ok {
			acc = Zero
		}
		out.ComponentWiseMachiHrObj[r.ComponentName] = AddDurations(acc, t)
	}
	return out
}

// DecorateRecords mengembalikan salinan record dengan TotalProductionHr dan
// (jika bisa dihitung) TotalWorkingHrs. Input tidak dimodifikasi.
func DecorateRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.TotalProductionHr = DeriveProductionTime(r)
		if w, ok := DeriveWorkingTime(r); ok {
			r.TotalWorkingHrs = w
		}
		out[i] = r
	}
	return out
}

// AggregateIdleTime menjumlahkan idleTime semua record; field kosong = nol.
func AggregateIdleTime(records []Record) string {
	total := Zero
	for _, r := range records {
		total = AddDurations(total, r.IdleTime)
	}
	return total
}

// AggregateWorkingTime menjumlahkan TotalWorkingHrs. Record sebaiknya sudah
// melewati DecorateRecords; yang kosong dihitung nol.
func AggregateWorkingTime(records []Record) string {
	total := Zero
	for _, r := range records {
		total = AddDurations(total, r.TotalWorkingHrs)
	}
	return total
}

// GroupByMachine mengelompokkan record berdasarkan nama mesin (exact match),
// urutan kemunculan pertama dipertahankan di slice keys.
func GroupByMachine(records []Record) (keys []string, groups map[string][]Record) {
	groups = make(map[string][]Record)
	for _, r := range records {
		if _, ok := groups[r.Machine]; !ok {
			keys = append(keys, r.Machine)
		}
		groups[r.Machine] = append(groups[r.Machine], r)
	}
	return keys, groups
}
