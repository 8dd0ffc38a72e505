// internal/timecalc/derive.go
// Turunan per-record: total jam produksi & total jam kerja

package timecalc

// DeriveProductionTime = (cycleTime + handlingTime) x (qty + additionalQty) + settingTime.
// Qty nol menghasilkan settingTime saja (ternormalisasi).
func DeriveProductionTime(r Record) string {
	perUnit := AddDurations(r.CycleTime, r.HandlingTime)
	produced := MultiplyDuration(perUnit, r.EffectiveQty())
	return AddDurations(produced, r.SettingTime)
}

// DeriveWorkingTime mengembalikan jam kerja record.
// Nilai TotalWorkingHrs yang sudah ada dan bukan nol diteruskan apa adanya.
// Selain itu: durasi shift (start..end) dikurangi idleTime, di-clamp ke nol.
// ok=false jika start/end bukan jam AM/PM sehingga jam kerja tidak bisa dihitung.
func DeriveWorkingTime(r Record) (string, bool) {
	if r.TotalWorkingHrs != "" && !IsZero(r.TotalWorkingHrs) {
		return r.TotalWorkingHrs, true
	}
	span, ok := ElapsedShiftDuration(r.StartTime, r.EndTime)
	if !ok {
		return "", false
	}
	return SubtractDurations(span, r.IdleTime), true
}
