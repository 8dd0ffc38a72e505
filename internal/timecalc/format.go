// internal/timecalc/format.go
// Format tampilan dashboard & konversi ke jam desimal

package timecalc

import (
	"fmt"
	"strings"
)

// FormatDurationDisplay: "02:15:30" -> "2hr 15mins 30sec", "00:00" -> "0hr 0mins".
// Hanya segmen yang ada yang ditampilkan; segmen rusak dianggap 0.
// String kosong ditampilkan sebagai "0hr 0mins 0sec".
func FormatDurationDisplay(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return "0hr 0mins 0sec"
	}
	parts := strings.Split(d, ":")
	units := []string{"hr", "mins", "sec"}
	out := make([]string, 0, len(units))
	for i := 0; i < len(parts) && i < len(units); i++ {
		out = append(out, fmt.Sprintf("%d%s", leadingInt(parts[i]), units[i]))
	}
	return strings.Join(out, " ")
}

// FormatHoursMinutes menampilkan durasi ternormalisasi tanpa detik: "27:05:10" -> "27hr 5mins".
func FormatHoursMinutes(d string) string {
	p := parseHMS(d).normalize()
	return fmt.Sprintf("%dhr %dmins", p.h, p.m)
}

// DurationToDecimalHours = jam + menit/60 + detik/3600.
func DurationToDecimalHours(d string) float64 {
	p := parseHMS(d)
	return float64(p.h) + float64(p.m)/60 + float64(p.s)/3600
}

// Efficiency = production / working x 100. Working nol menghasilkan 0.
func Efficiency(production, working string) float64 {
	w := DurationToDecimalHours(working)
	if w == 0 {
		return 0
	}
	return DurationToDecimalHours(production) / w * 100
}
