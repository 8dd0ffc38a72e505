// internal/timecalc/shift.go
// Durasi shift dari dua jam dinding AM/PM ("08:00:PM" -> "08:00:AM")

package timecalc

import (
	"fmt"
	"regexp"
	"strings"
)

const minutesPerDay = 24 * 60

var timeOfDayRe = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):[0-5][0-9][: ]?(AM|PM)$`)

// parseTimeOfDay mengubah "HH:MM:AM" (juga "HH:MM AM", "HH:MMpm") menjadi menit sejak tengah malam.
// ok=false jika tidak ada penanda AM/PM.
func parseTimeOfDay(s string) (int, bool) {
	u := strings.ToUpper(strings.TrimSpace(s))
	var pm bool
	switch {
	case strings.HasSuffix(u, "AM"):
	case strings.HasSuffix(u, "PM"):
		pm = true
	default:
		return 0, false
	}
	body := strings.TrimRight(u[:len(u)-2], ": ")
	parts := strings.Split(body, ":")
	h := leadingInt(parts[0]) % 12
	m := 0
	if len(parts) > 1 {
		m = leadingInt(parts[1]) % 60
	}
	if pm {
		h += 12
	}
	return h*60 + m, true
}

// ElapsedShiftDuration menghitung lama shift "HH:MM" antara start dan end.
// ok=false (tidak berlaku) jika salah satu input tidak memakai penanda AM/PM.
// End lebih awal dari start dianggap jatuh di hari berikutnya (termasuk PM -> AM);
// end == start menghasilkan "00:00". Detik tidak dilacak di level ini.
func ElapsedShiftDuration(start, end string) (string, bool) {
	s, ok := parseTimeOfDay(start)
	if !ok {
		return "", false
	}
	e, ok := parseTimeOfDay(end)
	if !ok {
		return "", false
	}
	if e < s {
		e += minutesPerDay
	}
	diff := e - s
	return fmt.Sprintf("%02d:%02d", diff/60, diff%60), true
}

// IsWellFormedTimeOfDay memeriksa format ketat jam dinding 12 jam.
func IsWellFormedTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(strings.TrimSpace(s))
}
