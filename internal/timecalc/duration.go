// internal/timecalc/duration.go
// Aritmetika durasi "HH:MM:SS" (jam tidak dibatasi, menit/detik 0..59)

package timecalc

import (
	"fmt"
	"math"
	"strings"
)

// Zero adalah durasi nol dalam bentuk kanonik.
const Zero = "00:00:00"

// maxSegmentDigits: segmen yang lebih panjang dianggap rusak (= 0) supaya tidak overflow.
const maxSegmentDigits = 9

// hms adalah durasi yang sudah di-parse; selalu dalam detik total >= 0 setelah normalize.
type hms struct {
	h, m, s int
}

// parseHMS mem-parse "HH:MM:SS" secara lenient: segmen hilang/rusak = 0.
func parseHMS(s string) hms {
	parts := strings.Split(strings.TrimSpace(s), ":")
	var out hms
	if len(parts) > 0 {
		out.h = leadingInt(parts[0])
	}
	if len(parts) > 1 {
		out.m = leadingInt(parts[1])
	}
	if len(parts) > 2 {
		out.s = leadingInt(parts[2])
	}
	return out
}

// leadingInt membaca digit di awal string ("12abc" -> 12, "abc" -> 0).
// Tanda minus tidak didukung: durasi selalu non-negatif.
// Lebih dari maxSegmentDigits digit signifikan dianggap rusak dan menghasilkan 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n, digits := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if n > 0 || c != '0' {
			digits++
		}
		if digits > maxSegmentDigits {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

func (d hms) seconds() int {
	return d.h*3600 + d.m*60 + d.s
}

func fromSeconds(total int) hms {
	if total < 0 {
		total = 0
	}
	return hms{h: total / 3600, m: (total % 3600) / 60, s: total % 60}
}

// normalize membawa carry detik -> menit -> jam.
func (d hms) normalize() hms {
	if d.s >= 60 {
		d.m += d.s / 60
		d.s %= 60
	}
	if d.m >= 60 {
		d.h += d.m / 60
		d.m %= 60
	}
	return d
}

func (d hms) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.h, d.m, d.s)
}

// AddDurations menjumlahkan dua durasi (plus opsional durasi ketiga dst.)
// dan mengembalikan bentuk "HH:MM:SS" yang ternormalisasi.
// Jam bisa melebihi 24 karena ini waktu kumulatif, bukan jam dinding.
func AddDurations(a, b string, more ...string) string {
	pa, pb := parseHMS(a), parseHMS(b)
	sum := hms{h: pa.h + pb.h, m: pa.m + pb.m, s: pa.s + pb.s}
	for _, c := range more {
		pc := parseHMS(c)
		sum.h += pc.h
		sum.m += pc.m
		sum.s += pc.s
	}
	return sum.normalize().String()
}

// SubtractDurations menghitung a - b (borrow jam->menit->detik lewat detik total).
// Hasil negatif di-clamp ke Zero.
func SubtractDurations(a, b string) string {
	return fromSeconds(parseHMS(a).seconds() - parseHMS(b).seconds()).String()
}

// MultiplyDuration mengalikan durasi dengan n (n <= 0 menghasilkan Zero).
// Hasilnya identik dengan menjumlahkan d sebanyak n kali lewat AddDurations.
// Hasil kali yang melebihi math.MaxInt detik di-saturasi, bukan wrap.
func MultiplyDuration(d string, n int) string {
	if n <= 0 {
		return Zero
	}
	secs := parseHMS(d).seconds()
	if secs > 0 && n > math.MaxInt/secs {
		return fromSeconds(math.MaxInt).String()
	}
	return fromSeconds(secs * n).String()
}

// Normalize mengembalikan bentuk kanonik dari durasi lenient.
func Normalize(d string) string {
	return parseHMS(d).normalize().String()
}

// IsZero true jika durasi bernilai nol (termasuk string kosong atau rusak).
func IsZero(d string) bool {
	return parseHMS(d).seconds() == 0
}

// IsWellFormedDuration memeriksa format ketat "H+:MM:SS" (menit/detik < 60).
// Hanya dipakai untuk rekonsiliasi data; aritmetika tetap lenient.
func IsWellFormedDuration(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return false
	}
	for i, p := range parts {
		if p == "" || !allDigits(p) || len(p) > maxSegmentDigits {
			return false
		}
		if i > 0 && (len(p) != 2 || leadingInt(p) > 59) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
