package timecalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDurationDisplay(t *testing.T) {
	assert.Equal(t, "2hr 15mins 30sec", FormatDurationDisplay("02:15:30"))
	assert.Equal(t, "0hr 0mins", FormatDurationDisplay("00:00"))
	assert.Equal(t, "0hr 0mins 0sec", FormatDurationDisplay(""))
	assert.Equal(t, "123hr 5mins 0sec", FormatDurationDisplay("123:05:00"))
	assert.Equal(t, "4hr 0mins 9sec", FormatDurationDisplay("04:xx:09"))
	assert.Equal(t, "7hr", FormatDurationDisplay("7"))
}

func TestFormatHoursMinutes(t *testing.T) {
	assert.Equal(t, "27hr 5mins", FormatHoursMinutes("27:05:10"))
	assert.Equal(t, "1hr 15mins", FormatHoursMinutes("00:75:00"))
	assert.Equal(t, "0hr 0mins", FormatHoursMinutes(""))
}

func TestDurationToDecimalHours(t *testing.T) {
	assert.InDelta(t, 1.5, DurationToDecimalHours("01:30:00"), 1e-9)
	assert.InDelta(t, 2.0+15.0/60+30.0/3600, DurationToDecimalHours("02:15:30"), 1e-9)
	assert.Equal(t, 0.0, DurationToDecimalHours("garbage"))
}

func TestEfficiency(t *testing.T) {
	got := Efficiency("01:00:00", "00:00:00")
	assert.Equal(t, 0.0, got)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))

	assert.InDelta(t, 50.0, Efficiency("02:00:00", "04:00:00"), 1e-9)
	assert.InDelta(t, 125.0, Efficiency("05:00:00", "04:00:00"), 1e-9)
}
