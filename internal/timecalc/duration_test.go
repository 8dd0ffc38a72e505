package timecalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleDurations = []string{
	"00:00:00", "00:00:45", "00:00:30", "00:45:00", "00:30:00",
	"01:15:59", "23:59:59", "123:05:00", "07:00:01",
}

func TestAddDurations_Carry(t *testing.T) {
	assert.Equal(t, "00:01:15", AddDurations("00:00:45", "00:00:30"))
	assert.Equal(t, "01:15:00", AddDurations("00:45:00", "00:30:00"))
	assert.Equal(t, "02:00:00", AddDurations("00:59:59", "00:00:01", "01:00:00"))
	assert.Equal(t, "123:05:00", AddDurations("100:00:00", "23:05:00"))
}

func TestAddDurations_Lenient(t *testing.T) {
	assert.Equal(t, "00:00:00", AddDurations("", ""))
	assert.Equal(t, "05:00:00", AddDurations("5", "abc"))
	assert.Equal(t, "01:10:00", AddDurations("01:xx:00", "00:10"))
	assert.Equal(t, "00:00:12", AddDurations("00:00:12abc", "-3:00:00"))
}

func TestAddDurations_Identity(t *testing.T) {
	for _, d := range sampleDurations {
		assert.Equal(t, d, AddDurations(d, Zero), d)
	}
	assert.Equal(t, "01:15:00", AddDurations("00:75:00", Zero))
}

func TestAddDurations_CommutativeAssociative(t *testing.T) {
	for _, a := range sampleDurations {
		for _, b := range sampleDurations {
			assert.Equal(t, AddDurations(a, b), AddDurations(b, a))
			for _, c := range sampleDurations {
				left := AddDurations(AddDurations(a, b), c)
				right := AddDurations(a, AddDurations(b, c))
				assert.Equal(t, left, right)
				assert.Equal(t, left, AddDurations(a, b, c))
			}
		}
	}
}

func TestSubtractDurations(t *testing.T) {
	assert.Equal(t, "10:30:00", SubtractDurations("12:00", "01:30:00"))
	assert.Equal(t, "00:59:59", SubtractDurations("01:00:00", "00:00:01"))
	assert.Equal(t, Zero, SubtractDurations("00:10:00", "01:00:00"))
	assert.Equal(t, "08:00:00", SubtractDurations("08:00:00", ""))
}

func TestMultiplyDuration_MatchesRepeatedAddition(t *testing.T) {
	for _, d := range sampleDurations {
		acc := Zero
		for n := 0; n <= 40; n++ {
			assert.Equal(t, acc, MultiplyDuration(d, n), "%s x %d", d, n)
			acc = AddDurations(acc, d)
		}
	}
	assert.Equal(t, Zero, MultiplyDuration("01:00:00", -2))
}

func TestIsZeroAndNormalize(t *testing.T) {
	assert.True(t, IsZero(""))
	assert.True(t, IsZero("0:00"))
	assert.True(t, IsZero("00:00:00"))
	assert.False(t, IsZero("00:00:01"))
	assert.Equal(t, "02:01:40", Normalize("1:60:100"))
}

func TestIsWellFormedDuration(t *testing.T) {
	assert.True(t, IsWellFormedDuration("00:00:00"))
	assert.True(t, IsWellFormedDuration("123:05:09"))
	assert.False(t, IsWellFormedDuration("00:60:00"))
	assert.False(t, IsWellFormedDuration("00:5:00"))
	assert.False(t, IsWellFormedDuration("00:05"))
	assert.False(t, IsWellFormedDuration("aa:bb:cc"))
	assert.False(t, IsWellFormedDuration(""))
}

func TestOversizedSegments(t *testing.T) {
	// segmen jam yang terlalu panjang dibaca sebagai 0, bukan wrap
	assert.Equal(t, "01:00:00", AddDurations("99999999999999999999:00:00", "01:00:00"))
	assert.Equal(t, "1000000000:00:00", AddDurations("999999999:00:00", "01:00:00"))
	assert.Equal(t, "02:00:00", AddDurations("0000000000001:00:00", "01:00:00"))

	assert.False(t, IsWellFormedDuration("99999999999999999999:00:00"))
	assert.True(t, IsWellFormedDuration("999999999:00:00"))
}

func TestMultiplyDuration_Saturates(t *testing.T) {
	got := MultiplyDuration("1000000:00:00", 1<<40)
	assert.NotEqual(t, Zero, got)
	assert.Equal(t, "2562047788015215:30:07", got)

	assert.Equal(t, "3000000:00:00", MultiplyDuration("1000000:00:00", 3))
}
