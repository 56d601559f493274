package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unixEpochDayNumber is the absolute day number of 1970-01-01, the anchor for
// cross-checks against the time package.
const unixEpochDayNumber = 2440588

// TestJalCycle_NowruzAnchors pins the March alignment of Farvardin 1 for
// years with well documented Gregorian Nowruz dates.
func TestJalCycle_NowruzAnchors(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		wantMarch int
		wantLeap  bool
	}{
		{"Year_1300", 1300, 21, false},
		{"Year_1348", 1348, 21, false},
		{"Year_1357", 1357, 21, false},
		{"Year_1399_Leap", 1399, 20, true},
		{"Year_1402", 1402, 21, false},
		{"Year_1403_Leap", 1403, 20, true},
		{"Year_1404", 1404, 21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leap, gy, march := jalCycle(tt.year)
			assert.Equal(t, tt.year+621, gy, "Gregorian year of Farvardin 1")
			assert.Equal(t, tt.wantMarch, march, "March day of Farvardin 1")
			assert.Equal(t, tt.wantLeap, leap == 0, "leap status")
		})
	}
}

// TestGregorianDayNumber_Anchors checks the Gregorian converter against
// published Julian Day Numbers.
func TestGregorianDayNumber_Anchors(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		want    int
	}{
		{"UnixEpoch", 1970, 1, 1, unixEpochDayNumber},
		{"J2000", 2000, 1, 1, 2451545},
		{"Nowruz_1348", 1969, 3, 21, 2440302},
		{"Nowruz_1403", 2024, 3, 20, 2460390},
		{"JalaliEpoch", 622, 3, 22, 1948321},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gregorianToDayNumber(tt.y, tt.m, tt.d))
			gy, gm, gd := dayNumberToGregorian(tt.want)
			assert.Equal(t, [3]int{tt.y, tt.m, tt.d}, [3]int{gy, gm, gd})
		})
	}
}

// TestGregorianConversion_AgainstTimePackage sweeps the supported span and
// verifies the integer converter against the standard library's proleptic
// Gregorian arithmetic, which is an independent implementation.
func TestGregorianConversion_AgainstTimePackage(t *testing.T) {
	epoch := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

	// A step coprime with 7 and with common cycle lengths walks the span
	// while still hitting every weekday and month position over time.
	for n := minDayNumber; n <= maxDayNumber; n += 997 {
		gy, gm, gd := dayNumberToGregorian(n)
		want := epoch.AddDate(0, 0, n-unixEpochDayNumber)
		wy, wm, wd := want.Date()

		require.Equal(t, [3]int{wy, int(wm), wd}, [3]int{gy, gm, gd},
			"day number %d", n)
		require.Equal(t, n, gregorianToDayNumber(gy, gm, gd), "inverse at day number %d", n)
	}
}

// TestJalaliDayNumber_RoundTrip covers every month boundary of a sampled set
// of years, including the first and last supported years and the years
// adjacent to intercalation break points.
func TestJalaliDayNumber_RoundTrip(t *testing.T) {
	years := []int{
		MinYear, MinYear + 1, 100, 474, 1181, 1210, 1211, 1300, 1348,
		1402, 1403, 1404, 2059, 2060, 2061, 2455, 2456, 2457, 3000,
		3099, MaxYear,
	}

	for _, y := range years {
		for m := 1; m <= MonthsPerYear; m++ {
			for _, d := range []int{1, 15, DaysInMonth(y, Month(m))} {
				n := jalaliToDayNumber(y, m, d)
				gy, gm, gd := dayNumberToJalali(n)
				require.Equal(t, [3]int{y, m, d}, [3]int{gy, gm, gd},
					"round trip %04d/%02d/%02d (day number %d)", y, m, d, n)
			}
		}
	}
}

// TestDayNumberWalk_YearBoundaries advances one day at a time across six
// consecutive years, including a leap Esfand, and checks that the derived
// triple rolls over exactly where the month-length table says it should.
func TestDayNumberWalk_YearBoundaries(t *testing.T) {
	y, m, d := 1399, 1, 1
	n := jalaliToDayNumber(y, m, d)

	for y < 1405 {
		gy, gm, gd := dayNumberToJalali(n)
		require.Equal(t, [3]int{y, m, d}, [3]int{gy, gm, gd}, "day number %d", n)

		// Advance the expected triple by hand.
		d++
		if d > DaysInMonth(y, Month(m)) {
			d = 1
			m++
			if m > MonthsPerYear {
				m = 1
				y++
			}
		}
		n++
	}
}

// TestSpanBounds_Consistency fixes the day-number bounds to the calendar
// facts they encode.
func TestSpanBounds_Consistency(t *testing.T) {
	assert.Equal(t, jalaliToDayNumber(MinYear, 1, 1), minDayNumber)
	assert.Equal(t, jalaliToDayNumber(MaxYear, 12, DaysInMonth(MaxYear, Esfand)), maxDayNumber)

	// The documented epoch: Farvardin 1 of year 1.
	assert.Equal(t, 1948321, minDayNumber)
}
