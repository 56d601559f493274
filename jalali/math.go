package jalali

// The conversion core maps Jalali dates to an absolute day number (the Julian
// Day Number) and back, via the Gregorian calendar for the era anchor. Month
// lengths inside a Jalali year are fixed (6x31, 5x30, Esfand 29 or 30), so the
// whole problem reduces to locating Farvardin 1: the break-year table below
// partitions the era into spans inside which the 33-year leap subcycle holds
// exactly, and jalCycle walks it to find the leap status of a year and the
// March day its Farvardin 1 falls on.

// breakYears are the first years of the intercalation spans of the Jalali era.
// Years at or beyond the final entry are outside the algorithm's validity,
// which is why MaxYear stays well below it.
var breakYears = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210, 1635,
	2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// weekdayOffset calibrates day-number modulo 7 to the Jalali week: day number
// 0 fell on a Monday, so adding 2 makes Shanbeh (Saturday) come out as 0.
const weekdayOffset = 2

// jalCycle locates year jy inside the break table. It returns leap, the
// position of jy inside its 4-year leap subcycle (0 means a leap year), gy,
// the Gregorian year containing Farvardin 1 of jy, and march, the day of March
// that Farvardin 1 falls on. Callers keep jy within [MinYear-1, MaxYear+1];
// the table covers that with margin.
func jalCycle(jy int) (leap, gy, march int) {
	gy = jy + 621
	leapJ := -14
	jp := breakYears[0]

	// Accumulate leap days from the era start up to the span holding jy.
	jump := 0
	for i := 1; i < len(breakYears); i++ {
		jm := breakYears[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}
	n := jy - jp

	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	// Gregorian leap days over the same period fix the March alignment.
	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march = 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap = ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return leap, gy, march
}

func isLeapYear(jy int) bool {
	leap, _, _ := jalCycle(jy)
	return leap == 0
}

// gregorianToDayNumber converts a proleptic Gregorian date to its day number.
func gregorianToDayNumber(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 + (153*((gm+9)%12)+2)/5 + gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

// dayNumberToGregorian is the inverse of gregorianToDayNumber.
func dayNumberToGregorian(n int) (gy, gm, gd int) {
	j := 4*n + 139361631
	j += (4*n+183187720)/146097*3/4*4 - 3908
	i := j%1461/4*5 + 308
	gd = i%153/5 + 1
	gm = i/153%12 + 1
	gy = j/1461 - 100100 + (8-gm)/6
	return gy, gm, gd
}

// jalaliToDayNumber converts a valid Jalali triple to its day number. The
// first six months contribute 31 days each and the rest 30, which the closed
// form (jm-1)*31 - jm/7*(jm-7) folds into a single expression.
func jalaliToDayNumber(jy, jm, jd int) int {
	_, gy, march := jalCycle(jy)
	return gregorianToDayNumber(gy, 3, march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1
}

// dayNumberToJalali is the inverse of jalaliToDayNumber over the supported
// span. k counts days since Farvardin 1 of the candidate year; a negative k
// means the day belongs to the tail of the previous Jalali year.
func dayNumberToJalali(n int) (jy, jm, jd int) {
	gy, _, _ := dayNumberToGregorian(n)
	jy = gy - 621
	leap, _, march := jalCycle(jy)
	k := n - gregorianToDayNumber(gy, 3, march)
	if k >= 0 {
		if k <= 185 {
			// Inside Farvardin..Shahrivar, all 31-day months.
			jm = 1 + k/31
			jd = k%31 + 1
			return jy, jm, jd
		}
		k -= 186
	} else {
		// Before Farvardin 1: count from Mehr 1 of the previous year.
		// 179 = 5*30 + 29 days from Mehr 1 to Esfand 29; a leap previous
		// year (leap == 1 here) adds one.
		jy--
		k += 179
		if leap == 1 {
			k++
		}
	}
	jm = 7 + k/30
	jd = k%30 + 1
	return jy, jm, jd
}

// Day-number bounds of the supported span, fixed at init.
var (
	minDayNumber = jalaliToDayNumber(MinYear, 1, 1)
	maxDayNumber = jalaliToDayNumber(MaxYear+1, 1, 1) - 1
)

// IsLeapYear reports whether the Jalali year has 366 days (a 30-day Esfand).
// Years outside the supported span report false.
func IsLeapYear(year int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	return isLeapYear(year)
}

// DaysInMonth returns the length of a month: 31 for Farvardin through
// Shahrivar, 30 for Mehr through Bahman, and 29 or 30 for Esfand depending on
// IsLeapYear. It returns 0 when the year or month is out of range.
func DaysInMonth(year int, month Month) int {
	if year < MinYear || year > MaxYear {
		return 0
	}
	switch {
	case month >= Farvardin && month <= Shahrivar:
		return 31
	case month >= Mehr && month <= Bahman:
		return 30
	case month == Esfand:
		if isLeapYear(year) {
			return 30
		}
		return 29
	default:
		return 0
	}
}

// FirstWeekday returns the weekday of the first day of the given month, used
// to left-pad a month grid.
func FirstWeekday(year int, month Month) (Weekday, error) {
	d, err := New(year, month, 1)
	if err != nil {
		return 0, err
	}
	return d.Weekday(), nil
}
