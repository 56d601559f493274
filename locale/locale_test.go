package locale_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-jalalipick/internal/config"
	"github.com/tartampluch/go-jalalipick/jalali"
	"github.com/tartampluch/go-jalalipick/locale"
)

func mustCatalog(t *testing.T, lang string) *locale.Catalog {
	t.Helper()
	c, err := locale.New(lang)
	require.NoError(t, err)
	return c
}

// TestNew_Languages checks language selection, the default fallback and the
// rejection of unsupported codes.
func TestNew_Languages(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		wantLang string
		wantErr  bool
	}{
		{name: "Default", lang: "", wantLang: config.DefaultLanguage},
		{name: "Farsi", lang: "fa", wantLang: "fa"},
		{name: "English", lang: "en", wantLang: "en"},
		{name: "Unsupported", lang: "de", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := locale.New(tc.lang)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), config.ErrLangUnsupport)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLang, c.Lang())
		})
	}
}

// TestMonthNames spot-checks both catalogs and verifies every month resolves
// to a real translation rather than the key fallback.
func TestMonthNames(t *testing.T) {
	fa := mustCatalog(t, "fa")
	en := mustCatalog(t, "en")

	assert.Equal(t, "فروردین", fa.MonthName(jalali.Farvardin))
	assert.Equal(t, "مهر", fa.MonthName(jalali.Mehr))
	assert.Equal(t, "اسفند", fa.MonthName(jalali.Esfand))

	assert.Equal(t, "Farvardin", en.MonthName(jalali.Farvardin))
	assert.Equal(t, "Mehr", en.MonthName(jalali.Mehr))
	assert.Equal(t, "Esfand", en.MonthName(jalali.Esfand))

	for m := 1; m <= jalali.MonthsPerYear; m++ {
		for _, c := range []*locale.Catalog{fa, en} {
			got := c.MonthName(jalali.Month(m))
			assert.NotEmpty(t, got)
			assert.False(t, strings.HasPrefix(got, config.TKeyMonthPrefix),
				"month %d fell back to its key in %s", m, c.Lang())
		}
	}
}

// TestWeekdayNames checks full and narrow weekday forms in both catalogs.
func TestWeekdayNames(t *testing.T) {
	fa := mustCatalog(t, "fa")
	en := mustCatalog(t, "en")

	assert.Equal(t, "شنبه", fa.WeekdayName(jalali.Shanbeh))
	assert.Equal(t, "جمعه", fa.WeekdayName(jalali.Jomeh))
	assert.Equal(t, "Saturday", en.WeekdayName(jalali.Shanbeh))
	assert.Equal(t, "Friday", en.WeekdayName(jalali.Jomeh))

	assert.Equal(t, "ج", fa.WeekdayNarrow(jalali.Jomeh))
	assert.Equal(t, "Fr", en.WeekdayNarrow(jalali.Jomeh))

	for w := 0; w < 7; w++ {
		day := jalali.Weekday(w)
		assert.NotEmpty(t, fa.WeekdayName(day))
		assert.NotEmpty(t, en.WeekdayName(day))
		assert.NotEmpty(t, fa.WeekdayNarrow(day))
		assert.NotEmpty(t, en.WeekdayNarrow(day))
	}
}

// TestNumber checks numeral localization.
func TestNumber(t *testing.T) {
	fa := mustCatalog(t, "fa")
	en := mustCatalog(t, "en")

	assert.Equal(t, "۱۴۰۳", fa.Number(1403))
	assert.Equal(t, "۰", fa.Number(0))
	assert.Equal(t, "1403", en.Number(1403))
}

// TestFormatDate checks the numeric date form in both numeral systems.
func TestFormatDate(t *testing.T) {
	d := jalali.MustNew(1403, jalali.Mehr, 12)

	assert.Equal(t, "۱۴۰۳/۰۷/۱۲", mustCatalog(t, "fa").FormatDate(d))
	assert.Equal(t, "1403/07/12", mustCatalog(t, "en").FormatDate(d))
}

// TestMonthYear checks the month heading template.
func TestMonthYear(t *testing.T) {
	assert.Equal(t, "مهر ۱۴۰۳", mustCatalog(t, "fa").MonthYear(1403, jalali.Mehr))
	assert.Equal(t, "Mehr 1403", mustCatalog(t, "en").MonthYear(1403, jalali.Mehr))
}

// TestFullDate checks the long date template. 1403/07/12 is a Panjshanbeh.
func TestFullDate(t *testing.T) {
	d := jalali.MustNew(1403, jalali.Mehr, 12)
	require.Equal(t, jalali.Panjshanbeh, d.Weekday())

	assert.Equal(t, "پنجشنبه ۱۲ مهر ۱۴۰۳", mustCatalog(t, "fa").FullDate(d))
	assert.Equal(t, "Thursday, 12 Mehr 1403", mustCatalog(t, "en").FullDate(d))
}

// TestLabels checks the today and holiday marker labels.
func TestLabels(t *testing.T) {
	fa := mustCatalog(t, "fa")
	en := mustCatalog(t, "en")

	assert.Equal(t, "امروز", fa.TodayLabel())
	assert.Equal(t, "تعطیل", fa.HolidayLabel())
	assert.Equal(t, "Today", en.TodayLabel())
	assert.Equal(t, "Holiday", en.HolidayLabel())
}

// TestKeyBuilding pins the key scheme the catalogs and message files share.
func TestKeyBuilding(t *testing.T) {
	assert.Equal(t, "month_7", config.TKeyMonthPrefix+strconv.Itoa(int(jalali.Mehr)))
	assert.Equal(t, "weekday_6", config.TKeyWeekdayPrefix+strconv.Itoa(int(jalali.Jomeh)))
	assert.Equal(t, "weekday_narrow_0", config.TKeyWeekdayNarrowPrefix+strconv.Itoa(int(jalali.Shanbeh)))
}

// TestZeroCatalog degrades to raw keys and ASCII digits instead of panicking.
func TestZeroCatalog(t *testing.T) {
	var cat locale.Catalog

	assert.Equal(t, config.TKeyTodayLabel, cat.TodayLabel())
	assert.Equal(t, config.TKeyMonthPrefix+"7", cat.MonthName(jalali.Mehr))
	assert.Equal(t, "1403", cat.Number(1403))
}
