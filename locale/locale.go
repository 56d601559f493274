// Package locale renders Jalali calendar names and dates in the supported
// display languages. Strings live in embedded go-i18n message files; lookups
// that miss fall back to the raw key so the caller always gets something
// printable.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-jalalipick/internal/config"
	"github.com/tartampluch/go-jalalipick/jalali"
)

//go:embed locales/*.json
var localeFS embed.FS

// persianLang is the language whose numerals switch to Persian digits.
const persianLang = "fa"

// Catalog translates calendar names and date formats for one language.
type Catalog struct {
	lang      string
	localizer *i18n.Localizer
}

// New loads the embedded message files and returns a catalog for the given
// language. An empty language selects the default; unsupported ones fail.
func New(lang string) (*Catalog, error) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	if !slices.Contains(config.SupportedLanguages, lang) {
		return nil, fmt.Errorf("%s: %q", config.ErrLangUnsupport, lang)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	return &Catalog{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang),
	}, nil
}

// Lang returns the catalog's language code.
func (c *Catalog) Lang() string { return c.lang }

// msg translates a key, falling back to the key itself.
func (c *Catalog) msg(key string) string {
	return c.template(key, nil)
}

// template translates a key with template data, falling back to the key. The
// zero catalog has no localizer and falls back for every key.
func (c *Catalog) template(key string, data map[string]interface{}) string {
	if c.localizer == nil {
		slog.Warn(config.ErrLocNotInit,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
		)
		return key
	}

	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return s
}

// MonthName returns the display name of a Jalali month.
func (c *Catalog) MonthName(m jalali.Month) string {
	return c.msg(config.TKeyMonthPrefix + strconv.Itoa(int(m)))
}

// WeekdayName returns the display name of a weekday.
func (c *Catalog) WeekdayName(w jalali.Weekday) string {
	return c.msg(config.TKeyWeekdayPrefix + strconv.Itoa(int(w)))
}

// WeekdayNarrow returns the short weekday form used in grid headers.
func (c *Catalog) WeekdayNarrow(w jalali.Weekday) string {
	return c.msg(config.TKeyWeekdayNarrowPrefix + strconv.Itoa(int(w)))
}

// TodayLabel returns the marker label for the current day.
func (c *Catalog) TodayLabel() string { return c.msg(config.TKeyTodayLabel) }

// HolidayLabel returns the marker label for holiday days.
func (c *Catalog) HolidayLabel() string { return c.msg(config.TKeyHolidayLabel) }

// Number renders an integer in the catalog's numerals.
func (c *Catalog) Number(n int) string {
	s := strconv.Itoa(n)
	if c.lang == persianLang {
		return ToPersianDigits(s)
	}
	return s
}

// FormatDate renders a date in the numeric YYYY/MM/DD form, localized.
func (c *Catalog) FormatDate(d jalali.Date) string {
	s := fmt.Sprintf(config.DateFormatJalali, d.Year(), int(d.Month()), d.Day())
	if c.lang == persianLang {
		return ToPersianDigits(s)
	}
	return s
}

// MonthYear renders a month heading such as "مهر ۱۴۰۳".
func (c *Catalog) MonthYear(year int, month jalali.Month) string {
	return c.template(config.TKeyFormatMonthYear, map[string]interface{}{
		"Month": c.MonthName(month),
		"Year":  c.Number(year),
	})
}

// FullDate renders a date in full, such as "پنجشنبه ۱۲ مهر ۱۴۰۳".
func (c *Catalog) FullDate(d jalali.Date) string {
	return c.template(config.TKeyFormatFullDate, map[string]interface{}{
		"Weekday": c.WeekdayName(d.Weekday()),
		"Day":     c.Number(d.Day()),
		"Month":   c.MonthName(d.Month()),
		"Year":    c.Number(d.Year()),
	})
}
