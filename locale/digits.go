package locale

import "strings"

// Persian digits live at U+06F0..U+06F9 and Arabic-Indic ones at
// U+0660..U+0669. Output always uses the Persian block; input accepts both,
// since Iranian keyboard layouts produce either depending on the platform.

// ToPersianDigits replaces ASCII digits with Persian ones, leaving every
// other rune untouched.
func ToPersianDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = r - '0' + '۰'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToASCIIDigits replaces Persian and Arabic-Indic digits with ASCII ones so
// user input parses regardless of the keyboard that typed it.
func ToASCIIDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '۰' && r <= '۹':
			r = r - '۰' + '0'
		case r >= '٠' && r <= '٩':
			r = r - '٠' + '0'
		}
		b.WriteRune(r)
	}
	return b.String()
}
