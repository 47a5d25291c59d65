package timefmt

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is requested.
const DefaultLocale = "pt-BR"

type locale struct {
	tag      language.Tag
	weekdays [7]string  // indexed by time.Weekday
	months   [12]string // indexed by time.Month - 1
	date     func(weekday string, day int, month string) string
}

var locales = []locale{
	{
		tag:      language.BrazilianPortuguese,
		weekdays: [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		months: [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
			"jul.", "ago.", "set.", "out.", "nov.", "dez."},
		date: func(weekday string, day int, month string) string {
			return fmt.Sprintf("%s, %d de %s", weekday, day, month)
		},
	},
	{
		tag:      language.AmericanEnglish,
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		date: func(weekday string, day int, month string) string {
			return fmt.Sprintf("%s, %s %d", weekday, month, day)
		},
	},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// matchLocale picks the supported display locale closest to the BCP 47 tag s.
func matchLocale(s string) (locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultLocale
	}
	tag, err := language.Parse(s)
	if err != nil {
		return locale{}, fmt.Errorf("parse locale %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return locale{}, fmt.Errorf("unsupported locale %q (supported: %s)", s, supportedLocales())
	}
	return locales[idx], nil
}

func supportedLocales() string {
	names := make([]string, len(locales))
	for i, l := range locales {
		names[i] = l.tag.String()
	}
	return strings.Join(names, ", ")
}

func (l locale) formatDate(t time.Time) string {
	return l.date(l.weekdays[t.Weekday()], t.Day(), l.months[t.Month()-1])
}
