package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	CalendarDayLayout = "2006-01-02"
	MinutesPerDay     = 24 * 60

	meridiemAM = "ص"
	meridiemPM = "م"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")

	leadingDayPattern = regexp.MustCompile(`^\s*(\d{4}-\d{2}-\d{2})`)
	timeOfDayPattern  = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	pmPattern         = regexp.MustCompile(`(?i)(\bpm\b|م)`)
	amPattern         = regexp.MustCompile(`(?i)(\bam\b|ص)`)

	arabicIndicDigits = strings.NewReplacer(
		"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
		"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	)
)

// ParseCalendarDay extracts the leading YYYY-MM-DD token of s, so both
// "2026-10-14" and "2026-10-14 - يوم: الأربعاء" are accepted.
func ParseCalendarDay(s string) (time.Time, bool) {
	match := leadingDayPattern.FindStringSubmatch(s)
	if match == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(CalendarDayLayout, match[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SameMonth reports whether the calendar day in s falls in the year and month of now.
func SameMonth(s string, now time.Time) bool {
	day, ok := ParseCalendarDay(s)
	if !ok {
		return false
	}
	return day.Year() == now.Year() && day.Month() == now.Month()
}

// ParseTimeOfDay converts "08:30", "8:30 ص" or "2:15 PM" to minutes since
// midnight. Without a meridiem marker the hour is read on a 24h clock.
func ParseTimeOfDay(s string) (int, error) {
	s = arabicIndicDigits.Replace(s)
	match := timeOfDayPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	if minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	rest := strings.Replace(s, match[0], "", 1)
	isPM := pmPattern.MatchString(rest)
	isAM := amPattern.MatchString(rest)
	if isPM || isAM {
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
		hour %= 12
		if isPM {
			hour += 12
		}
	} else if hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return hour*60 + minute, nil
}

// FormatTimeOfDay renders minutes since midnight on a 12h clock, e.g. "8:30 ص".
func FormatTimeOfDay(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	h24 := minutes / 60
	h12 := h24 % 12
	if h12 == 0 {
		h12 = 12
	}
	marker := meridiemAM
	if h24 >= 12 {
		marker = meridiemPM
	}
	return fmt.Sprintf("%d:%02d %s", h12, minutes%60, marker)
}

// FormatMinutes renders a balance as "X ساعة Y دقيقة".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d ساعة %d دقيقة", minutes/60, minutes%60)
}
