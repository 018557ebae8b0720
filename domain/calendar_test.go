package domain_test

import (
	"testing"
	"time"

	"github.com/EricWal/hr-app/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseCalendarDay(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Time
		ok       bool
	}{
		{"2026-10-14", time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), true},
		{"2026-10-14 - يوم: الأربعاء", time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), true},
		{"2026-02-30", time.Time{}, false},
		{"14-10-2026", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual, ok := domain.ParseCalendarDay(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestSameMonth(t *testing.T) {
	now := time.Date(2026, time.October, 31, 23, 0, 0, 0, time.UTC)
	assert.True(t, domain.SameMonth("2026-10-01", now))
	assert.False(t, domain.SameMonth("2026-11-01", now))
	assert.False(t, domain.SameMonth("2025-10-01", now))
	assert.False(t, domain.SameMonth("garbage", now))
}

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		input       string
		expected    int
		expectedErr error
	}{
		{input: "08:30", expected: 510},
		{input: "8:00", expected: 480},
		{input: "14:15", expected: 855},
		{input: "00:00", expected: 0},
		{input: "8:30 ص", expected: 510},
		{input: "2:15 م", expected: 855},
		{input: "12:00 م", expected: 720},
		{input: "12:10 ص", expected: 10},
		{input: "02:15 PM", expected: 855},
		{input: "9:05 am", expected: 545},
		{input: "٨:٣٠ ص", expected: 510},
		{input: "24:00", expectedErr: domain.ErrInvalidTimeOfDay},
		{input: "13:00 PM", expectedErr: domain.ErrInvalidTimeOfDay},
		{input: "8:75", expectedErr: domain.ErrInvalidTimeOfDay},
		{input: "soon", expectedErr: domain.ErrInvalidTimeOfDay},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual, err := domain.ParseTimeOfDay(tc.input)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "8:30 ص", domain.FormatTimeOfDay(510))
	assert.Equal(t, "12:00 م", domain.FormatTimeOfDay(720))
	assert.Equal(t, "12:05 ص", domain.FormatTimeOfDay(5))
	assert.Equal(t, "11:59 م", domain.FormatTimeOfDay(1439))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "8 ساعة 0 دقيقة", domain.FormatMinutes(480))
	assert.Equal(t, "3 ساعة 30 دقيقة", domain.FormatMinutes(210))
	assert.Equal(t, "0 ساعة 0 دقيقة", domain.FormatMinutes(-5))
}
