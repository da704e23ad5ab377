package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarRulesIsHoliday(t *testing.T) {
	rules := NewCalendarRules(nil, 0) // дефолтный календарь

	// Праздники не зависят от года
	assert.True(t, rules.IsHoliday(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rules.IsHoliday(time.Date(2030, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rules.IsHoliday(time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rules.IsHoliday(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	assert.False(t, rules.IsHoliday(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)))
}

func TestCalendarRulesIsWeekend(t *testing.T) {
	rules := NewCalendarRules(nil, 0)

	saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	require.Equal(t, time.Saturday, saturday.Weekday())
	require.Equal(t, time.Sunday, sunday.Weekday())
	require.Equal(t, time.Monday, monday.Weekday())

	assert.True(t, rules.IsWeekend(saturday))
	assert.True(t, rules.IsWeekend(sunday))
	assert.False(t, rules.IsWeekend(monday))
}

func TestCalendarRulesCheckBookable(t *testing.T) {
	rules := NewCalendarRules([]string{"12-25"}, 2)
	monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		index   DayCountIndex
		wantErr error
	}{
		{"bookable weekday", monday, DayCountIndex{}, nil},
		{"holiday", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), DayCountIndex{}, ErrHoliday},
		{"saturday", time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), DayCountIndex{}, ErrWeekend},
		{"below capacity", monday, DayCountIndex{"2026-09-14": 1}, nil},
		{"at capacity", monday, DayCountIndex{"2026-09-14": 2}, ErrDayFull},
		{"over capacity", monday, DayCountIndex{"2026-09-14": 3}, ErrDayFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.CheckBookable(tt.date, tt.index)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.True(t, rules.IsBookable(tt.date, tt.index))
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, rules.IsBookable(tt.date, tt.index))
			}
		})
	}
}

func TestCalendarRulesDefaults(t *testing.T) {
	rules := NewCalendarRules(nil, 0)
	assert.Equal(t, DefaultMaxDailyAppointments, rules.MaxDaily())

	custom := NewCalendarRules([]string{"07-04"}, 10)
	assert.Equal(t, 10, custom.MaxDaily())
	assert.True(t, custom.IsHoliday(time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)))
	// Дефолтный календарь заменён, а не дополнен
	assert.False(t, custom.IsHoliday(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)))
}
