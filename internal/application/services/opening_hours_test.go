package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/nearbycare/internal/application/services"
)

var allWeekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

func TestIsOpenOn_NoScheduleIsOpen(t *testing.T) {
	for _, day := range allWeekdays {
		assert.True(t, services.IsOpenOn(day, nil), day.String())
	}
}

func TestIsOpenOn_NoMatchingLineIsOpen(t *testing.T) {
	lines := []string{"Tuesday: Closed", "Wednesday: Closed"}

	assert.True(t, services.IsOpenOn(time.Monday, lines))
	assert.True(t, services.IsOpenOn(time.Monday, []string{}))
}

func TestIsOpenOn_ClosedLine(t *testing.T) {
	assert.False(t, services.IsOpenOn(time.Monday, []string{"Monday: Closed"}))
	assert.False(t, services.IsOpenOn(time.Monday, []string{"Monday: CLOSED for renovation"}))
	assert.False(t, services.IsOpenOn(time.Sunday, []string{"Saturday: 9:00 AM – 1:00 PM", "Sunday: closed"}))
}

func TestIsOpenOn_HoursLine(t *testing.T) {
	assert.True(t, services.IsOpenOn(time.Monday, []string{"Monday: 9:00–17:00"}))
	assert.True(t, services.IsOpenOn(time.Friday, []string{"Friday: Open 24 hours"}))
}

func TestIsOpenOn_FirstMatchingLineWins(t *testing.T) {
	lines := []string{"Monday: 9:00–17:00", "Monday: Closed"}

	assert.True(t, services.IsOpenOn(time.Monday, lines))
}

func TestIsOpenOn_LocalizedScheduleDegradesToOpen(t *testing.T) {
	// weekday_text in Japanese never starts with an English day name
	lines := []string{"月曜日: 定休日", "火曜日: 9時00分～17時00分"}

	for _, day := range allWeekdays {
		assert.True(t, services.IsOpenOn(day, lines), day.String())
	}
}
