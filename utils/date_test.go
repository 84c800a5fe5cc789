package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-03-05")
	assert.Nil(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDay("05/03/2026")
	assert.NotNil(t, err)
}

func TestFormatDay(t *testing.T) {
	d := time.Date(2026, 3, 5, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-05", FormatDay(d))
}

func TestDayOffset(t *testing.T) {
	base, _ := ParseDay("2026-03-01")
	later, _ := ParseDay("2026-03-08")
	assert.Equal(t, 7, DayOffset(base, later))
	assert.Equal(t, 0, DayOffset(base, base))
}
