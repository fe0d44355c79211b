package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{24_000_000_000, "240.0억"},
		{150_000_000, "1.5억"},
		{100_000_000, "1.0억"},
		{99_990_000, "9999만"},
		{50_000, "5만"},
		{10_000, "1만"},
		{9_999, "9,999"},
		{1_234, "1,234"},
		{0, "0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCurrency(tc.value), "value %v", tc.value)
	}
}

func TestDaysRemaining(t *testing.T) {
	target := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, DaysRemaining(target, target.AddDate(0, 0, -10)))
	assert.Equal(t, 1, DaysRemaining(target, target.Add(-time.Hour)), "partial days round up")
	assert.Equal(t, 0, DaysRemaining(target, target))
	assert.Equal(t, 0, DaysRemaining(target, target.AddDate(0, 0, 5)), "past target clamps to zero")
}

func TestFormatKoreanDate(t *testing.T) {
	d := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025. 12. 31.", formatKoreanDate(d))

	d = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026. 1. 2.", formatKoreanDate(d), "no zero padding")
}
