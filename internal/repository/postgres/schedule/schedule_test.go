package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillComputed(t *testing.T) {
	detail := GetListResponse{
		WorkStart:  "09:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		WorkEnd:    "17:00",
		HourlyRate: 20,
	}

	fillComputed(&detail)

	assert.Equal(t, 7.0, detail.NetHours)
	assert.Equal(t, 140.0, detail.DailyEarnings)
}

func TestFillComputedBadTimes(t *testing.T) {
	detail := GetListResponse{WorkStart: "oops"}

	fillComputed(&detail)

	assert.Equal(t, 0.0, detail.NetHours)
	assert.Equal(t, 0.0, detail.DailyEarnings)
}
