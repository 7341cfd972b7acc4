package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrivalCode(t *testing.T) {
	code, err := ArrivalCode("2026-03-26", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = ArrivalCode("2026-03-27", "13:30")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestArrivalCodeUnknown(t *testing.T) {
	_, err := ArrivalCode("2026-01-01", "00:00")
	assert.Error(t, err)
}

func TestSlotClockTime(t *testing.T) {
	assert.Equal(t, "08:00", SlotClockTime(0, true))
	assert.Equal(t, "", SlotClockTime(4, true))
	assert.Equal(t, "15:00", SlotClockTime(4, false))
	assert.Equal(t, "", SlotClockTime(5, true))
}
