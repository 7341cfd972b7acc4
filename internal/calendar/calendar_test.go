package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairassign/internal/domain"
)

func TestValidSlots(t *testing.T) {
	cases := []struct {
		code  int
		early bool
	}{
		{0, true}, {2, true}, {4, true}, {6, true},
		{1, false}, {3, false}, {5, false}, {7, false},
	}
	for _, c := range cases {
		slots, err := ValidSlots(c.code)
		require.NoError(t, err)
		assert.Len(t, slots, 4)
		if c.early {
			assert.True(t, slots[0])
			assert.False(t, slots[4])
		} else {
			assert.False(t, slots[0])
			assert.True(t, slots[4])
		}
		assert.True(t, slots[1])
		assert.True(t, slots[2])
		assert.True(t, slots[3])
	}
}

func TestValidSlotsRejectsOutOfRange(t *testing.T) {
	_, err := ValidSlots(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidArrivalCode)

	_, err = ValidSlots(8)
	assert.ErrorIs(t, err, domain.ErrInvalidArrivalCode)
}

func TestHalfDay(t *testing.T) {
	assert.Equal(t, 0, HalfDay(0))
	assert.Equal(t, 0, HalfDay(1))
	assert.Equal(t, 1, HalfDay(2))
	assert.Equal(t, 3, HalfDay(7))
}

func TestFamilyOf(t *testing.T) {
	counts := domain.Counts{NC: 19, NR: 6, NJ: 6}
	assert.Equal(t, Conference, FamilyOf(0, counts))
	assert.Equal(t, Conference, FamilyOf(18, counts))
	assert.Equal(t, RoundTable, FamilyOf(19, counts))
	assert.Equal(t, RoundTable, FamilyOf(24, counts))
	assert.Equal(t, FlashJob, FamilyOf(25, counts))
	assert.Equal(t, FlashJob, FamilyOf(30, counts))
}
