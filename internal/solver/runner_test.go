package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairassign/internal/cpsat"
	"fairassign/internal/domain"
)

func TestRunAllHalfDaysGroupsByArrivalCode(t *testing.T) {
	counts := domain.Counts{NC: 2, NR: 1, NJ: 1}
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 0}, // half-day 0
		{ID: 2, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 1}, // half-day 0
		{ID: 3, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 6}, // half-day 3
	}
	rooms := []domain.Room{{ID: 0, Name: "Main Hall", Capacity: 10}}

	d := exactDriver()
	results := d.RunAllHalfDays(students, rooms, counts)

	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].HalfDay)
	assert.Equal(t, 3, results[1].HalfDay)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.True(t, r.Solution.Status.Solvable())
	}
}

// TestRunAllHalfDaysContinuesPastStructuralFailure checks that a
// structural abort in one half-day does not stop the others from running.
func TestRunAllHalfDaysContinuesPastStructuralFailure(t *testing.T) {
	counts := domain.Counts{NC: 2, NR: 1, NJ: 1}
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 0, 0, 2, 3}, ArrivalCode: 0}, // collapses below 4, ModelInvalid
		{ID: 2, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 6}, // half-day 3, fine
	}
	rooms := []domain.Room{{ID: 0, Name: "Main Hall", Capacity: 10}}

	d := exactDriver()
	results := d.RunAllHalfDays(students, rooms, counts)

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.Equal(t, domain.StatusModelInvalid, results[0].Solution.Status)
	assert.NoError(t, results[1].Err)
	assert.True(t, results[1].Solution.Status.Solvable())
}
