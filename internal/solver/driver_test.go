package solver

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairassign/internal/builder"
	"fairassign/internal/cpsat"
	"fairassign/internal/domain"
	"fairassign/internal/verifier"
)

func exactDriver() *Driver {
	cfg := DefaultConfig()
	return &Driver{
		Config:     cfg,
		Logger:     zerolog.Nop(),
		NewBackend: func() cpsat.Backend { return cpsat.NewExact() },
	}
}

// TestSolveHalfDayFeasible exercises a trimmed variant of scenario S1:
// two students whose wish lists exactly match their minimum valid
// composition, one room big enough for everyone.
func TestSolveHalfDayFeasible(t *testing.T) {
	counts := domain.Counts{NC: 2, NR: 1, NJ: 1} // ids 0,1 Conf; 2 RT; 3 FM
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 0},
		{ID: 2, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 0},
	}
	rooms := []domain.Room{{ID: 0, Name: "Main Hall", Capacity: 10}}

	d := exactDriver()
	sol, maps, err := d.SolveHalfDay(0, students, rooms, counts)
	require.NoError(t, err)
	require.True(t, sol.Status.Solvable())

	// Each student is forced to attend all 4 of their VW entries: the
	// wish-3 penalty (1) lands on the same boolean as wish-1's mandatory
	// attendance, plus wish-4 (5) and wish-5 (10): 16 per student.
	assert.Equal(t, 32, sol.Objective)

	rep := verifier.Verify(sol, students, rooms, counts, maps, builder.DefaultWeights())
	assert.True(t, rep.AllPass(), "verifier failures: %+v", rep.Constraints)
	assert.Equal(t, sol.Objective, rep.RecomputedObjective)
}

// TestSolveHalfDayModelInvalid exercises the ModelInvalid path: a
// collapsed wish set with fewer than 4 distinct presentations.
func TestSolveHalfDayModelInvalid(t *testing.T) {
	counts := domain.Counts{NC: 2, NR: 1, NJ: 1}
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 0, 0, 2, 3}, ArrivalCode: 0},
	}
	rooms := []domain.Room{{ID: 0, Name: "Main Hall", Capacity: 10}}

	d := exactDriver()
	sol, _, err := d.SolveHalfDay(0, students, rooms, counts)
	assert.ErrorIs(t, err, domain.ErrWishListTooShort)
	assert.Equal(t, domain.StatusModelInvalid, sol.Status)
}

// TestSolveHalfDayInvalidArrivalCode exercises the reducer-level abort.
func TestSolveHalfDayInvalidArrivalCode(t *testing.T) {
	counts := domain.Counts{NC: 2, NR: 1, NJ: 1}
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 99},
	}
	rooms := []domain.Room{{ID: 0, Name: "Main Hall", Capacity: 10}}

	d := exactDriver()
	sol, maps, err := d.SolveHalfDay(0, students, rooms, counts)
	assert.ErrorIs(t, err, domain.ErrInvalidArrivalCode)
	assert.Nil(t, maps)
	assert.Equal(t, domain.StatusModelInvalid, sol.Status)
}

// TestSolveHalfDayCapacityCrunch forces infeasibility: the cohort's total
// attendance demand (2 students x 4 presentations = 8 seat-visits)
// exceeds the single room's total supply across the 4 useful slots
// (1 seat x 4 slots = 4 seat-visits).
func TestSolveHalfDayCapacityCrunch(t *testing.T) {
	counts := domain.Counts{NC: 2, NR: 1, NJ: 1}
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 0},
		{ID: 2, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 0},
	}
	rooms := []domain.Room{{ID: 0, Name: "Tiny Room", Capacity: 1}}

	d := exactDriver()
	sol, _, err := d.SolveHalfDay(0, students, rooms, counts)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInfeasible, sol.Status)
}
