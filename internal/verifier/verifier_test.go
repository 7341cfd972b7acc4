package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairassign/internal/builder"
	"fairassign/internal/cpsat"
	"fairassign/internal/domain"
	"fairassign/internal/reducer"
)

func setup(t *testing.T) (*domain.Solution, []domain.Student, []domain.Room, domain.Counts, *reducer.Maps) {
	t.Helper()
	counts := domain.Counts{NC: 2, NR: 1, NJ: 1}
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 1, 0, 2, 3}, ArrivalCode: 0},
	}
	rooms := []domain.Room{{ID: 0, Name: "Main Hall", Capacity: 10}}

	maps, err := reducer.Build(students, counts)
	require.NoError(t, err)

	backend := cpsat.NewExact()
	mdl, err := builder.Build(backend, students, rooms, counts, maps, builder.DefaultWeights())
	require.NoError(t, err)

	status, err := backend.Solve(0)
	require.NoError(t, err)
	require.True(t, status.Solvable())

	sol := domain.NewSolution(0, status)
	sol.Objective = backend.Objective()
	for key, h := range mdl.X {
		if backend.ReadBool(h) {
			sol.X[key] = true
		}
	}
	for key, h := range mdl.Y {
		if backend.ReadBool(h) {
			sol.Y[key] = true
		}
	}

	return sol, students, rooms, counts, maps
}

func TestVerifyPassesOnValidSolution(t *testing.T) {
	sol, students, rooms, counts, maps := setup(t)
	rep := Verify(sol, students, rooms, counts, maps, builder.DefaultWeights())

	assert.True(t, rep.AllPass(), "constraints: %+v", rep.Constraints)
	assert.Nil(t, rep.Errs)
	assert.True(t, rep.ObjectiveConsistent)

	comp := rep.Compositions[1]
	assert.True(t, comp.Legal)
	assert.Equal(t, 2, comp.NConf)
	assert.Equal(t, 1, comp.NTR)
	assert.Equal(t, 1, comp.NFM)
}

func TestVerifyDetectsTamperedSolution(t *testing.T) {
	sol, students, rooms, counts, maps := setup(t)

	// Corrupt the solution directly: attend an extra presentation at an
	// invalid slot, independent of anything the builder could produce.
	for t := 0; t < 5; t++ {
		if !maps.VS[1][t] {
			sol.X[domain.VarKeyX{E: 1, P: 0, T: t}] = true
			break
		}
	}

	rep := Verify(sol, students, rooms, counts, maps, builder.DefaultWeights())
	assert.False(t, rep.AllPass())
	assert.NotNil(t, rep.Errs)
}

func TestVerifyWishUsage(t *testing.T) {
	sol, students, rooms, counts, maps := setup(t)
	rep := Verify(sol, students, rooms, counts, maps, builder.DefaultWeights())

	// Student attends all 5 wish ranks' presentations (wish-1 and wish-3
	// both point at the same id, so both ranks register as used).
	total := 0
	for _, n := range rep.WishUsage {
		total += n
	}
	assert.Equal(t, 5, total)
}
