package cpsat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairassign/internal/domain"
)

func TestExactSolvesSimpleAssignment(t *testing.T) {
	b := NewExact()
	a := b.NewBoolVar("a")
	c := b.NewBoolVar("b")

	// exactly one of {a, b} is true
	b.AddLinearEq([]Term{{Var: a, Coeff: 1}, {Var: c, Coeff: 1}}, 1)
	// minimize a (prefer b over a, all else equal)
	b.SetMinimize([]Term{{Var: a, Coeff: 10}, {Var: c, Coeff: 1}})

	status, err := b.Solve(0)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOptimal, status)
	assert.False(t, b.ReadBool(a))
	assert.True(t, b.ReadBool(c))
	assert.Equal(t, 1, b.Objective())
}

func TestExactDetectsInfeasible(t *testing.T) {
	b := NewExact()
	a := b.NewBoolVar("a")

	b.AddLinearEq([]Term{{Var: a, Coeff: 1}}, 1)
	b.AddLinearEq([]Term{{Var: a, Coeff: 1}}, 0)

	status, err := b.Solve(0)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInfeasible, status)
}

func TestExactRefusesOversizedInstances(t *testing.T) {
	b := NewExact()
	for i := 0; i < maxExactVars+1; i++ {
		b.NewBoolVar("v")
	}
	status, err := b.Solve(time.Second)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnknown, status)
}
