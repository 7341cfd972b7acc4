package reducer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairassign/internal/domain"
)

func counts() domain.Counts {
	return domain.Counts{NC: 19, NR: 6, NJ: 6}
}

func TestBuildHappyPath(t *testing.T) {
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 1, 2, 19, 25}, ArrivalCode: 0},
		{ID: 2, Wishes: [5]int{0, 1, 3, 20, 26}, ArrivalCode: 1},
	}

	m, err := Build(students, counts())
	require.NoError(t, err)

	assert.Len(t, m.VW[1], 5)
	assert.Len(t, m.VS[1], 4)
	assert.True(t, m.VS[1][0])
	assert.False(t, m.VS[1][4])

	assert.True(t, m.SW[0][1])
	assert.True(t, m.SW[0][2])
	assert.False(t, m.SW[19][2])
}

func TestBuildRejectsInvalidArrivalCode(t *testing.T) {
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 1, 2, 19, 25}, ArrivalCode: 9},
	}
	_, err := Build(students, counts())
	assert.ErrorIs(t, err, domain.ErrInvalidArrivalCode)
}

func TestBuildRejectsWishTypeMismatch(t *testing.T) {
	// wish rank 1 (index 0) points at a RoundTable id instead of a Conference.
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{19, 1, 2, 20, 25}, ArrivalCode: 0},
	}
	_, err := Build(students, counts())
	assert.ErrorIs(t, err, domain.ErrWishTypeMismatch)
}

func TestBuildDedupsDuplicateWishes(t *testing.T) {
	// Conf1 repeated at ranks 1 and 2: VW collapses it to a single entry.
	students := []domain.Student{
		{ID: 1, Wishes: [5]int{0, 0, 2, 19, 25}, ArrivalCode: 0},
	}
	m, err := Build(students, counts())
	require.NoError(t, err)
	assert.Len(t, m.VW[1], 4)
}
