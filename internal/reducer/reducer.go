// Package reducer precomputes the per-student and per-presentation maps
// that shrink the model builder's candidate (e,p,t) triples from E*P*4 to
// the sum of each student's wish-set size times valid-slot count — the
// 90%-variable-reduction spec.md calls for.
package reducer

import (
	"fmt"

	"fairassign/internal/calendar"
	"fairassign/internal/domain"
)

// Maps is the reducer's output: VS, VW, and the inverted SW index, ready
// for the model builder to consume directly.
type Maps struct {
	// VS[e] is student e's valid-slot set.
	VS map[int]map[int]bool
	// VW[e] is student e's deduplicated wish set.
	VW map[int]map[int]bool
	// SW[p] is the set of students who wished presentation p.
	SW map[int]map[int]bool
}

// Build computes Maps for one half-day's students. It returns
// ErrInvalidArrivalCode if any student's arrival_code is out of range, or
// ErrWishTypeMismatch if a wish occupies the wrong family for its
// position. Both are fatal to the half-day.
func Build(students []domain.Student, counts domain.Counts) (*Maps, error) {
	m := &Maps{
		VS: make(map[int]map[int]bool, len(students)),
		VW: make(map[int]map[int]bool, len(students)),
		SW: make(map[int]map[int]bool),
	}

	for _, s := range students {
		vs, err := calendar.ValidSlots(s.ArrivalCode)
		if err != nil {
			return nil, fmt.Errorf("reducer: student %d: %w", s.ID, err)
		}
		m.VS[s.ID] = vs

		if err := validateWishTypes(s, counts); err != nil {
			return nil, fmt.Errorf("reducer: student %d: %w", s.ID, err)
		}

		vw := make(map[int]bool, len(s.Wishes))
		for _, p := range s.Wishes {
			vw[p] = true
		}
		m.VW[s.ID] = vw

		for p := range vw {
			if m.SW[p] == nil {
				m.SW[p] = make(map[int]bool)
			}
			m.SW[p][s.ID] = true
		}
	}

	return m, nil
}

// validateWishTypes checks wishes 0-2 are Conferences and wishes 3-4 are
// RoundTable or FlashJob.
func validateWishTypes(s domain.Student, counts domain.Counts) error {
	for k := 0; k < 3; k++ {
		if calendar.FamilyOf(s.Wishes[k], counts) != calendar.Conference {
			return domain.ErrWishTypeMismatch
		}
	}
	for k := 3; k < 5; k++ {
		fam := calendar.FamilyOf(s.Wishes[k], counts)
		if fam != calendar.RoundTable && fam != calendar.FlashJob {
			return domain.ErrWishTypeMismatch
		}
	}
	return nil
}
