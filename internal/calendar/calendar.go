// Package calendar holds the pure, stateless slot-calendar functions:
// arrival-code parity to valid slots, presentation-id to family, and
// arrival-code to half-day. No state, no errors beyond range validation.
package calendar

import (
	"fmt"

	"fairassign/internal/domain"
)

// PhysicalSlots is T, the fixed number of physical slots in a half-day.
// Every arrival code maps to exactly 4 of these 5 slots as valid.
const PhysicalSlots = 5

// Family classifies a presentation into one of three disjoint ranges.
type Family int

const (
	Conference Family = iota
	RoundTable
	FlashJob
)

func (f Family) String() string {
	switch f {
	case Conference:
		return "Conference"
	case RoundTable:
		return "RoundTable"
	case FlashJob:
		return "FlashJob"
	default:
		return "Unknown"
	}
}

// ValidSlots returns the four slot indices a student with the given
// arrival code may attend. Even codes arrive early and get {0,1,2,3}; odd
// codes arrive late and get {1,2,3,4}. Slots 1-3 are shared; 0 and 4 are
// exclusive to early/late respectively.
func ValidSlots(code int) (map[int]bool, error) {
	if code < 0 || code > 7 {
		return nil, fmt.Errorf("calendar: code %d: %w", code, domain.ErrInvalidArrivalCode)
	}
	var slots []int
	if code%2 == 0 {
		slots = []int{0, 1, 2, 3}
	} else {
		slots = []int{1, 2, 3, 4}
	}
	out := make(map[int]bool, len(slots))
	for _, s := range slots {
		out[s] = true
	}
	return out, nil
}

// HalfDay maps an arrival code to its half-day index 0..3.
func HalfDay(code int) int {
	return code / 2
}

// FamilyOf classifies presentation id p given the half-day's Counts.
func FamilyOf(p int, c domain.Counts) Family {
	switch {
	case p < c.NC:
		return Conference
	case p < c.NC+c.NR:
		return RoundTable
	default:
		return FlashJob
	}
}
