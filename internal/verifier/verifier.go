// Package verifier independently re-derives every contractual constraint
// of spec.md §4.3/§8 directly from a Solution's X and Y tables. It never
// trusts the solver or the model builder; a model-builder bug therefore
// cannot mask itself as a solve success.
package verifier

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"fairassign/internal/builder"
	"fairassign/internal/calendar"
	"fairassign/internal/domain"
	"fairassign/internal/reducer"
)

// ConstraintResult is one named check's pass/fail outcome plus, on
// failure, a description of the first violating witness tuple.
type ConstraintResult struct {
	Name    string
	Pass    bool
	Witness string
}

// Composition classifies one student's four attendances into the
// (conferences, round tables, flash jobs) tuple, plus whether that tuple
// is one of the four legal compositions.
type Composition struct {
	NConf, NTR, NFM int
	Legal           bool
}

var legalCompositions = map[[3]int]bool{
	{4, 0, 0}: true,
	{3, 1, 0}: true,
	{3, 0, 1}: true,
	{2, 1, 1}: true,
}

// Report is the verifier's complete independent audit of one half-day's
// solution.
type Report struct {
	HalfDay     int
	Constraints []ConstraintResult

	Compositions map[int]Composition

	// WishUsage[k] counts how many students' attended set includes the
	// presentation at wish rank k (1-indexed), regardless of whether that
	// slot ended up being the one actually attended at a given time.
	WishUsage map[int]int

	ReportedObjective   int
	RecomputedObjective int
	ObjectiveConsistent bool

	Errs *multierror.Error
}

// AllPass reports whether every constraint check passed.
func (r *Report) AllPass() bool {
	for _, c := range r.Constraints {
		if !c.Pass {
			return false
		}
	}
	return true
}

// Verify runs the full independent audit. sol must have a Solvable status;
// callers should skip verification for ModelInvalid/Infeasible/Unknown
// half-days.
func Verify(sol *domain.Solution, students []domain.Student, rooms []domain.Room, counts domain.Counts, m *reducer.Maps, weights builder.Weights) *Report {
	r := &Report{
		HalfDay:      sol.HalfDay,
		Compositions: make(map[int]Composition, len(students)),
		WishUsage:    make(map[int]int),
	}

	r.check("mandatory_wishes", checkMandatoryWishes(sol, students, m, r))
	r.check("exact_count", checkExactCount(sol, students, m, r))
	r.check("no_repeat", checkNoRepeat(sol, students, m, r))
	r.check("one_per_valid_slot", checkOnePerValidSlot(sol, students, m, r))
	r.check("one_per_invalid_slot", checkOnePerInvalidSlot(sol, students, m, r))
	r.check("room_unique_at_slot", checkRoomUniqueAtSlot(sol, rooms, counts, r))
	r.check("presentation_unique_at_slot", checkPresentationUniqueAtSlot(sol, rooms, counts, r))
	r.check("capacity_respect", checkCapacityRespect(sol, rooms, counts, m, r))
	r.check("legal_composition", checkLegalComposition(sol, students, counts, m, r))

	classifyCompositions(sol, students, counts, m, r)
	computeWishUsage(sol, students, m, r)

	r.ReportedObjective = sol.Objective
	r.RecomputedObjective = recomputeObjective(sol, students, m, weights)
	r.ObjectiveConsistent = r.ReportedObjective == r.RecomputedObjective
	r.check("objective_consistency", r.ObjectiveConsistent, "")

	return r
}

func (r *Report) check(name string, pass bool, witness string) {
	r.Constraints = append(r.Constraints, ConstraintResult{Name: name, Pass: pass, Witness: witness})
	if !pass {
		r.Errs = multierror.Append(r.Errs, fmt.Errorf("%s: %s", name, witness))
	}
}

func checkMandatoryWishes(sol *domain.Solution, students []domain.Student, m *reducer.Maps, r *Report) (bool, string) {
	for _, s := range students {
		for k := 0; k < 2; k++ {
			count := 0
			for t := range m.VS[s.ID] {
				if sol.AttendsAt(s.ID, s.Wishes[k], t) {
					count++
				}
			}
			if count != 1 {
				return false, fmt.Sprintf("student %d wish-rank %d attended %d times, want 1", s.ID, k+1, count)
			}
		}
	}
	return true, ""
}

func checkExactCount(sol *domain.Solution, students []domain.Student, m *reducer.Maps, r *Report) (bool, string) {
	for _, s := range students {
		count := 0
		for p := range m.VW[s.ID] {
			for t := range m.VS[s.ID] {
				if sol.AttendsAt(s.ID, p, t) {
					count++
				}
			}
		}
		if count != 4 {
			return false, fmt.Sprintf("student %d attends %d presentations, want 4", s.ID, count)
		}
	}
	return true, ""
}

func checkNoRepeat(sol *domain.Solution, students []domain.Student, m *reducer.Maps, r *Report) (bool, string) {
	for _, s := range students {
		for p := range m.VW[s.ID] {
			count := 0
			for t := range m.VS[s.ID] {
				if sol.AttendsAt(s.ID, p, t) {
					count++
				}
			}
			if count > 1 {
				return false, fmt.Sprintf("student %d presentation %d attended %d times", s.ID, p, count)
			}
		}
	}
	return true, ""
}

func checkOnePerValidSlot(sol *domain.Solution, students []domain.Student, m *reducer.Maps, r *Report) (bool, string) {
	for _, s := range students {
		for t := range m.VS[s.ID] {
			count := 0
			for p := range m.VW[s.ID] {
				if sol.AttendsAt(s.ID, p, t) {
					count++
				}
			}
			if count != 1 {
				return false, fmt.Sprintf("student %d slot %d has %d presentations, want 1", s.ID, t, count)
			}
		}
	}
	return true, ""
}

func checkOnePerInvalidSlot(sol *domain.Solution, students []domain.Student, m *reducer.Maps, r *Report) (bool, string) {
	for _, s := range students {
		for t := 0; t < calendar.PhysicalSlots; t++ {
			if m.VS[s.ID][t] {
				continue
			}
			for p := range m.VW[s.ID] {
				if sol.AttendsAt(s.ID, p, t) {
					return false, fmt.Sprintf("student %d attends presentation %d at invalid slot %d", s.ID, p, t)
				}
			}
		}
	}
	return true, ""
}

func checkRoomUniqueAtSlot(sol *domain.Solution, rooms []domain.Room, counts domain.Counts, r *Report) (bool, string) {
	for si := range rooms {
		for t := 0; t < calendar.PhysicalSlots; t++ {
			count := 0
			for p := 0; p < counts.P(); p++ {
				if sol.HeldAt(p, si, t) {
					count++
				}
			}
			if count > 1 {
				return false, fmt.Sprintf("room %d slot %d hosts %d presentations", si, t, count)
			}
		}
	}
	return true, ""
}

func checkPresentationUniqueAtSlot(sol *domain.Solution, rooms []domain.Room, counts domain.Counts, r *Report) (bool, string) {
	for p := 0; p < counts.P(); p++ {
		for t := 0; t < calendar.PhysicalSlots; t++ {
			count := 0
			for si := range rooms {
				if sol.HeldAt(p, si, t) {
					count++
				}
			}
			if count > 1 {
				return false, fmt.Sprintf("presentation %d slot %d runs in %d rooms", p, t, count)
			}
		}
	}
	return true, ""
}

func checkCapacityRespect(sol *domain.Solution, rooms []domain.Room, counts domain.Counts, m *reducer.Maps, r *Report) (bool, string) {
	for p := 0; p < counts.P(); p++ {
		for t := 0; t < calendar.PhysicalSlots; t++ {
			attendance := 0
			for e := range m.SW[p] {
				if m.VS[e][t] && sol.AttendsAt(e, p, t) {
					attendance++
				}
			}
			cap := 0
			for si, room := range rooms {
				if sol.HeldAt(p, si, t) {
					cap += room.Capacity
				}
			}
			if attendance > cap {
				return false, fmt.Sprintf("presentation %d slot %d attendance %d exceeds capacity %d", p, t, attendance, cap)
			}
		}
	}
	return true, ""
}

func checkLegalComposition(sol *domain.Solution, students []domain.Student, counts domain.Counts, m *reducer.Maps, r *Report) (bool, string) {
	for _, s := range students {
		nConf, nTR, nFM := tallyComposition(sol, s, counts, m)
		if !legalCompositions[[3]int{nConf, nTR, nFM}] {
			return false, fmt.Sprintf("student %d composition (%d,%d,%d) is not legal", s.ID, nConf, nTR, nFM)
		}
	}
	return true, ""
}

func tallyComposition(sol *domain.Solution, s domain.Student, counts domain.Counts, m *reducer.Maps) (int, int, int) {
	nConf, nTR, nFM := 0, 0, 0
	for p := range m.VW[s.ID] {
		for t := range m.VS[s.ID] {
			if !sol.AttendsAt(s.ID, p, t) {
				continue
			}
			switch calendar.FamilyOf(p, counts) {
			case calendar.Conference:
				nConf++
			case calendar.RoundTable:
				nTR++
			case calendar.FlashJob:
				nFM++
			}
		}
	}
	return nConf, nTR, nFM
}

func classifyCompositions(sol *domain.Solution, students []domain.Student, counts domain.Counts, m *reducer.Maps, r *Report) {
	for _, s := range students {
		nConf, nTR, nFM := tallyComposition(sol, s, counts, m)
		r.Compositions[s.ID] = Composition{
			NConf: nConf, NTR: nTR, NFM: nFM,
			Legal: legalCompositions[[3]int{nConf, nTR, nFM}],
		}
	}
}

func computeWishUsage(sol *domain.Solution, students []domain.Student, m *reducer.Maps, r *Report) {
	for _, s := range students {
		for k := 0; k < 5; k++ {
			p := s.Wishes[k]
			for t := range m.VS[s.ID] {
				if sol.AttendsAt(s.ID, p, t) {
					r.WishUsage[k+1]++
					break
				}
			}
		}
	}
}

func recomputeObjective(sol *domain.Solution, students []domain.Student, m *reducer.Maps, weights builder.Weights) int {
	total := 0
	for _, s := range students {
		for k := 3; k <= 5; k++ {
			p := s.Wishes[k-1]
			for t := range m.VS[s.ID] {
				if sol.AttendsAt(s.ID, p, t) {
					total += weights[k]
				}
			}
		}
	}
	return total
}
