// Package builder constructs one complete CP-SAT model for a single
// half-day: the X[e,p,t] and Y[p,s,t] boolean variable families and the
// C1-C10 linear constraints of the assignment contract, plus the
// wish-rank penalty objective.
package builder

import (
	"fmt"

	"fairassign/internal/calendar"
	"fairassign/internal/cpsat"
	"fairassign/internal/domain"
	"fairassign/internal/reducer"
)

// Weights maps wish rank (3, 4, 5) to its objective penalty. The core
// default is {3:1, 4:5, 5:10}.
type Weights map[int]int

// DefaultWeights returns the core's default penalty schedule.
func DefaultWeights() Weights {
	return Weights{3: 1, 4: 5, 5: 10}
}

// Model is the populated backend plus the handle maps from (e,p,t) and
// (p,s,t) tuples to their boolean variables, as spec.md §4.3 calls for.
type Model struct {
	Backend  cpsat.Backend
	X        map[domain.VarKeyX]cpsat.VarHandle
	Y        map[domain.VarKeyY]cpsat.VarHandle
	Counts   domain.Counts
	NumRooms int
	NumSlots int
}

// Build emits the model for one half-day onto backend. It returns
// domain.ErrWishListTooShort, unwrapped via errors.Is, if any student's
// deduplicated wish set has fewer than 4 entries: the caller must mark
// the solution ModelInvalid without calling Solve.
func Build(backend cpsat.Backend, students []domain.Student, rooms []domain.Room, counts domain.Counts, m *reducer.Maps, weights Weights) (*Model, error) {
	mdl := &Model{
		Backend:  backend,
		X:        make(map[domain.VarKeyX]cpsat.VarHandle),
		Y:        make(map[domain.VarKeyY]cpsat.VarHandle),
		Counts:   counts,
		NumRooms: len(rooms),
		NumSlots: calendar.PhysicalSlots,
	}

	for _, s := range students {
		if len(m.VW[s.ID]) < 4 {
			return nil, fmt.Errorf("builder: student %d: %w", s.ID, domain.ErrWishListTooShort)
		}
	}

	for _, s := range students {
		for p := range m.VW[s.ID] {
			for t := range m.VS[s.ID] {
				key := domain.VarKeyX{E: s.ID, P: p, T: t}
				mdl.X[key] = backend.NewBoolVar(fmt.Sprintf("x_%d_%d_%d", s.ID, p, t))
			}
		}
	}

	for p := 0; p < counts.P(); p++ {
		for si := range rooms {
			for t := 0; t < calendar.PhysicalSlots; t++ {
				key := domain.VarKeyY{P: p, S: si, T: t}
				mdl.Y[key] = backend.NewBoolVar(fmt.Sprintf("y_%d_%d_%d", p, si, t))
			}
		}
	}

	addAttendanceConstraints(backend, mdl, students, counts, m)
	addRoomConstraints(backend, mdl, rooms, counts)
	addCapacityConstraints(backend, mdl, rooms, counts, m)
	addObjective(backend, mdl, students, m, weights)

	return mdl, nil
}

func addAttendanceConstraints(backend cpsat.Backend, mdl *Model, students []domain.Student, counts domain.Counts, m *reducer.Maps) {
	for _, s := range students {
		vs := m.VS[s.ID]

		// C1: top wish is mandatory.
		backend.AddLinearEq(termsForPresentation(mdl, s.ID, s.Wishes[0], vs), 1)
		// C2: second wish is mandatory.
		backend.AddLinearEq(termsForPresentation(mdl, s.ID, s.Wishes[1], vs), 1)

		// C3: exactly 4 attendances.
		var all []cpsat.Term
		for p := range m.VW[s.ID] {
			for t := range vs {
				all = append(all, cpsat.Term{Var: mdl.X[domain.VarKeyX{E: s.ID, P: p, T: t}], Coeff: 1})
			}
		}
		backend.AddLinearEq(all, 4)

		// C4: never the same presentation twice.
		for p := range m.VW[s.ID] {
			backend.AddLinearLe(termsForPresentation(mdl, s.ID, p, vs), 1)
		}

		// C5: exactly one presentation per valid slot.
		for t := range vs {
			var perSlot []cpsat.Term
			for p := range m.VW[s.ID] {
				perSlot = append(perSlot, cpsat.Term{Var: mdl.X[domain.VarKeyX{E: s.ID, P: p, T: t}], Coeff: 1})
			}
			backend.AddLinearEq(perSlot, 1)
		}

		// C9/C10: at most one round table, at most one flash job.
		var rt, fm []cpsat.Term
		for p := range m.VW[s.ID] {
			fam := calendar.FamilyOf(p, counts)
			for t := range vs {
				term := cpsat.Term{Var: mdl.X[domain.VarKeyX{E: s.ID, P: p, T: t}], Coeff: 1}
				switch fam {
				case calendar.RoundTable:
					rt = append(rt, term)
				case calendar.FlashJob:
					fm = append(fm, term)
				}
			}
		}
		if len(rt) > 0 {
			backend.AddLinearLe(rt, 1)
		}
		if len(fm) > 0 {
			backend.AddLinearLe(fm, 1)
		}
	}
}

func termsForPresentation(mdl *Model, e, p int, vs map[int]bool) []cpsat.Term {
	var terms []cpsat.Term
	for t := range vs {
		if v, ok := mdl.X[domain.VarKeyX{E: e, P: p, T: t}]; ok {
			terms = append(terms, cpsat.Term{Var: v, Coeff: 1})
		}
	}
	return terms
}

func addRoomConstraints(backend cpsat.Backend, mdl *Model, rooms []domain.Room, counts domain.Counts) {
	// C6: a room hosts at most one presentation per slot.
	for si := range rooms {
		for t := 0; t < calendar.PhysicalSlots; t++ {
			var terms []cpsat.Term
			for p := 0; p < counts.P(); p++ {
				terms = append(terms, cpsat.Term{Var: mdl.Y[domain.VarKeyY{P: p, S: si, T: t}], Coeff: 1})
			}
			backend.AddLinearLe(terms, 1)
		}
	}

	// C7: a presentation runs in at most one room per slot.
	for p := 0; p < counts.P(); p++ {
		for t := 0; t < calendar.PhysicalSlots; t++ {
			var terms []cpsat.Term
			for si := range rooms {
				terms = append(terms, cpsat.Term{Var: mdl.Y[domain.VarKeyY{P: p, S: si, T: t}], Coeff: 1})
			}
			backend.AddLinearLe(terms, 1)
		}
	}
}

func addCapacityConstraints(backend cpsat.Backend, mdl *Model, rooms []domain.Room, counts domain.Counts, m *reducer.Maps) {
	// C8: attendance at (p,t) must not exceed the capacity of whatever
	// room, if any, hosts it there. Expressed as a single <= 0 constraint:
	// sum(attendance) - sum(cap(s)*Y[p,s,t]) <= 0.
	for p := 0; p < counts.P(); p++ {
		for t := 0; t < calendar.PhysicalSlots; t++ {
			var terms []cpsat.Term
			for e := range m.SW[p] {
				vs := m.VS[e]
				if !vs[t] {
					continue
				}
				if v, ok := mdl.X[domain.VarKeyX{E: e, P: p, T: t}]; ok {
					terms = append(terms, cpsat.Term{Var: v, Coeff: 1})
				}
			}
			for si, room := range rooms {
				terms = append(terms, cpsat.Term{Var: mdl.Y[domain.VarKeyY{P: p, S: si, T: t}], Coeff: -room.Capacity})
			}
			if len(terms) > 0 {
				backend.AddLinearLe(terms, 0)
			}
		}
	}
}

func addObjective(backend cpsat.Backend, mdl *Model, students []domain.Student, m *reducer.Maps, weights Weights) {
	var terms []cpsat.Term
	for _, s := range students {
		vs := m.VS[s.ID]
		for k := 3; k <= 5; k++ {
			w := weights[k]
			p := s.Wishes[k-1]
			for t := range vs {
				if v, ok := mdl.X[domain.VarKeyX{E: s.ID, P: p, T: t}]; ok {
					terms = append(terms, cpsat.Term{Var: v, Coeff: w})
				}
			}
		}
	}
	backend.SetMinimize(terms)
}
