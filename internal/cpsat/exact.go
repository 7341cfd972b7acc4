package cpsat

import (
	"time"

	"fairassign/internal/domain"
)

// maxExactVars guards the backtracking search against combinatorial
// blowup, the same way the corpus's backtracking assignment solver
// refuses large unconstrained instances rather than hanging.
const maxExactVars = 60

type exactConstraint struct {
	terms []Term
	rhs   int
	eq    bool
}

// Exact is a pure-Go backtracking CP-SAT stand-in for deterministic unit
// tests, used where the native OR-Tools shared library is unavailable.
// Coefficients may be of either sign (the capacity constraint subtracts
// room capacities), so pruning tracks the best- and worst-case remaining
// contribution of each unassigned variable rather than assuming sums only
// grow as variables are fixed.
type Exact struct {
	names       []string
	constraints []exactConstraint
	objTerms    []Term

	assignment []int
	best       []bool
	bestObj    int
	bestFound  bool
}

// NewExact constructs a fresh backtracking backend.
func NewExact() *Exact {
	return &Exact{}
}

func (e *Exact) NewBoolVar(name string) VarHandle {
	e.names = append(e.names, name)
	return VarHandle(len(e.names) - 1)
}

func (e *Exact) AddLinearEq(terms []Term, rhs int) {
	e.constraints = append(e.constraints, exactConstraint{terms: terms, rhs: rhs, eq: true})
}

func (e *Exact) AddLinearLe(terms []Term, rhs int) {
	e.constraints = append(e.constraints, exactConstraint{terms: terms, rhs: rhs, eq: false})
}

func (e *Exact) SetMinimize(terms []Term) {
	e.objTerms = terms
}

func (e *Exact) Solve(deadline time.Duration) (domain.Status, error) {
	n := len(e.names)
	if n > maxExactVars {
		return domain.StatusUnknown, nil
	}

	deadlineAt := time.Time{}
	if deadline > 0 {
		deadlineAt = time.Now().Add(deadline)
	}

	e.assignment = make([]int, n)
	for i := range e.assignment {
		e.assignment[i] = -1
	}
	e.bestFound = false

	e.search(0, 0, deadlineAt)

	if !e.bestFound {
		return domain.StatusInfeasible, nil
	}
	return domain.StatusOptimal, nil
}

func (e *Exact) search(idx, depth int, deadlineAt time.Time) {
	if !deadlineAt.IsZero() && time.Now().After(deadlineAt) {
		return
	}
	if idx == len(e.names) {
		if !e.feasible() {
			return
		}
		obj := e.objective()
		if !e.bestFound || obj < e.bestObj {
			e.bestFound = true
			e.bestObj = obj
			e.best = make([]bool, len(e.assignment))
			for i, v := range e.assignment {
				e.best[i] = v == 1
			}
		}
		return
	}

	for _, try := range [2]int{0, 1} {
		e.assignment[idx] = try
		if e.partiallyFeasible(idx) {
			e.search(idx+1, depth+1, deadlineAt)
		}
	}
	e.assignment[idx] = -1
}

// partiallyFeasible checks every constraint touching var idx for an
// already-broken bound. For each unassigned variable it considers both
// the smallest and largest value it could still contribute (0 or its
// coefficient, whichever is more extreme given the coefficient's sign),
// so a negative-coefficient term (the capacity constraint's room terms)
// is not mistaken for one that only ever adds to the sum.
func (e *Exact) partiallyFeasible(idx int) bool {
	for _, c := range e.constraints {
		touches := false
		sum := 0
		bestCase := 0
		worstCase := 0
		for _, t := range c.terms {
			if t.Var == VarHandle(idx) {
				touches = true
			}
			v := e.assignment[t.Var]
			switch v {
			case 1:
				sum += t.Coeff
			case -1:
				if t.Coeff > 0 {
					worstCase += t.Coeff
				} else {
					bestCase += t.Coeff
				}
			}
		}
		if !touches {
			continue
		}
		if sum+bestCase > c.rhs {
			return false
		}
		if c.eq && sum+worstCase < c.rhs {
			return false
		}
	}
	return true
}

func (e *Exact) feasible() bool {
	for _, c := range e.constraints {
		sum := 0
		for _, t := range c.terms {
			if e.assignment[t.Var] == 1 {
				sum += t.Coeff
			}
		}
		if c.eq && sum != c.rhs {
			return false
		}
		if !c.eq && sum > c.rhs {
			return false
		}
	}
	return true
}

func (e *Exact) objective() int {
	total := 0
	for _, t := range e.objTerms {
		if e.assignment[t.Var] == 1 {
			total += t.Coeff
		}
	}
	return total
}

func (e *Exact) ReadBool(v VarHandle) bool {
	if e.best == nil {
		return false
	}
	return e.best[v]
}

func (e *Exact) Objective() int {
	return e.bestObj
}
