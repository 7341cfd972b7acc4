package cpsat

import (
	"fmt"
	"time"

	"github.com/google/or-tools/sat"

	"fairassign/internal/domain"
)

// Ortools wraps github.com/google/or-tools/sat behind the Backend
// interface. The variable/expression surface (NewBoolVar, NewLinearExpr,
// AddTerm, Minimise, NewCpSolver, Solve, BooleanValue) matches the binding
// used throughout the retrieved corpus; weighted linear constraints (C8's
// room-capacity coefficients) go through the same LinearExpr the
// objective uses, bounded with AddLinearConstraintFromExpr.
type Ortools struct {
	model  *sat.CpModel
	solver *sat.CpSolver
	vars   []*sat.BoolVar
	cfg    Config
	obj    int
}

// NewOrtools constructs a fresh backend for one half-day's model.
func NewOrtools(cfg Config) *Ortools {
	return &Ortools{
		model: sat.NewCpModel(),
		cfg:   cfg,
	}
}

func (o *Ortools) NewBoolVar(name string) VarHandle {
	v := o.model.NewBoolVar(name)
	o.vars = append(o.vars, v)
	return VarHandle(len(o.vars) - 1)
}

func (o *Ortools) expr(terms []Term) *sat.LinearExpr {
	e := o.model.NewLinearExpr()
	for _, t := range terms {
		e.AddTerm(o.vars[t.Var], t.Coeff)
	}
	return e
}

func (o *Ortools) AddLinearEq(terms []Term, rhs int) {
	o.model.AddLinearConstraintFromExpr(o.expr(terms), int64(rhs), int64(rhs))
}

func (o *Ortools) AddLinearLe(terms []Term, rhs int) {
	// The lower bound is the expression's own floor (each negative-coefficient
	// term contributes its coefficient, each non-negative one contributes 0),
	// not a hardcoded 0: C8 nets attendance against a subtracted room
	// capacity and can legitimately go negative.
	floor := 0
	for _, t := range terms {
		if t.Coeff < 0 {
			floor += t.Coeff
		}
	}
	o.model.AddLinearConstraintFromExpr(o.expr(terms), int64(floor), int64(rhs))
}

func (o *Ortools) SetMinimize(terms []Term) {
	o.model.Minimise(o.expr(terms))
}

func (o *Ortools) Solve(deadline time.Duration) (domain.Status, error) {
	o.solver = sat.NewCpSolver()
	o.solver.SetNumWorkers(o.cfg.NumWorkers)
	o.solver.SetLinearizationLevel(o.cfg.LinearizationLevel)
	if deadline > 0 {
		o.solver.SetMaxTime(deadline)
	}
	o.solver.SetLogSearchProgress(o.cfg.LogProgress)

	status := o.solver.Solve(o.model)
	switch status {
	case sat.Optimal:
		o.obj = int(o.solver.ObjectiveValue())
		return domain.StatusOptimal, nil
	case sat.Feasible:
		o.obj = int(o.solver.ObjectiveValue())
		return domain.StatusFeasible, nil
	case sat.Infeasible:
		return domain.StatusInfeasible, nil
	case sat.ModelInvalid:
		return domain.StatusModelInvalid, nil
	case sat.Unknown:
		return domain.StatusUnknown, nil
	default:
		return domain.StatusUnknown, fmt.Errorf("ortools: solve returned %v: %w", status, domain.ErrInternalSolver)
	}
}

func (o *Ortools) ReadBool(v VarHandle) bool {
	if o.solver == nil {
		return false
	}
	return o.solver.BooleanValue(o.vars[v])
}

func (o *Ortools) Objective() int {
	return o.obj
}
