// Package cpsat defines the narrow solver-backend abstraction spec.md §9
// asks for, so the model builder and driver never couple to one specific
// CP-SAT API. Two implementations are provided: Ortools, backed by
// github.com/google/or-tools/sat for production solves, and Exact, a
// pure-Go backtracking solver used in tests where the native OR-Tools
// shared library is unavailable.
package cpsat

import (
	"time"

	"fairassign/internal/domain"
)

// VarHandle is an opaque reference to a boolean decision variable. Callers
// never inspect it; they only pass it back into the same Backend.
type VarHandle int

// Term is one coefficient*variable addend of a linear expression.
type Term struct {
	Var   VarHandle
	Coeff int
}

// Backend is the swappable solver surface: add_bool_var, add_linear_eq,
// add_linear_le, set_minimize, solve(deadline), read_bool.
type Backend interface {
	// NewBoolVar creates one boolean decision variable.
	NewBoolVar(name string) VarHandle

	// AddLinearEq adds sum(terms) == rhs.
	AddLinearEq(terms []Term, rhs int)

	// AddLinearLe adds sum(terms) <= rhs.
	AddLinearLe(terms []Term, rhs int)

	// SetMinimize sets the objective to minimize sum(terms).
	SetMinimize(terms []Term)

	// Solve runs the backend. deadline == 0 means no wall-clock limit.
	// Returns one of StatusOptimal, StatusFeasible, StatusInfeasible,
	// StatusModelInvalid, StatusUnknown. A non-nil error always pairs with StatusUnknown and
	// wraps domain.ErrInternalSolver.
	Solve(deadline time.Duration) (domain.Status, error)

	// ReadBool returns the solved value of v. Only meaningful after a
	// Solve call that returned StatusOptimal or StatusFeasible.
	ReadBool(v VarHandle) bool

	// Objective returns the objective value of the last successful solve.
	Objective() int
}

// Config configures backend construction, mirroring spec.md §6.
type Config struct {
	NumWorkers         int
	LinearizationLevel int
	LogProgress        bool
}

// DefaultConfig matches the core defaults: 8 workers, linearization 2.
func DefaultConfig() Config {
	return Config{NumWorkers: 8, LinearizationLevel: 2}
}
