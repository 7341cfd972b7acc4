package domain

import "errors"

// Structural error kinds produced by the core. InvalidArrivalCode and
// WishTypeMismatch are fatal to the half-day; WishListTooShort only marks
// the model invalid (the solver is never invoked). SolverTimeout is not an
// error, it is folded into Status directly.
var (
	ErrInvalidArrivalCode = errors.New("arrival code outside 0..7")
	ErrWishListTooShort   = errors.New("wish set has fewer than 4 distinct presentations")
	ErrWishTypeMismatch   = errors.New("wish in positions 0-2 is not a conference, or wish in positions 3-4 is not a round table or flash job")
	ErrInternalSolver     = errors.New("backend solver failed internally")
)
