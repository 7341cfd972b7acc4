// Package solver is the driver: it configures the backend CP-SAT engine,
// runs it under an optional wall-clock deadline, and extracts raw
// solution values into the Solution's X / Y maps (true entries only). The
// driver transitions Unstarted -> Building -> Solving -> a terminal
// status; terminal states are immutable.
package solver

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fairassign/internal/builder"
	"fairassign/internal/calendar"
	"fairassign/internal/cpsat"
	"fairassign/internal/domain"
	"fairassign/internal/reducer"
)

// Driver runs one half-day solve at a time. NewBackend is overridable so
// tests can substitute cpsat.NewExact for the OR-Tools-backed default.
type Driver struct {
	Config     Config
	Logger     zerolog.Logger
	NewBackend func() cpsat.Backend
}

// NewDriver returns a driver configured to use the OR-Tools backend.
func NewDriver(cfg Config, logger zerolog.Logger) *Driver {
	return &Driver{
		Config: cfg,
		Logger: logger,
		NewBackend: func() cpsat.Backend {
			return cpsat.NewOrtools(cpsat.Config{
				NumWorkers:         cfg.NumWorkers,
				LinearizationLevel: cfg.LinearizationLevel,
				LogProgress:        cfg.LogProgress,
			})
		},
	}
}

// SolveHalfDay runs the full reduce -> build -> solve -> extract pipeline
// for one half-day's students and rooms. A structural error
// (ErrInvalidArrivalCode, ErrWishTypeMismatch, ErrWishListTooShort) aborts
// the half-day and is returned alongside a zero solution; it is the
// caller's responsibility to continue with the next half-day.
func (d *Driver) SolveHalfDay(halfDay int, students []domain.Student, rooms []domain.Room, counts domain.Counts) (*domain.Solution, *reducer.Maps, error) {
	sol := domain.NewSolution(halfDay, domain.StatusBuilding)
	sol.RunID = uuid.NewString()
	sol.NumPresentations = counts.P()
	sol.NumRooms = len(rooms)
	sol.NumSlots = calendar.PhysicalSlots

	started := time.Now()

	maps, err := reducer.Build(students, counts)
	if err != nil {
		sol.Status = domain.StatusModelInvalid
		d.Logger.Error().Err(err).Int("half_day", halfDay).Msg("reducer failed, aborting half-day")
		return sol, nil, err
	}

	backend := d.NewBackend()
	mdl, err := builder.Build(backend, students, rooms, counts, maps, d.Config.ObjectiveWeights)
	if err != nil {
		sol.Status = domain.StatusModelInvalid
		d.Logger.Error().Err(err).Int("half_day", halfDay).Msg("model builder rejected wish lists")
		return sol, maps, err
	}

	sol.Status = domain.StatusSolving
	deadline := time.Duration(d.Config.MaxWallSeconds * float64(time.Second))
	status, solveErr := backend.Solve(deadline)
	sol.Duration = time.Since(started)
	sol.Status = status

	if solveErr != nil {
		d.Logger.Error().Err(solveErr).Int("half_day", halfDay).Msg("backend solve failed")
		return sol, maps, fmt.Errorf("solver: half-day %d: %w", halfDay, solveErr)
	}

	if !status.Solvable() {
		d.Logger.Warn().Int("half_day", halfDay).Str("status", string(status)).Msg("half-day did not yield a solution")
		return sol, maps, nil
	}

	extract(sol, mdl, backend)
	d.Logger.Info().
		Int("half_day", halfDay).
		Str("status", string(status)).
		Int("objective", sol.Objective).
		Dur("duration", sol.Duration).
		Msg("half-day solved")

	return sol, maps, nil
}

func extract(sol *domain.Solution, mdl *builder.Model, backend cpsat.Backend) {
	sol.Objective = backend.Objective()
	for key, handle := range mdl.X {
		if backend.ReadBool(handle) {
			sol.X[key] = true
		}
	}
	for key, handle := range mdl.Y {
		if backend.ReadBool(handle) {
			sol.Y[key] = true
		}
	}
}
