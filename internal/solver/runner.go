package solver

import (
	"sort"

	"fairassign/internal/calendar"
	"fairassign/internal/domain"
	"fairassign/internal/reducer"
)

// HalfDayResult pairs one half-day's solution, reducer maps (nil on a
// structural failure), and error (nil on success).
type HalfDayResult struct {
	HalfDay  int
	Solution *domain.Solution
	Maps     *reducer.Maps
	Err      error
}

// RunAllHalfDays groups students by arrival-code half-day and solves each
// independently, in ascending half-day order, continuing past a
// structural failure in one half-day so the remaining three still run.
func (d *Driver) RunAllHalfDays(students []domain.Student, rooms []domain.Room, counts domain.Counts) []HalfDayResult {
	byHalfDay := make(map[int][]domain.Student)
	for _, s := range students {
		hd := calendar.HalfDay(s.ArrivalCode)
		byHalfDay[hd] = append(byHalfDay[hd], s)
	}

	halfDays := make([]int, 0, len(byHalfDay))
	for hd := range byHalfDay {
		halfDays = append(halfDays, hd)
	}
	sort.Ints(halfDays)

	results := make([]HalfDayResult, 0, len(halfDays))
	for _, hd := range halfDays {
		sol, maps, err := d.SolveHalfDay(hd, byHalfDay[hd], rooms, counts)
		results = append(results, HalfDayResult{HalfDay: hd, Solution: sol, Maps: maps, Err: err})
	}
	return results
}
