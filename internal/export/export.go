// Package export publishes a Solution plus its verifier Report as JSON,
// modeled directly on the teacher's json_exporter: a struct-per-row shape
// marshaled with encoding/json and written with os.WriteFile. Spreadsheet
// rendering itself stays the out-of-scope external collaborator; this
// package produces the typed, already-resolved data such a layer would
// consume.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"fairassign/internal/domain"
	"fairassign/internal/verifier"
)

// HalfDayExport is the top-level JSON shape for one half-day's run.
type HalfDayExport struct {
	HalfDay     int                `json:"half_day"`
	RunID       string             `json:"run_id"`
	Status      string             `json:"status"`
	Objective   int                `json:"objective"`
	DurationMs  int64              `json:"duration_ms"`
	Attendances []AttendanceExport `json:"attendances"`
	RoomSlots   []RoomSlotExport   `json:"room_slots"`
	Report      ReportExport       `json:"report"`
}

// AttendanceExport is one (student, presentation, slot) row.
type AttendanceExport struct {
	StudentID     int `json:"student_id"`
	PresentationID int `json:"presentation_id"`
	Slot          int `json:"slot"`
}

// RoomSlotExport is one (presentation, room, slot) placement.
type RoomSlotExport struct {
	PresentationID int `json:"presentation_id"`
	RoomID         int `json:"room_id"`
	Slot           int `json:"slot"`
}

// ConstraintExport mirrors verifier.ConstraintResult.
type ConstraintExport struct {
	Name    string `json:"name"`
	Pass    bool   `json:"pass"`
	Witness string `json:"witness,omitempty"`
}

// ReportExport is the exported shape of a verifier.Report.
type ReportExport struct {
	AllPass             bool               `json:"all_pass"`
	Constraints         []ConstraintExport `json:"constraints"`
	WishUsage           map[int]int        `json:"wish_usage"`
	ReportedObjective   int                `json:"reported_objective"`
	RecomputedObjective int                `json:"recomputed_objective"`
	ObjectiveConsistent bool               `json:"objective_consistent"`
}

// WriteJSON builds the export shape for one half-day's solution and
// report and writes it to filename.
func WriteJSON(sol *domain.Solution, rep *verifier.Report, filename string) error {
	export := buildExport(sol, rep)

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal half-day %d: %w", sol.HalfDay, err)
	}

	return os.WriteFile(filename, data, 0644)
}

func buildExport(sol *domain.Solution, rep *verifier.Report) HalfDayExport {
	e := HalfDayExport{
		HalfDay:    sol.HalfDay,
		RunID:      sol.RunID,
		Status:     string(sol.Status),
		Objective:  sol.Objective,
		DurationMs: sol.Duration.Milliseconds(),
	}

	for key := range sol.X {
		e.Attendances = append(e.Attendances, AttendanceExport{
			StudentID:      key.E,
			PresentationID: key.P,
			Slot:           key.T,
		})
	}
	sort.Slice(e.Attendances, func(i, j int) bool {
		a, b := e.Attendances[i], e.Attendances[j]
		if a.StudentID != b.StudentID {
			return a.StudentID < b.StudentID
		}
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}
		return a.PresentationID < b.PresentationID
	})

	for key := range sol.Y {
		e.RoomSlots = append(e.RoomSlots, RoomSlotExport{
			PresentationID: key.P,
			RoomID:         key.S,
			Slot:           key.T,
		})
	}
	sort.Slice(e.RoomSlots, func(i, j int) bool {
		a, b := e.RoomSlots[i], e.RoomSlots[j]
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}
		return a.PresentationID < b.PresentationID
	})

	if rep != nil {
		e.Report = ReportExport{
			AllPass:             rep.AllPass(),
			WishUsage:           rep.WishUsage,
			ReportedObjective:   rep.ReportedObjective,
			RecomputedObjective: rep.RecomputedObjective,
			ObjectiveConsistent: rep.ObjectiveConsistent,
		}
		for _, c := range rep.Constraints {
			e.Report.Constraints = append(e.Report.Constraints, ConstraintExport{
				Name: c.Name, Pass: c.Pass, Witness: c.Witness,
			})
		}
	}

	return e
}
