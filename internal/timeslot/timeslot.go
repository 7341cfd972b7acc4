// Package timeslot maps the human-readable (date, clock-time) pairs the
// ingestion layer reads from a roster to the arrival codes 0..7 the core
// consumes, and back to clock times for export. Pure lookups; no core
// coupling, grounded on the original roster's datetime-to-timeslot table.
package timeslot

import "fmt"

// DateTimeKey identifies one roster row's check-in slot.
type DateTimeKey struct {
	Date string // e.g. "2026-03-26"
	Time string // e.g. "08:30"
}

// dateTimeToArrivalCode mirrors the original roster's fixed table of
// known check-in windows across the two fair days.
var dateTimeToArrivalCode = map[DateTimeKey]int{
	{"2026-03-26", "08:00"}: 0,
	{"2026-03-26", "08:30"}: 0,
	{"2026-03-26", "13:00"}: 1,
	{"2026-03-26", "13:30"}: 1,
	{"2026-03-27", "08:00"}: 2,
	{"2026-03-27", "08:30"}: 2,
	{"2026-03-27", "13:00"}: 3,
	{"2026-03-27", "13:30"}: 3,
}

// ArrivalCode resolves a (date, time) pair to its 0..7 arrival code.
func ArrivalCode(date, clockTime string) (int, error) {
	code, ok := dateTimeToArrivalCode[DateTimeKey{date, clockTime}]
	if !ok {
		return 0, fmt.Errorf("timeslot: no arrival code mapped for %s %s", date, clockTime)
	}
	return code, nil
}

// slotTimesEarly and slotTimesLate give the wall-clock start time of each
// of the 5 physical slots for the early and late arrival populations,
// grounded on the original roster's per-half-day slot schedule.
var slotTimesEarly = [5]string{"08:00", "09:00", "10:00", "11:00", ""}
var slotTimesLate = [5]string{"", "12:00", "13:00", "14:00", "15:00"}

// SlotClockTime returns the human-readable start time of slot t for the
// early-arrival population if early is true, otherwise the late-arrival
// population; the same times apply to every half-day. Export-only; the
// core never consumes it.
func SlotClockTime(t int, early bool) string {
	if t < 0 || t > 4 {
		return ""
	}
	if early {
		return slotTimesEarly[t]
	}
	return slotTimesLate[t]
}
