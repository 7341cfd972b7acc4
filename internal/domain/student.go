package domain

// Student is an immutable value type: one career-fair attendee with an
// ordered five-item wish list and an arrival-window code.
//
// Wishes[0..2] must resolve to Conferences; Wishes[3..4] must resolve to
// RoundTables or FlashJobs. The input format may carry duplicate wish ids;
// the reducer is what collapses them into a set.
type Student struct {
	ID          int
	Wishes      [5]int
	ArrivalCode int
}

// Room is an immutable value type: a physical space with a capacity already
// inflated by the ingestion layer's absorption buffer. The core never
// applies the buffer itself.
type Room struct {
	ID       int
	Name     string
	Capacity int
}

// Counts describes how a half-day's presentation ids partition into the
// three contiguous families: [0, NC) Conference, [NC, NC+NR) RoundTable,
// [NC+NR, P) FlashJob.
type Counts struct {
	NC int
	NR int
	NJ int
}

// P is the total number of presentations this Counts describes.
func (c Counts) P() int {
	return c.NC + c.NR + c.NJ
}
