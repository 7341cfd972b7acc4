package domain

import "fmt"

// PresentationNames builds the Conf1..ConfNC, TR1..TRNR, FM1..FMNJ label
// set for a half-day's presentation ids, in the same numbering the
// ingestion data uses. Dropped from the distilled core, useful for
// export/debug output; the core itself never consumes names, only ids.
func PresentationNames(c Counts) []string {
	names := make([]string, 0, c.P())
	for i := 0; i < c.NC; i++ {
		names = append(names, fmt.Sprintf("Conf%d", i+1))
	}
	for i := 0; i < c.NR; i++ {
		names = append(names, fmt.Sprintf("TR%d", i+1))
	}
	for i := 0; i < c.NJ; i++ {
		names = append(names, fmt.Sprintf("FM%d", i+1))
	}
	return names
}

// PresentationMapping is the inverse of PresentationNames: label -> id.
func PresentationMapping(c Counts) map[string]int {
	names := PresentationNames(c)
	m := make(map[string]int, len(names))
	for id, name := range names {
		m[name] = id
	}
	return m
}
