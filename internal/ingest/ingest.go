// Package ingest reads student wish lists and room capacities from CSV,
// the external-collaborator role spec.md assigns to ingestion. Capacity
// inflation is applied here, never inside the core.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"fairassign/internal/domain"
)

// LoadStudents reads a CSV with header
// id,wish1,wish2,wish3,wish4,wish5,arrival_code
// into domain.Student records. Wish ids and arrival codes are expected
// already resolved to integers by an upstream roster-normalization step;
// this loader only parses the CSV shape.
func LoadStudents(path string) ([]domain.Student, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}

	students := make([]domain.Student, 0, len(records))
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 7 {
			return nil, fmt.Errorf("ingest: %s row %d: expected 7 columns, got %d", path, i, len(record))
		}

		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("ingest: %s row %d: id: %w", path, i, err)
		}

		var wishes [5]int
		for w := 0; w < 5; w++ {
			v, err := strconv.Atoi(record[w+1])
			if err != nil {
				return nil, fmt.Errorf("ingest: %s row %d: wish %d: %w", path, i, w+1, err)
			}
			wishes[w] = v
		}

		arrival, err := strconv.Atoi(record[6])
		if err != nil {
			return nil, fmt.Errorf("ingest: %s row %d: arrival_code: %w", path, i, err)
		}

		students = append(students, domain.Student{ID: id, Wishes: wishes, ArrivalCode: arrival})
	}

	return students, nil
}

// LoadRooms reads a CSV with header id,name,capacity into domain.Room
// records, inflating each capacity by buffer (e.g. 1.20 for a 20%
// absorption buffer). buffer must be >= 1.0.
func LoadRooms(path string, buffer float64) ([]domain.Room, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}

	rooms := make([]domain.Room, 0, len(records))
	for i, record := range records {
		if i == 0 {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("ingest: %s row %d: expected 3 columns, got %d", path, i, len(record))
		}

		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("ingest: %s row %d: id: %w", path, i, err)
		}
		nominal, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("ingest: %s row %d: capacity: %w", path, i, err)
		}

		rooms = append(rooms, domain.Room{
			ID:       id,
			Name:     record[1],
			Capacity: int(float64(nominal) * buffer),
		})
	}

	return rooms, nil
}
