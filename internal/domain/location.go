package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Visit priority. Higher priority pulls a location earlier in the tour.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities for sorting (high first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// Bonus is the multiplicative travel-time discount used when selecting the
// next stop. Smaller is more attractive.
func (p Priority) Bonus() float64 {
	switch p {
	case PriorityHigh:
		return 0.8
	case PriorityLow:
		return 1.0
	default:
		return 0.9
	}
}

// Represents a single place the caller wants to visit.
// A VisitLocation is constructed from caller input, enriched with resolved
// coordinates during planning, and read-only afterward.
type VisitLocation struct {
	Name                 string
	Address              string
	Coordinates          *Coordinates
	PlaceID              string
	VisitDurationMinutes int
	PreferredTime        string
	Priority             Priority
	Notes                string
}

func (l VisitLocation) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("location name must be non-empty")
	}
	if l.VisitDurationMinutes <= 0 {
		return fmt.Errorf("location %q: visit duration must be positive, got %d", l.Name, l.VisitDurationMinutes)
	}
	switch l.Priority {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("location %q: unknown priority %q", l.Name, l.Priority)
	}
	return nil
}
