package domain

import "fmt"

// Daily scheduling constraints supplied by the caller.
//
// Break fields are accepted but currently advisory only: they are carried
// through planning without being enforced in the schedule.
type TripConstraints struct {
	StartTime              string
	EndTime                string
	StartLocation          string
	EndLocation            string
	MaxTravelMinutesPerDay int
	MaxDistanceKmPerDay    float64
	BreakDurationMinutes   int
	BreakAfterHours        float64
}

// Window parses the daily time window and returns its bounds in minutes
// since midnight. The end must be strictly after the start.
func (c TripConstraints) Window() (start, end int, err error) {
	start, err = ParseClock(c.StartTime)
	if err != nil {
		return 0, 0, &InvalidConstraintsError{Reason: fmt.Sprintf("start_time: %v", err)}
	}

	end, err = ParseClock(c.EndTime)
	if err != nil {
		return 0, 0, &InvalidConstraintsError{Reason: fmt.Sprintf("end_time: %v", err)}
	}

	if end <= start {
		return 0, 0, &InvalidConstraintsError{
			Reason: fmt.Sprintf("end_time %s must be after start_time %s", c.EndTime, c.StartTime),
		}
	}

	return start, end, nil
}
