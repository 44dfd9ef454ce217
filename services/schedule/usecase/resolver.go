package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/ncastellanos/flotilla/internal/pkg/models"
)

// Shift windows are civil HH:MM strings in the operational timezone.
// Zero-padded HH:MM compares correctly as plain strings, so the resolver
// never converts windows to instants: it formats the wall clock once and
// compares strings throughout.
const shiftLayout = "15:04"

// ValidateShiftTime checks that a shift boundary is a well-formed
// zero-padded HH:MM value.
func ValidateShiftTime(value string) error {
	if len(value) != len(shiftLayout) {
		return fmt.Errorf("invalid shift time %q: want HH:MM", value)
	}
	if _, err := time.Parse(shiftLayout, value); err != nil {
		return fmt.Errorf("invalid shift time %q: %w", value, err)
	}
	return nil
}

// WallClock formats an instant as the civil HH:MM in the given location
func WallClock(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(shiftLayout)
}

// sortByShiftStart returns a copy ordered by ShiftStart ascending, with
// CreatedAt as the tiebreaker so resolution is deterministic when two
// assignments share a start time.
func sortByShiftStart(assignments []models.Assignment) []models.Assignment {
	sorted := make([]models.Assignment, len(assignments))
	copy(sorted, assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ShiftStart != sorted[j].ShiftStart {
			return sorted[i].ShiftStart < sorted[j].ShiftStart
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// Resolve classifies a driver's active assignments against the wall clock.
// Current is the first assignment whose window contains the clock, bounds
// inclusive. Next is the first assignment starting strictly after the
// clock; when none exists the queue wraps around to the earliest
// assignment of the list. An empty list resolves to a nil/nil view.
func Resolve(assignments []models.Assignment, now time.Time, loc *time.Location) (*models.ShiftView, error) {
	view := &models.ShiftView{}
	if len(assignments) == 0 {
		return view, nil
	}

	for _, a := range assignments {
		if err := ValidateShiftTime(a.ShiftStart); err != nil {
			return nil, fmt.Errorf("assignment %s: %w", a.ID, err)
		}
		if err := ValidateShiftTime(a.ShiftEnd); err != nil {
			return nil, fmt.Errorf("assignment %s: %w", a.ID, err)
		}
	}

	sorted := sortByShiftStart(assignments)
	clock := WallClock(now, loc)

	for i := range sorted {
		if sorted[i].ShiftStart <= clock && clock <= sorted[i].ShiftEnd {
			current := sorted[i]
			view.Current = &current
			break
		}
	}

	for i := range sorted {
		if sorted[i].ShiftStart > clock {
			next := sorted[i]
			view.Next = &next
			break
		}
	}
	if view.Next == nil {
		// Every window starts at or before the clock: the next shift is
		// tomorrow's earliest.
		next := sorted[0]
		view.Next = &next
	}

	return view, nil
}

// Classify maps a sorted assignment list into queue entries relative to
// the wall clock: completed before, in progress inside, pending after.
func Classify(assignments []models.Assignment, now time.Time, loc *time.Location) ([]models.QueueEntry, error) {
	for _, a := range assignments {
		if err := ValidateShiftTime(a.ShiftStart); err != nil {
			return nil, fmt.Errorf("assignment %s: %w", a.ID, err)
		}
		if err := ValidateShiftTime(a.ShiftEnd); err != nil {
			return nil, fmt.Errorf("assignment %s: %w", a.ID, err)
		}
	}

	sorted := sortByShiftStart(assignments)
	clock := WallClock(now, loc)

	entries := make([]models.QueueEntry, 0, len(sorted))
	for _, a := range sorted {
		status := models.ShiftPending
		switch {
		case a.ShiftEnd < clock:
			status = models.ShiftCompleted
		case a.ShiftStart <= clock && clock <= a.ShiftEnd:
			status = models.ShiftInProgress
		}
		entries = append(entries, models.QueueEntry{Assignment: a, Status: status})
	}
	return entries, nil
}
