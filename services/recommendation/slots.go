package recommendation

import (
	"time"

	"clinicore/models"
)

// slotStride is the fixed spacing between candidate slot starts. It does not
// scale with the requested duration, so slots overlap whenever the duration
// exceeds the stride.
const slotStride = 15 * time.Minute

// candidateSlot is a scored candidate appointment time carved from a window.
type candidateSlot struct {
	start time.Time
	end   time.Time
	score int
}

// sliceWindows partitions each window into candidate slots of the requested
// duration, advancing by the fixed stride. A slot is emitted only while it
// fits entirely inside the window.
func sliceWindows(windows []window, durationMinutes int) []candidateSlot {
	duration := time.Duration(durationMinutes) * time.Minute

	var slots []candidateSlot
	for _, w := range windows {
		for t := w.start; !t.Add(duration).After(w.end); t = t.Add(slotStride) {
			slots = append(slots, candidateSlot{start: t, end: t.Add(duration), score: baseScore})
		}
	}
	return slots
}

// filterConflicts removes candidate slots that overlap a non-cancelled
// existing appointment. Overlap is tested on open intervals: a slot is
// rejected iff slot.start < appt.end && slot.end > appt.start, so slots that
// exactly abut an appointment boundary survive.
func filterConflicts(slots []candidateSlot, appointments []models.Appointment) []candidateSlot {
	filtered := slots[:0]
	for _, slot := range slots {
		conflict := false
		for _, appt := range appointments {
			if slot.start.Before(appt.EndTime) && slot.end.After(appt.StartTime) {
				conflict = true
				break
			}
		}
		if !conflict {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
