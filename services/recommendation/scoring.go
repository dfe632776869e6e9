package recommendation

import (
	"sort"
	"time"

	"clinicore/models"
)

const (
	baseScore          = 100
	gapPenaltyPerMin   = 10
	gapBonus           = 20
	morningBonus       = 15
	quietDayBonus      = 25
	densityPenalty     = 15
	densityRadius      = 60 * time.Minute
	maxRecommendations = 10
)

// applicableMinGap selects the effective minimum gap (minutes) for the
// requested duration: among rules whose MinDurationMinutes does not exceed
// the duration, the one with the largest MinDurationMinutes wins. With no
// qualifying rule the gap is 0.
func applicableMinGap(rules []models.BillingRule, durationMinutes int) int {
	best := -1
	gap := 0
	for _, rule := range rules {
		if rule.MinDurationMinutes <= durationMinutes && rule.MinDurationMinutes > best {
			best = rule.MinDurationMinutes
			gap = rule.MinGapAfter
		}
	}
	return gap
}

// scoreSlots applies the gap, morning and density heuristics to every
// candidate slot. Scores never go below zero.
func scoreSlots(slots []candidateSlot, appointments []models.Appointment, minGap int) {
	for i := range slots {
		slots[i].score = scoreSlot(slots[i], appointments, minGap)
	}
}

func scoreSlot(slot candidateSlot, appointments []models.Appointment, minGap int) int {
	score := baseScore

	prev, hasPrev := nearestBefore(slot, appointments)
	next, hasNext := nearestAfter(slot, appointments)

	prevOK := true
	if hasPrev {
		gap := int(slot.start.Sub(prev.EndTime) / time.Minute)
		if gap < minGap {
			score -= gapPenaltyPerMin * (minGap - gap)
			prevOK = false
		}
	}
	nextOK := true
	if hasNext {
		gap := int(next.StartTime.Sub(slot.end) / time.Minute)
		if gap < minGap {
			score -= gapPenaltyPerMin * (minGap - gap)
			nextOK = false
		}
	}
	if prevOK && nextOK {
		score += gapBonus
	}

	// Morning slots (local clinic time) are preferred.
	if hour := slot.start.Hour(); hour >= 9 && hour < 12 {
		score += morningBonus
	}

	switch nearby := countNearby(slot, appointments); {
	case nearby == 0:
		score += quietDayBonus
	case nearby > 2:
		score -= densityPenalty
	}

	if score < 0 {
		score = 0
	}
	return score
}

// nearestBefore returns the appointment with the latest end at or before the
// slot's start.
func nearestBefore(slot candidateSlot, appointments []models.Appointment) (models.Appointment, bool) {
	var best models.Appointment
	found := false
	for _, appt := range appointments {
		if appt.EndTime.After(slot.start) {
			continue
		}
		if !found || appt.EndTime.After(best.EndTime) {
			best = appt
			found = true
		}
	}
	return best, found
}

// nearestAfter returns the appointment with the earliest start at or after
// the slot's end.
func nearestAfter(slot candidateSlot, appointments []models.Appointment) (models.Appointment, bool) {
	var best models.Appointment
	found := false
	for _, appt := range appointments {
		if appt.StartTime.Before(slot.end) {
			continue
		}
		if !found || appt.StartTime.Before(best.StartTime) {
			best = appt
			found = true
		}
	}
	return best, found
}

// countNearby counts appointments whose start or end lies within the density
// radius of the slot's start.
func countNearby(slot candidateSlot, appointments []models.Appointment) int {
	count := 0
	for _, appt := range appointments {
		if absDuration(appt.StartTime.Sub(slot.start)) <= densityRadius ||
			absDuration(appt.EndTime.Sub(slot.start)) <= densityRadius {
			count++
		}
	}
	return count
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// rankSlots drops zero-scored slots, orders the rest by score descending
// (ties broken by start time ascending) and returns at most
// maxRecommendations slot starts as UTC ISO-8601 instants.
func rankSlots(slots []candidateSlot) []string {
	ranked := make([]candidateSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.score > 0 {
			ranked = append(ranked, slot)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].start.Before(ranked[j].start)
	})

	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}

	starts := make([]string, len(ranked))
	for i, slot := range ranked {
		starts[i] = slot.start.UTC().Format("2006-01-02T15:04:05Z")
	}
	return starts
}
