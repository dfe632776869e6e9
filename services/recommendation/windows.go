package recommendation

import (
	"time"

	"clinicore/models"

	"go.uber.org/zap"
)

// window is a concrete [start, end) interval in the clinic's timezone during
// which the physician is available on the requested date. Windows are built
// fresh per request and never persisted.
type window struct {
	start time.Time
	end   time.Time
}

// buildWindows converts raw availability blocks into concrete local windows
// for the requested day.
//
// Recurring blocks store their hours as placeholder timestamps whose
// time-of-day (read as stored, without zone conversion) is the only
// meaningful part; that time-of-day is applied to the requested date in the
// clinic's zone. A recurring block whose weekday does not match the requested
// day produces no window. Date-specific blocks carry absolute instants and
// are used as-is, viewed in the clinic's zone.
//
// Windows may overlap; downstream slicing handles each independently and
// duplicate slot start times are allowed.
func buildWindows(blocks []models.AvailabilityBlock, day time.Time, loc *time.Location, logger *zap.Logger) []window {
	dayOfWeek := int(day.Weekday()) // 0=Sunday .. 6=Saturday

	var windows []window
	for _, block := range blocks {
		if block.IsRecurring {
			if block.DayOfWeek != dayOfWeek {
				continue
			}
			start := applyTimeOfDay(day, block.StartTime, loc)
			end := applyTimeOfDay(day, block.EndTime, loc)
			windows = append(windows, window{start: start, end: end})
		} else {
			windows = append(windows, window{
				start: block.StartTime.In(loc),
				end:   block.EndTime.In(loc),
			})
		}
	}

	logger.Debug("built availability windows",
		zap.Int("blocks", len(blocks)),
		zap.Int("windows", len(windows)))
	return windows
}

// applyTimeOfDay combines the placeholder's hour/minute with the requested
// calendar date in the clinic's zone.
func applyTimeOfDay(day time.Time, placeholder time.Time, loc *time.Location) time.Time {
	ref := placeholder.UTC()
	return time.Date(day.Year(), day.Month(), day.Day(), ref.Hour(), ref.Minute(), 0, 0, loc)
}
