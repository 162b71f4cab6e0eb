package streak

import (
	"sort"
	"time"

	"github.com/walkiapp/walki/internal/models"
	"github.com/walkiapp/walki/internal/utils"
)

// currentRun returns the records in the current unbroken streak, most recent
// first. A day belongs to the run if its goal was met or a freeze covered it,
// and its date is exactly one calendar day before the previous record's.
// Records are matched purely by date string; duplicate dates are the caller's
// responsibility to prevent.
func currentRun(records []models.DayRecord) []models.DayRecord {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]models.DayRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	var run []models.DayRecord
	var prev time.Time
	for i, rec := range sorted {
		if !rec.Qualifies() {
			break
		}
		day, err := utils.ParseDate(rec.Date)
		if err != nil {
			break
		}
		// A missing calendar day between records ends the run.
		if i > 0 && !prev.AddDate(0, 0, -1).Equal(day) {
			break
		}
		run = append(run, rec)
		prev = day
	}
	return run
}

// CurrentStreak returns the number of consecutive qualifying days ending at
// the most recent record. If the most recent record does not qualify the
// streak is 0.
func CurrentStreak(records []models.DayRecord) int {
	return len(currentRun(records))
}

// LongestStreak returns the maximum length of any run of consecutive
// qualifying days across the whole history.
func LongestStreak(records []models.DayRecord) int {
	if len(records) == 0 {
		return 0
	}

	sorted := make([]models.DayRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	longest, running := 0, 0
	var prev time.Time
	for i, rec := range sorted {
		day, err := utils.ParseDate(rec.Date)
		if err != nil {
			running = 0
			continue
		}
		if !rec.Qualifies() {
			running = 0
			prev = day
			continue
		}
		if running > 0 && i > 0 && !prev.AddDate(0, 0, 1).Equal(day) {
			running = 0
		}
		running++
		prev = day
		if running > longest {
			longest = running
		}
	}
	return longest
}

// CountActiveDays returns the number of days where the goal was actually met.
// Freeze-only days do not count.
func CountActiveDays(records []models.DayRecord) int {
	count := 0
	for _, rec := range records {
		if rec.Completed {
			count++
		}
	}
	return count
}

// IsDateInStreak reports whether the given date falls within the current
// unbroken streak window.
func IsDateInStreak(date time.Time, records []models.DayRecord) bool {
	dateStr := date.Format("2006-01-02")
	for _, rec := range currentRun(records) {
		if rec.Date == dateStr {
			return true
		}
	}
	return false
}

// StreakStartDate returns the earliest date of the current streak run. The
// second return value is false when there is no active streak.
func StreakStartDate(records []models.DayRecord) (time.Time, bool) {
	run := currentRun(records)
	if len(run) == 0 {
		return time.Time{}, false
	}
	start, err := utils.ParseDate(run[len(run)-1].Date)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

// HasUsedFreezeInStreak reports whether any day of the current streak run was
// covered by a freeze.
func HasUsedFreezeInStreak(records []models.DayRecord) bool {
	for _, rec := range currentRun(records) {
		if rec.FreezeUsed {
			return true
		}
	}
	return false
}
