// Package dates expands a departure date and a flexibility radius into
// the set of candidate dates to search.
package dates

import (
	"fmt"
	"time"
)

// Expand returns the dates from base-flexDays through base+flexDays
// inclusive, ascending. base is always included; flexDays of 0 yields
// exactly [base]. Times of day are stripped.
func Expand(base time.Time, flexDays int) ([]time.Time, error) {
	if flexDays < 0 {
		return nil, fmt.Errorf("flexibility days must not be negative, got %d", flexDays)
	}

	day := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, 0, 2*flexDays+1)
	for offset := -flexDays; offset <= flexDays; offset++ {
		out = append(out, day.AddDate(0, 0, offset))
	}
	return out, nil
}
