package season

import (
	"fmt"
	"math"
)

// DayCounter assigns the 1-based same-day sequence index: how many
// games a calendar date has contributed so far, in processing order.
// Timeline, summary and match builders all thread one DayCounter over
// the same normalized history, so the indices they emit are identical
// for the same payload.
type DayCounter struct {
	counts map[string]int
}

// NewDayCounter returns an empty counter.
func NewDayCounter() *DayCounter {
	return &DayCounter{counts: make(map[string]int)}
}

// Next increments and returns the index for date. The first occurrence
// of a date yields 1.
func (c *DayCounter) Next(date string) int {
	c.counts[date]++
	return c.counts[date]
}

// MonthDay renders a payload date as "M/D" without zero padding. A
// string that does not parse is returned verbatim as a display
// fallback.
func MonthDay(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return date
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// RoundTenth rounds to exactly one decimal place. Both builders that
// emit score or point values route them through this single function
// so directly supplied and inferred values round identically.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
